package account

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation error")

var (
	ErrInvalidAccountID    = fmt.Errorf("%w: invalid account id", ErrValidation)
	ErrInvalidName         = fmt.Errorf("%w: name is required", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrInvalidCredential   = fmt.Errorf("%w: credential must be 1-72 bytes", ErrValidation)
	ErrInvalidRole         = fmt.Errorf("%w: invalid role", ErrValidation)
	ErrInvalidCapacity     = fmt.Errorf("%w: capacity must not be negative", ErrValidation)
	ErrInvalidAvailability = fmt.Errorf("%w: invalid availability", ErrValidation)
	ErrNotDriver           = fmt.Errorf("%w: driver fields on a non-driver account", ErrValidation)
	ErrNothingToUpdate     = fmt.Errorf("%w: no fields to update", ErrValidation)
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or credential")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidSession     = errors.New("invalid session")
	ErrPersistence        = errors.New("account storage failure")
)
