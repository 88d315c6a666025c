package delivery

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation error")

var (
	ErrInvalidDeliveryID       = fmt.Errorf("%w: invalid delivery id", ErrValidation)
	ErrInvalidOwnerID          = fmt.Errorf("%w: invalid owner id", ErrValidation)
	ErrInvalidDriverID         = fmt.Errorf("%w: invalid driver id", ErrValidation)
	ErrInvalidStatus           = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidPickupLocation   = fmt.Errorf("%w: pickup location is required", ErrValidation)
	ErrInvalidDeliveryLocation = fmt.Errorf("%w: delivery location is required", ErrValidation)
	ErrInvalidItemDescription  = fmt.Errorf("%w: item description is required", ErrValidation)
	ErrInvalidItemWeight       = fmt.Errorf("%w: item weight must be positive", ErrValidation)
	ErrItemWeightTooLarge      = fmt.Errorf("%w: item weight must not exceed %d kg", ErrValidation, maxItemWeightKg)
	ErrInvalidPrice            = fmt.Errorf("%w: price is out of range", ErrValidation)
	ErrDriverIsOwner           = fmt.Errorf("%w: owner cannot be the driver of own delivery", ErrValidation)
	ErrInvalidVehicleType      = fmt.Errorf("%w: invalid vehicle type", ErrValidation)
	ErrInvalidScheduledDate    = fmt.Errorf("%w: scheduled date must be YYYY-MM-DD", ErrValidation)
	ErrInvalidScheduledTime    = fmt.Errorf("%w: scheduled time must be HH:MM", ErrValidation)
)

var (
	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("operation not permitted in current status")
	ErrPersistence       = errors.New("delivery storage failure")
)
