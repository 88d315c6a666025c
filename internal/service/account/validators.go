package account

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"quickhaul/internal/entities"
)

// bcrypt молча обрезает всё длиннее 72 байт.
const maxCredentialBytes = 72

var validate = validator.New(validator.WithRequiredStructEnabled())

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// normalizeEmail - email сравнивается без учёта регистра и пробелов по краям.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func isValidCredential(credential string) bool {
	return len(credential) > 0 && len(credential) <= maxCredentialBytes
}

func isValidRole(role entities.AccountRole) bool {
	switch role {
	case entities.RoleRequester, entities.RoleDriver:
		return true
	default:
		return false
	}
}

func isValidAvailability(availability entities.DriverAvailability) bool {
	switch availability {
	case entities.DriverAvailable, entities.DriverBusy, entities.DriverOffline:
		return true
	default:
		return false
	}
}

func validateRegistration(registration entities.Registration) error {
	if isBlank(registration.Name) {
		return ErrInvalidName
	}
	if !isValidEmail(registration.Email) {
		return ErrInvalidEmail
	}
	if !isValidCredential(registration.Credential) {
		return ErrInvalidCredential
	}
	if !isValidRole(registration.Role) {
		return ErrInvalidRole
	}
	return nil
}

func validateModify(accountModify entities.AccountModify) error {
	if accountModify.IsEmpty() {
		return ErrNothingToUpdate
	}
	if accountModify.Name != nil && isBlank(*accountModify.Name) {
		return ErrInvalidName
	}
	if accountModify.Email != nil && !isValidEmail(*accountModify.Email) {
		return ErrInvalidEmail
	}
	if accountModify.Credential != nil && !isValidCredential(*accountModify.Credential) {
		return ErrInvalidCredential
	}
	if accountModify.CapacityKg != nil && *accountModify.CapacityKg < 0 {
		return ErrInvalidCapacity
	}
	if accountModify.Availability != nil && !isValidAvailability(*accountModify.Availability) {
		return ErrInvalidAvailability
	}
	return nil
}
