package dto

import (
	"time"

	"quickhaul/internal/entities"
)

type AccountCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SessionCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountUpdate - PATCH, отсутствующие поля не меняются.
type AccountUpdate struct {
	Name         *string  `json:"name,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Password     *string  `json:"password,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Address      *string  `json:"address,omitempty"`
	VehicleType  *string  `json:"vehicleType,omitempty"`
	LicensePlate *string  `json:"licensePlate,omitempty"`
	CapacityKg   *float64 `json:"capacityKg,omitempty"`
	Availability *string  `json:"availability,omitempty"`
}

type DriverProfile struct {
	VehicleType  string  `json:"vehicleType"`
	LicensePlate string  `json:"licensePlate"`
	CapacityKg   float64 `json:"capacityKg"`
	Availability string  `json:"availability"`
}

type Account struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Role          string         `json:"role"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	DriverProfile *DriverProfile `json:"driverProfile,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AuthResponse struct {
	Account Account `json:"account"`
	Session Session `json:"session"`
}

// FromAccount никогда не отдаёт хеш пароля.
func FromAccount(account entities.Account) Account {
	res := Account{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role.String(),
		Phone:     account.Phone,
		Address:   account.Address,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
	if account.DriverProfile != nil {
		res.DriverProfile = &DriverProfile{
			VehicleType:  account.DriverProfile.VehicleType,
			LicensePlate: account.DriverProfile.LicensePlate,
			CapacityKg:   account.DriverProfile.CapacityKg,
			Availability: account.DriverProfile.Availability.String(),
		}
	}
	return res
}

func FromAuthenticated(authenticated entities.Authenticated) AuthResponse {
	return AuthResponse{
		Account: FromAccount(authenticated.Account),
		Session: Session{
			Token:     authenticated.Session.Token,
			ExpiresAt: authenticated.Session.ExpiresAt,
		},
	}
}

func (u AccountUpdate) ToModify() entities.AccountModify {
	modify := entities.AccountModify{
		Name:         u.Name,
		Email:        u.Email,
		Credential:   u.Password,
		Phone:        u.Phone,
		Address:      u.Address,
		VehicleType:  u.VehicleType,
		LicensePlate: u.LicensePlate,
		CapacityKg:   u.CapacityKg,
	}
	if u.Availability != nil {
		availability := entities.DriverAvailability(*u.Availability)
		modify.Availability = &availability
	}
	return modify
}
