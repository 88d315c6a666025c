package account

import "time"

type AccountDB struct {
	ID             string
	Name           string
	Email          string
	CredentialHash string
	Role           string
	Phone          string
	Address        string
	VehicleType    *string
	LicensePlate   *string
	CapacityKg     *float64
	Availability   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type AccountModifyDB struct {
	ID             *string
	Name           *string
	Email          *string
	CredentialHash *string
	Phone          *string
	Address        *string
	VehicleType    *string
	LicensePlate   *string
	CapacityKg     *float64
	Availability   *string
}
