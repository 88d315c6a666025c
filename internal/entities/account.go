package entities

import "time"

type Account struct {
	ID             string
	Name           string
	Email          string
	CredentialHash string
	Role           AccountRole
	Phone          string
	Address        string
	DriverProfile  *DriverProfile
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (a *Account) IsDriver() bool {
	return a.Role == RoleDriver
}

type AccountRole string

const (
	RoleRequester AccountRole = "requester"
	RoleDriver    AccountRole = "driver"
)

func (r AccountRole) String() string {
	return string(r)
}

type DriverProfile struct {
	VehicleType  string
	LicensePlate string
	CapacityKg   float64
	Availability DriverAvailability
}

// NewDriverProfile - профиль водителя сразу после регистрации.
func NewDriverProfile() *DriverProfile {
	return &DriverProfile{
		Availability: DriverAvailable,
	}
}

type DriverAvailability string

const (
	DriverAvailable DriverAvailability = "available"
	DriverBusy      DriverAvailability = "busy"
	DriverOffline   DriverAvailability = "offline"
)

func (a DriverAvailability) String() string {
	return string(a)
}

type Registration struct {
	Name       string
	Email      string
	Credential string
	Role       AccountRole
}

// AccountModify - частичное обновление профиля, nil поля не меняются.
type AccountModify struct {
	ID             *string
	Name           *string
	Email          *string
	Credential     *string
	CredentialHash *string
	Phone          *string
	Address        *string
	VehicleType    *string
	LicensePlate   *string
	CapacityKg     *float64
	Availability   *DriverAvailability
}

func (m *AccountModify) IsEmpty() bool {
	return m.Name == nil &&
		m.Email == nil &&
		m.Credential == nil &&
		m.Phone == nil &&
		m.Address == nil &&
		!m.HasDriverFields()
}

func (m *AccountModify) HasDriverFields() bool {
	return m.VehicleType != nil ||
		m.LicensePlate != nil ||
		m.CapacityKg != nil ||
		m.Availability != nil
}
