package account

import "quickhaul/internal/entities"

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}

	account := &entities.Account{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		CredentialHash: a.CredentialHash,
		Role:           entities.AccountRole(a.Role),
		Phone:          a.Phone,
		Address:        a.Address,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	// профиль водителя хранится плоскими nullable колонками
	if a.Availability != nil {
		profile := &entities.DriverProfile{
			Availability: entities.DriverAvailability(*a.Availability),
		}
		if a.VehicleType != nil {
			profile.VehicleType = *a.VehicleType
		}
		if a.LicensePlate != nil {
			profile.LicensePlate = *a.LicensePlate
		}
		if a.CapacityKg != nil {
			profile.CapacityKg = *a.CapacityKg
		}
		account.DriverProfile = profile
	}

	return account
}

func FromDomain(a *entities.Account) *AccountDB {
	if a == nil {
		return nil
	}

	accountDB := &AccountDB{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		CredentialHash: a.CredentialHash,
		Role:           a.Role.String(),
		Phone:          a.Phone,
		Address:        a.Address,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	if a.DriverProfile != nil {
		availability := a.DriverProfile.Availability.String()
		accountDB.VehicleType = &a.DriverProfile.VehicleType
		accountDB.LicensePlate = &a.DriverProfile.LicensePlate
		accountDB.CapacityKg = &a.DriverProfile.CapacityKg
		accountDB.Availability = &availability
	}

	return accountDB
}

func FromDomainModify(m *entities.AccountModify) *AccountModifyDB {
	if m == nil {
		return nil
	}

	modifyDB := &AccountModifyDB{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		CredentialHash: m.CredentialHash,
		Phone:          m.Phone,
		Address:        m.Address,
		VehicleType:    m.VehicleType,
		LicensePlate:   m.LicensePlate,
		CapacityKg:     m.CapacityKg,
	}
	if m.Availability != nil {
		availability := m.Availability.String()
		modifyDB.Availability = &availability
	}

	return modifyDB
}
