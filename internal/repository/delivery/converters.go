package delivery

import "quickhaul/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:               d.ID,
		OwnerID:          d.OwnerID,
		DriverID:         d.DriverID,
		PickupLocation:   d.PickupLocation,
		DeliveryLocation: d.DeliveryLocation,
		ItemDescription:  d.ItemDescription,
		ItemWeightKg:     d.ItemWeightKg,
		VehicleType:      entities.VehicleType(d.VehicleType),
		ScheduledDate:    d.ScheduledDate,
		ScheduledTime:    d.ScheduledTime,
		AdditionalNotes:  d.AdditionalNotes,
		DistanceKm:       d.DistanceKm,
		Price:            d.Price,
		Status:           entities.DeliveryStatus(d.Status),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func FromDomain(d *entities.Delivery) *DeliveryDB {
	if d == nil {
		return nil
	}
	return &DeliveryDB{
		ID:               d.ID,
		OwnerID:          d.OwnerID,
		DriverID:         d.DriverID,
		PickupLocation:   d.PickupLocation,
		DeliveryLocation: d.DeliveryLocation,
		ItemDescription:  d.ItemDescription,
		ItemWeightKg:     d.ItemWeightKg,
		VehicleType:      string(d.VehicleType),
		ScheduledDate:    d.ScheduledDate,
		ScheduledTime:    d.ScheduledTime,
		AdditionalNotes:  d.AdditionalNotes,
		DistanceKm:       d.DistanceKm,
		Price:            d.Price,
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	if len(deliveriesDB) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(deliveriesDB))
	for i := range deliveriesDB {
		result[i] = *ToDomain(&deliveriesDB[i])
	}
	return result
}

// ToStatusCounts дополняет нулями статусы, которых нет в выборке.
func ToStatusCounts(countsDB []StatusCountDB) map[entities.DeliveryStatus]int64 {
	counts := make(map[entities.DeliveryStatus]int64, len(entities.DeliveryStatuses))
	for _, status := range entities.DeliveryStatuses {
		counts[status] = 0
	}
	for _, c := range countsDB {
		counts[entities.DeliveryStatus(c.Status)] = c.Count
	}
	return counts
}
