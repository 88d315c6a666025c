package delivery

import "time"

type DeliveryDB struct {
	ID               string
	OwnerID          string
	DriverID         *string
	PickupLocation   string
	DeliveryLocation string
	ItemDescription  string
	ItemWeightKg     float64
	VehicleType      string
	ScheduledDate    string
	ScheduledTime    string
	AdditionalNotes  string
	DistanceKm       float64
	Price            float64
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type StatusCountDB struct {
	Status string
	Count  int64
}
