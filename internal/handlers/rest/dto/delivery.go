package dto

import (
	"time"

	"quickhaul/internal/entities"
)

type DeliveryCreate struct {
	PickupLocation   string  `json:"pickupLocation"`
	DeliveryLocation string  `json:"deliveryLocation"`
	ItemDescription  string  `json:"itemDescription"`
	ItemWeightKg     float64 `json:"itemWeightKg"`
	VehicleType      string  `json:"vehicleType"`
	ScheduledDate    string  `json:"scheduledDate"`
	ScheduledTime    string  `json:"scheduledTime"`
	AdditionalNotes  string  `json:"additionalNotes"`
}

type DeliveryStatusUpdate struct {
	Status   string  `json:"status"`
	DriverID *string `json:"driverId,omitempty"`
}

type Delivery struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"ownerId"`
	DriverID         *string   `json:"driverId"`
	PickupLocation   string    `json:"pickupLocation"`
	DeliveryLocation string    `json:"deliveryLocation"`
	ItemDescription  string    `json:"itemDescription"`
	ItemWeightKg     float64   `json:"itemWeightKg"`
	VehicleType      string    `json:"vehicleType"`
	ScheduledDate    string    `json:"scheduledDate"`
	ScheduledTime    string    `json:"scheduledTime"`
	AdditionalNotes  string    `json:"additionalNotes"`
	DistanceKm       float64   `json:"distanceKm"`
	Price            float64   `json:"price"`
	Status           string    `json:"status"`
	Progress         int       `json:"progress"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (c DeliveryCreate) ToDetails() entities.DeliveryDetails {
	return entities.DeliveryDetails{
		PickupLocation:   c.PickupLocation,
		DeliveryLocation: c.DeliveryLocation,
		ItemDescription:  c.ItemDescription,
		ItemWeightKg:     c.ItemWeightKg,
		VehicleType:      entities.VehicleType(c.VehicleType),
		ScheduledDate:    c.ScheduledDate,
		ScheduledTime:    c.ScheduledTime,
		AdditionalNotes:  c.AdditionalNotes,
	}
}

func FromDelivery(delivery entities.Delivery) Delivery {
	return Delivery{
		ID:               delivery.ID,
		OwnerID:          delivery.OwnerID,
		DriverID:         delivery.DriverID,
		PickupLocation:   delivery.PickupLocation,
		DeliveryLocation: delivery.DeliveryLocation,
		ItemDescription:  delivery.ItemDescription,
		ItemWeightKg:     delivery.ItemWeightKg,
		VehicleType:      delivery.VehicleType.String(),
		ScheduledDate:    delivery.ScheduledDate,
		ScheduledTime:    delivery.ScheduledTime,
		AdditionalNotes:  delivery.AdditionalNotes,
		DistanceKm:       delivery.DistanceKm,
		Price:            delivery.Price,
		Status:           delivery.Status.String(),
		Progress:         delivery.Status.Progress(),
		CreatedAt:        delivery.CreatedAt,
		UpdatedAt:        delivery.UpdatedAt,
	}
}

func FromDeliveries(deliveries []entities.Delivery) []Delivery {
	res := make([]Delivery, len(deliveries))
	for i, delivery := range deliveries {
		res[i] = FromDelivery(delivery)
	}
	return res
}
