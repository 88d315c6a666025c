package entities

import "time"

type Delivery struct {
	ID               string
	OwnerID          string
	DriverID         *string
	PickupLocation   string
	DeliveryLocation string
	ItemDescription  string
	ItemWeightKg     float64
	VehicleType      VehicleType
	ScheduledDate    string
	ScheduledTime    string
	AdditionalNotes  string
	DistanceKm       float64
	Price            float64
	Status           DeliveryStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type VehicleType string

const (
	VehicleBakkie VehicleType = "bakkie"
	VehicleTruck  VehicleType = "truck"
	VehicleLorry  VehicleType = "lorry"
)

func (v VehicleType) String() string {
	return string(v)
}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleBakkie, VehicleTruck, VehicleLorry:
		return true
	default:
		return false
	}
}

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryAccepted  DeliveryStatus = "accepted"
	DeliveryPickup    DeliveryStatus = "pickup"
	DeliveryTransit   DeliveryStatus = "transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

var DeliveryStatuses = []DeliveryStatus{
	DeliveryPending,
	DeliveryAccepted,
	DeliveryPickup,
	DeliveryTransit,
	DeliveryDelivered,
	DeliveryCancelled,
}

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryAccepted, DeliveryPickup,
		DeliveryTransit, DeliveryDelivered, DeliveryCancelled:
		return true
	default:
		return false
	}
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// Progress - процент выполнения доставки для трекинга.
func (s DeliveryStatus) Progress() int {
	switch s {
	case DeliveryAccepted:
		return 25
	case DeliveryPickup:
		return 50
	case DeliveryTransit:
		return 75
	case DeliveryDelivered:
		return 100
	default:
		return 0
	}
}

// DeliveryDetails - то, что заказчик передаёт при создании заявки.
type DeliveryDetails struct {
	PickupLocation   string
	DeliveryLocation string
	ItemDescription  string
	ItemWeightKg     float64
	VehicleType      VehicleType
	ScheduledDate    string
	ScheduledTime    string
	AdditionalNotes  string
}

type DeliveryTransition struct {
	ID       string
	Status   DeliveryStatus
	DriverID *string
}

type DeliveryStatusUpdate struct {
	ID        string
	Status    DeliveryStatus
	DriverID  *string
	UpdatedAt time.Time
}

type DeliveryFilter struct {
	AccountID *string
	Status    *DeliveryStatus
	Search    *string
}

type DeliveryStatusChanged struct {
	DeliveryID     string
	OwnerID        string
	DriverID       *string
	PreviousStatus DeliveryStatus
	Status         DeliveryStatus
	OccurredAt     time.Time
}
