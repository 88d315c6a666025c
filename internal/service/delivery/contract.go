//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"quickhaul/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Delivery, error)
	UpdateStatus(ctx context.Context, update entities.DeliveryStatusUpdate) (*entities.Delivery, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error)
	CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type DistanceEstimator interface {
	EstimateDistance(ctx context.Context, pickupLocation, deliveryLocation string) (float64, error)
}

type PriceFactory interface {
	CalculatePrice(vehicleType entities.VehicleType, distanceKm, itemWeightKg float64) float64
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.DeliveryStatusChanged) error
}
