//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_patch_test
package delivery_status_patch

import (
	"context"

	"quickhaul/internal/entities"
	"quickhaul/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	TransitionDelivery(ctx context.Context, transition entities.DeliveryTransition) (*entities.Delivery, error)
}
