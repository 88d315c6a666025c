//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_advance_post_test
package delivery_advance_post

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
	AdvanceDelivery(ctx context.Context, id string) (*entities.Delivery, error)
}
