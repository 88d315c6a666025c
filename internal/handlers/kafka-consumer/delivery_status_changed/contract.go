//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_changed
package delivery_status_changed

import (
	"context"

	"github.com/IBM/sarama"
	"quickhaul/internal/entities"
	"quickhaul/internal/service/availability"
	"quickhaul/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessDeliveryStatusChange(ctx context.Context, event entities.DeliveryStatusChanged) (availability.Result, error)
}

// session - часть sarama.ConsumerGroupSession, нужная для одного сообщения.
type session interface {
	Context() context.Context
	MarkMessage(msg *sarama.ConsumerMessage, metadata string)
}
