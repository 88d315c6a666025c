package delivery_status_changed

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"quickhaul/internal/gateway/kafka/delivery_events"
	"quickhaul/pkg/logger"
)

type Handler struct {
	availabilityService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, availabilityService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "delivery.status.changed"),
	)

	return &Handler{
		availabilityService:      availabilityService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return h.consume(sess, claim.Messages())
}

func (h *Handler) consume(sess session, messages <-chan *sarama.ConsumerMessage) error {
	for {
		select {
		case message, ok := <-messages:
			if !ok {
				h.log.Info("delivery.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("delivery.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать:
// контекст отменён и сообщение останется неподтверждённым.
func (h *Handler) messageProcessing(sess session, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := delivery_events.Decode(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("delivery.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	result, err := h.availabilityService.ProcessDeliveryStatusChange(ctx, *event)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", err),
		).Warn("delivery.status.changed handler failed to update driver availability")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("result", string(result)),
	).Info("delivery.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
