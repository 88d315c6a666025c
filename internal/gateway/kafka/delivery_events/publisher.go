package delivery_events

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"quickhaul/internal/entities"
)

type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishStatusChanged отправляет событие синхронно. Ключ - id доставки,
// так события одной заявки попадают в одну партицию по порядку.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.DeliveryStatusChanged) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := Encode(event)
	if err != nil {
		return fmt.Errorf("encode delivery event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.DeliveryID),
		Value: sarama.ByteEncoder(value),
	}

	_, _, err = p.producer.SendMessage(msg)
	if err != nil {
		EventsPublishedTotal.WithLabelValues(p.topic, event.Status.String(), "error").Inc()
		return fmt.Errorf("kafka send delivery event: %w", err)
	}

	EventsPublishedTotal.WithLabelValues(p.topic, event.Status.String(), "ok").Inc()
	return nil
}
