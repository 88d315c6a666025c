package delivery_events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quickhaul/internal/entities"
)

var ErrMalformedMessage = errors.New("malformed delivery status message")

// StatusChangedMessage - формат события в топике.
type StatusChangedMessage struct {
	DeliveryID     string    `json:"deliveryId"`
	OwnerID        string    `json:"ownerId"`
	DriverID       *string   `json:"driverId,omitempty"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func Encode(event entities.DeliveryStatusChanged) ([]byte, error) {
	return json.Marshal(StatusChangedMessage{
		DeliveryID:     event.DeliveryID,
		OwnerID:        event.OwnerID,
		DriverID:       event.DriverID,
		PreviousStatus: event.PreviousStatus.String(),
		Status:         event.Status.String(),
		OccurredAt:     event.OccurredAt,
	})
}

func Decode(data []byte) (*entities.DeliveryStatusChanged, error) {
	var msg StatusChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	if msg.DeliveryID == "" {
		return nil, fmt.Errorf("%w: empty delivery id", ErrMalformedMessage)
	}

	status := entities.DeliveryStatus(msg.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrMalformedMessage, msg.Status)
	}

	return &entities.DeliveryStatusChanged{
		DeliveryID:     msg.DeliveryID,
		OwnerID:        msg.OwnerID,
		DriverID:       msg.DriverID,
		PreviousStatus: entities.DeliveryStatus(msg.PreviousStatus),
		Status:         status,
		OccurredAt:     msg.OccurredAt,
	}, nil
}
