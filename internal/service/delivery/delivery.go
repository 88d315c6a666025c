package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"quickhaul/internal/entities"
)

type Delivery struct {
	repository        Repository
	distanceEstimator DistanceEstimator
	priceFactory      PriceFactory
	publisher         EventPublisher
	txManager         TxManager
	now               func() time.Time
	newID             func() string
}

func New(
	repository Repository,
	distanceEstimator DistanceEstimator,
	priceFactory PriceFactory,
	publisher EventPublisher,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:        repository,
		distanceEstimator: distanceEstimator,
		priceFactory:      priceFactory,
		publisher:         publisher,
		txManager:         txManager,
		now:               now,
		newID:             uuid.NewString,
	}
}

// now обрезан до микросекунд, как хранит postgres.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *Delivery) CreateDelivery(ctx context.Context, ownerID string, details entities.DeliveryDetails) (*entities.Delivery, error) {
	if isBlank(ownerID) {
		return nil, ErrInvalidOwnerID
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	distanceKm, err := s.distanceEstimator.EstimateDistance(ctx, details.PickupLocation, details.DeliveryLocation)
	if err != nil {
		return nil, fmt.Errorf("estimate distance: %w", err)
	}

	price := s.priceFactory.CalculatePrice(details.VehicleType, distanceKm, details.ItemWeightKg)
	if !isValidPrice(price) {
		return nil, fmt.Errorf("%w: distance %v km", ErrInvalidPrice, distanceKm)
	}

	createdAt := s.now()
	delivery := entities.Delivery{
		ID:               s.newID(),
		OwnerID:          ownerID,
		PickupLocation:   strings.TrimSpace(details.PickupLocation),
		DeliveryLocation: strings.TrimSpace(details.DeliveryLocation),
		ItemDescription:  strings.TrimSpace(details.ItemDescription),
		ItemWeightKg:     details.ItemWeightKg,
		VehicleType:      details.VehicleType,
		ScheduledDate:    details.ScheduledDate,
		ScheduledTime:    details.ScheduledTime,
		AdditionalNotes:  details.AdditionalNotes,
		DistanceKm:       distanceKm,
		Price:            price,
		Status:           entities.DeliveryPending,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}

	created, err := s.repository.Create(ctx, delivery)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	return created, nil
}

func (s *Delivery) TransitionDelivery(ctx context.Context, transition entities.DeliveryTransition) (*entities.Delivery, error) {
	if isBlank(transition.ID) {
		return nil, ErrInvalidDeliveryID
	}
	if !transition.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if transition.DriverID != nil && isBlank(*transition.DriverID) {
		return nil, ErrInvalidDriverID
	}

	return s.changeStatus(ctx, transition.ID, transition.DriverID, func(current entities.DeliveryStatus) (entities.DeliveryStatus, error) {
		if !CanTransition(current, transition.Status) {
			return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, transition.Status)
		}
		return transition.Status, nil
	})
}

func (s *Delivery) CancelDelivery(ctx context.Context, id string) (*entities.Delivery, error) {
	if isBlank(id) {
		return nil, ErrInvalidDeliveryID
	}

	return s.changeStatus(ctx, id, nil, func(current entities.DeliveryStatus) (entities.DeliveryStatus, error) {
		if current != entities.DeliveryPending {
			return "", fmt.Errorf("%w: cannot cancel delivery in status %s", ErrInvalidState, current)
		}
		return entities.DeliveryCancelled, nil
	})
}

// AdvanceDelivery двигает доставку на один шаг по основному пути.
func (s *Delivery) AdvanceDelivery(ctx context.Context, id string) (*entities.Delivery, error) {
	if isBlank(id) {
		return nil, ErrInvalidDeliveryID
	}

	return s.changeStatus(ctx, id, nil, func(current entities.DeliveryStatus) (entities.DeliveryStatus, error) {
		next, ok := NextStatus(current)
		if !ok {
			return "", fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, current)
		}
		return next, nil
	})
}

// changeStatus блокирует строку доставки на время транзакции, так что
// запись по одному id выполняется строго по очереди.
func (s *Delivery) changeStatus(
	ctx context.Context,
	id string,
	driverID *string,
	decide func(current entities.DeliveryStatus) (entities.DeliveryStatus, error),
) (*entities.Delivery, error) {
	var updated *entities.Delivery

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		target, err := decide(current.Status)
		if err != nil {
			return err
		}

		update := entities.DeliveryStatusUpdate{
			ID:        id,
			Status:    target,
			UpdatedAt: s.now(),
		}
		if target == entities.DeliveryAccepted {
			if driverID != nil && *driverID == current.OwnerID {
				return ErrDriverIsOwner
			}
			update.DriverID = driverID
		}

		updated, err = s.repository.UpdateStatus(ctx, update)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		event := entities.DeliveryStatusChanged{
			DeliveryID:     updated.ID,
			OwnerID:        updated.OwnerID,
			DriverID:       updated.DriverID,
			PreviousStatus: current.Status,
			Status:         updated.Status,
			OccurredAt:     updated.UpdatedAt,
		}
		if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
			return fmt.Errorf("publish status change: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Delivery) GetDelivery(ctx context.Context, id string) (*entities.Delivery, error) {
	if isBlank(id) {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	return delivery, nil
}

func (s *Delivery) ListDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	if filter.AccountID != nil && isBlank(*filter.AccountID) {
		return nil, ErrInvalidOwnerID
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if filter.Search != nil && isBlank(*filter.Search) {
		filter.Search = nil
	}

	deliveries, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	return deliveries, nil
}

// ListByOwnerOrDriver - заявки, где аккаунт заказчик или назначенный водитель.
func (s *Delivery) ListByOwnerOrDriver(ctx context.Context, accountID string) ([]entities.Delivery, error) {
	return s.ListDeliveries(ctx, entities.DeliveryFilter{AccountID: &accountID})
}

func (s *Delivery) ListAll(ctx context.Context) ([]entities.Delivery, error) {
	return s.ListDeliveries(ctx, entities.DeliveryFilter{})
}

func (s *Delivery) CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count deliveries by status: %w", err)
	}

	return counts, nil
}
