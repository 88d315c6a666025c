package availability

import (
	"context"
	"errors"
	"fmt"

	"quickhaul/internal/entities"
)

// Result - что сделал сервис с событием.
type Result string

const (
	ResultApplied  Result = "applied"
	ResultNoDriver Result = "no_driver"
	ResultIgnored  Result = "ignored"
)

type Service struct {
	accountService AccountService
	statusFactory  HandlerFactory
}

func New(accountService AccountService, statusFactory HandlerFactory) *Service {
	return &Service{
		accountService: accountService,
		statusFactory:  statusFactory,
	}
}

func (s *Service) ProcessDeliveryStatusChange(ctx context.Context, event entities.DeliveryStatusChanged) (Result, error) {
	if event.DeliveryID == "" || event.Status == "" {
		return "", ErrMissingDelivery
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		// статусы без влияния на водителя пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return ResultIgnored, nil
		}
		return "", err
	}

	if event.DriverID == nil || *event.DriverID == "" {
		return ResultNoDriver, nil
	}

	if err := executeFn(ctx, *event.DriverID); err != nil {
		return "", fmt.Errorf("delivery %s: %w", event.DeliveryID, err)
	}

	return ResultApplied, nil
}
