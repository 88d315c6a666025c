package availability_handle

import (
	"context"
	"fmt"

	"quickhaul/internal/entities"
	"quickhaul/internal/service/availability"
)

type StatusHandlerFactory struct {
	accountService availability.AccountService
}

func NewStatusHandlerFactory(accountService availability.AccountService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		accountService: accountService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.DeliveryStatus) (availability.ExecuteFn, error) {
	switch status {
	case entities.DeliveryAccepted:
		return f.acceptedHandler, nil
	case entities.DeliveryDelivered:
		return f.releaseHandler("delivered"), nil
	case entities.DeliveryCancelled:
		return f.releaseHandler("cancelled"), nil
	default:
		return nil, fmt.Errorf("%w: %s", availability.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) acceptedHandler(ctx context.Context, driverID string) error {
	err := f.accountService.SetDriverAvailability(ctx, driverID, entities.DriverBusy)
	if err != nil {
		return fmt.Errorf("mark driver %s busy for accepted delivery: %w", driverID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) releaseHandler(reason string) availability.ExecuteFn {
	return func(ctx context.Context, driverID string) error {
		err := f.accountService.SetDriverAvailability(ctx, driverID, entities.DriverAvailable)
		if err != nil {
			return fmt.Errorf("release driver %s for %s delivery: %w", driverID, reason, err)
		}
		return nil
	}
}
