//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_test
package availability

import (
	"context"

	"quickhaul/internal/entities"
)

type AccountService interface {
	SetDriverAvailability(ctx context.Context, id string, availability entities.DriverAvailability) error
}

type (
	ExecuteFn      func(ctx context.Context, driverID string) error
	HandlerFactory interface {
		GetHandler(status entities.DeliveryStatus) (ExecuteFn, error)
	}
)
