//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_get_test
package account_get

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
	GetAccount(ctx context.Context, id string) (*entities.Account, error)
}
