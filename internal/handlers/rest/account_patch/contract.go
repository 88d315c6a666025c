//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_patch_test
package account_patch

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
	UpdateProfile(ctx context.Context, id, sessionID string, accountModify entities.AccountModify) (*entities.Account, error)
}
