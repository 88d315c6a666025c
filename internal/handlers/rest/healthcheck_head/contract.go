//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import (
	"context"

	"quickhaul/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
}

// Pinger - зависимость, без которой сервис не готов принимать запросы (postgres).
type Pinger interface {
	Ping(ctx context.Context) error
}
