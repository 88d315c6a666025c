//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"quickhaul/internal/gateway/kafka/delivery_events"
	"quickhaul/internal/handlers/tasks/delivery_stats"
	"quickhaul/internal/pkg/config"
	"quickhaul/internal/pkg/credential"
	"quickhaul/internal/pkg/factory/availability_handle"
	"quickhaul/internal/pkg/factory/delivery_price"
	"quickhaul/internal/pkg/session"
	accountRepo "quickhaul/internal/repository/account"
	deliveryRepo "quickhaul/internal/repository/delivery"
	accountService "quickhaul/internal/service/account"
	availabilityService "quickhaul/internal/service/availability"
	deliveryService "quickhaul/internal/service/delivery"
	"quickhaul/pkg/logger"
	"quickhaul/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsInterval,
		provideSessionTTL,

		provideAccountRepository,
		provideDeliveryRepository,

		providePasswordHasher,
		provideTokenIssuer,
		provideSessionStore,
		provideDistanceEstimator,
		providePublisher,
		delivery_price.New,

		provideServiceAccount,
		provideServiceDelivery,

		provideDeliveryStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAccount), new(*accountService.Account)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),

		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(accountService.PasswordHasher), new(*credential.BcryptHasher)),
		wire.Bind(new(accountService.TokenIssuer), new(*session.JWTIssuer)),
		wire.Bind(new(accountService.SessionStore), new(*session.RedisStore)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.PriceFactory), new(*delivery_price.PriceFactory)),
		wire.Bind(new(deliveryService.EventPublisher), new(*delivery_events.Publisher)),

		wire.Bind(new(accountService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(delivery_stats.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSessionTTL,

		provideAccountRepository,
		providePasswordHasher,
		provideTokenIssuer,
		provideSessionStore,
		provideServiceAccount,

		provideStatusHandlerFactory,
		provideAvailabilityService,

		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(accountService.PasswordHasher), new(*credential.BcryptHasher)),
		wire.Bind(new(accountService.TokenIssuer), new(*session.JWTIssuer)),
		wire.Bind(new(accountService.SessionStore), new(*session.RedisStore)),
		wire.Bind(new(accountService.TxManager), new(*tx.Manager)),
		wire.Bind(new(availabilityService.AccountService), new(*accountService.Account)),
		wire.Bind(new(availabilityService.HandlerFactory), new(*availability_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
