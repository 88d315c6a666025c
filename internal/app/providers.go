package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"quickhaul/internal/gateway/grpc/routing"
	"quickhaul/internal/gateway/kafka/delivery_events"
	"quickhaul/internal/handlers/tasks/delivery_stats"
	"quickhaul/internal/pkg/config"
	"quickhaul/internal/pkg/credential"
	"quickhaul/internal/pkg/factory/availability_handle"
	"quickhaul/internal/pkg/factory/distance_random"
	"quickhaul/internal/pkg/session"
	accountRepo "quickhaul/internal/repository/account"
	deliveryRepo "quickhaul/internal/repository/delivery"
	accountService "quickhaul/internal/service/account"
	availabilityService "quickhaul/internal/service/availability"
	deliveryService "quickhaul/internal/service/delivery"
	"quickhaul/pkg/background"
	"quickhaul/pkg/logger"
	"quickhaul/pkg/querier"
	"quickhaul/pkg/tx"
)

type (
	StatsInterval time.Duration
	SessionTTL    time.Duration
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.DeliveryStatsInterval)
}

func provideSessionTTL(cfg *config.Config) SessionTTL {
	return SessionTTL(cfg.Session.TTL)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func providePasswordHasher(cfg *config.Config) *credential.BcryptHasher {
	return credential.NewBcryptHasher(cfg.Session.BcryptCost)
}

func provideTokenIssuer(cfg *config.Config) *session.JWTIssuer {
	return session.NewJWTIssuer([]byte(cfg.Session.Secret), cfg.Session.Issuer)
}

func provideSessionStore(client *redis.Client) *session.RedisStore {
	return session.NewRedisStore(client)
}

// provideDistanceEstimator: без соединения с сервисом маршрутов расстояние случайное.
func provideDistanceEstimator(log logger.Logger, conn *grpc.ClientConn) deliveryService.DistanceEstimator {
	if conn == nil {
		log.Warn("routing service disabled, distances are random")
		return distance_random.New()
	}
	return routing.New(conn)
}

func providePublisher(producer sarama.SyncProducer, cfg *config.Config) *delivery_events.Publisher {
	return delivery_events.New(producer, cfg.Kafka.Topic)
}

func provideServiceAccount(
	repository accountService.Repository,
	hasher accountService.PasswordHasher,
	issuer accountService.TokenIssuer,
	sessions accountService.SessionStore,
	txManager accountService.TxManager,
	sessionTTL SessionTTL,
) *accountService.Account {
	return accountService.New(
		repository,
		hasher,
		issuer,
		sessions,
		txManager,
		time.Duration(sessionTTL),
	)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	distanceEstimator deliveryService.DistanceEstimator,
	priceFactory deliveryService.PriceFactory,
	publisher deliveryService.EventPublisher,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		distanceEstimator,
		priceFactory,
		publisher,
		txManager,
	)
}

func provideStatusHandlerFactory(accountService availabilityService.AccountService) *availability_handle.StatusHandlerFactory {
	return availability_handle.NewStatusHandlerFactory(accountService)
}

// provideAvailabilityService создает сервис для обработки событий Kafka
func provideAvailabilityService(
	accountService availabilityService.AccountService,
	handlerFactory availabilityService.HandlerFactory,
) *availabilityService.Service {
	return availabilityService.New(accountService, handlerFactory)
}

func provideDeliveryStatsTask(
	log logger.Logger,
	deliveryService delivery_stats.Service,
	interval StatsInterval,
) *delivery_stats.DeliveryStats {
	return delivery_stats.NewDeliveryStats(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	deliveryStatsTask *delivery_stats.DeliveryStats,
) []background.Task {
	return []background.Task{
		deliveryStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
