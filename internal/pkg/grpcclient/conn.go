package grpcclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"quickhaul/internal/gateway/grpc/routing"
	"quickhaul/internal/pkg/config"
	"quickhaul/pkg/logger"
	retrierconfig "quickhaul/pkg/retrier"
	"quickhaul/pkg/retrier/backoff_adapter"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false

	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewConnClient открывает соединение с сервисом маршрутов.
// Если ROUTING_GRPC_HOST не задан, возвращает nil без ошибки.
func NewConnClient(ctx context.Context, log logger.Logger, cfg *config.Routing) (*grpc.ClientConn, error) {
	if cfg.GRPCHost == "" {
		log.Info("routing gRPC host not set, using random distance estimator")
		return nil, nil
	}

	conn, err := grpc.NewClient(
		cfg.GRPCHost,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("host", cfg.GRPCHost),
	)

	err = pingGRPC(ctx, grpcLog, conn)
	if err != nil {
		connCloseErr := conn.Close()
		if connCloseErr != nil {
			return nil, fmt.Errorf("gRPC connection: %w (failed to close: %v)", err, connCloseErr)
		}
		return nil, fmt.Errorf("gRPC connection: %w", err)
	}

	return conn, nil
}

func pingGRPC(ctx context.Context, log logger.Logger, conn *grpc.ClientConn) error {
	client := healthpb.NewHealthClient(conn)

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting gRPC connection")

		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{
			Service: routing.ServiceFullName,
		})
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("routing service status %s", resp.GetStatus())
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("gRPC connection failed after retries")
		return fmt.Errorf("failed to establish gRPC connection: %w", err)
	}

	log.With(logger.NewField(
		"attempts", attempt),
	).Info("gRPC connection established")
	return nil
}
