package routing

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
	retrierconfig "quickhaul/pkg/retrier"
	"quickhaul/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "routing-service"

	// ServiceFullName - имя сервиса для health check.
	ServiceFullName        = "quickhaul.routing.v1.RoutingService"
	estimateDistanceMethod = "/" + ServiceFullName + "/EstimateDistance"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type RoutingGateway struct {
	client  client
	retrier retrier
}

func New(client client) *RoutingGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &RoutingGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// EstimateDistance возвращает расстояние между адресами в км.
func (g *RoutingGateway) EstimateDistance(ctx context.Context, pickupLocation, deliveryLocation string) (float64, error) {
	req, err := toRequest(pickupLocation, deliveryLocation)
	if err != nil {
		return 0, err
	}

	resp := &wrapperspb.DoubleValue{}

	err = g.executeWithMetrics(ctx, "EstimateDistance", func(ctx context.Context) error {
		return g.client.Invoke(ctx, estimateDistanceMethod, req, resp)
	})
	if err != nil {
		return 0, fmt.Errorf("gateway routing, estimate distance: %w", err)
	}

	return fromResponse(resp)
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (g *RoutingGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
