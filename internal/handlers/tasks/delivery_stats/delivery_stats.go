//go:generate mockgen -source=delivery_stats.go -destination=./delivery_stats_mocks_test.go -package=delivery_stats_test
package delivery_stats

import (
	"context"
	"time"

	"quickhaul/internal/entities"
	"quickhaul/pkg/logger"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error)
}

type DeliveryStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDeliveryStats(log logger.Logger, service Service, interval time.Duration) *DeliveryStats {
	return &DeliveryStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DeliveryStats) TTL() time.Duration {
	return d.interval
}

func (d *DeliveryStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	counts, err := d.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	var total int64
	for _, status := range entities.DeliveryStatuses {
		count := counts[status]
		DeliveriesByStatus.WithLabelValues(status.String()).Set(float64(count))
		total += count
	}

	d.log.With(
		logger.NewField("deliveries_total", total),
	).Debug("delivery stats refreshed")

	return nil
}

func (d *DeliveryStats) Info() string {
	return "delivery stats"
}
