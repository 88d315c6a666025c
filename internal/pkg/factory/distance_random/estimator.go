package distance_random

import (
	"context"
	"math/rand/v2"
)

const (
	minDistanceKm  = 5
	distanceSpread = 20
)

// Estimator - заглушка вместо маршрутизации: целое число км из [5, 25).
type Estimator struct {
	intN func(n int) int
}

func New() *Estimator {
	return &Estimator{intN: rand.IntN}
}

// NewWithSource нужен для детерминированных прогонов.
func NewWithSource(src rand.Source) *Estimator {
	return &Estimator{intN: rand.New(src).IntN}
}

func (e *Estimator) EstimateDistance(ctx context.Context, _, _ string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return float64(minDistanceKm + e.intN(distanceSpread)), nil
}
