package delivery_price

import (
	"math"

	"quickhaul/internal/entities"
)

const (
	defaultBasePrice = 100.0
	pricePerKm       = 10.0
	pricePerKg       = 0.5
)

var basePrices = map[entities.VehicleType]float64{
	entities.VehicleBakkie: 150,
	entities.VehicleTruck:  300,
	entities.VehicleLorry:  500,
}

type PriceFactory struct{}

func New() *PriceFactory {
	return &PriceFactory{}
}

// CalculatePrice: базовая цена по типу транспорта + 10 за км + 0.5 за кг,
// округлено до сотых.
func (f *PriceFactory) CalculatePrice(vehicleType entities.VehicleType, distanceKm, itemWeightKg float64) float64 {
	base, ok := basePrices[vehicleType]
	if !ok {
		base = defaultBasePrice
	}

	price := base + distanceKm*pricePerKm + itemWeightKg*pricePerKg
	return math.Round(price*100) / 100
}
