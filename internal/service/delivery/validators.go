package delivery

import (
	"math"
	"strings"
	"time"

	"quickhaul/internal/entities"
)

const (
	scheduledDateLayout = "2006-01-02"
	scheduledTimeLayout = "15:04"

	// больше не увезёт и lorry
	maxItemWeightKg = 100_000
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidScheduledDate(date string) bool {
	_, err := time.Parse(scheduledDateLayout, date)
	return err == nil
}

func isValidScheduledTime(clock string) bool {
	_, err := time.Parse(scheduledTimeLayout, clock)
	return err == nil
}

func validateDetails(details entities.DeliveryDetails) error {
	if isBlank(details.PickupLocation) {
		return ErrInvalidPickupLocation
	}
	if isBlank(details.DeliveryLocation) {
		return ErrInvalidDeliveryLocation
	}
	if isBlank(details.ItemDescription) {
		return ErrInvalidItemDescription
	}
	if math.IsNaN(details.ItemWeightKg) || details.ItemWeightKg <= 0 {
		return ErrInvalidItemWeight
	}
	if details.ItemWeightKg > maxItemWeightKg {
		return ErrItemWeightTooLarge
	}
	if !details.VehicleType.IsValid() {
		return ErrInvalidVehicleType
	}
	if !isValidScheduledDate(details.ScheduledDate) {
		return ErrInvalidScheduledDate
	}
	if !isValidScheduledTime(details.ScheduledTime) {
		return ErrInvalidScheduledTime
	}
	return nil
}

func isValidPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}
