package delivery

import "quickhaul/internal/entities"

// transitions - полная таблица допустимых переходов. Всё, чего здесь нет,
// запрещено, из терминальных статусов переходов нет.
var transitions = map[entities.DeliveryStatus][]entities.DeliveryStatus{
	entities.DeliveryPending:   {entities.DeliveryAccepted, entities.DeliveryCancelled},
	entities.DeliveryAccepted:  {entities.DeliveryPickup},
	entities.DeliveryPickup:    {entities.DeliveryTransit},
	entities.DeliveryTransit:   {entities.DeliveryDelivered},
	entities.DeliveryDelivered: {},
	entities.DeliveryCancelled: {},
}

func AllowedTransitions(from entities.DeliveryStatus) []entities.DeliveryStatus {
	return transitions[from]
}

func CanTransition(from, to entities.DeliveryStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// NextStatus - следующий шаг по основному пути, отмена шагом не считается.
func NextStatus(from entities.DeliveryStatus) (entities.DeliveryStatus, bool) {
	for _, next := range transitions[from] {
		if next != entities.DeliveryCancelled {
			return next, true
		}
	}
	return "", false
}
