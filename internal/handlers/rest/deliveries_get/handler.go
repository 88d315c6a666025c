package deliveries_get

import (
	"errors"
	"net/http"

	"quickhaul/internal/entities"
	"quickhaul/internal/handlers/rest/dto"
	"quickhaul/internal/handlers/rest/respond"
	"quickhaul/internal/service/delivery"
	"quickhaul/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "deliveries_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP: ?ownerOrDriver=<account id>&status=<status>&q=<text>, все параметры необязательны.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter entities.DeliveryFilter
	if accountID := query.Get("ownerOrDriver"); accountID != "" {
		filter.AccountID = &accountID
	}
	if status := query.Get("status"); status != "" {
		deliveryStatus := entities.DeliveryStatus(status)
		filter.Status = &deliveryStatus
	}
	if search := query.Get("q"); search != "" {
		filter.Search = &search
	}

	deliveryEntities, err := h.service.ListDeliveries(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrValidation):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDeliveries(deliveryEntities))
}
