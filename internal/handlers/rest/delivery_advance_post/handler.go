package delivery_advance_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
		logger.NewField("handler", "delivery_advance_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deliveryEntity, err := h.service.AdvanceDelivery(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrValidation):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			respond.Error(w, h.log, http.StatusNotFound, delivery.ErrDeliveryNotFound)
		case errors.Is(err, delivery.ErrInvalidTransition),
			errors.Is(err, delivery.ErrInvalidState):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("delivery advanced",
		logger.NewField("delivery", deliveryEntity.ID),
		logger.NewField("status", deliveryEntity.Status.String()),
	)

	respond.JSON(w, h.log, http.StatusOK, dto.FromDelivery(*deliveryEntity))
}
