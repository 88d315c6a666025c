package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"quickhaul/internal/handlers/rest/dto"
	"quickhaul/internal/handlers/rest/respond"
	"quickhaul/internal/pkg/middlewares/auth"
	"quickhaul/internal/service/account"
	"quickhaul/internal/service/delivery"
	"quickhaul/pkg/logger"
)

var errBadBody = errors.New("request body must be a JSON object")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "delivery_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, account.ErrInvalidSession)
		return
	}

	var deliveryCreateDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errBadBody)
		return
	}

	deliveryEntity, err := h.service.CreateDelivery(r.Context(), caller.AccountID, deliveryCreateDTO.ToDetails())
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrValidation):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("delivery created",
		logger.NewField("delivery", deliveryEntity.ID),
		logger.NewField("owner", deliveryEntity.OwnerID),
		logger.NewField("price", deliveryEntity.Price),
	)

	respond.JSON(w, h.log, http.StatusCreated, dto.FromDelivery(*deliveryEntity))
}
