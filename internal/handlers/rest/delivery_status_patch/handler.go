package delivery_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"quickhaul/internal/entities"
	"quickhaul/internal/handlers/rest/dto"
	"quickhaul/internal/handlers/rest/respond"
	"quickhaul/internal/pkg/middlewares/auth"
	"quickhaul/internal/service/account"
	"quickhaul/internal/service/delivery"
	"quickhaul/pkg/logger"
)

var (
	errBadBody          = errors.New("request body must be a JSON object")
	errDriverNotAllowed = errors.New("only a driver can be assigned to a delivery")
	errForeignDriver    = errors.New("a driver can only accept a delivery for themselves")
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "delivery_status_patch"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, account.ErrInvalidSession)
		return
	}

	var statusUpdateDTO dto.DeliveryStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errBadBody)
		return
	}

	transition := entities.DeliveryTransition{
		ID:       id,
		Status:   entities.DeliveryStatus(statusUpdateDTO.Status),
		DriverID: statusUpdateDTO.DriverID,
	}

	driverID, err := assignDriver(caller, transition)
	if err != nil {
		h.log.Warn("driver assignment rejected",
			logger.NewField("delivery", id),
			logger.NewField("account", caller.AccountID),
			logger.NewField("role", caller.Role.String()),
		)
		respond.Error(w, h.log, http.StatusForbidden, err)
		return
	}
	transition.DriverID = driverID

	deliveryEntity, err := h.service.TransitionDelivery(r.Context(), transition)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrValidation):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			respond.Error(w, h.log, http.StatusNotFound, delivery.ErrDeliveryNotFound)
		case errors.Is(err, delivery.ErrInvalidTransition):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("delivery status changed",
		logger.NewField("delivery", deliveryEntity.ID),
		logger.NewField("status", deliveryEntity.Status.String()),
	)

	respond.JSON(w, h.log, http.StatusOK, dto.FromDelivery(*deliveryEntity))
}

// assignDriver решает, кого записать водителем. Назначить водителя может
// только сам водитель и только себя; без driverId берётся вызывающий.
func assignDriver(caller entities.Caller, transition entities.DeliveryTransition) (*string, error) {
	if caller.Role != entities.RoleDriver {
		if transition.DriverID != nil {
			return nil, errDriverNotAllowed
		}
		return nil, nil
	}

	if transition.Status != entities.DeliveryAccepted {
		return transition.DriverID, nil
	}

	if transition.DriverID == nil {
		return &caller.AccountID, nil
	}
	if *transition.DriverID != caller.AccountID {
		return nil, errForeignDriver
	}

	return transition.DriverID, nil
}
