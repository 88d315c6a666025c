package account_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"quickhaul/internal/handlers/rest/dto"
	"quickhaul/internal/handlers/rest/respond"
	"quickhaul/internal/service/account"
	"quickhaul/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "account_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	accountEntity, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			respond.Error(w, h.log, http.StatusNotFound, account.ErrAccountNotFound)
		case errors.Is(err, account.ErrValidation):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromAccount(*accountEntity))
}
