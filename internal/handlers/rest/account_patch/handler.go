package account_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"quickhaul/internal/handlers/rest/dto"
	"quickhaul/internal/handlers/rest/respond"
	"quickhaul/internal/pkg/middlewares/auth"
	"quickhaul/internal/service/account"
	"quickhaul/pkg/logger"
)

var (
	errBadBody   = errors.New("request body must be a JSON object")
	errForbidden = errors.New("only the account owner can update the profile")
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "account_patch"),
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
	if caller.AccountID != id {
		respond.Error(w, h.log, http.StatusForbidden, errForbidden)
		return
	}

	var accountUpdateDTO dto.AccountUpdate
	err := json.NewDecoder(r.Body).Decode(&accountUpdateDTO)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errBadBody)
		return
	}

	accountEntity, err := h.service.UpdateProfile(r.Context(), id, caller.SessionID, accountUpdateDTO.ToModify())
	if err != nil {
		switch {
		case errors.Is(err, account.ErrValidation):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, account.ErrAccountNotFound):
			respond.Error(w, h.log, http.StatusNotFound, account.ErrAccountNotFound)
		case errors.Is(err, account.ErrDuplicateEmail):
			respond.Error(w, h.log, http.StatusConflict, account.ErrDuplicateEmail)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromAccount(*accountEntity))
}
