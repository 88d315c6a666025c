package account_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"quickhaul/internal/entities"
	"quickhaul/internal/handlers/rest/dto"
	"quickhaul/internal/handlers/rest/respond"
	"quickhaul/internal/service/account"
	"quickhaul/pkg/logger"
)

var errBadBody = errors.New("request body must be a JSON object")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "account_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var accountCreateDTO dto.AccountCreate
	err := json.NewDecoder(r.Body).Decode(&accountCreateDTO)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errBadBody)
		return
	}

	authenticated, err := h.service.Register(r.Context(), entities.Registration{
		Name:       accountCreateDTO.Name,
		Email:      accountCreateDTO.Email,
		Credential: accountCreateDTO.Password,
		Role:       entities.AccountRole(accountCreateDTO.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrValidation):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, account.ErrDuplicateEmail):
			respond.Error(w, h.log, http.StatusConflict, account.ErrDuplicateEmail)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("account registered",
		logger.NewField("account", authenticated.Account.ID),
		logger.NewField("role", authenticated.Account.Role.String()),
	)

	respond.JSON(w, h.log, http.StatusCreated, dto.FromAuthenticated(*authenticated))
}
