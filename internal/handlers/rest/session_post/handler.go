package session_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
		logger.NewField("handler", "session_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var sessionCreateDTO dto.SessionCreate
	err := json.NewDecoder(r.Body).Decode(&sessionCreateDTO)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errBadBody)
		return
	}

	authenticated, err := h.service.Authenticate(r.Context(), sessionCreateDTO.Email, sessionCreateDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidCredentials):
			// одинаковый ответ для неизвестного email и неверного пароля
			respond.Error(w, h.log, http.StatusUnauthorized, account.ErrInvalidCredentials)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromAuthenticated(*authenticated))
}
