package session_delete

import (
	"net/http"

	"quickhaul/internal/handlers/rest/respond"
	"quickhaul/internal/pkg/middlewares/auth"
	"quickhaul/internal/service/account"
	"quickhaul/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "session_delete"),
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

	err := h.service.EndSession(r.Context(), caller.SessionID)
	if err != nil {
		respond.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
