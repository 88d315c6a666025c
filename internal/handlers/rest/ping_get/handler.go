package ping_get

import (
	"net/http"

	"quickhaul/internal/handlers/rest/dto"
	"quickhaul/internal/handlers/rest/respond"
	"quickhaul/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "ping_get"),
	)

	return &Handler{
		log: handlerLog,
	}
}

// ServeHTTP - liveness, зависимостей не трогает.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong
	respond.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
