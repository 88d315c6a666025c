package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"quickhaul/pkg/logger"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	pingers        []Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, pingers ...Pinger) *Handler {
	return &Handler{
		log:            log,
		isShuttingDown: isShuttingDown,
		pingers:        pingers,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for _, pinger := range h.pingers {
		err := pinger.Ping(ctx)
		if err != nil {
			h.log.Warn("readiness check failed",
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
