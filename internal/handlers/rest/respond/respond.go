package respond

import (
	"encoding/json"
	"net/http"

	"quickhaul/internal/handlers/rest/dto"
	"quickhaul/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response",
			logger.NewField("error", err),
		)
	}
}

// Error отдаёт текст ошибки клиенту. Для 500 текст скрывается.
func Error(w http.ResponseWriter, log errorLogger, status int, err error) {
	message := http.StatusText(status)
	switch {
	case status >= http.StatusInternalServerError:
		log.Error("request failed",
			logger.NewField("status", status),
			logger.NewField("error", err),
		)
	case err != nil:
		message = err.Error()
	}
	JSON(w, log, status, dto.ErrorResponse{Error: message})
}
