package auth

import (
	"errors"
	"net/http"
	"strings"

	"quickhaul/internal/handlers/rest/respond"
	"quickhaul/internal/service/account"
	"quickhaul/pkg/logger"
)

const bearerPrefix = "Bearer "

var ErrMissingToken = errors.New("missing bearer token")

// Middleware пропускает запрос дальше только с живой сессией и кладёт
// вызывающего в контекст.
func Middleware(log handlerLogger, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respond.Error(w, log, http.StatusUnauthorized, ErrMissingToken)
				return
			}

			caller, err := resolver.ResolveSession(r.Context(), token)
			if err != nil {
				if errors.Is(err, account.ErrInvalidSession) {
					log.Debug("session rejected",
						logger.NewField("path", r.URL.Path),
						logger.NewField("error", err),
					)
					respond.Error(w, log, http.StatusUnauthorized, account.ErrInvalidSession)
					return
				}
				respond.Error(w, log, http.StatusInternalServerError, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), *caller)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
