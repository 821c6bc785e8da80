package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/moodkeeper/internal/ratelimit"
	"github.com/iudanet/moodkeeper/internal/server/handlers"
	"github.com/iudanet/moodkeeper/pkg/api"
)

// RateLimitMiddleware создает middleware, ограничивающее частоту вызовов
// операции operation через разделяемый limiter.
//
// Caller identity - user_id аутентифицированного пользователя (установлен
// AuthMiddleware); для неаутентифицированных эндпоинтов (auth) - IP клиента.
// Разные операции одного пользователя считаются независимо.
func RateLimitMiddleware(limiter *ratelimit.Limiter, operation string, cfg ratelimit.Config, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerID, ok := handlers.GetUserID(r.Context())
			if !ok {
				callerID = getClientIP(r)
			}

			if !limiter.Allow(r.Context(), callerID, operation, cfg) {
				logger.Warn("Rate limit exceeded",
					"caller_id", callerID,
					"operation", operation,
					"method", r.Method,
					"path", r.URL.Path,
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				if err := json.NewEncoder(w).Encode(&api.Error{
					Code:    api.CodeResourceExhausted,
					Message: "rate limit exceeded, please try again later",
				}); err != nil {
					logger.Error("failed to encode error response", "error", err)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	// Проверяем X-Forwarded-For (для прокси/load balancers)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Берем первый IP из списка (реальный клиент)
		for idx := 0; idx < len(xff); idx++ {
			if xff[idx] == ',' {
				return xff[:idx]
			}
		}
		return xff
	}

	// Проверяем X-Real-IP
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}
