package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/moodkeeper/pkg/api"
)

// statusByCode отображает машиночитаемый код ошибки на HTTP статус
var statusByCode = map[string]int{
	api.CodeInvalidArgument:   http.StatusBadRequest,
	api.CodeUnauthenticated:   http.StatusUnauthorized,
	api.CodeNotFound:          http.StatusNotFound,
	api.CodeAlreadyExists:     http.StatusConflict,
	api.CodeResourceExhausted: http.StatusTooManyRequests,
	api.CodeUnavailable:       http.StatusServiceUnavailable,
	api.CodeDeadlineExceeded:  http.StatusGatewayTimeout,
	api.CodeInternal:          http.StatusInternalServerError,
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет машиночитаемую ошибку в envelope api.Error.
// Клиент классифицирует ошибку по коду (transient/terminal), поэтому
// код обязан присутствовать в каждом не-2xx ответе.
func sendError(logger *slog.Logger, w http.ResponseWriter, code, message string) {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	sendJSON(logger, w, &api.Error{Code: code, Message: message}, status)
}
