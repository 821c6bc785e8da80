package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/server/storage"
	"github.com/iudanet/moodkeeper/pkg/api"
)

// SettingsHandler обрабатывает запросы настроек режима
type SettingsHandler struct {
	logger   *slog.Logger
	settings storage.SettingsStorage
}

// NewSettingsHandler создает новый handler для настроек
func NewSettingsHandler(logger *slog.Logger, settings storage.SettingsStorage) *SettingsHandler {
	return &SettingsHandler{
		logger:   logger,
		settings: settings,
	}
}

// Get обрабатывает GET /api/v1/settings
// Отсутствие записи настроек - валидное состояние: клиент получает
// not_found и применяет дефолты.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, api.CodeUnauthenticated, "missing authentication")
		return
	}

	settings, err := h.settings.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrSettingsNotFound) {
			sendError(h.logger, w, api.CodeNotFound, "settings not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get settings", slog.Any("error", err))
		sendError(h.logger, w, api.CodeInternal, "internal server error")
		return
	}

	resp := api.Settings{
		AutoModeEnabled: settings.AutoModeEnabled,
		ModeAStart:      settings.ModeAStart,
		ModeBStart:      settings.ModeBStart,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Put обрабатывает PUT /api/v1/settings
// Создание или полная замена настроек пользователя
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, api.CodeUnauthenticated, "missing authentication")
		return
	}

	var req api.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode settings request", slog.Any("error", err))
		sendError(h.logger, w, api.CodeInvalidArgument, "invalid request body")
		return
	}

	// Границы интервалов обязаны быть валидным временем суток
	if _, err := models.ParseTimeOfDay(req.ModeAStart); err != nil {
		sendError(h.logger, w, api.CodeInvalidArgument, err.Error())
		return
	}
	if _, err := models.ParseTimeOfDay(req.ModeBStart); err != nil {
		sendError(h.logger, w, api.CodeInvalidArgument, err.Error())
		return
	}

	settings := &models.ModeSettings{
		AutoModeEnabled: req.AutoModeEnabled,
		ModeAStart:      req.ModeAStart,
		ModeBStart:      req.ModeBStart,
	}

	if err := h.settings.PutSettings(ctx, userID, settings); err != nil {
		h.logger.ErrorContext(ctx, "failed to put settings", slog.Any("error", err))
		sendError(h.logger, w, api.CodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "settings updated", slog.String("user_id", userID))

	w.WriteHeader(http.StatusNoContent)
}
