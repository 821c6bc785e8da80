package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/server/hub"
	"github.com/iudanet/moodkeeper/internal/server/storage"
	"github.com/iudanet/moodkeeper/internal/validation"
	"github.com/iudanet/moodkeeper/pkg/api"
)

// JournalHandler обрабатывает запросы к дневнику настроения
type JournalHandler struct {
	logger  *slog.Logger
	journal storage.JournalStorage
	hub     *hub.Hub
}

// NewJournalHandler создает новый handler для журнала
func NewJournalHandler(logger *slog.Logger, journal storage.JournalStorage, h *hub.Hub) *JournalHandler {
	return &JournalHandler{
		logger:  logger,
		journal: journal,
		hub:     h,
	}
}

// Upsert обрабатывает PUT /api/v1/journal/entries
// Создание или обновление записи. ID генерируется клиентом, поэтому
// повтор запроса после неоднозначного сбоя идемпотентен.
func (h *JournalHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, api.CodeUnauthenticated, "missing authentication")
		return
	}

	var req api.UpsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode upsert request", slog.Any("error", err))
		sendError(h.logger, w, api.CodeInvalidArgument, "invalid request body")
		return
	}

	now := time.Now()
	entry := modelEntry(req.Entry)
	// Владелец всегда аутентифицированный пользователь, что бы ни
	// прислал клиент
	entry.OwnerID = userID
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = now
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	if err := validation.ValidateEntry(entry); err != nil {
		h.logger.WarnContext(ctx, "invalid entry", slog.Any("error", err))
		sendError(h.logger, w, api.CodeInvalidArgument, err.Error())
		return
	}

	created, err := h.journal.UpsertEntry(ctx, entry)
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			// ID коллизия с записью другого пользователя
			sendError(h.logger, w, api.CodeInvalidArgument, "entry id is not available")
			return
		}
		h.logger.ErrorContext(ctx, "failed to upsert entry", slog.Any("error", err))
		sendError(h.logger, w, api.CodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "entry upserted",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID),
		slog.Bool("created", created))

	// Подписчики владельца получают свежий снапшот
	h.hub.Notify(ctx, userID)

	resp := api.UpsertEntryResponse{
		Entry:   wireEntry(entry),
		Created: created,
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	sendJSON(h.logger, w, resp, status)
}

// Delete обрабатывает DELETE /api/v1/journal/entries/{id}
// Удаление идемпотентно: повтор после неоднозначного сбоя тоже успешен.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, api.CodeUnauthenticated, "missing authentication")
		return
	}

	entryID := r.PathValue("id")
	if entryID == "" {
		sendError(h.logger, w, api.CodeInvalidArgument, "entry id is required")
		return
	}

	if err := h.journal.DeleteEntry(ctx, userID, entryID); err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			// Запись уже отсутствует: цель достигнута
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete entry", slog.Any("error", err))
		sendError(h.logger, w, api.CodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "entry deleted",
		slog.String("user_id", userID),
		slog.String("entry_id", entryID))

	h.hub.Notify(ctx, userID)

	w.WriteHeader(http.StatusNoContent)
}

// List обрабатывает GET /api/v1/journal/entries
// Возвращает одну страницу записей пользователя (разовое чтение)
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, api.CodeUnauthenticated, "missing authentication")
		return
	}

	query, err := parseSubscribeQuery(r)
	if err != nil {
		sendError(h.logger, w, api.CodeInvalidArgument, err.Error())
		return
	}

	entries, err := h.journal.ListEntries(ctx, userID, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list entries", slog.Any("error", err))
		sendError(h.logger, w, api.CodeInternal, "internal server error")
		return
	}

	wire := make([]api.Entry, 0, len(entries))
	for _, entry := range entries {
		wire = append(wire, wireEntry(entry))
	}

	resp := api.ListEntriesResponse{
		Entries:    wire,
		ServerTime: time.Now(),
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// parseSubscribeQuery разбирает форму страницы из query параметров
func parseSubscribeQuery(r *http.Request) (api.SubscribeQuery, error) {
	query := api.SubscribeQuery{
		OrderBy:  r.URL.Query().Get("order_by"),
		OrderDir: r.URL.Query().Get("order_dir"),
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return api.SubscribeQuery{}, errors.New("invalid limit parameter")
		}
		query.Limit = limit
	}

	query.Normalize()
	return query, nil
}

// wireEntry конвертирует доменную запись в wire формат
func wireEntry(entry *models.MoodEntry) api.Entry {
	return api.Entry{
		ID:         entry.ID,
		OwnerID:    entry.OwnerID,
		Mood:       entry.Mood,
		Note:       entry.Note,
		Tags:       entry.Tags,
		RecordedAt: entry.RecordedAt,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}

// modelEntry конвертирует wire запись в доменную
func modelEntry(entry api.Entry) *models.MoodEntry {
	return &models.MoodEntry{
		ID:         entry.ID,
		OwnerID:    entry.OwnerID,
		Mood:       entry.Mood,
		Note:       entry.Note,
		Tags:       entry.Tags,
		RecordedAt: entry.RecordedAt,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}
