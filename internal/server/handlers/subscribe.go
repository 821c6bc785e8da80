package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/moodkeeper/internal/server/hub"
	"github.com/iudanet/moodkeeper/pkg/api"
)

const writeTimeout = 10 * time.Second

// SubscribeHandler обрабатывает websocket подписки на snapshot stream
type SubscribeHandler struct {
	logger   *slog.Logger
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

// NewSubscribeHandler создает новый handler для подписок
func NewSubscribeHandler(logger *slog.Logger, h *hub.Hub) *SubscribeHandler {
	return &SubscribeHandler{
		logger: logger,
		hub:    h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Subscribe обрабатывает GET /api/v1/journal/subscribe
// Апгрейд до websocket; сервер немедленно присылает начальный снапшот
// (возможно пустой), затем полный снапшот на каждое изменение данных.
func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
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

	sub, err := h.hub.Subscribe(ctx, userID, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to subscribe", slog.Any("error", err))
		sendError(h.logger, w, api.CodeInternal, "internal server error")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту
		h.logger.WarnContext(ctx, "websocket upgrade failed", slog.Any("error", err))
		sub.Close()
		return
	}

	h.logger.InfoContext(ctx, "subscription opened",
		slog.String("user_id", userID),
		slog.Int("limit", query.Limit))

	defer func() {
		sub.Close()
		_ = conn.Close()
		h.logger.InfoContext(ctx, "subscription closed", slog.String("user_id", userID))
	}()

	// Читаем соединение только чтобы узнать о закрытии со стороны клиента
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snapshot, ok := <-sub.Snapshots():
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(snapshot); err != nil {
				h.logger.WarnContext(ctx, "failed to write snapshot",
					slog.String("user_id", userID), slog.Any("error", err))
				return
			}
		case <-closed:
			return
		case <-ctx.Done():
			return
		}
	}
}
