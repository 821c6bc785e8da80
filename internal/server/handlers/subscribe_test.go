package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/server/hub"
	"github.com/iudanet/moodkeeper/internal/server/storage/sqlite"
	"github.com/iudanet/moodkeeper/pkg/api"
)

func TestSubscribeHandler_Stream(t *testing.T) {
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	userID := uuid.New().String()
	require.NoError(t, store.CreateUser(ctx, &models.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}))

	hb := hub.New(testLogger(), store)
	subscribeHandler := NewSubscribeHandler(testLogger(), hb)
	journalHandler := NewJournalHandler(testLogger(), store, hb)

	// user_id в контекст кладем напрямую, auth middleware проверяется отдельно
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := context.WithValue(r.Context(), UserIDKey, userID)
		subscribeHandler.Subscribe(w, r.WithContext(rctx))
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/journal/subscribe?limit=50"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	defer func() { _ = conn.Close() }()

	// Начальный снапшот пустой коллекции приходит немедленно
	var snapshot api.Snapshot
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, conn.ReadJSON(&snapshot))
	assert.Empty(t, snapshot.Entries)

	// Запись через handler рассылает свежий снапшот подписчикам
	entryID := uuid.New().String()
	rec := httptest.NewRecorder()
	journalHandler.Upsert(rec, authedRequest(http.MethodPut, "/api/v1/journal/entries", api.UpsertEntryRequest{
		Entry: api.Entry{ID: entryID, Mood: 4, RecordedAt: time.Now()},
	}, userID))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, conn.ReadJSON(&snapshot))
	require.Len(t, snapshot.Entries, 1)
	assert.Equal(t, entryID, snapshot.Entries[0].ID)
}
