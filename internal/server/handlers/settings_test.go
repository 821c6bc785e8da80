package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/server/storage/sqlite"
	"github.com/iudanet/moodkeeper/pkg/api"
)

func setupSettingsHandler(t *testing.T) (*SettingsHandler, string) {
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	userID := uuid.New().String()
	require.NoError(t, store.CreateUser(context.Background(), &models.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}))

	return NewSettingsHandler(testLogger(), store), userID
}

func settingsRequest(method string, body any, userID string) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1/settings", reader)
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestSettingsHandler_Get_NotFound(t *testing.T) {
	h, userID := setupSettingsHandler(t)

	rec := httptest.NewRecorder()
	h.Get(rec, settingsRequest(http.MethodGet, nil, userID))

	// Отсутствие настроек - валидное состояние, клиент применит дефолты
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, api.CodeNotFound, decodeError(t, rec).Code)
}

func TestSettingsHandler_PutThenGet(t *testing.T) {
	h, userID := setupSettingsHandler(t)

	settings := api.Settings{
		AutoModeEnabled: true,
		ModeAStart:      "07:00",
		ModeBStart:      "21:30",
	}

	rec := httptest.NewRecorder()
	h.Put(rec, settingsRequest(http.MethodPut, settings, userID))
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Get(rec, settingsRequest(http.MethodGet, nil, userID))
	require.Equal(t, http.StatusOK, rec.Code)

	var got api.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, settings, got)
}

func TestSettingsHandler_Put_InvalidBounds(t *testing.T) {
	h, userID := setupSettingsHandler(t)

	tests := []struct {
		name     string
		settings api.Settings
	}{
		{
			name:     "hour out of range",
			settings: api.Settings{ModeAStart: "25:00", ModeBStart: "21:00"},
		},
		{
			name:     "not a time",
			settings: api.Settings{ModeAStart: "morning", ModeBStart: "21:00"},
		},
		{
			name:     "invalid second bound",
			settings: api.Settings{ModeAStart: "06:00", ModeBStart: "12:61"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Put(rec, settingsRequest(http.MethodPut, tt.settings, userID))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, api.CodeInvalidArgument, decodeError(t, rec).Code)
		})
	}
}
