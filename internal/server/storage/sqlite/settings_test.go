package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/server/storage"
)

func TestSettingsStorage_GetNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	_, err := s.GetSettings(ctx, userID)
	assert.ErrorIs(t, err, storage.ErrSettingsNotFound)
}

func TestSettingsStorage_PutAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	settings := &models.ModeSettings{
		AutoModeEnabled: true,
		ModeAStart:      "07:30",
		ModeBStart:      "21:00",
	}
	require.NoError(t, s.PutSettings(ctx, userID, settings))

	got, err := s.GetSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, settings, got)

	// Повторный Put заменяет запись
	settings.AutoModeEnabled = false
	settings.ModeBStart = "23:00"
	require.NoError(t, s.PutSettings(ctx, userID, settings))

	got, err = s.GetSettings(ctx, userID)
	require.NoError(t, err)
	assert.False(t, got.AutoModeEnabled)
	assert.Equal(t, "23:00", got.ModeBStart)
}
