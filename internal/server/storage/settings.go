package storage

import (
	"context"

	"github.com/iudanet/moodkeeper/internal/models"
)

// SettingsStorage defines interface for per-user mode settings persistence
type SettingsStorage interface {
	// GetSettings retrieves mode settings for a user
	// Returns ErrSettingsNotFound if the user never saved settings
	GetSettings(ctx context.Context, userID string) (*models.ModeSettings, error)

	// PutSettings creates or replaces mode settings for a user
	PutSettings(ctx context.Context, userID string, settings *models.ModeSettings) error
}
