package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/server/storage"
)

// GetSettings retrieves mode settings for a user
func (s *Storage) GetSettings(ctx context.Context, userID string) (*models.ModeSettings, error) {
	query := `
		SELECT auto_mode_enabled, mode_a_start, mode_b_start
		FROM settings
		WHERE user_id = ?
	`

	settings := &models.ModeSettings{}
	var enabled int

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&enabled,
		&settings.ModeAStart,
		&settings.ModeBStart,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings.AutoModeEnabled = enabled != 0

	return settings, nil
}

// PutSettings creates or replaces mode settings for a user
func (s *Storage) PutSettings(ctx context.Context, userID string, settings *models.ModeSettings) error {
	query := `
		INSERT OR REPLACE INTO settings (user_id, auto_mode_enabled, mode_a_start, mode_b_start, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	enabled := 0
	if settings.AutoModeEnabled {
		enabled = 1
	}

	if _, err := s.db.ExecContext(ctx, query,
		userID,
		enabled,
		settings.ModeAStart,
		settings.ModeBStart,
		time.Now(),
	); err != nil {
		return fmt.Errorf("failed to put settings: %w", err)
	}

	return nil
}
