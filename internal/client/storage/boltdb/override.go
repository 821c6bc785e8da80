package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/models"
)

var overrideKey = []byte("mode_override")

// SetOverride stores the manual mode override
func (s *Storage) SetOverride(ctx context.Context, mode models.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid mode: %q", mode)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		if err := bucket.Put(overrideKey, []byte(mode)); err != nil {
			return fmt.Errorf("failed to save mode override: %w", err)
		}

		return nil
	})
}

// GetOverride retrieves the stored override.
// Чтение локальное и синхронное - сетевой round-trip не требуется.
func (s *Storage) GetOverride(ctx context.Context) (models.Mode, error) {
	var mode models.Mode

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data := bucket.Get(overrideKey)
		if data == nil {
			return storage.ErrOverrideNotSet
		}

		parsed, err := models.ParseMode(string(data))
		if err != nil {
			return fmt.Errorf("corrupted mode override: %w", err)
		}

		mode = parsed
		return nil
	})

	if err != nil {
		return "", err
	}

	return mode, nil
}

// ClearOverride removes the override so auto mode applies again
func (s *Storage) ClearOverride(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		if err := bucket.Delete(overrideKey); err != nil {
			return fmt.Errorf("failed to clear mode override: %w", err)
		}

		return nil
	})
}
