package storage

import (
	"context"

	"github.com/iudanet/moodkeeper/internal/models"
)

//go:generate moq -out override_mock.go . OverrideStorage

// OverrideStorage defines interface for the single local key-value pair
// holding the manual mode override. Reads are local and synchronous -
// never a network round-trip.
type OverrideStorage interface {
	// SetOverride stores the manual mode override
	SetOverride(ctx context.Context, mode models.Mode) error

	// GetOverride retrieves the stored override
	// Returns ErrOverrideNotSet if no override is stored
	GetOverride(ctx context.Context) (models.Mode, error)

	// ClearOverride removes the override so auto mode applies again
	ClearOverride(ctx context.Context) error
}
