package storage

import (
	"context"

	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/pkg/api"
)

// JournalStorage defines interface for mood journal persistence.
// Записи идентифицируются клиентскими UUID, поэтому create и update —
// одна идемпотентная операция upsert.
type JournalStorage interface {
	// UpsertEntry creates or replaces an entry.
	// Returns true if the entry was created, false if updated.
	UpsertEntry(ctx context.Context, entry *models.MoodEntry) (bool, error)

	// GetEntry retrieves a single entry by owner and ID
	// Returns ErrEntryNotFound if entry doesn't exist or is deleted
	GetEntry(ctx context.Context, ownerID, entryID string) (*models.MoodEntry, error)

	// ListEntries returns one page of the owner's entries ordered
	// and bounded according to the query. Deleted entries are excluded.
	ListEntries(ctx context.Context, ownerID string, query api.SubscribeQuery) ([]*models.MoodEntry, error)

	// DeleteEntry marks an entry as deleted (soft delete)
	// Returns ErrEntryNotFound if entry doesn't exist
	DeleteEntry(ctx context.Context, ownerID, entryID string) error
}
