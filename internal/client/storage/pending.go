package storage

import (
	"context"

	"github.com/iudanet/moodkeeper/internal/models"
)

//go:generate moq -out pending_mock.go . PendingStorage

// PendingStorage defines interface for the locally-buffered list of
// not-yet-confirmed mutations. The sync engine owns each mutation from
// local application until confirmation (removed) or terminal failure
// (retained with failed status).
type PendingStorage interface {
	// PutMutation stores or replaces a pending mutation by id
	PutMutation(ctx context.Context, mutation *models.PendingMutation) error

	// GetMutation retrieves a pending mutation by id
	// Returns ErrMutationNotFound if it does not exist
	GetMutation(ctx context.Context, id string) (*models.PendingMutation, error)

	// DeleteMutation removes a mutation from the buffer
	// Returns ErrMutationNotFound if it does not exist
	DeleteMutation(ctx context.Context, id string) error

	// ListMutations returns all buffered mutations, newest-first by CreatedAt
	ListMutations(ctx context.Context) ([]*models.PendingMutation, error)

	// MarkFailed flags a mutation as terminally failed while keeping it
	// visible so the user does not silently lose data
	MarkFailed(ctx context.Context, id string) error
}
