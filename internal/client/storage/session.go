package storage

import (
	"context"

	"github.com/iudanet/moodkeeper/internal/models"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the authenticated session
// on the client. Session tokens are the caller identity the rest of the
// client core depends on.
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*models.Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
