package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/models"
	pkgapi "github.com/iudanet/moodkeeper/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validSession(now time.Time) *models.Session {
	return &models.Session{
		UserID:       "user-1",
		Username:     "alice",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    now.Add(time.Hour),
	}
}

func TestGuard_Identity_NotAuthenticated(t *testing.T) {
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*models.Session, error) {
			return nil, storage.ErrSessionNotFound
		},
	}
	guard := NewGuard(sessions, &TokenRefresherMock{}, testLogger())

	_, err := guard.Identity(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestGuard_Identity_ValidSession(t *testing.T) {
	now := time.Now()
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*models.Session, error) {
			return validSession(now), nil
		},
	}
	guard := NewGuard(sessions, &TokenRefresherMock{}, testLogger())

	identity, err := guard.Identity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "access-token", identity.AccessToken)

	// Повторный вызов отдает закешированную identity без похода в storage
	_, err = guard.Identity(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions.GetSessionCalls(), 1)
}

func TestGuard_Identity_ConcurrentSingleBootstrap(t *testing.T) {
	now := time.Now()
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*models.Session, error) {
			// Медленный bootstrap: конкурентные вызывающие должны
			// присоединиться к нему, а не запускать свой
			time.Sleep(50 * time.Millisecond)
			return validSession(now), nil
		},
	}
	guard := NewGuard(sessions, &TokenRefresherMock{}, testLogger())

	const callers = 10
	var wg sync.WaitGroup
	identities := make([]Identity, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			identities[i], errs[i] = guard.Identity(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "user-1", identities[i].UserID)
	}
	assert.Len(t, sessions.GetSessionCalls(), 1, "bootstrap must run exactly once")
}

func TestGuard_Identity_ExpiredSessionRefreshes(t *testing.T) {
	now := time.Now()
	expired := validSession(now)
	expired.ExpiresAt = now.Add(-time.Minute)

	var saved *models.Session
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*models.Session, error) {
			return expired, nil
		},
		SaveSessionFunc: func(ctx context.Context, session *models.Session) error {
			saved = session
			return nil
		},
	}
	refresher := &TokenRefresherMock{
		RefreshFunc: func(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error) {
			assert.Equal(t, "refresh-token", req.RefreshToken)
			return &pkgapi.TokenResponse{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				UserID:       "user-1",
				ExpiresIn:    900,
			}, nil
		},
	}
	guard := NewGuard(sessions, refresher, testLogger())

	identity, err := guard.Identity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-access", identity.AccessToken)

	require.NotNil(t, saved, "refreshed session must be persisted")
	assert.Equal(t, "new-refresh", saved.RefreshToken)
	assert.True(t, saved.ExpiresAt.After(now))
	assert.Len(t, refresher.RefreshCalls(), 1)
}

func TestGuard_Identity_FailedBootstrapRetries(t *testing.T) {
	now := time.Now()
	var calls int
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*models.Session, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("disk error")
			}
			return validSession(now), nil
		},
	}
	guard := NewGuard(sessions, &TokenRefresherMock{}, testLogger())

	// Первая попытка падает и сбрасывает автомат в Uninitialized
	_, err := guard.Identity(context.Background())
	require.Error(t, err)

	// Следующий вызов получает свежую попытку, а не закешированную ошибку
	identity, err := guard.Identity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Len(t, sessions.GetSessionCalls(), 2)
}

func TestGuard_Invalidate(t *testing.T) {
	now := time.Now()
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*models.Session, error) {
			return validSession(now), nil
		},
	}
	guard := NewGuard(sessions, &TokenRefresherMock{}, testLogger())

	_, err := guard.Identity(context.Background())
	require.NoError(t, err)

	guard.Invalidate()

	_, err = guard.Identity(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions.GetSessionCalls(), 2, "invalidate must force a new bootstrap")
}
