package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/moodkeeper/internal/client/api"
	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/models"
	pkgapi "github.com/iudanet/moodkeeper/pkg/api"
)

func TestService_Register(t *testing.T) {
	apiClient := &clientapi.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
			assert.Equal(t, "alice", req.Username)
			return &pkgapi.RegisterResponse{UserID: "user-1"}, nil
		},
	}
	svc := NewService(apiClient, &storage.SessionStorageMock{}, testLogger())

	userID, err := svc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestService_Register_InvalidInput(t *testing.T) {
	svc := NewService(&clientapi.ClientAPIMock{}, &storage.SessionStorageMock{}, testLogger())

	_, err := svc.Register(context.Background(), "ab", "password123")
	assert.Error(t, err, "too short username must be rejected before the network call")

	_, err = svc.Register(context.Background(), "alice", "short")
	assert.Error(t, err, "too short password must be rejected before the network call")
}

func TestService_Login_SavesSession(t *testing.T) {
	apiClient := &clientapi.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				UserID:       "user-1",
				ExpiresIn:    900,
			}, nil
		},
	}
	var saved *models.Session
	sessions := &storage.SessionStorageMock{
		SaveSessionFunc: func(ctx context.Context, session *models.Session) error {
			saved = session
			return nil
		},
	}
	svc := NewService(apiClient, sessions, testLogger())

	session, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "alice", session.Username)

	require.NotNil(t, saved)
	assert.Equal(t, "access", saved.AccessToken)
	assert.True(t, saved.ExpiresAt.After(time.Now()))
}

func TestService_Login_APIError(t *testing.T) {
	apiClient := &clientapi.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return nil, &pkgapi.Error{Code: pkgapi.CodeUnauthenticated, Message: "invalid credentials"}
		},
	}
	sessions := &storage.SessionStorageMock{}
	svc := NewService(apiClient, sessions, testLogger())

	_, err := svc.Login(context.Background(), "alice", "password123")
	require.Error(t, err)
	assert.Empty(t, sessions.SaveSessionCalls())
}

func TestService_Logout_ServerUnavailable(t *testing.T) {
	// Сервер недоступен - локальная сессия все равно удаляется
	apiClient := &clientapi.ClientAPIMock{
		LogoutFunc: func(ctx context.Context, accessToken string) error {
			return errors.New("connection refused")
		},
	}
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*models.Session, error) {
			return validSession(time.Now()), nil
		},
		DeleteSessionFunc: func(ctx context.Context) error {
			return nil
		},
	}
	svc := NewService(apiClient, sessions, testLogger())

	err := svc.Logout(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions.DeleteSessionCalls(), 1)
}

func TestService_Logout_NoSession(t *testing.T) {
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*models.Session, error) {
			return nil, storage.ErrSessionNotFound
		},
		DeleteSessionFunc: func(ctx context.Context) error {
			return nil
		},
	}
	svc := NewService(&clientapi.ClientAPIMock{}, sessions, testLogger())

	err := svc.Logout(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions.DeleteSessionCalls(), 1)
}
