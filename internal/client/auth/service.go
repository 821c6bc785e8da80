package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/iudanet/moodkeeper/internal/client/api"
	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/validation"
	pkgapi "github.com/iudanet/moodkeeper/pkg/api"
)

// Service предоставляет функции авторизации
type Service struct {
	apiClient clientapi.ClientAPI
	sessions  storage.SessionStorage
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient clientapi.ClientAPI, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

// Register регистрирует нового пользователя
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return "", fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", fmt.Errorf("registration failed: %w", err)
	}

	return resp.UserID, nil
}

// Login выполняет аутентификацию и сохраняет сессию локально.
// Сохраненная сессия - источник caller identity для Guard.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &models.Session{
		UserID:       resp.UserID,
		Username:     username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// Logout выполняет выход из системы
// Удаляет локальную сессию и опционально уведомляет сервер
func (s *Service) Logout(ctx context.Context) error {
	// 1. Пытаемся уведомить сервер (best effort)
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		s.logger.Debug("no session found during logout", "error", err)
	} else {
		if logoutErr := s.apiClient.Logout(ctx, session.AccessToken); logoutErr != nil {
			// Не прерываем процесс, если сервер недоступен
			s.logger.Warn("failed to logout on server", "error", logoutErr)
		}
	}

	// 2. Всегда удаляем локальную сессию, даже если сервер недоступен
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	return nil
}
