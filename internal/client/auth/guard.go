package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/moodkeeper/internal/client/remotecall"
	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/models"
	pkgapi "github.com/iudanet/moodkeeper/pkg/api"
)

// ErrNotAuthenticated возвращается, когда локальной сессии нет:
// операции записи недоступны до login, чтение получает пустое состояние.
var ErrNotAuthenticated = errors.New("not authenticated")

// Identity представляет стабильную identity вызывающего -
// "чьи это данные" для всех обращений к удаленному хранилищу
type Identity struct {
	UserID      string
	Username    string
	AccessToken string
}

//go:generate moq -out refresher_mock.go . TokenRefresher

// TokenRefresher обновляет access token по refresh token
type TokenRefresher interface {
	Refresh(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error)
}

// Состояния bootstrap guard
type guardState int

const (
	stateUninitialized guardState = iota
	stateInFlight
	stateReady
)

// inflight представляет один выполняющийся bootstrap, к которому
// присоединяются конкурентные вызывающие
type inflight struct {
	done     chan struct{}
	identity Identity
	err      error
}

// Guard сериализует bootstrap identity: конкурентные запросы "текущей
// identity" до ее установления ждут один общий bootstrap вместо
// дублирующих вызовов.
//
// Явный автомат состояний Uninitialized | InFlight | Ready вместо
// разделяемого promise: при неудаче состояние сбрасывается в
// Uninitialized, так что следующий запрос всегда получает свежую попытку.
type Guard struct {
	sessions  storage.SessionStorage
	refresher TokenRefresher
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.Mutex
	state   guardState
	current *inflight
	ready   Identity
	expires time.Time
}

// NewGuard создает guard поверх локального хранилища сессии
func NewGuard(sessions storage.SessionStorage, refresher TokenRefresher, logger *slog.Logger) *Guard {
	return &Guard{
		sessions:  sessions,
		refresher: refresher,
		logger:    logger,
		now:       time.Now,
	}
}

// Identity возвращает текущую identity, выполняя bootstrap при
// необходимости. Конкурентные вызовы во время bootstrap присоединяются
// к нему и получают общий результат.
func (g *Guard) Identity(ctx context.Context) (Identity, error) {
	g.mu.Lock()

	switch g.state {
	case stateReady:
		// Истекшая сессия требует нового bootstrap (refresh токена)
		if g.now().Before(g.expires) {
			identity := g.ready
			g.mu.Unlock()
			return identity, nil
		}
		g.state = stateUninitialized

	case stateInFlight:
		attempt := g.current
		g.mu.Unlock()
		return g.await(ctx, attempt)

	case stateUninitialized:
		// первая попытка - проваливаемся ниже
	}

	// Становимся владельцем bootstrap
	attempt := &inflight{done: make(chan struct{})}
	g.state = stateInFlight
	g.current = attempt
	g.mu.Unlock()

	identity, expires, err := g.bootstrap(ctx)

	// Публикуем результат и переводим автомат:
	// успех -> Ready, неудача -> Uninitialized (следующий вызов повторит)
	g.mu.Lock()
	if err != nil {
		g.state = stateUninitialized
	} else {
		g.state = stateReady
		g.ready = identity
		g.expires = expires
	}
	g.current = nil
	attempt.identity = identity
	attempt.err = err
	close(attempt.done)
	g.mu.Unlock()

	return identity, err
}

// Invalidate сбрасывает guard в Uninitialized (logout, смена пользователя)
func (g *Guard) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == stateReady {
		g.state = stateUninitialized
		g.ready = Identity{}
	}
}

// await ждет завершения чужого bootstrap
func (g *Guard) await(ctx context.Context, attempt *inflight) (Identity, error) {
	select {
	case <-attempt.done:
		return attempt.identity, attempt.err
	case <-ctx.Done():
		return Identity{}, ctx.Err()
	}
}

// bootstrap загружает сессию и при необходимости обновляет токен
func (g *Guard) bootstrap(ctx context.Context) (Identity, time.Time, error) {
	session, err := g.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return Identity{}, time.Time{}, ErrNotAuthenticated
		}
		return Identity{}, time.Time{}, fmt.Errorf("failed to load session: %w", err)
	}

	// Действующий access token - identity готова
	if !session.Expired(g.now()) {
		return identityOf(session), session.ExpiresAt, nil
	}

	g.logger.Debug("access token expired, refreshing", "user_id", session.UserID)

	// Обновляем токен через remotecall: сетевые сбои получают
	// retry с backoff, терминальные (протухший refresh token) - нет
	result := remotecall.Do(ctx, func(ctx context.Context) (*pkgapi.TokenResponse, error) {
		return g.refresher.Refresh(ctx, pkgapi.RefreshRequest{RefreshToken: session.RefreshToken})
	}, remotecall.Config[*pkgapi.TokenResponse]{Logger: g.logger})

	if !result.Success {
		return Identity{}, time.Time{}, fmt.Errorf("failed to refresh token: %w", result.Err)
	}

	refreshed := &models.Session{
		UserID:       session.UserID,
		Username:     session.Username,
		AccessToken:  result.Data.AccessToken,
		RefreshToken: result.Data.RefreshToken,
		ExpiresAt:    g.now().Add(time.Duration(result.Data.ExpiresIn) * time.Second),
	}

	if err := g.sessions.SaveSession(ctx, refreshed); err != nil {
		return Identity{}, time.Time{}, fmt.Errorf("failed to save refreshed session: %w", err)
	}

	return identityOf(refreshed), refreshed.ExpiresAt, nil
}

func identityOf(session *models.Session) Identity {
	return Identity{
		UserID:      session.UserID,
		Username:    session.Username,
		AccessToken: session.AccessToken,
	}
}
