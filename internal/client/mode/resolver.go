package mode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/iudanet/moodkeeper/internal/client/auth"
	"github.com/iudanet/moodkeeper/internal/client/remotecall"
	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/pkg/api"
)

// DefaultRefreshInterval период фонового пересчета режима
const DefaultRefreshInterval = 60 * time.Second

//go:generate moq -out settings_mock.go . SettingsSource

// SettingsSource читает удаленные настройки режима.
// Возвращает nil, nil если запись настроек отсутствует
type SettingsSource interface {
	GetSettings(ctx context.Context, accessToken string) (*api.Settings, error)
}

//go:generate moq -out identity_mock.go . IdentityProvider

// IdentityProvider отдает текущую caller identity (реализуется auth.Guard)
type IdentityProvider interface {
	Identity(ctx context.Context) (auth.Identity, error)
}

// Resolver вычисляет текущий режим приложения из трех слоев истины
// со строгим приоритетом: локальный ручной override, затем удаленные
// настройки, затем время суток. Режим всегда перевычисляется целиком,
// а не патчится, поэтому промежуточных неконсистентных состояний нет.
type Resolver struct {
	settings  SettingsSource
	identity  IdentityProvider
	overrides storage.OverrideStorage
	logger    *slog.Logger
	now       func() time.Time
	interval  time.Duration

	mu      stdsync.Mutex
	current models.Mode
}

// NewResolver создает resolver с дефолтным режимом до первого пересчета
func NewResolver(settings SettingsSource, identity IdentityProvider, overrides storage.OverrideStorage, logger *slog.Logger) *Resolver {
	return &Resolver{
		settings:  settings,
		identity:  identity,
		overrides: overrides,
		logger:    logger,
		now:       time.Now,
		interval:  DefaultRefreshInterval,
		current:   models.DefaultMode,
	}
}

// Current пересчитывает и возвращает текущий режим
func (r *Resolver) Current(ctx context.Context) models.Mode {
	mode := r.resolve(ctx)

	r.mu.Lock()
	r.current = mode
	r.mu.Unlock()

	return mode
}

// Cached возвращает последний вычисленный режим без пересчета
func (r *Resolver) Cached() models.Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// SetOverride устанавливает ручной override. Пока он действует,
// настройки и время суток не учитываются вовсе
func (r *Resolver) SetOverride(ctx context.Context, mode models.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown mode: %q", mode)
	}
	if err := r.overrides.SetOverride(ctx, mode); err != nil {
		return fmt.Errorf("failed to set override: %w", err)
	}

	r.mu.Lock()
	r.current = mode
	r.mu.Unlock()

	return nil
}

// ClearOverride снимает ручной override; авто-режим применяется снова
func (r *Resolver) ClearOverride(ctx context.Context) error {
	if err := r.overrides.ClearOverride(ctx); err != nil && !errors.Is(err, storage.ErrOverrideNotSet) {
		return fmt.Errorf("failed to clear override: %w", err)
	}
	r.Current(ctx)
	return nil
}

// Run пересчитывает режим раз в interval до отмены контекста.
// Первый пересчет выполняется сразу
func (r *Resolver) Run(ctx context.Context) {
	r.Current(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Current(ctx)
		}
	}
}

// resolve применяет приоритет override -> настройки -> время суток.
// Любая ошибка на пути дает дефолтный режим, не блокировку
func (r *Resolver) resolve(ctx context.Context) models.Mode {
	// 1. Ручной override: локальное синхронное чтение, сеть не трогаем
	override, err := r.overrides.GetOverride(ctx)
	if err == nil {
		return override
	}
	if !errors.Is(err, storage.ErrOverrideNotSet) {
		r.logger.Warn("failed to read mode override", "error", err)
	}

	// 2. Удаленные настройки; без identity применяются дефолты
	settings := r.fetchSettings(ctx)

	// 3. Выключенный авто-режим дает дефолт
	if !settings.AutoModeEnabled {
		return models.DefaultMode
	}

	// 4. Время суток против настроенных границ интервалов
	return settings.ActiveMode(r.now())
}

// fetchSettings читает настройки под retry политикой с fallback на
// дефолты: недоступность сервера не должна блокировать определение режима
func (r *Resolver) fetchSettings(ctx context.Context) models.ModeSettings {
	ident, err := r.identity.Identity(ctx)
	if err != nil {
		return models.DefaultModeSettings()
	}

	result := remotecall.Do(ctx, func(ctx context.Context) (*api.Settings, error) {
		return r.settings.GetSettings(ctx, ident.AccessToken)
	}, remotecall.Config[*api.Settings]{
		Logger:   r.logger,
		Fallback: func() *api.Settings { return nil },
	})

	// Отсутствующая запись настроек и сбой чтения дают одно и то же:
	// дефолтные настройки
	if result.Data == nil {
		if !result.Success {
			r.logger.Warn("failed to fetch mode settings, using defaults", "error", result.Err)
		}
		return models.DefaultModeSettings()
	}

	return models.ModeSettings{
		AutoModeEnabled: result.Data.AutoModeEnabled,
		ModeAStart:      result.Data.ModeAStart,
		ModeBStart:      result.Data.ModeBStart,
	}
}
