package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/moodkeeper/internal/client/auth"
	"github.com/iudanet/moodkeeper/internal/client/remotecall"
	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/client/sync"
	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/validation"
	"github.com/iudanet/moodkeeper/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service фасад клиентских операций с данными для CLI
type Service interface {
	// AddEntry создает запись дневника и применяет ее оптимистично
	AddEntry(ctx context.Context, mood int, note string, tags []string, recordedAt time.Time) (*models.MoodEntry, error)

	// ListEntries возвращает merged view текущей страницы записей
	ListEntries(ctx context.Context) ([]sync.ViewEntry, error)

	// DeleteEntry удаляет запись
	DeleteEntry(ctx context.Context, id string) error

	// Status возвращает состояние синхронизации локального буфера
	Status(ctx context.Context) (*SyncStatus, error)

	// Settings читает удаленные настройки режима (nil если не заданы)
	Settings(ctx context.Context) (*api.Settings, error)

	// UpdateSettings сохраняет удаленные настройки режима
	UpdateSettings(ctx context.Context, settings api.Settings) error
}

// SyncStatus состояние локального буфера мутаций
type SyncStatus struct {
	Pending int // применены локально, подтверждение не получено
	Failed  int // терминально сбойные, сохранены чтобы не потерять данные
}

//go:generate moq -out settings_mock.go . SettingsAPI

// SettingsAPI покрывает операции с настройками удаленного хранилища
type SettingsAPI interface {
	GetSettings(ctx context.Context, accessToken string) (*api.Settings, error)
	PutSettings(ctx context.Context, accessToken string, settings api.Settings) error
}

// IdentityProvider отдает текущую caller identity (реализуется auth.Guard)
type IdentityProvider interface {
	Identity(ctx context.Context) (auth.Identity, error)
}

type service struct {
	engine   *sync.Engine
	pending  storage.PendingStorage
	settings SettingsAPI
	identity IdentityProvider
	logger   *slog.Logger
}

// NewService создает data сервис поверх sync engine
func NewService(engine *sync.Engine, pending storage.PendingStorage, settings SettingsAPI, identity IdentityProvider, logger *slog.Logger) Service {
	return &service{
		engine:   engine,
		pending:  pending,
		settings: settings,
		identity: identity,
		logger:   logger,
	}
}

// AddEntry валидирует и применяет запись через sync engine
func (s *service) AddEntry(ctx context.Context, mood int, note string, tags []string, recordedAt time.Time) (*models.MoodEntry, error) {
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	entry := &models.MoodEntry{
		RecordedAt: recordedAt,
		Note:       note,
		Tags:       tags,
		Mood:       mood,
	}
	if err := validation.ValidateEntry(entry); err != nil {
		return nil, fmt.Errorf("invalid entry: %w", err)
	}

	return s.engine.AddEntry(ctx, entry)
}

// ListEntries возвращает merged view
func (s *service) ListEntries(ctx context.Context) ([]sync.ViewEntry, error) {
	return s.engine.List(ctx)
}

// DeleteEntry удаляет запись оптимистично
func (s *service) DeleteEntry(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("entry id is required")
	}
	return s.engine.DeleteEntry(ctx, id)
}

// Status считает буферизованные мутации по статусам
func (s *service) Status(ctx context.Context) (*SyncStatus, error) {
	mutations, err := s.pending.ListMutations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mutations: %w", err)
	}

	status := &SyncStatus{}
	for _, mutation := range mutations {
		switch mutation.Status {
		case models.MutationFailed:
			status.Failed++
		default:
			status.Pending++
		}
	}
	return status, nil
}

// Settings читает удаленные настройки режима
func (s *service) Settings(ctx context.Context) (*api.Settings, error) {
	ident, err := s.identity.Identity(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	result := remotecall.Do(ctx, func(ctx context.Context) (*api.Settings, error) {
		return s.settings.GetSettings(ctx, ident.AccessToken)
	}, remotecall.Config[*api.Settings]{Logger: s.logger})

	if !result.Success {
		return nil, fmt.Errorf("failed to get settings: %w", result.Err)
	}
	return result.Data, nil
}

// UpdateSettings валидирует границы интервалов и сохраняет настройки
func (s *service) UpdateSettings(ctx context.Context, settings api.Settings) error {
	if _, err := models.ParseTimeOfDay(settings.ModeAStart); err != nil {
		return fmt.Errorf("invalid mode A start: %w", err)
	}
	if _, err := models.ParseTimeOfDay(settings.ModeBStart); err != nil {
		return fmt.Errorf("invalid mode B start: %w", err)
	}

	ident, err := s.identity.Identity(ctx)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	result := remotecall.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.settings.PutSettings(ctx, ident.AccessToken, settings)
	}, remotecall.Config[struct{}]{Logger: s.logger})

	if !result.Success {
		return fmt.Errorf("failed to update settings: %w", result.Err)
	}
	return nil
}
