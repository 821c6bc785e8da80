package sync

import (
	"context"

	clientapi "github.com/iudanet/moodkeeper/internal/client/api"
	"github.com/iudanet/moodkeeper/internal/client/auth"
	"github.com/iudanet/moodkeeper/pkg/api"
)

//go:generate moq -out remote_mock.go . RemoteJournal

// RemoteJournal покрывает write path engine к удаленному хранилищу записей
type RemoteJournal interface {
	// UpsertEntry создает или обновляет запись на сервере
	UpsertEntry(ctx context.Context, accessToken string, req api.UpsertEntryRequest) (*api.UpsertEntryResponse, error)

	// DeleteEntry удаляет запись на сервере
	DeleteEntry(ctx context.Context, accessToken, entryID string) error
}

//go:generate moq -out snapshots_mock.go . SnapshotSource

// SnapshotSource открывает snapshot stream для записей пользователя
type SnapshotSource interface {
	Subscribe(ctx context.Context, accessToken string, query api.SubscribeQuery) (Subscription, error)
}

//go:generate moq -out subscription_mock.go . Subscription

// Subscription представляет открытый snapshot stream с точки зрения engine
type Subscription interface {
	// Snapshots возвращает канал полных снапшотов; закрывается при
	// обрыве потока или Close
	Snapshots() <-chan api.Snapshot

	// Err возвращает причину завершения потока (nil при штатном закрытии)
	Err() error

	// Close освобождает соединение; безопасен для повторного вызова
	Close() error
}

//go:generate moq -out identity_mock.go . IdentityProvider

// IdentityProvider отдает текущую caller identity (реализуется auth.Guard)
type IdentityProvider interface {
	Identity(ctx context.Context) (auth.Identity, error)
}

// apiSnapshotSource адаптирует конкретный HTTP/websocket клиент
// к интерфейсу SnapshotSource
type apiSnapshotSource struct {
	client clientapi.ClientAPI
}

// NewAPISnapshotSource оборачивает API клиент в SnapshotSource
func NewAPISnapshotSource(client clientapi.ClientAPI) SnapshotSource {
	return &apiSnapshotSource{client: client}
}

func (s *apiSnapshotSource) Subscribe(ctx context.Context, accessToken string, query api.SubscribeQuery) (Subscription, error) {
	sub, err := s.client.Subscribe(ctx, accessToken, query)
	if err != nil {
		return nil, err
	}
	return sub, nil
}
