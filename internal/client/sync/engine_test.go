package sync

import (
	"context"
	"io"
	"log/slog"
	"sort"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/moodkeeper/internal/client/auth"
	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testIdentity() *IdentityProviderMock {
	return &IdentityProviderMock{
		IdentityFunc: func(ctx context.Context) (auth.Identity, error) {
			return auth.Identity{UserID: "user-1", Username: "alice", AccessToken: "token"}, nil
		},
	}
}

// newMemPending собирает PendingStorage поверх map для тестов engine
func newMemPending() *storage.PendingStorageMock {
	var mu stdsync.Mutex
	buf := make(map[string]*models.PendingMutation)

	return &storage.PendingStorageMock{
		PutMutationFunc: func(ctx context.Context, mutation *models.PendingMutation) error {
			mu.Lock()
			defer mu.Unlock()
			buf[mutation.ID] = mutation
			return nil
		},
		GetMutationFunc: func(ctx context.Context, id string) (*models.PendingMutation, error) {
			mu.Lock()
			defer mu.Unlock()
			mutation, ok := buf[id]
			if !ok {
				return nil, storage.ErrMutationNotFound
			}
			return mutation, nil
		},
		DeleteMutationFunc: func(ctx context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := buf[id]; !ok {
				return storage.ErrMutationNotFound
			}
			delete(buf, id)
			return nil
		},
		ListMutationsFunc: func(ctx context.Context) ([]*models.PendingMutation, error) {
			mu.Lock()
			defer mu.Unlock()
			out := make([]*models.PendingMutation, 0, len(buf))
			for _, mutation := range buf {
				out = append(out, mutation)
			}
			sort.Slice(out, func(i, j int) bool { return out[i].NewerThan(out[j]) })
			return out, nil
		},
		MarkFailedFunc: func(ctx context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			mutation, ok := buf[id]
			if !ok {
				return storage.ErrMutationNotFound
			}
			mutation.Status = models.MutationFailed
			return nil
		},
	}
}

// testStream управляемый snapshot stream для тестов
type testStream struct {
	sub *SubscriptionMock
	ch  chan api.Snapshot
}

func newTestStream() *testStream {
	ch := make(chan api.Snapshot)
	return &testStream{
		ch: ch,
		sub: &SubscriptionMock{
			SnapshotsFunc: func() <-chan api.Snapshot { return ch },
			ErrFunc:       func() error { return nil },
			CloseFunc:     func() error { return nil },
		},
	}
}

func singleStreamSource(stream *testStream) *SnapshotSourceMock {
	return &SnapshotSourceMock{
		SubscribeFunc: func(ctx context.Context, accessToken string, query api.SubscribeQuery) (Subscription, error) {
			return stream.sub, nil
		},
	}
}

func TestEngine_AddEntry_OptimisticVisibility(t *testing.T) {
	release := make(chan struct{})
	remote := &RemoteJournalMock{
		UpsertEntryFunc: func(ctx context.Context, accessToken string, req api.UpsertEntryRequest) (*api.UpsertEntryResponse, error) {
			<-release
			return &api.UpsertEntryResponse{Entry: req.Entry, Created: true}, nil
		},
	}
	stream := newTestStream()
	defer close(stream.ch)

	engine := NewEngine(remote, singleStreamSource(stream), testIdentity(), newMemPending(), testLogger())
	defer engine.Close()

	entry, err := engine.AddEntry(context.Background(), &models.MoodEntry{
		Mood: 4,
		Note: "good day",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID, "entry id must be generated on the client")
	assert.Equal(t, "user-1", entry.OwnerID)

	// До первого снапшота view строится из pending буфера:
	// оптимистичная запись видна немедленно
	view, err := engine.List(context.Background())
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, entry.ID, view[0].Entry.ID)
	assert.Equal(t, models.MutationPending, view[0].Status)

	// Подтверждение remote write убирает мутацию из буфера
	close(release)
	assert.Eventually(t, func() bool {
		count, countErr := engine.UnsyncedCount(context.Background())
		return countErr == nil && count == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEngine_EmptySnapshotHidesPending(t *testing.T) {
	// Remote write висит, мутация остается pending на все время теста
	block := make(chan struct{})
	defer close(block)
	remote := &RemoteJournalMock{
		UpsertEntryFunc: func(ctx context.Context, accessToken string, req api.UpsertEntryRequest) (*api.UpsertEntryResponse, error) {
			<-block
			return nil, context.Canceled
		},
	}
	stream := newTestStream()
	engine := NewEngine(remote, singleStreamSource(stream), testIdentity(), newMemPending(), testLogger())
	defer engine.Close()

	_, err := engine.AddEntry(context.Background(), &models.MoodEntry{Mood: 3})
	require.NoError(t, err)

	view, err := engine.List(context.Background())
	require.NoError(t, err)
	require.Len(t, view, 1, "pending entry visible before any snapshot")

	// Пустой снапшот тоже авторитетен: view переключается на него
	// целиком и pending запись пропадает. Это документированный разрыв
	// eventual consistency, а не ошибка
	stream.ch <- api.Snapshot{ServerTime: time.Now(), Entries: []api.Entry{}}

	assert.Eventually(t, func() bool {
		view, err := engine.List(context.Background())
		return err == nil && len(view) == 0
	}, 2*time.Second, 10*time.Millisecond)

	// Мутация при этом остается в буфере как unsynced
	count, err := engine.UnsyncedCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEngine_NonEmptySnapshotConfirmsPending(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	remote := &RemoteJournalMock{
		UpsertEntryFunc: func(ctx context.Context, accessToken string, req api.UpsertEntryRequest) (*api.UpsertEntryResponse, error) {
			<-block
			return nil, context.Canceled
		},
	}
	stream := newTestStream()
	engine := NewEngine(remote, singleStreamSource(stream), testIdentity(), newMemPending(), testLogger())
	defer engine.Close()

	entry, err := engine.AddEntry(context.Background(), &models.MoodEntry{Mood: 5})
	require.NoError(t, err)

	// Открываем подписку
	_, err = engine.List(context.Background())
	require.NoError(t, err)

	// Запись появилась в авторитетном снапшоте: Pending -> Confirmed
	stream.ch <- api.Snapshot{
		ServerTime: time.Now(),
		Entries:    []api.Entry{{ID: entry.ID, OwnerID: "user-1", Mood: 5}},
	}

	assert.Eventually(t, func() bool {
		count, countErr := engine.UnsyncedCount(context.Background())
		return countErr == nil && count == 0
	}, 2*time.Second, 10*time.Millisecond)

	view, err := engine.List(context.Background())
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, entry.ID, view[0].Entry.ID)
	assert.Empty(t, view[0].Status, "snapshot entries carry no pending status")
}

func TestEngine_WriteFailureRetainedAsUnsynced(t *testing.T) {
	remote := &RemoteJournalMock{
		UpsertEntryFunc: func(ctx context.Context, accessToken string, req api.UpsertEntryRequest) (*api.UpsertEntryResponse, error) {
			// Терминальная ошибка: retry не поможет
			return nil, &api.Error{Code: api.CodeInvalidArgument, Message: "bad entry"}
		},
	}
	stream := newTestStream()
	defer close(stream.ch)
	engine := NewEngine(remote, singleStreamSource(stream), testIdentity(), newMemPending(), testLogger())
	defer engine.Close()

	entry, err := engine.AddEntry(context.Background(), &models.MoodEntry{Mood: 2})
	require.NoError(t, err)

	// Мутация остается видимой со статусом failed
	assert.Eventually(t, func() bool {
		view, viewErr := engine.List(context.Background())
		return viewErr == nil && len(view) == 1 && view[0].Status == models.MutationFailed
	}, 2*time.Second, 10*time.Millisecond)

	assert.Len(t, remote.UpsertEntryCalls(), 1, "terminal error must not be retried")

	count, err := engine.UnsyncedCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	view, err := engine.List(context.Background())
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, entry.ID, view[0].Entry.ID)
}

func TestEngine_DeleteEntry(t *testing.T) {
	remote := &RemoteJournalMock{
		UpsertEntryFunc: func(ctx context.Context, accessToken string, req api.UpsertEntryRequest) (*api.UpsertEntryResponse, error) {
			return nil, &api.Error{Code: api.CodeInvalidArgument, Message: "bad entry"}
		},
		DeleteEntryFunc: func(ctx context.Context, accessToken, entryID string) error {
			return nil
		},
	}
	stream := newTestStream()
	defer close(stream.ch)
	engine := NewEngine(remote, singleStreamSource(stream), testIdentity(), newMemPending(), testLogger())
	defer engine.Close()

	entry, err := engine.AddEntry(context.Background(), &models.MoodEntry{Mood: 1})
	require.NoError(t, err)

	require.NoError(t, engine.DeleteEntry(context.Background(), entry.ID))

	// Delete мутация замещает upsert: запись сразу уходит из проекции
	view, err := engine.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view)

	assert.Eventually(t, func() bool {
		count, countErr := engine.UnsyncedCount(context.Background())
		return countErr == nil && count == 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, remote.DeleteEntryCalls(), 1)
}

func TestEngine_List_NotAuthenticated(t *testing.T) {
	identity := &IdentityProviderMock{
		IdentityFunc: func(ctx context.Context) (auth.Identity, error) {
			return auth.Identity{}, auth.ErrNotAuthenticated
		},
	}
	engine := NewEngine(&RemoteJournalMock{}, &SnapshotSourceMock{}, identity, newMemPending(), testLogger())
	defer engine.Close()

	// Чтение без аутентификации получает пустое состояние, не ошибку
	view, err := engine.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view)
}

func TestEngine_SetQuery_Resubscribes(t *testing.T) {
	var mu stdsync.Mutex
	var streams []*testStream
	source := &SnapshotSourceMock{
		SubscribeFunc: func(ctx context.Context, accessToken string, query api.SubscribeQuery) (Subscription, error) {
			mu.Lock()
			defer mu.Unlock()
			stream := newTestStream()
			streams = append(streams, stream)
			return stream.sub, nil
		},
	}
	engine := NewEngine(&RemoteJournalMock{}, source, testIdentity(), newMemPending(), testLogger())
	defer engine.Close()

	_, err := engine.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, source.SubscribeCalls(), 1)

	// Та же форма запроса - подписка переживает повторные чтения
	engine.SetQuery(api.SubscribeQuery{Limit: api.DefaultPageSize})
	_, err = engine.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, source.SubscribeCalls(), 1)

	// Смена формы рвет подписку и открывает новую
	engine.SetQuery(api.SubscribeQuery{Limit: 10})
	_, err = engine.List(context.Background())
	require.NoError(t, err)
	require.Len(t, source.SubscribeCalls(), 2)
	assert.Equal(t, 10, source.SubscribeCalls()[1].Query.Limit)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, streams, 2)
	assert.NotEmpty(t, streams[0].sub.CloseCalls(), "stale subscription must be closed")
}

func TestEngine_Close_TearsDownSubscription(t *testing.T) {
	stream := newTestStream()
	engine := NewEngine(&RemoteJournalMock{}, singleStreamSource(stream), testIdentity(), newMemPending(), testLogger())

	_, err := engine.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, engine.Close())
	assert.NotEmpty(t, stream.sub.CloseCalls())
}
