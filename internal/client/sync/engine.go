package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/moodkeeper/internal/client/auth"
	"github.com/iudanet/moodkeeper/internal/client/remotecall"
	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/pkg/api"
)

// ViewEntry элемент merged view. Status пустой для записей из
// авторитетного снапшота и pending/failed для локально буферизованных
type ViewEntry struct {
	Entry  *models.MoodEntry
	Status models.MutationStatus
}

// Engine поддерживает авторитетный merged view записей пользователя,
// комбинируя локальный буфер неподтвержденных мутаций и серверный
// snapshot stream.
//
// Правило слияния: любой полученный снапшот (даже пустой) целиком
// вытесняет pending буфер из view - непустая авторитетная страница
// считается уже отражающей все достаточно старые мутации. До первого
// снапшота view строится из pending буфера, так что оптимистичная
// запись видна немедленно. Это осознанный размен точности на простоту:
// pending запись в редкой гонке может скрыться из view до своего
// durable подтверждения.
type Engine struct {
	remote   RemoteJournal
	source   SnapshotSource
	identity IdentityProvider
	pending  storage.PendingStorage
	logger   *slog.Logger
	now      func() time.Time

	mu          stdsync.Mutex
	query       api.SubscribeQuery
	sub         Subscription
	subCancel   context.CancelFunc
	subOwner    string
	snapshot    []api.Entry
	hasSnapshot bool
}

// NewEngine создает sync engine. Подписка открывается лениво при первом
// чтении и живет до Close, смены владельца или смены формы запроса.
func NewEngine(remote RemoteJournal, source SnapshotSource, identity IdentityProvider, pending storage.PendingStorage, logger *slog.Logger) *Engine {
	var query api.SubscribeQuery
	query.Normalize()

	return &Engine{
		remote:   remote,
		source:   source,
		identity: identity,
		pending:  pending,
		logger:   logger,
		now:      time.Now,
		query:    query,
	}
}

// AddEntry применяет запись оптимистично: мутация попадает в локальный
// буфер и метод возвращается сразу, remote write идет асинхронно.
// Успех записи удаляет мутацию из буфера, терминальный сбой оставляет
// ее со статусом failed, чтобы пользователь не потерял данные молча.
func (e *Engine) AddEntry(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	ident, err := e.identity.Identity(ctx)
	if err != nil {
		return nil, fmt.Errorf("add entry: %w", err)
	}

	now := e.now()
	local := entry.Clone()
	if local.ID == "" {
		local.ID = uuid.NewString()
	}
	local.OwnerID = ident.UserID
	local.CreatedAt = now
	local.UpdatedAt = now

	mutation := &models.PendingMutation{
		CreatedAt: now,
		Entry:     local,
		ID:        local.ID,
		Kind:      models.MutationUpsert,
		Status:    models.MutationPending,
	}
	if err := e.pending.PutMutation(ctx, mutation); err != nil {
		return nil, fmt.Errorf("failed to buffer mutation: %w", err)
	}

	// Асинхронный write path отвязан от отмены контекста вызывающего:
	// оптимистичная мутация уже применена локально
	go e.pushUpsert(context.WithoutCancel(ctx), ident.AccessToken, local)

	return local, nil
}

// DeleteEntry оптимистично убирает запись и асинхронно удаляет ее на
// сервере. Сбой удаления только логируется: повтор операции пользователем
// дешевле, чем механизм надежной доставки delete
func (e *Engine) DeleteEntry(ctx context.Context, entryID string) error {
	ident, err := e.identity.Identity(ctx)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	// Delete мутация замещает буферизованный upsert той же записи,
	// так что запись пропадает из pending проекции немедленно
	mutation := &models.PendingMutation{
		CreatedAt: e.now(),
		ID:        entryID,
		Kind:      models.MutationDelete,
		Status:    models.MutationPending,
	}
	if err := e.pending.PutMutation(ctx, mutation); err != nil {
		return fmt.Errorf("failed to buffer mutation: %w", err)
	}

	go e.pushDelete(context.WithoutCancel(ctx), ident.AccessToken, entryID)

	return nil
}

// List возвращает merged view текущей страницы записей.
// Без аутентификации чтение получает пустое состояние, не ошибку
func (e *Engine) List(ctx context.Context) ([]ViewEntry, error) {
	ident, err := e.identity.Identity(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return []ViewEntry{}, nil
		}
		return nil, fmt.Errorf("list entries: %w", err)
	}

	if err := e.ensureSubscription(ctx, ident); err != nil {
		// Подписка недоступна - view продолжает работать на том,
		// что есть локально
		e.logger.Warn("subscription unavailable, serving local view", "error", err)
	}

	return e.view(ctx)
}

// UnsyncedCount возвращает количество мутаций, еще не подтвержденных
// сервером (включая терминально сбойные)
func (e *Engine) UnsyncedCount(ctx context.Context) (int, error) {
	mutations, err := e.pending.ListMutations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list mutations: %w", err)
	}
	return len(mutations), nil
}

// SetQuery меняет форму запроса подписки. Смена формы рвет текущую
// подписку; следующий List откроет новую
func (e *Engine) SetQuery(query api.SubscribeQuery) {
	query.Normalize()

	e.mu.Lock()
	defer e.mu.Unlock()
	if query == e.query {
		return
	}
	e.query = query
	e.teardownLocked()
}

// Close рвет подписку и освобождает ресурсы engine
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teardownLocked()
	return nil
}

// ensureSubscription гарантирует живую подписку для текущего владельца
// и формы запроса: не больше одной на пару (owner, query)
func (e *Engine) ensureSubscription(ctx context.Context, ident auth.Identity) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.sub != nil && e.subOwner == ident.UserID {
		return nil
	}
	e.teardownLocked()

	// Подписка живет дольше вызова List, поэтому ее контекст
	// отвязан от контекста вызывающего
	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub, err := e.source.Subscribe(subCtx, ident.AccessToken, e.query)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	e.sub = sub
	e.subCancel = cancel
	e.subOwner = ident.UserID

	go e.watch(sub)

	return nil
}

// teardownLocked закрывает текущую подписку и сбрасывает снапшот.
// Вызывается под e.mu
func (e *Engine) teardownLocked() {
	if e.sub == nil {
		return
	}
	_ = e.sub.Close()
	e.subCancel()
	e.sub = nil
	e.subCancel = nil
	e.subOwner = ""
	e.snapshot = nil
	e.hasSnapshot = false
}

// watch потребляет снапшоты до закрытия потока
func (e *Engine) watch(sub Subscription) {
	for snapshot := range sub.Snapshots() {
		e.applySnapshot(snapshot)
	}

	if err := sub.Err(); err != nil {
		e.logger.Warn("snapshot stream closed", "error", err)
	}

	// Обрыв потока: сохраняем последний снапшот, следующий List
	// переподпишется
	e.mu.Lock()
	if e.sub == sub {
		e.subCancel()
		e.sub = nil
		e.subCancel = nil
		e.subOwner = ""
	}
	e.mu.Unlock()
}

// applySnapshot целиком замещает локальную копию авторитетной страницы
// и подтверждает мутации, которые страница уже отражает
func (e *Engine) applySnapshot(snapshot api.Snapshot) {
	e.mu.Lock()
	e.snapshot = snapshot.Entries
	e.hasSnapshot = true
	e.mu.Unlock()

	if len(snapshot.Entries) > 0 {
		e.confirmPending(context.Background(), snapshot.Entries)
	}
}

// confirmPending удаляет из буфера upsert мутации, чьи записи появились
// в авторитетном снапшоте: Pending -> Confirmed
func (e *Engine) confirmPending(ctx context.Context, entries []api.Entry) {
	present := make(map[string]struct{}, len(entries))
	for i := range entries {
		present[entries[i].ID] = struct{}{}
	}

	mutations, err := e.pending.ListMutations(ctx)
	if err != nil {
		e.logger.Warn("failed to list mutations for confirmation", "error", err)
		return
	}

	for _, mutation := range mutations {
		if mutation.Kind != models.MutationUpsert {
			continue
		}
		if _, ok := present[mutation.ID]; !ok {
			continue
		}
		if err := e.pending.DeleteMutation(ctx, mutation.ID); err != nil && !errors.Is(err, storage.ErrMutationNotFound) {
			e.logger.Warn("failed to confirm mutation", "mutation_id", mutation.ID, "error", err)
		}
	}
}

// view строит merged view: снапшот целиком, либо pending проекция
func (e *Engine) view(ctx context.Context) ([]ViewEntry, error) {
	e.mu.Lock()
	hasSnapshot := e.hasSnapshot
	snapshot := e.snapshot
	e.mu.Unlock()

	if hasSnapshot {
		out := make([]ViewEntry, 0, len(snapshot))
		for i := range snapshot {
			out = append(out, ViewEntry{Entry: modelEntry(&snapshot[i])})
		}
		return out, nil
	}

	mutations, err := e.pending.ListMutations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mutations: %w", err)
	}

	out := make([]ViewEntry, 0, len(mutations))
	for _, mutation := range mutations {
		if mutation.Kind != models.MutationUpsert {
			continue
		}
		out = append(out, ViewEntry{Entry: mutation.Entry, Status: mutation.Status})
	}
	return out, nil
}

// pushUpsert выполняет remote write под retry политикой
func (e *Engine) pushUpsert(ctx context.Context, accessToken string, entry *models.MoodEntry) {
	result := remotecall.Do(ctx, func(ctx context.Context) (*api.UpsertEntryResponse, error) {
		return e.remote.UpsertEntry(ctx, accessToken, api.UpsertEntryRequest{Entry: wireEntry(entry)})
	}, remotecall.Config[*api.UpsertEntryResponse]{Logger: e.logger})

	if result.Success {
		if err := e.pending.DeleteMutation(ctx, entry.ID); err != nil && !errors.Is(err, storage.ErrMutationNotFound) {
			e.logger.Warn("failed to remove confirmed mutation", "mutation_id", entry.ID, "error", err)
		}
		return
	}

	e.logger.Warn("entry write failed, retained as unsynced",
		"entry_id", entry.ID,
		"attempts", result.Attempts,
		"error", result.Err)

	if err := e.pending.MarkFailed(ctx, entry.ID); err != nil && !errors.Is(err, storage.ErrMutationNotFound) {
		e.logger.Warn("failed to mark mutation as failed", "mutation_id", entry.ID, "error", err)
	}
}

// pushDelete выполняет remote delete под retry политикой
func (e *Engine) pushDelete(ctx context.Context, accessToken, entryID string) {
	result := remotecall.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, e.remote.DeleteEntry(ctx, accessToken, entryID)
	}, remotecall.Config[struct{}]{Logger: e.logger})

	if !result.Success {
		e.logger.Warn("entry delete failed",
			"entry_id", entryID,
			"attempts", result.Attempts,
			"error", result.Err)
	}

	if err := e.pending.DeleteMutation(ctx, entryID); err != nil && !errors.Is(err, storage.ErrMutationNotFound) {
		e.logger.Warn("failed to remove delete mutation", "mutation_id", entryID, "error", err)
	}
}

func wireEntry(entry *models.MoodEntry) api.Entry {
	return api.Entry{
		RecordedAt: entry.RecordedAt,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
		ID:         entry.ID,
		OwnerID:    entry.OwnerID,
		Note:       entry.Note,
		Tags:       entry.Tags,
		Mood:       entry.Mood,
	}
}

func modelEntry(entry *api.Entry) *models.MoodEntry {
	return &models.MoodEntry{
		RecordedAt: entry.RecordedAt,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
		ID:         entry.ID,
		OwnerID:    entry.OwnerID,
		Note:       entry.Note,
		Tags:       entry.Tags,
		Mood:       entry.Mood,
	}
}
