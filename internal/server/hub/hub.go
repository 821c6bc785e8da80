// Package hub раздает snapshot stream подписчикам.
//
// Каждый подписчик привязан к владельцу записей и форме страницы
// (SubscribeQuery). На каждое изменение данных владельца hub заново
// вычисляет страницу каждого подписчика и присылает полный снапшот -
// замену, не diff. Медленный потребитель получает только последний
// снапшот: промежуточные состояния вытесняются.
package hub

import (
	"context"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/server/storage"
	"github.com/iudanet/moodkeeper/pkg/api"
)

// Hub ведет реестр подписчиков по владельцам записей
type Hub struct {
	logger  *slog.Logger
	journal storage.JournalStorage
	now     func() time.Time

	mu   stdsync.Mutex
	subs map[string]map[*Subscriber]struct{} // ownerID -> подписчики
}

// Subscriber представляет одну открытую подписку
type Subscriber struct {
	hub     *Hub
	ownerID string
	query   api.SubscribeQuery
	ch      chan api.Snapshot
	closed  bool // под hub.mu
}

// New создает hub поверх хранилища журнала
func New(logger *slog.Logger, journal storage.JournalStorage) *Hub {
	return &Hub{
		logger:  logger,
		journal: journal,
		now:     time.Now,
		subs:    make(map[string]map[*Subscriber]struct{}),
	}
}

// Subscribe регистрирует подписчика и немедленно доставляет ему начальный
// снапшот (возможно пустой). Подписчик обязан вызвать Close.
func (h *Hub) Subscribe(ctx context.Context, ownerID string, query api.SubscribeQuery) (*Subscriber, error) {
	query.Normalize()

	sub := &Subscriber{
		hub:     h,
		ownerID: ownerID,
		query:   query,
		// Буфер на один снапшот: отправитель никогда не блокируется,
		// вытесняя устаревший снапшот
		ch: make(chan api.Snapshot, 1),
	}

	snapshot, err := h.buildSnapshot(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to build initial snapshot: %w", err)
	}

	h.mu.Lock()
	if h.subs[ownerID] == nil {
		h.subs[ownerID] = make(map[*Subscriber]struct{})
	}
	h.subs[ownerID][sub] = struct{}{}
	sub.push(snapshot)
	h.mu.Unlock()

	h.logger.Debug("subscriber registered", "owner_id", ownerID, "limit", query.Limit)

	return sub, nil
}

// Notify пересчитывает страницы всех подписчиков владельца и рассылает
// свежие снапшоты. Вызывается после каждой записи в журнал владельца.
func (h *Hub) Notify(ctx context.Context, ownerID string) {
	h.mu.Lock()
	targets := make([]*Subscriber, 0, len(h.subs[ownerID]))
	for sub := range h.subs[ownerID] {
		targets = append(targets, sub)
	}
	h.mu.Unlock()

	for _, sub := range targets {
		snapshot, err := h.buildSnapshot(ctx, ownerID, sub.query)
		if err != nil {
			// Подписчик останется на прежнем снапшоте до следующего изменения
			h.logger.Error("failed to build snapshot",
				"owner_id", ownerID, "error", err)
			continue
		}

		h.mu.Lock()
		if !sub.closed {
			sub.push(snapshot)
		}
		h.mu.Unlock()
	}
}

// Snapshots возвращает канал снапшотов подписчика.
// Канал закрывается вызовом Close.
func (s *Subscriber) Snapshots() <-chan api.Snapshot {
	return s.ch
}

// Close снимает подписку и закрывает канал. Безопасен для повторного вызова.
func (s *Subscriber) Close() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	delete(s.hub.subs[s.ownerID], s)
	if len(s.hub.subs[s.ownerID]) == 0 {
		delete(s.hub.subs, s.ownerID)
	}

	close(s.ch)
}

// push доставляет снапшот, вытесняя недоставленный. Вызывается под hub.mu.
func (s *Subscriber) push(snapshot api.Snapshot) {
	for {
		select {
		case s.ch <- snapshot:
			return
		default:
			// Канал полон: выбрасываем устаревший снапшот
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

// buildSnapshot вычисляет полную страницу владельца для данной формы запроса
func (h *Hub) buildSnapshot(ctx context.Context, ownerID string, query api.SubscribeQuery) (api.Snapshot, error) {
	entries, err := h.journal.ListEntries(ctx, ownerID, query)
	if err != nil {
		return api.Snapshot{}, err
	}

	wire := make([]api.Entry, 0, len(entries))
	for _, entry := range entries {
		wire = append(wire, wireEntry(entry))
	}

	return api.Snapshot{
		ServerTime: h.now(),
		Entries:    wire,
	}, nil
}

func wireEntry(entry *models.MoodEntry) api.Entry {
	return api.Entry{
		ID:         entry.ID,
		OwnerID:    entry.OwnerID,
		Mood:       entry.Mood,
		Note:       entry.Note,
		Tags:       entry.Tags,
		RecordedAt: entry.RecordedAt,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}
