package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore хранит бакеты в памяти процесса под мьютексом,
// воспроизводя транзакционный контракт BucketStore. Подходит для
// односерверного развертывания и для тестов; распределенный вариант
// живет в server storage поверх SQLite.
type MemoryStore struct {
	buckets map[string]*memBucket
	now     func() time.Time
	mu      sync.Mutex
}

type memBucket struct {
	expiresAt time.Time
	count     int
}

// NewMemoryStore создает in-memory хранилище бакетов
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*memBucket),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock создает хранилище с инъецируемыми часами
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*memBucket),
		now:     now,
	}
}

// Increment реализует BucketStore.
// Мьютекс делает read-modify-write одной атомарной единицей.
func (s *MemoryStore) Increment(ctx context.Context, key string, maxCalls int, expiresAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok || !s.now().Before(b.expiresAt) {
		// Бакета нет или он логически мертв - создаем свежий
		s.buckets[key] = &memBucket{count: 1, expiresAt: expiresAt}
		return true, nil
	}

	if b.count < maxCalls {
		b.count++
		return true, nil
	}

	return false, nil
}

// Purge удаляет истекшие бакеты. Для корректности не требуется
// (мертвый бакет и так не инкрементируется), только для гигиены памяти.
func (s *MemoryStore) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, b := range s.buckets {
		if !now.Before(b.expiresAt) {
			delete(s.buckets, key)
		}
	}
}

// Len возвращает количество бакетов в хранилище
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}
