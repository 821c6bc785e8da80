package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failingStore всегда возвращает ошибку хранилища
type failingStore struct{}

func (failingStore) Increment(ctx context.Context, key string, maxCalls int, expiresAt time.Time) (bool, error) {
	return false, errors.New("storage unavailable")
}

func TestLimiter_AdmitUpToLimit(t *testing.T) {
	limiter := New(NewMemoryStore(), testLogger())
	cfg := Config{Name: "test", MaxCalls: 3, Window: time.Minute}

	ctx := context.Background()
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
	assert.False(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
	assert.False(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
}

func TestLimiter_IndependentKeys(t *testing.T) {
	limiter := New(NewMemoryStore(), testLogger())
	cfg := Config{Name: "test", MaxCalls: 1, Window: time.Minute}

	ctx := context.Background()
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
	assert.False(t, limiter.Allow(ctx, "user-1", "upsert", cfg))

	// Другой caller и другая операция не задеты
	assert.True(t, limiter.Allow(ctx, "user-2", "upsert", cfg))
	assert.True(t, limiter.Allow(ctx, "user-1", "delete", cfg))
}

// Для любых N конкурентных проверок против одного свежего бакета с maxCalls=k
// допускается ровно min(N, k) - без потерянных инкрементов
func TestLimiter_ConcurrentAdmits_NoLostUpdates(t *testing.T) {
	const n = 100
	const k = 30

	limiter := New(NewMemoryStore(), testLogger())
	cfg := Config{Name: "test", MaxCalls: k, Window: time.Minute}

	var admitted int32
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if limiter.Allow(context.Background(), "user-1", "upsert", cfg) {
				atomic.AddInt32(&admitted, 1)
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, int32(k), atomic.LoadInt32(&admitted))
}

func TestLimiter_WindowBoundary(t *testing.T) {
	// Окна фиксированные и выровнены по эпохе, поэтому граничное свойство
	// "t + W - 1ms еще в старом бакете" проверяем от начала окна
	start := time.UnixMilli(1_700_000_040_000) // кратно минуте
	current := start
	clock := func() time.Time { return current }

	limiter := NewWithClock(NewMemoryStoreWithClock(clock), testLogger(), clock)
	cfg := Config{Name: "test", MaxCalls: 2, Window: time.Minute}

	ctx := context.Background()
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
	assert.False(t, limiter.Allow(ctx, "user-1", "upsert", cfg))

	// За 1ms до конца окна лимит все еще действует
	current = start.Add(cfg.Window - time.Millisecond)
	assert.False(t, limiter.Allow(ctx, "user-1", "upsert", cfg))

	// Ровно через W начинается свежий бакет
	current = start.Add(cfg.Window)
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
}

func TestLimiter_FailsOpen(t *testing.T) {
	limiter := New(failingStore{}, testLogger())
	cfg := Config{Name: "test", MaxCalls: 1, Window: time.Minute}

	// Недоступность хранилища не блокирует трафик
	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow(context.Background(), "user-1", "upsert", cfg))
	}
}

func TestLimiter_StandardPreset_EndToEnd(t *testing.T) {
	start := time.UnixMilli(1_700_000_040_000) // начало окна
	current := start
	clock := func() time.Time { return current }

	limiter := NewWithClock(NewMemoryStoreWithClock(clock), testLogger(), clock)

	// 31 вызов за минуту против пресета 30/min: 1-30 допущены, 31 отклонен
	ctx := context.Background()
	for i := 0; i < 31; i++ {
		current = start.Add(time.Duration(i) * time.Second)
		got := limiter.Allow(ctx, "user-1", "upsert", PresetStandard)
		if i < 30 {
			assert.True(t, got, "call %d should be admitted", i+1)
		} else {
			assert.False(t, got, "call %d should be denied", i+1)
		}
	}

	// После сдвига времени на размер окна вызовы снова допускаются
	current = start.Add(PresetStandard.Window + time.Minute)
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", PresetStandard))
}

func TestBucketKey(t *testing.T) {
	cfg := Config{Name: "standard", MaxCalls: 30, Window: time.Minute}
	now := time.UnixMilli(120_000) // ровно 2 минуты от эпохи

	assert.Equal(t, "user-1:upsert:2", BucketKey("user-1", "upsert", cfg, now))

	// В пределах одного окна ключ стабилен
	assert.Equal(t,
		BucketKey("user-1", "upsert", cfg, now),
		BucketKey("user-1", "upsert", cfg, now.Add(59*time.Second)))

	// Следующее окно - следующий bucketID
	assert.Equal(t, "user-1:upsert:3", BucketKey("user-1", "upsert", cfg, now.Add(time.Minute)))
}

func TestMemoryStore_Purge(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return current }
	store := NewMemoryStoreWithClock(clock)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("user-%d:upsert:1", i)
		_, err := store.Increment(ctx, key, 10, current.Add(time.Minute))
		assert.NoError(t, err)
	}
	assert.Equal(t, 3, store.Len())

	current = current.Add(2 * time.Minute)
	store.Purge()
	assert.Equal(t, 0, store.Len())
}

func TestPresets(t *testing.T) {
	assert.Equal(t, 30, PresetStandard.MaxCalls)
	assert.Equal(t, time.Minute, PresetStandard.Window)
	assert.Equal(t, 5, PresetSensitive.MaxCalls)
	assert.Equal(t, time.Hour, PresetSensitive.Window)
	assert.Equal(t, 20, PresetBulk.MaxCalls)
	assert.Equal(t, time.Minute, PresetBulk.Window)
}
