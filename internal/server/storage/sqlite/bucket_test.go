package sqlite

import (
	"context"
	"io"
	"log/slog"
	stdsync "sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/moodkeeper/internal/ratelimit"
)

func TestBucketStore_Increment(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	expiresAt := time.Now().Add(time.Minute)

	// Первые maxCalls инкрементов проходят, дальше отказ
	for i := 0; i < 3; i++ {
		admitted, err := s.Increment(ctx, "caller:op:1", 3, expiresAt)
		require.NoError(t, err)
		assert.True(t, admitted, "call %d should be admitted", i+1)
	}

	admitted, err := s.Increment(ctx, "caller:op:1", 3, expiresAt)
	require.NoError(t, err)
	assert.False(t, admitted)

	// Другой ключ считается независимо
	admitted, err = s.Increment(ctx, "caller:op:2", 3, expiresAt)
	require.NoError(t, err)
	assert.True(t, admitted)
}

func TestBucketStore_ExpiredBucketRestarts(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	expired := time.Now().Add(-time.Minute)

	admitted, err := s.Increment(ctx, "caller:op:1", 1, expired)
	require.NoError(t, err)
	assert.True(t, admitted)

	// Бакет истек: новый отсчет вместо отказа
	admitted, err = s.Increment(ctx, "caller:op:1", 1, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, admitted)
}

func TestBucketStore_ConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	const (
		goroutines = 20
		maxCalls   = 7
	)

	expiresAt := time.Now().Add(time.Minute)
	var admitted atomic.Int64
	var wg stdsync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.Increment(ctx, "caller:op:1", maxCalls, expiresAt)
			assert.NoError(t, err)
			if ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	// Атомарность Increment: допущено ровно maxCalls вызовов
	assert.Equal(t, int64(maxCalls), admitted.Load())
}

func TestLimiter_OverSQLiteStore(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := ratelimit.NewWithClock(s, logger, func() time.Time { return now })

	cfg := ratelimit.Config{Name: "test", MaxCalls: 2, Window: time.Minute}

	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
	assert.False(t, limiter.Allow(ctx, "user-1", "upsert", cfg))

	// Независимый caller не задет
	assert.True(t, limiter.Allow(ctx, "user-2", "upsert", cfg))

	// Следующее окно открывает новый бакет
	now = now.Add(time.Minute)
	assert.True(t, limiter.Allow(ctx, "user-1", "upsert", cfg))
}
