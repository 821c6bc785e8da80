// Package ratelimit реализует распределенный rate limiter с фиксированными
// окнами: "не более N вызовов на (caller, operation) за окно W".
//
// Счетчики живут во внешнем хранилище и инкрементируются атомарной
// read-modify-write транзакцией, поэтому лимит корректен при настоящих
// параллельных вызывающих (несколько устройств одного аккаунта, несколько
// инстансов сервера) без централизованного счетчика в памяти.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Config параметры лимита для класса операций
type Config struct {
	// Name имя класса операций, попадает в ключ бакета
	Name string
	// MaxCalls максимум вызовов в одном окне
	MaxCalls int
	// Window длительность окна
	Window time.Duration
}

// Именованные пресеты. Вызывающие выбирают пресет по классу операции,
// а не подбирают лимиты на каждом call site.
var (
	// PresetStandard обычные операции записи: 30 в минуту
	PresetStandard = Config{Name: "standard", MaxCalls: 30, Window: time.Minute}
	// PresetSensitive чувствительные операции (auth и т.п.): 5 в час
	PresetSensitive = Config{Name: "sensitive", MaxCalls: 5, Window: time.Hour}
	// PresetBulk массовые операции чтения/поиска: 20 в минуту
	PresetBulk = Config{Name: "bulk", MaxCalls: 20, Window: time.Minute}
)

// BucketStore определяет интерфейс транзакционного хранилища бакетов.
//
// Increment обязан выполнять проверку и запись как одну атомарную единицу:
//   - бакета нет: создать с count = 1, вернуть true
//   - count < maxCalls: инкрементировать, вернуть true
//   - иначе: ничего не менять, вернуть false
//
// Две гонящиеся транзакции не могут обе увидеть "бакета нет" или потерять
// инкремент - это контракт хранилища, не клиентской блокировки.
type BucketStore interface {
	Increment(ctx context.Context, key string, maxCalls int, expiresAt time.Time) (bool, error)
}

// Limiter проверяет допуск вызовов по бакетам во внешнем хранилище
type Limiter struct {
	store  BucketStore
	logger *slog.Logger
	now    func() time.Time
}

// New создает limiter поверх транзакционного хранилища бакетов
func New(store BucketStore, logger *slog.Logger) *Limiter {
	return NewWithClock(store, logger, time.Now)
}

// NewWithClock создает limiter с инъецируемыми часами (для тестов окон)
func NewWithClock(store BucketStore, logger *slog.Logger, now func() time.Time) *Limiter {
	return &Limiter{
		store:  store,
		logger: logger,
		now:    now,
	}
}

// BucketKey возвращает ключ бакета для момента now.
// bucketID = floor(epochMillis / windowMillis) отображает время на
// монотонно растущий номер фиксированного окна. Окно фиксированное,
// не скользящее: на границе окон возможен кратковременный burst
// до 2*MaxCalls - документированное ограничение.
func BucketKey(callerID, operation string, cfg Config, now time.Time) string {
	bucketID := now.UnixMilli() / cfg.Window.Milliseconds()
	return fmt.Sprintf("%s:%s:%d", callerID, operation, bucketID)
}

// Allow проверяет, допускается ли вызов операции для callerID.
//
// При ошибке самого хранилища limiter отказывает открыто (fail-open):
// вызов допускается, ошибка логируется. Квота - это контроль
// стоимости/злоупотреблений, а не безопасности; недоступность хранилища
// не должна дополнительно блокировать весь трафик.
func (l *Limiter) Allow(ctx context.Context, callerID, operation string, cfg Config) bool {
	now := l.now()
	key := BucketKey(callerID, operation, cfg, now)
	expiresAt := now.Add(cfg.Window)

	admitted, err := l.store.Increment(ctx, key, cfg.MaxCalls, expiresAt)
	if err != nil {
		l.logger.WarnContext(ctx, "rate limit store failed, failing open",
			slog.String("key", key),
			slog.Any("error", err))
		return true
	}

	if !admitted {
		l.logger.InfoContext(ctx, "rate limit exceeded",
			slog.String("caller_id", callerID),
			slog.String("operation", operation),
			slog.Int("max_calls", cfg.MaxCalls),
			slog.Duration("window", cfg.Window))
	}

	return admitted
}
