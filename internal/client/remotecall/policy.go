// Package remotecall выполняет одиночные удаленные операции под единым
// контрактом отказов: таймаут на попытку, классификация ошибок,
// экспоненциальный retry временных ошибок и опциональный fallback.
//
// Политика никогда не паникует и не возвращает ошибку "сквозь" свой
// тип результата: все исходы выражены тегированным Result, вызывающий
// обязан проверить Success. Удаленные вызовы отказывают рутинно, и
// система типов должна заставить обработать это.
package remotecall

import (
	"context"
	"log/slog"
	"time"
)

// Значения конфигурации по умолчанию
const (
	DefaultTimeout           = 8 * time.Second
	DefaultMaxRetries        = 3
	DefaultInitialDelay      = 1 * time.Second
	DefaultBackoffMultiplier = 2.0
)

// Operation представляет удаленную операцию без аргументов.
// Контекст несет таймаут попытки; операция должна его уважать,
// но политика в любом случае не ждет дольше таймаута.
type Operation[T any] func(ctx context.Context) (T, error)

// Config конфигурация политики с именованными полями и явными дефолтами.
// Нулевое значение поля означает "использовать дефолт".
type Config[T any] struct {
	// Fallback синхронный поставщик замещающего результата.
	// Вызывается при терминальной ошибке или исчерпании retry.
	Fallback func() T

	// Logger для диагностики попыток; по умолчанию slog.Default()
	Logger *slog.Logger

	// Timeout таймаут одной попытки (default 8s)
	Timeout time.Duration

	// MaxRetries количество дополнительных попыток для временных ошибок
	// сверх первой (default 3)
	MaxRetries int

	// InitialDelay задержка перед первым retry (default 1s)
	InitialDelay time.Duration

	// BackoffMultiplier множитель задержки (default 2).
	// Задержка перед retry номер k (с нуля): InitialDelay * Multiplier^k.
	// Без jitter - намеренное упрощение ради детерминированных и
	// тестируемых интервалов; production retry-циклы обычно добавляют
	// jitter против retry storm.
	BackoffMultiplier float64
}

// Result тегированный результат удаленного вызова
type Result[T any] struct {
	// Data данные успешного вызова; при UsedFallback - значение fallback
	Data T
	// Err последняя ошибка; заполнен только при Success == false
	Err error
	// Attempts сколько попыток было выполнено
	Attempts int
	// Success true если операция завершилась успешно
	Success bool
	// UsedFallback true если Data получен из Fallback, а не от операции
	UsedFallback bool
}

// Do выполняет операцию под политикой.
//
// Каждая попытка соревнуется с таймером: если таймер срабатывает раньше,
// попытка завершается ошибкой таймаута, а результат операции, пришедший
// позже, отбрасывается (in-flight вызовы не прерываются).
// Временные ошибки повторяются до MaxRetries раз с
// экспоненциальной задержкой; терминальные обрывают выполнение сразу.
// Отмена внешнего контекста во время ожидания retry прекращает ожидание.
func Do[T any](ctx context.Context, op Operation[T], cfg Config[T]) Result[T] {
	cfg = cfg.withDefaults()

	var lastErr error
	attempts := 0

	for retry := 0; ; retry++ {
		data, err := runAttempt(ctx, op, cfg.Timeout)
		attempts++

		if err == nil {
			return Result[T]{Success: true, Data: data, Attempts: attempts}
		}

		lastErr = err
		class := Classify(err)

		cfg.Logger.Debug("remote call attempt failed",
			"attempt", attempts,
			"class", class.String(),
			"error", err)

		if class == ClassTerminal || retry >= cfg.MaxRetries {
			break
		}

		// Задержка перед retry номер retry (0-indexed)
		delay := backoffDelay(cfg.InitialDelay, cfg.BackoffMultiplier, retry)
		if !sleep(ctx, delay) {
			// Вызывающий отменил ожидание - исход наблюдать уже некому
			lastErr = ctx.Err()
			break
		}
	}

	result := Result[T]{Success: false, Err: lastErr, Attempts: attempts}
	if cfg.Fallback != nil {
		result.Data = cfg.Fallback()
		result.UsedFallback = true
	}
	return result
}

// runAttempt выполняет одну попытку с таймаутом.
// Операция запускается в отдельной goroutine и соревнуется с таймером;
// проигравший результат отбрасывается.
func runAttempt[T any](ctx context.Context, op Operation[T], timeout time.Duration) (T, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		data T
		err  error
	}

	// Буфер на 1, чтобы запоздавшая операция не подвисла навсегда
	done := make(chan outcome, 1)

	go func() {
		data, err := op(attemptCtx)
		done <- outcome{data: data, err: err}
	}()

	select {
	case out := <-done:
		return out.data, out.err
	case <-attemptCtx.Done():
		var zero T
		return zero, attemptCtx.Err()
	}
}

// backoffDelay вычисляет задержку перед retry номер k (0-indexed)
func backoffDelay(initial time.Duration, multiplier float64, k int) time.Duration {
	delay := float64(initial)
	for i := 0; i < k; i++ {
		delay *= multiplier
	}
	return time.Duration(delay)
}

// sleep ждет delay или отмены контекста.
// Возвращает false, если контекст был отменен раньше.
func sleep(ctx context.Context, delay time.Duration) bool {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// withDefaults возвращает конфигурацию с заполненными дефолтами
func (c Config[T]) withDefaults() Config[T] {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultInitialDelay
	}
	if c.BackoffMultiplier <= 0 {
		c.BackoffMultiplier = DefaultBackoffMultiplier
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
