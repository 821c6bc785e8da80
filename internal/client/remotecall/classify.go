package remotecall

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"

	"github.com/iudanet/moodkeeper/pkg/api"
)

// Class категория ошибки удаленного вызова
type Class int

const (
	// ClassTransient временная ошибка (network/availability class) —
	// повтор вызова может завершиться успешно
	ClassTransient Class = iota
	// ClassTerminal терминальная ошибка (validation/application class) —
	// повтор с теми же данными заведомо бесполезен
	ClassTerminal
)

// String возвращает имя класса для логирования
func (c Class) String() string {
	if c == ClassTransient {
		return "transient"
	}
	return "terminal"
}

// Classify классифицирует ошибку удаленного вызова.
// Временными считаются: таймауты (включая context.DeadlineExceeded),
// сетевые сбои (connection refused/reset, недоступность хоста, DNS),
// обрыв соединения посреди ответа и серверные ошибки с кодами
// unavailable / deadline_exceeded / internal.
// Все остальное терминально, включая отмену контекста вызывающим.
func Classify(err error) Class {
	if err == nil {
		return ClassTerminal
	}

	// Отмена вызывающим - не повод повторять
	if errors.Is(err, context.Canceled) {
		return ClassTerminal
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTransient
	}

	// Машиночитаемый код ошибки сервера
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.IsRetryable() {
			return ClassTransient
		}
		return ClassTerminal
	}

	// Сетевые таймауты
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassTransient
	}

	// Ошибки резолвинга DNS
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ClassTransient
	}

	// Ошибки установления/обрыва соединения
	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH):
		return ClassTransient
	}

	// Обрыв соединения посреди чтения ответа
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return ClassTransient
	}

	return ClassTerminal
}
