package api

import "fmt"

// Коды ошибок сервера. Клиент использует Code для классификации:
// unavailable / deadline_exceeded / internal считаются временными (transient),
// остальные — терминальными (terminal).
const (
	CodeUnavailable       = "unavailable"        // сервис временно недоступен
	CodeDeadlineExceeded  = "deadline_exceeded"  // обработка не уложилась в срок
	CodeInternal          = "internal"           // внутренняя ошибка сервера
	CodeInvalidArgument   = "invalid_argument"   // ошибка валидации запроса
	CodeUnauthenticated   = "unauthenticated"    // нет или невалидный токен
	CodeNotFound          = "not_found"          // ресурс не найден
	CodeAlreadyExists     = "already_exists"     // конфликт уникальности
	CodeResourceExhausted = "resource_exhausted" // превышен rate limit
)

// Error представляет машиночитаемую ошибку сервера.
// Передается в теле ответа с не-2xx статусом.
type Error struct {
	Code    string `json:"code"`    // машиночитаемая категория ошибки
	Message string `json:"message"` // описание для человека
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsRetryable сообщает, относится ли код ошибки к временным (availability class)
func (e *Error) IsRetryable() bool {
	switch e.Code {
	case CodeUnavailable, CodeDeadlineExceeded, CodeInternal:
		return true
	}
	return false
}
