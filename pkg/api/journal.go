package api

import "time"

// Entry представляет одну запись дневника настроения в wire формате
type Entry struct {
	RecordedAt time.Time `json:"recorded_at"` // момент, к которому относится настроение
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ID         string    `json:"id"`       // UUID записи (генерируется клиентом)
	OwnerID    string    `json:"owner_id"` // владелец записи
	Note       string    `json:"note"`     // свободный текст
	Tags       []string  `json:"tags,omitempty"`
	Mood       int       `json:"mood"` // оценка настроения 1..5
}

// UpsertEntryRequest представляет запрос на создание или обновление записи.
// ID генерируется клиентом, поэтому повторная отправка после неоднозначного
// сбоя идемпотентна.
type UpsertEntryRequest struct {
	Entry Entry `json:"entry"`
}

// UpsertEntryResponse представляет ответ сервера на upsert
type UpsertEntryResponse struct {
	Entry   Entry `json:"entry"`
	Created bool  `json:"created"` // true если запись была создана, false если обновлена
}

// ListEntriesResponse представляет страницу записей пользователя
type ListEntriesResponse struct {
	Entries    []Entry   `json:"entries"`
	ServerTime time.Time `json:"server_time"`
}

// SubscribeQuery описывает форму подписки на snapshot stream.
// Каждое сообщение потока — полная замена текущей страницы, не diff.
type SubscribeQuery struct {
	OrderBy  string `json:"order_by"`  // поле сортировки, по умолчанию "recorded_at"
	OrderDir string `json:"order_dir"` // "asc" | "desc", по умолчанию "desc"
	Limit    int    `json:"limit"`     // размер страницы, по умолчанию 50
}

// Snapshot представляет одно сообщение snapshot stream: полная текущая
// страница коллекции на момент ServerTime.
type Snapshot struct {
	ServerTime time.Time `json:"server_time"`
	Entries    []Entry   `json:"entries"`
}

// Настройки сортировки по умолчанию для подписки
const (
	DefaultOrderBy  = "recorded_at"
	OrderDesc       = "desc"
	OrderAsc        = "asc"
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Normalize заполняет нулевые поля запроса значениями по умолчанию
// и ограничивает размер страницы
func (q *SubscribeQuery) Normalize() {
	if q.OrderBy == "" {
		q.OrderBy = DefaultOrderBy
	}
	if q.OrderDir != OrderAsc {
		q.OrderDir = OrderDesc
	}
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
}

// Settings представляет удаленные пользовательские настройки режима.
// Отсутствие записи на сервере — валидное состояние (применяются дефолты).
type Settings struct {
	AutoModeEnabled bool   `json:"auto_mode_enabled"` // включено ли авто-переключение режима
	ModeAStart      string `json:"mode_a_start"`      // "HH:mm" начало интервала режима A
	ModeBStart      string `json:"mode_b_start"`      // "HH:mm" начало интервала режима B
}
