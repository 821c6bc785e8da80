package models

import "time"

// MoodEntry представляет одну запись дневника настроения.
// ID генерируется клиентом (UUID), чтобы повтор записи после
// неоднозначного сбоя сети был идемпотентным.
type MoodEntry struct {
	RecordedAt time.Time `json:"recorded_at"` // момент, к которому относится настроение
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Note       string    `json:"note"`
	Tags       []string  `json:"tags,omitempty"`
	Mood       int       `json:"mood"` // оценка настроения 1..5
}

// Границы оценки настроения
const (
	MoodMin = 1
	MoodMax = 5
)

// Clone создает глубокую копию записи
func (e *MoodEntry) Clone() *MoodEntry {
	tags := make([]string, len(e.Tags))
	copy(tags, e.Tags)

	clone := *e
	clone.Tags = tags
	return &clone
}

// MutationKind тип локальной мутации
type MutationKind string

const (
	// MutationUpsert создание или обновление записи
	MutationUpsert MutationKind = "upsert"
	// MutationDelete удаление записи
	MutationDelete MutationKind = "delete"
)

// MutationStatus статус мутации в локальном буфере
type MutationStatus string

const (
	// MutationPending мутация применена локально, подтверждение не получено
	MutationPending MutationStatus = "pending"
	// MutationFailed запись remote write завершилась терминальной ошибкой;
	// мутация сохраняется и показывается как "unsynced", чтобы пользователь
	// не потерял данные молча
	MutationFailed MutationStatus = "failed"
)

// PendingMutation представляет локально примененную, еще не подтвержденную
// сервером мутацию. Владелец — sync engine: от локального применения до
// подтверждения (удаляется) или терминального сбоя (остается со статусом failed).
type PendingMutation struct {
	CreatedAt time.Time      `json:"created_at"`
	Entry     *MoodEntry     `json:"entry,omitempty"` // payload для upsert; для delete достаточно ID
	ID        string         `json:"id"`              // совпадает с ID записи
	Kind      MutationKind   `json:"kind"`
	Status    MutationStatus `json:"status"`
}

// NewerThan сравнивает две мутации по времени создания.
// Используется для сортировки буфера newest-first; при равных временах
// сравниваются ID для детерминированного порядка.
func (m *PendingMutation) NewerThan(other *PendingMutation) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.After(other.CreatedAt)
	}
	return m.ID > other.ID
}
