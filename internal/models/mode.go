package models

import (
	"fmt"
	"time"
)

// Mode представляет режим работы приложения
type Mode string

const (
	// ModeA дневной режим; используется как безопасный дефолт
	// при любой ошибке определения режима
	ModeA Mode = "A"
	// ModeB ночной режим
	ModeB Mode = "B"
)

// DefaultMode режим по умолчанию
const DefaultMode = ModeA

// Valid проверяет, что значение режима входит в закрытое множество
func (m Mode) Valid() bool {
	return m == ModeA || m == ModeB
}

// ParseMode разбирает строковое значение режима
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mode: %q", s)
	}
	return m, nil
}

// TimeOfDay представляет время суток в минутах с полуночи (0..1439)
type TimeOfDay int

// ParseTimeOfDay разбирает строку формата "HH:mm"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay(hours*60 + minutes), nil
}

// TimeOfDayFrom извлекает время суток из time.Time
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// String возвращает "HH:mm"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// InInterval проверяет принадлежность t полуоткрытому интервалу [start, end).
// Интервал корректно переходит через полночь: при start > end принадлежность
// считается по модулю 24 часов ("start до полуночи и после полуночи до end").
func (t TimeOfDay) InInterval(start, end TimeOfDay) bool {
	if start <= end {
		return t >= start && t < end
	}
	return t >= start || t < end
}

// Дефолтные границы интервалов режимов
const (
	DefaultModeAStart = "06:00"
	DefaultModeBStart = "22:00"
)

// ModeSettings представляет пользовательские настройки авто-переключения режима
type ModeSettings struct {
	ModeAStart      string `json:"mode_a_start"` // "HH:mm"
	ModeBStart      string `json:"mode_b_start"` // "HH:mm"
	AutoModeEnabled bool   `json:"auto_mode_enabled"`
}

// DefaultModeSettings возвращает настройки по умолчанию.
// Применяются когда удаленная запись настроек отсутствует или недоступна.
func DefaultModeSettings() ModeSettings {
	return ModeSettings{
		AutoModeEnabled: false,
		ModeAStart:      DefaultModeAStart,
		ModeBStart:      DefaultModeBStart,
	}
}

// ActiveMode вычисляет режим для момента now по настройкам.
// [modeAStart, modeBStart) — режим A, дополнение интервала — режим B.
// Ошибка разбора границ трактуется как дефолтный режим.
func (s ModeSettings) ActiveMode(now time.Time) Mode {
	aStart, err := ParseTimeOfDay(s.ModeAStart)
	if err != nil {
		return DefaultMode
	}
	bStart, err := ParseTimeOfDay(s.ModeBStart)
	if err != nil {
		return DefaultMode
	}

	if TimeOfDayFrom(now).InInterval(aStart, bStart) {
		return ModeA
	}
	return ModeB
}
