package validation

import (
	"fmt"
	"regexp"

	"github.com/iudanet/moodkeeper/internal/models"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxNoteLen максимальная длина заметки в записи
	MaxNoteLen = 4096
	// MaxTags максимальное количество тегов у записи
	MaxTags = 16
)

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateEntry проверяет запись дневника перед сохранением.
// Ошибки валидации терминальны: повтор запроса с теми же данными
// не может завершиться успешно.
func ValidateEntry(entry *models.MoodEntry) error {
	if entry == nil {
		return fmt.Errorf("entry is nil")
	}

	if entry.ID == "" {
		return fmt.Errorf("entry id is required")
	}

	if entry.Mood < models.MoodMin || entry.Mood > models.MoodMax {
		return fmt.Errorf("mood must be between %d and %d, got %d", models.MoodMin, models.MoodMax, entry.Mood)
	}

	if len(entry.Note) > MaxNoteLen {
		return fmt.Errorf("note must not exceed %d characters", MaxNoteLen)
	}

	if len(entry.Tags) > MaxTags {
		return fmt.Errorf("at most %d tags allowed", MaxTags)
	}

	if entry.RecordedAt.IsZero() {
		return fmt.Errorf("recorded_at is required")
	}

	return nil
}
