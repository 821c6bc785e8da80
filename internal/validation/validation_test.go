package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/moodkeeper/internal/models"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid", username: "alice_01"},
		{name: "minimum length", username: "abc"},
		{name: "maximum length", username: strings.Repeat("a", 32)},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 33), wantErr: true},
		{name: "space", username: "bad name", wantErr: true},
		{name: "unicode", username: "мария", wantErr: true},
		{name: "dash", username: "bad-name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("strongpassword"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
}

func validEntry() *models.MoodEntry {
	return &models.MoodEntry{
		ID:         "entry-1",
		Mood:       3,
		Note:       "fine",
		Tags:       []string{"work"},
		RecordedAt: time.Now(),
	}
}

func TestValidateEntry(t *testing.T) {
	assert.NoError(t, ValidateEntry(validEntry()))

	tests := []struct {
		name   string
		mutate func(*models.MoodEntry)
	}{
		{name: "missing id", mutate: func(e *models.MoodEntry) { e.ID = "" }},
		{name: "mood below range", mutate: func(e *models.MoodEntry) { e.Mood = 0 }},
		{name: "mood above range", mutate: func(e *models.MoodEntry) { e.Mood = 6 }},
		{name: "note too long", mutate: func(e *models.MoodEntry) { e.Note = strings.Repeat("x", MaxNoteLen+1) }},
		{name: "too many tags", mutate: func(e *models.MoodEntry) { e.Tags = make([]string, MaxTags+1) }},
		{name: "missing recorded_at", mutate: func(e *models.MoodEntry) { e.RecordedAt = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(entry)
			assert.Error(t, ValidateEntry(entry))
		})
	}

	assert.Error(t, ValidateEntry(nil))
}
