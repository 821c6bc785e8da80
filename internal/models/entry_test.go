package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoodEntry_Clone(t *testing.T) {
	entry := &MoodEntry{
		ID:      "entry-1",
		OwnerID: "user-1",
		Mood:    4,
		Note:    "good day",
		Tags:    []string{"work", "home"},
	}

	clone := entry.Clone()
	assert.Equal(t, entry, clone)

	// Глубокая копия: изменение клона не трогает оригинал
	clone.Tags[0] = "changed"
	clone.Note = "other"
	assert.Equal(t, "work", entry.Tags[0])
	assert.Equal(t, "good day", entry.Note)
}

func TestPendingMutation_NewerThan(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	older := &PendingMutation{ID: "a", CreatedAt: base}
	newer := &PendingMutation{ID: "b", CreatedAt: base.Add(time.Second)}

	assert.True(t, newer.NewerThan(older))
	assert.False(t, older.NewerThan(newer))

	// При равных временах порядок детерминирован по ID
	same1 := &PendingMutation{ID: "a", CreatedAt: base}
	same2 := &PendingMutation{ID: "b", CreatedAt: base}
	assert.True(t, same2.NewerThan(same1))
	assert.False(t, same1.NewerThan(same2))
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := &Session{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Minute)), "boundary counts as expired")
	assert.True(t, session.Expired(now.Add(2*time.Minute)))
}
