package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("A")
	require.NoError(t, err)
	assert.Equal(t, ModeA, mode)

	mode, err = ParseMode("B")
	require.NoError(t, err)
	assert.Equal(t, ModeB, mode)

	_, err = ParseMode("C")
	assert.Error(t, err)
	_, err = ParseMode("")
	assert.Error(t, err)
	_, err = ParseMode("a")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected TimeOfDay
		wantErr  bool
	}{
		{input: "00:00", expected: 0},
		{input: "06:00", expected: 360},
		{input: "23:59", expected: 1439},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "-1:00", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "06:05", TimeOfDay(365).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59", TimeOfDay(1439).String())
}

func TestTimeOfDay_InInterval(t *testing.T) {
	sixAM := TimeOfDay(6 * 60)
	tenPM := TimeOfDay(22 * 60)

	// Обычный интервал [06:00, 22:00)
	assert.True(t, TimeOfDay(12*60).InInterval(sixAM, tenPM))
	assert.True(t, sixAM.InInterval(sixAM, tenPM), "start inclusive")
	assert.False(t, tenPM.InInterval(sixAM, tenPM), "end exclusive")
	assert.False(t, TimeOfDay(2*60).InInterval(sixAM, tenPM))

	// Интервал через полночь [22:00, 06:00)
	assert.True(t, TimeOfDay(23*60).InInterval(tenPM, sixAM))
	assert.True(t, TimeOfDay(2*60).InInterval(tenPM, sixAM))
	assert.False(t, TimeOfDay(12*60).InInterval(tenPM, sixAM))
	assert.True(t, tenPM.InInterval(tenPM, sixAM))
	assert.False(t, sixAM.InInterval(tenPM, sixAM))
}

func TestModeSettings_ActiveMode(t *testing.T) {
	settings := ModeSettings{
		AutoModeEnabled: true,
		ModeAStart:      "06:00",
		ModeBStart:      "22:00",
	}

	assert.Equal(t, ModeA, settings.ActiveMode(at(12, 0)))
	assert.Equal(t, ModeA, settings.ActiveMode(at(6, 0)))
	assert.Equal(t, ModeB, settings.ActiveMode(at(22, 0)))
	assert.Equal(t, ModeB, settings.ActiveMode(at(2, 30)))
}

func TestModeSettings_ActiveMode_WrapAround(t *testing.T) {
	// Интервал режима A переходит через полночь
	settings := ModeSettings{
		ModeAStart: "22:00",
		ModeBStart: "06:00",
	}

	assert.Equal(t, ModeA, settings.ActiveMode(at(23, 30)))
	assert.Equal(t, ModeA, settings.ActiveMode(at(2, 0)))
	assert.Equal(t, ModeB, settings.ActiveMode(at(12, 0)))
}

func TestModeSettings_ActiveMode_InvalidBounds(t *testing.T) {
	// Испорченные границы трактуются как дефолтный режим, не паника
	settings := ModeSettings{
		ModeAStart: "garbage",
		ModeBStart: "22:00",
	}
	assert.Equal(t, DefaultMode, settings.ActiveMode(at(12, 0)))

	settings = ModeSettings{
		ModeAStart: "06:00",
		ModeBStart: "25:00",
	}
	assert.Equal(t, DefaultMode, settings.ActiveMode(at(12, 0)))
}

func TestDefaultModeSettings(t *testing.T) {
	settings := DefaultModeSettings()
	assert.False(t, settings.AutoModeEnabled)
	assert.Equal(t, DefaultModeAStart, settings.ModeAStart)
	assert.Equal(t, DefaultModeBStart, settings.ModeBStart)
}
