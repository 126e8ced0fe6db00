package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func TestCalendar_EventCount(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		years      int
		wantEvents int
	}{
		{"common year", 2023, 1, 14},
		{"leap year", 2024, 1, 15},
		{"two years", 2023, 2, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := Calendar(tt.start, tt.years, stamp)
			require.NoError(t, err)
			assert.Len(t, cal.Events(), tt.wantEvents)
		})
	}
}

func TestCalendar_InvalidSpan(t *testing.T) {
	for _, years := range []int{0, -1, 401} {
		_, err := Calendar(2024, years, stamp)
		assert.ErrorIs(t, err, ErrInvalidSpan)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 2024, 1, stamp))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240617")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20241231")

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	starts := make(map[string]string)
	for _, event := range cal.Events() {
		summary, err := event.Props.Text("SUMMARY")
		require.NoError(t, err)
		start := event.Props.Get("DTSTART")
		require.NotNil(t, start)
		starts[summary] = start.Value
	}

	assert.Equal(t, "20240101", starts["January begins"])
	assert.Equal(t, "20240617", starts["Sol begins"])
	assert.Equal(t, "20241202", starts["December begins"])
	assert.Equal(t, "20241230", starts["Year Day, 2024"])
	assert.Equal(t, "20241231", starts["Leap Day, 2024"])
}

func TestBytes(t *testing.T) {
	out, err := Bytes(2025, 2, stamp)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("BEGIN:VCALENDAR")))

	_, err = Bytes(2025, 0, stamp)
	assert.ErrorIs(t, err, ErrInvalidSpan)
}
