package reminders

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCalendar_ProducesParsableDocument(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	events := []ReminderEvent{
		{
			Start:       start,
			End:         start.Add(30 * time.Minute),
			Title:       "Take Amoxicillin",
			Description: "Amoxicillin, 500mg after meals",
		},
		{
			Start:       start.Add(8 * time.Hour),
			End:         start.Add(8*time.Hour + 30*time.Minute),
			Title:       "Take Amoxicillin",
			Description: "Amoxicillin, 500mg after meals",
		},
	}

	data, err := EncodeCalendar(events)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	parsed, err := ics.ParseCalendar(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, parsed.Events(), 2)

	first := parsed.Events()[0]
	parsedStart, err := first.GetStartAt()
	require.NoError(t, err)
	assert.True(t, parsedStart.Equal(start))

	parsedEnd, err := first.GetEndAt()
	require.NoError(t, err)
	assert.True(t, parsedEnd.Equal(start.Add(30*time.Minute)))

	assert.Contains(t, string(data), "SUMMARY:Take Amoxicillin")
	assert.Contains(t, string(data), "METHOD:PUBLISH")
}

func TestEncodeCalendar_UniqueEventIDs(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	events := []ReminderEvent{
		{Start: start, End: start.Add(30 * time.Minute), Title: "Take Ibuprofen"},
		{Start: start.Add(12 * time.Hour), End: start.Add(12*time.Hour + 30*time.Minute), Title: "Take Ibuprofen"},
	}

	data, err := EncodeCalendar(events)
	require.NoError(t, err)

	parsed, err := ics.ParseCalendar(bytes.NewReader(data))
	require.NoError(t, err)

	ids := make(map[string]struct{})
	for _, event := range parsed.Events() {
		ids[event.Id()] = struct{}{}
	}
	assert.Len(t, ids, 2, "every event must carry its own UID")
}

func TestEncodeCalendar_RejectsEmptyList(t *testing.T) {
	data, err := EncodeCalendar(nil)
	assert.Error(t, err)
	assert.Nil(t, data)

	data, err = EncodeCalendar([]ReminderEvent{})
	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestEncodeCalendar_RejectsInvalidEventWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		event ReminderEvent
	}{
		{
			name:  "end equals start",
			event: ReminderEvent{Start: start, End: start, Title: "Take Amoxicillin"},
		},
		{
			name:  "end before start",
			event: ReminderEvent{Start: start, End: start.Add(-time.Minute), Title: "Take Amoxicillin"},
		},
		{
			name:  "zero start",
			event: ReminderEvent{End: start, Title: "Take Amoxicillin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeCalendar([]ReminderEvent{tt.event})
			assert.Error(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestEncodeCalendar_TimesAreUTC(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	start := time.Date(2026, 3, 1, 15, 0, 0, 0, jakarta)
	events := []ReminderEvent{
		{Start: start, End: start.Add(30 * time.Minute), Title: "Take Amoxicillin"},
	}

	data, err := EncodeCalendar(events)
	require.NoError(t, err)

	// 15:00 WIB is 08:00 UTC
	assert.True(t, strings.Contains(string(data), "DTSTART:20260301T080000Z"))
}
