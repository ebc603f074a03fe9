package reminders

import (
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSchedule(freqValue int, freqUnit string, durValue int, durUnit string) DosingSchedule {
	return DosingSchedule{
		DrugName:        "Amoxicillin",
		DoseDescription: "500mg after meals",
		Frequency:       models.DosingFrequency{Value: freqValue, Unit: freqUnit},
		Duration:        models.DosingDuration{Value: durValue, Unit: durUnit},
	}
}

func TestExpandSchedule_TimesPerDay(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		schedule      DosingSchedule
		expectedCount int
		expectedGap   time.Duration
	}{
		{
			name:          "three times per day for five days",
			schedule:      newSchedule(3, constvars.FrequencyUnitDays, 5, constvars.DurationUnitDays),
			expectedCount: 15,
			expectedGap:   8 * time.Hour,
		},
		{
			name:          "once per day for one week",
			schedule:      newSchedule(1, constvars.FrequencyUnitDays, 1, constvars.DurationUnitWeeks),
			expectedCount: 7,
			expectedGap:   24 * time.Hour,
		},
		{
			name:          "twice per day for two weeks",
			schedule:      newSchedule(2, constvars.FrequencyUnitDays, 2, constvars.DurationUnitWeeks),
			expectedCount: 28,
			expectedGap:   12 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := ExpandSchedule(tt.schedule, anchor, anchor)
			require.NoError(t, err)
			require.Len(t, events, tt.expectedCount)

			assert.Equal(t, anchor, events[0].Start, "first event should start at the anchor")
			assert.Equal(t, tt.expectedGap, events[1].Start.Sub(events[0].Start))
		})
	}
}

func TestExpandSchedule_HourlyIsTheDensestDailySchedule(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	events, err := ExpandSchedule(newSchedule(24, constvars.FrequencyUnitDays, 2, constvars.DurationUnitDays), anchor, anchor)
	require.NoError(t, err)
	require.Len(t, events, 48)

	for i := 1; i < len(events); i++ {
		assert.Equal(t, time.Hour, events[i].Start.Sub(events[i-1].Start))
	}
}

func TestExpandSchedule_EveryNHours(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	events, err := ExpandSchedule(newSchedule(6, constvars.FrequencyUnitHours, 2, constvars.DurationUnitDays), anchor, anchor)
	require.NoError(t, err)
	require.Len(t, events, 8, "every 6 hours gives 4 events per day over 2 days")

	for i := 1; i < 4; i++ {
		assert.Equal(t, 6*time.Hour, events[i].Start.Sub(events[i-1].Start))
	}
}

func TestExpandSchedule_HourIntervalLongerThanDay(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	// every 36 hours floors to one event per day, so the course still covers
	// every day of the duration
	events, err := ExpandSchedule(newSchedule(36, constvars.FrequencyUnitHours, 3, constvars.DurationUnitDays), anchor, anchor)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestExpandSchedule_EventWindow(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	events, err := ExpandSchedule(newSchedule(2, constvars.FrequencyUnitDays, 1, constvars.DurationUnitDays), anchor, anchor)
	require.NoError(t, err)

	for _, event := range events {
		assert.Equal(t, constvars.ReminderEventWindowMinutes*time.Minute, event.End.Sub(event.Start))
	}
}

func TestExpandSchedule_SortedAndUniqueStarts(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	events, err := ExpandSchedule(newSchedule(4, constvars.FrequencyUnitDays, 2, constvars.DurationUnitWeeks), anchor, anchor)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	for i := 1; i < len(events); i++ {
		assert.True(t, events[i].Start.After(events[i-1].Start), "starts must be strictly increasing")
	}
}

func TestExpandSchedule_ClampsAnchorToNow(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	now := anchor.Add(48 * time.Hour)

	events, err := ExpandSchedule(newSchedule(1, constvars.FrequencyUnitDays, 3, constvars.DurationUnitDays), anchor, now)
	require.NoError(t, err)
	require.Len(t, events, 3, "clamping shifts the course, it does not shorten it")
	assert.Equal(t, now, events[0].Start)

	for _, event := range events {
		assert.False(t, event.Start.Before(now), "no event may start in the past")
	}
}

func TestExpandSchedule_FutureAnchorIsKept(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	anchor := now.Add(24 * time.Hour)

	events, err := ExpandSchedule(newSchedule(1, constvars.FrequencyUnitDays, 1, constvars.DurationUnitDays), anchor, now)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, anchor, events[0].Start)
}

func TestExpandSchedule_Deterministic(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	schedule := newSchedule(3, constvars.FrequencyUnitDays, 2, constvars.DurationUnitWeeks)

	first, err := ExpandSchedule(schedule, anchor, anchor)
	require.NoError(t, err)
	second, err := ExpandSchedule(schedule, anchor, anchor)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpandSchedule_TitleAndDescription(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	events, err := ExpandSchedule(newSchedule(1, constvars.FrequencyUnitDays, 1, constvars.DurationUnitDays), anchor, anchor)
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "Take Amoxicillin", events[0].Title)
	assert.Equal(t, "Amoxicillin, 500mg after meals", events[0].Description)
}

func TestExpandSchedule_ZeroDurationMeansNoEvents(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	events, err := ExpandSchedule(newSchedule(2, constvars.FrequencyUnitDays, 0, constvars.DurationUnitDays), anchor, anchor)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events)
}

func TestExpandSchedule_InvalidInput(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		schedule DosingSchedule
		anchor   time.Time
	}{
		{
			name:     "zero frequency value",
			schedule: newSchedule(0, constvars.FrequencyUnitDays, 5, constvars.DurationUnitDays),
			anchor:   anchor,
		},
		{
			name:     "negative frequency value",
			schedule: newSchedule(-1, constvars.FrequencyUnitHours, 5, constvars.DurationUnitDays),
			anchor:   anchor,
		},
		{
			name:     "negative duration value",
			schedule: newSchedule(1, constvars.FrequencyUnitDays, -2, constvars.DurationUnitDays),
			anchor:   anchor,
		},
		{
			name:     "more times per day than hours in a day",
			schedule: newSchedule(25, constvars.FrequencyUnitDays, 2, constvars.DurationUnitDays),
			anchor:   anchor,
		},
		{
			name:     "unknown frequency unit",
			schedule: newSchedule(1, "fortnights", 5, constvars.DurationUnitDays),
			anchor:   anchor,
		},
		{
			name:     "unknown duration unit",
			schedule: newSchedule(1, constvars.FrequencyUnitDays, 5, "months"),
			anchor:   anchor,
		},
		{
			name:     "zero anchor",
			schedule: newSchedule(1, constvars.FrequencyUnitDays, 5, constvars.DurationUnitDays),
			anchor:   time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := ExpandSchedule(tt.schedule, tt.anchor, tt.anchor)
			assert.Error(t, err)
			assert.Nil(t, events)
		})
	}
}
