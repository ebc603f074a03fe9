package reminders

import (
	"fmt"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"time"
)

// ExpandSchedule turns a dosing schedule into the full list of reminder
// events for the course, anchored at anchor and clamped so that no event
// starts before now. The result is sorted ascending with strictly unique
// start times, and every event spans exactly the reminder window.
//
// The expansion is deterministic: identical (sched, anchor, now) inputs
// always produce identical output, which is what lets events stay transient
// instead of persisted.
func ExpandSchedule(sched DosingSchedule, anchor, now time.Time) ([]ReminderEvent, error) {
	if sched.Frequency.Value <= 0 {
		return nil, exceptions.ErrInvalidSchedule(nil, constvars.ErrDevScheduleInvalidFrequency)
	}
	if sched.Duration.Value < 0 {
		return nil, exceptions.ErrInvalidSchedule(nil, constvars.ErrDevScheduleInvalidDuration)
	}
	if anchor.IsZero() {
		return nil, exceptions.ErrInvalidSchedule(nil, constvars.ErrDevScheduleInvalidAnchor)
	}

	var daysPerTick int
	switch sched.Duration.Unit {
	case constvars.DurationUnitDays:
		daysPerTick = 1
	case constvars.DurationUnitWeeks:
		daysPerTick = constvars.DaysPerWeek
	default:
		return nil, exceptions.ErrInvalidSchedule(fmt.Errorf("unit %q", sched.Duration.Unit), constvars.ErrDevScheduleInvalidDurationUnit)
	}

	var eventsPerDay int
	var interval time.Duration
	switch sched.Frequency.Unit {
	case constvars.FrequencyUnitDays:
		// "N times per day": N events spaced 24/N hours apart. More than 24
		// would truncate the interval to zero and collide with the next day's
		// first slot, so the bound keeps start times unique.
		if sched.Frequency.Value > constvars.HoursPerDay {
			return nil, exceptions.ErrInvalidSchedule(fmt.Errorf("value %d", sched.Frequency.Value), constvars.ErrDevScheduleFrequencyTooDense)
		}
		eventsPerDay = sched.Frequency.Value
		interval = time.Duration(constvars.HoursPerDay/eventsPerDay) * time.Hour
	case constvars.FrequencyUnitHours:
		// "every N hours": 24/N events per day, floored at one so a valid
		// schedule never produces an empty day.
		interval = time.Duration(sched.Frequency.Value) * time.Hour
		eventsPerDay = constvars.HoursPerDay / sched.Frequency.Value
		if eventsPerDay < 1 {
			eventsPerDay = 1
		}
	default:
		return nil, exceptions.ErrInvalidSchedule(fmt.Errorf("unit %q", sched.Frequency.Unit), constvars.ErrDevScheduleInvalidFrequencyUnit)
	}

	if sched.Duration.Value == 0 {
		return []ReminderEvent{}, nil
	}

	// Clamping the anchor once, instead of clamping each event, keeps the
	// inter-event spacing intact and cannot produce duplicate start times.
	effectiveAnchor := anchor
	if now.After(anchor) {
		effectiveAnchor = now
	}

	totalDays := sched.Duration.Value * daysPerTick
	title := fmt.Sprintf("Take %s", sched.DrugName)
	description := fmt.Sprintf("%s, %s", sched.DrugName, sched.DoseDescription)

	events := make([]ReminderEvent, 0, totalDays*eventsPerDay)
	for day := 0; day < totalDays; day++ {
		dayStart := effectiveAnchor.Add(time.Duration(day*constvars.HoursPerDay) * time.Hour)
		for slot := 0; slot < eventsPerDay; slot++ {
			start := dayStart.Add(time.Duration(slot) * interval)
			events = append(events, ReminderEvent{
				Start:       start,
				End:         start.Add(constvars.ReminderEventWindowMinutes * time.Minute),
				Title:       title,
				Description: description,
			})
		}
	}

	return events, nil
}
