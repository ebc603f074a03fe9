package reminders

import (
	"healthtrack-service/internal/app/models"
	"time"
)

// DosingSchedule is the input of the expansion engine: one medication's
// dosing frequency and course duration plus the text that ends up on the
// generated events.
type DosingSchedule struct {
	DrugName        string
	DoseDescription string
	Frequency       models.DosingFrequency
	Duration        models.DosingDuration
}

// ReminderEvent is one concrete reminder occurrence. Events are transient:
// they are recomputed from the schedule on demand and never persisted.
type ReminderEvent struct {
	Start       time.Time
	End         time.Time
	Title       string
	Description string
}
