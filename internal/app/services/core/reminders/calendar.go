package reminders

import (
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// EncodeCalendar serializes reminder events as an RFC 5545 VCALENDAR, one
// VEVENT per event, all times in UTC. An empty or malformed event list is a
// logic defect upstream, so it is rejected instead of producing an empty or
// broken document.
func EncodeCalendar(events []ReminderEvent) ([]byte, error) {
	if len(events) == 0 {
		return nil, exceptions.ErrCalendarEncoding(nil, constvars.ErrDevCalendarNoEvents)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(constvars.CalendarProductID)

	stamp := time.Now().UTC()
	for _, event := range events {
		if event.Start.IsZero() || !event.End.After(event.Start) {
			return nil, exceptions.ErrCalendarEncoding(nil, constvars.ErrDevCalendarInvalidEventWindow)
		}

		vevent := cal.AddEvent(uuid.NewString())
		vevent.SetDtStampTime(stamp)
		vevent.SetStartAt(event.Start.UTC())
		vevent.SetEndAt(event.End.UTC())
		vevent.SetSummary(event.Title)
		vevent.SetDescription(event.Description)
	}

	return []byte(cal.Serialize()), nil
}
