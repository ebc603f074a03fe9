package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	FrequencyUnitDays  = "days"
	FrequencyUnitHours = "hours"

	DurationUnitDays  = "days"
	DurationUnitWeeks = "weeks"
)

const (
	// ReminderEventWindowMinutes is the display window of one reminder event.
	ReminderEventWindowMinutes = 30

	// DefaultLowStockThreshold is used when a stock report request does not
	// name its own threshold.
	DefaultLowStockThreshold = 10

	// HoursPerDay and DaysPerWeek are the tick conversion factors used by the
	// schedule expander.
	HoursPerDay = 24
	DaysPerWeek = 7
)

const (
	// RedisKeyReminderWorkerLock is the leader lock so only one instance
	// dispatches reminders per tick.
	RedisKeyReminderWorkerLock = "reminder_worker_lock"
	// RedisKeyReminderSMSDedupeFormat takes a purchase ID and an event start
	// unix timestamp.
	RedisKeyReminderSMSDedupeFormat = "reminder_sms:%s:%d"
	// RedisKeySessionFormat takes a session ID.
	RedisKeySessionFormat = "session:%s"
)

const (
	CalendarProductID      = "-//HealthTrack//Medication Reminders//EN"
	CalendarAttachmentName = "medication-reminders.ics"
	CalendarObjectPrefix   = "calendars/"
)
