package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingQueueNameKey    = "queue_name"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingLockExpKey      = "lock_expiration"
	LoggingHospitalIDKey   = "hospital_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingPurchaseIDKey   = "purchase_id"
	LoggingMedicationIDKey = "medication_id"
	LoggingEventCountKey   = "event_count"
)
