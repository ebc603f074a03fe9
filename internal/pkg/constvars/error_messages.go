package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must be a valid timestamp",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
	"lte":     true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientHospitalNotFound              = "hospital not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientMedicationNotFound            = "medication not found"
	ErrClientPurchaseNotFound              = "purchase not found"
	ErrClientInsufficientStock             = "not enough stock for the requested medication"
	ErrClientInvalidSchedule               = "could not compute the reminder schedule for this medication"
	ErrClientPatientHasNoEmail             = "the patient has no email address on file"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevURLParamIDValidation     = "invalid %s URL parameter"
	ErrDevServerProcess            = "error while server processing the request"
	ErrDevServerDeadlineExceeded   = "server process exceeded its deadline"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevAuthGenerateToken        = "failed to generate JWT token"
	ErrDevAuthSigningMethod        = "unexpected JWT signing method"
	ErrDevAuthTokenMissing         = "authorization token is missing"
	ErrDevAuthTokenInvalid         = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or already expired"
	ErrDevAuthInvalidSession       = "session not found or already expired"
	ErrDevInvalidCredentials       = "credentials do not match any hospital account"
	ErrDevEmailAlreadyExists       = "hospital email already exists in the database"
	ErrDevHospitalNotExists        = "hospital does not exist in the database"
	ErrDevPatientNotExists         = "patient does not exist in the database"
	ErrDevMedicationNotExists      = "medication does not exist in the database"
	ErrDevPurchaseNotExists        = "purchase does not exist in the database"
	ErrDevPasswordsDoNotMatch      = "password and password confirmation do not match"
	ErrDevInsufficientStock        = "requested quantity exceeds medication stock"
	ErrDevPatientHasNoEmail        = "patient document has no email address"

	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"

	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisSetNX         = "failed to set data with NX option to redis"
	ErrDevRedisGetNoData     = "no data found in redis for key %s"
	ErrDevRedisUnlock        = "failed to release redis lock"
	ErrDevRabbitMQPublish    = "failed to publish message to queue %s"
	ErrDevMinioCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioGetObject     = "failed to get object from bucket %s"
	ErrDevSMTPSendEmail      = "failed to send email through SMTP host %s"

	ErrDevScheduleInvalidFrequency     = "dosing frequency value must be greater than zero"
	ErrDevScheduleFrequencyTooDense    = "dosing frequency per day cannot exceed 24"
	ErrDevScheduleInvalidDuration      = "dosing duration value must not be negative"
	ErrDevScheduleInvalidAnchor        = "schedule anchor start is not a valid timestamp"
	ErrDevScheduleInvalidFrequencyUnit = "dosing frequency unit must be days or hours"
	ErrDevScheduleInvalidDurationUnit  = "dosing duration unit must be days or weeks"
	ErrDevCalendarInvalidEventWindow   = "reminder event end does not follow its start"
	ErrDevCalendarEncode               = "failed to encode reminder events as iCalendar"
	ErrDevCalendarNoEvents             = "refusing to encode a calendar with zero events"
)
