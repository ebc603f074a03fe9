package config

type InternalConfig struct {
	App      App
	JWT      JWT
	Mailer   Mailer
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	Worker   Worker
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	SessionExpiredTimeInHours  int
}

type JWT struct {
	Secret                string
	AccessExpTimeInHours  int
	RefreshExpTimeInHours int
}

type Mailer struct {
	EmailSender string
}

type AppMinio struct {
	BucketName string
}

type AppRabbitMQ struct {
	MailerQueue string
	SMSQueue    string
}

type Worker struct {
	// ReminderCronSpec defines the cron expression for the reminder dispatch
	// worker (e.g. "@hourly").
	ReminderCronSpec string
	// ReminderWindowInMinutes is how far ahead of an event start the worker
	// publishes its SMS payload.
	ReminderWindowInMinutes int
	// ReminderLookbackInDays bounds the purchase scan to recent documents.
	ReminderLookbackInDays int
}
