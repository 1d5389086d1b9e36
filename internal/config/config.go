package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production bool   `env:"PRODUCTION" envDefault:"false"`
	Port       string `env:"PORT" envDefault:"80"`

	PostgresUrl string `env:"POSTGRES_URL,required"`
	RedisUrl    string `env:"REDIS_URL" envDefault:"redis:6379"`
	QueueName   string `env:"INTEGRATION_QUEUE" envDefault:"integration-events"`

	JwtTTL             time.Duration `env:"TOKEN_TTL" envDefault:"20m"`
	Secret             string        `env:"SECRET" envDefault:""`
	EventNameMaxLength int           `env:"EVENT_NAME_MAX_LENGTH" envDefault:"100"`

	MailDryRun        bool   `env:"MAIL_DRY_RUN" envDefault:"true"`
	MailFrom          string `env:"MAIL_FROM" envDefault:"reminders@localhost"`
	ClientSecretPath  string `env:"CLIENT_SECRET_PATH" envDefault:"secrets/client_secret.json"`
	ClientType        string `env:"CLIENT_TYPE" envDefault:"web"`
	GmailRefreshToken string `env:"GMAIL_REFRESH_TOKEN" envDefault:""`

	AttendeesBatchSize                 int           `env:"ATTENDEES_BATCH_SIZE" envDefault:"100"`
	PersonalEventsBatchSize            int           `env:"PERSONAL_EVENTS_BATCH_SIZE" envDefault:"100"`
	NotificationsBatchSize             int           `env:"NOTIFICATIONS_BATCH_SIZE" envDefault:"100"`
	OutboxBatchSize                    int           `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`
	WorkerSleepInterval                time.Duration `env:"WORKER_SLEEP_INTERVAL" envDefault:"1m"`
	NotificationTimeDiscrepancyMinutes int           `env:"NOTIFICATION_TIME_DISCREPANCY_MINUTES" envDefault:"5"`
}

var conf config

// Load parses configuration from the environment. It must be called before
// any getter is used.
func Load() error {
	if err := env.Parse(&conf); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if conf.NotificationTimeDiscrepancyMinutes < 0 {
		return fmt.Errorf("NOTIFICATION_TIME_DISCREPANCY_MINUTES must not be negative")
	}

	return nil
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func QueueName() string {
	return conf.QueueName
}

func JwtTTL() time.Duration {
	return conf.JwtTTL
}

func Secret() string {
	return conf.Secret
}

func EventNameMaxLength() int {
	return conf.EventNameMaxLength
}

func MailDryRun() bool {
	return conf.MailDryRun
}

func MailFrom() string {
	return conf.MailFrom
}

func ClientSecretPath() string {
	return conf.ClientSecretPath
}

func ClientType() string {
	return conf.ClientType
}

func GmailRefreshToken() string {
	return conf.GmailRefreshToken
}

func AttendeesBatchSize() int {
	return conf.AttendeesBatchSize
}

func PersonalEventsBatchSize() int {
	return conf.PersonalEventsBatchSize
}

func NotificationsBatchSize() int {
	return conf.NotificationsBatchSize
}

func OutboxBatchSize() int {
	return conf.OutboxBatchSize
}

func WorkerSleepInterval() time.Duration {
	return conf.WorkerSleepInterval
}

func NotificationTimeDiscrepancy() int {
	return conf.NotificationTimeDiscrepancyMinutes
}
