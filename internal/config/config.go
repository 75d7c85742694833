package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	_ "github.com/joho/godotenv/autoload"
)

type config struct {
	Production         bool          `env:"PRODUCTION" envDefault:"false"`
	Port               string        `env:"PORT" envDefault:"80"`
	StoreDriver        string        `env:"STORE_DRIVER" envDefault:"postgres"`
	PostgresUrl        string        `env:"POSTGRES_URL"`
	SqlitePath         string        `env:"SQLITE_PATH" envDefault:"presenter-bot.db"`
	RedisUrl           string        `env:"REDIS_URL" envDefault:""`
	SlackBotToken      string        `env:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string        `env:"SLACK_SIGNING_SECRET"`
	SlackChannelID     string        `env:"SLACK_CHANNEL_ID"`
	SlackAPIURL        string        `env:"SLACK_API_URL" envDefault:""`
	SlackRateLimit     float64       `env:"SLACK_RATE_LIMIT" envDefault:"1"`
	Timezone           string        `env:"TIMEZONE" envDefault:"Europe/Oslo"`
	ReminderCron       string        `env:"REMINDER_CRON" envDefault:"0 9 * * MON-FRI"`
	TopicCron          string        `env:"TOPIC_CRON" envDefault:"*/30 * * * *"`
	TickLockTTL        time.Duration `env:"TICK_LOCK_TTL" envDefault:"5m"`
	SkipSignatureCheck bool          `env:"SKIP_SIGNATURE_CHECK" envDefault:"false"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func StoreDriver() string {
	return conf.StoreDriver
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func SqlitePath() string {
	return conf.SqlitePath
}

// RedisURL is empty when no redis is deployed.
func RedisURL() string {
	return conf.RedisUrl
}

func SlackBotToken() string {
	return conf.SlackBotToken
}

func SlackSigningSecret() string {
	return conf.SlackSigningSecret
}

func SlackChannelID() string {
	return conf.SlackChannelID
}

func SlackAPIURL() string {
	return conf.SlackAPIURL
}

// SlackRateLimit is the number of outbound Slack calls allowed per second.
func SlackRateLimit() float64 {
	return conf.SlackRateLimit
}

func Timezone() string {
	return conf.Timezone
}

// Location loads the configured timezone, falling back to UTC.
func Location() *time.Location {
	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func ReminderCron() string {
	return conf.ReminderCron
}

func TopicCron() string {
	return conf.TopicCron
}

func TickLockTTL() time.Duration {
	return conf.TickLockTTL
}

func SkipSignatureCheck() bool {
	return conf.SkipSignatureCheck
}
