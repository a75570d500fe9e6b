package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DSN, broker URL)
// - default: Values common across all environments (quotas, timezone, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Quota  QuotaConfig
	Ledger LedgerConfig
	Notify NotifyConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// QuotaConfig carries the per-slot daily capacities and the reference
// timezone used to derive the partition day key. The quota is soft: under
// simultaneous submissions the service may admit slightly past the limit.
type QuotaConfig struct {
	AM       int    `envconfig:"DAILY_AM_QUOTA" default:"15"`
	PM       int    `envconfig:"DAILY_PM_QUOTA" default:"15"`
	TimeZone string `envconfig:"TIMEZONE" default:"America/New_York"`
}

func (q QuotaConfig) Validate() error {
	if q.AM <= 0 || q.PM <= 0 {
		return fmt.Errorf("slot quotas must be positive: AM=%d PM=%d", q.AM, q.PM)
	}
	if _, err := time.LoadLocation(q.TimeZone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", q.TimeZone, err)
	}
	return nil
}

// Location resolves the configured reference timezone. Validate must have
// succeeded before calling; falls back to UTC otherwise.
func (q QuotaConfig) Location() *time.Location {
	loc, err := time.LoadLocation(q.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type LedgerConfig struct {
	// Backend selects the ledger store implementation: postgres, pebble or memory.
	Backend string `envconfig:"LEDGER_BACKEND" default:"postgres"`

	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"coffee"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"coffee"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	PebblePath string `envconfig:"PEBBLE_PATH" default:"./data/ledger"`
}

func (c LedgerConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type NotifyConfig struct {
	// AMQPURL empty disables the barista notifier (nop publisher).
	AMQPURL   string `envconfig:"AMQP_URL" default:""`
	Exchange  string `envconfig:"NOTIFY_EXCHANGE" default:"coffee_orders"`
	Recipient string `envconfig:"BARISTA_RECIPIENT" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Quota.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8889"},
		Quota: QuotaConfig{
			AM:       2,
			PM:       2,
			TimeZone: "America/New_York",
		},
		Ledger: LedgerConfig{Backend: "memory"},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
