package worker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"pressroom/pkg/config"
)

// Config holds the settings of the scheduled publisher.
//
// Every field has a default that lets the worker run unconfigured, and
// loading is fail-open: an invalid environment value falls back to the
// default with a warning rather than refusing to start. A CMS where the
// publisher silently stays down is worse than one running on defaults.
type Config struct {
	// CronSchedule decides how often the publisher scans for due drafts.
	// Standard 5-field cron expression.
	CronSchedule string

	// Timezone is the IANA timezone the cron schedule is evaluated in.
	Timezone string

	// JobTimeout caps a single publisher run. Must be positive.
	JobTimeout time.Duration

	// BatchSize caps how many articles one run may publish.
	BatchSize int

	// HealthPort is the port for the worker's health probe server.
	HealthPort int
}

// DefaultConfig returns production-ready defaults: scan every minute in
// UTC, give each run five minutes, publish at most 100 articles per pass.
func DefaultConfig() Config {
	return Config{
		CronSchedule: "* * * * *",
		Timezone:     "UTC",
		JobTimeout:   5 * time.Minute,
		BatchSize:    100,
		HealthPort:   9091,
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := cron.ParseStandard(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if c.JobTimeout <= 0 {
		errs = append(errs, fmt.Errorf("job timeout: must be positive, got %v", c.JobTimeout))
	}
	if c.BatchSize < 1 || c.BatchSize > 1000 {
		errs = append(errs, fmt.Errorf("batch size: must be between 1 and 1000, got %d", c.BatchSize))
	}
	if c.HealthPort < 1024 || c.HealthPort > 65535 {
		errs = append(errs, fmt.Errorf("health port: must be between 1024 and 65535, got %d", c.HealthPort))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadFromEnv builds the publisher configuration from environment variables:
//
//	PUBLISH_CRON        cron expression (default "* * * * *")
//	WORKER_TIMEZONE     IANA timezone name (default "UTC")
//	PUBLISH_TIMEOUT     duration string, e.g. "5m"
//	PUBLISH_BATCH_SIZE  integer 1-1000
//	WORKER_HEALTH_PORT  integer 1024-65535
//
// Each field is validated independently; an invalid value keeps the
// default, logs a warning and increments the fallback counter. The
// returned config always passes Validate.
func LoadFromEnv(logger *slog.Logger) Config {
	cfg := DefaultConfig()
	def := DefaultConfig()

	cfg.CronSchedule = config.GetEnvString("PUBLISH_CRON", def.CronSchedule)
	if _, err := cron.ParseStandard(cfg.CronSchedule); err != nil {
		fallback(logger, "cron_schedule", cfg.CronSchedule, def.CronSchedule, err)
		cfg.CronSchedule = def.CronSchedule
	}

	cfg.Timezone = config.GetEnvString("WORKER_TIMEZONE", def.Timezone)
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		fallback(logger, "timezone", cfg.Timezone, def.Timezone, err)
		cfg.Timezone = def.Timezone
	}

	cfg.JobTimeout = config.GetEnvDuration("PUBLISH_TIMEOUT", def.JobTimeout)
	if cfg.JobTimeout <= 0 {
		fallback(logger, "job_timeout", cfg.JobTimeout, def.JobTimeout,
			fmt.Errorf("must be positive"))
		cfg.JobTimeout = def.JobTimeout
	}

	cfg.BatchSize = config.GetEnvInt("PUBLISH_BATCH_SIZE", def.BatchSize)
	if cfg.BatchSize < 1 || cfg.BatchSize > 1000 {
		fallback(logger, "batch_size", cfg.BatchSize, def.BatchSize,
			fmt.Errorf("must be between 1 and 1000"))
		cfg.BatchSize = def.BatchSize
	}

	cfg.HealthPort = config.GetEnvInt("WORKER_HEALTH_PORT", def.HealthPort)
	if cfg.HealthPort < 1024 || cfg.HealthPort > 65535 {
		fallback(logger, "health_port", cfg.HealthPort, def.HealthPort,
			fmt.Errorf("must be between 1024 and 65535"))
		cfg.HealthPort = def.HealthPort
	}

	return cfg
}

func fallback(logger *slog.Logger, field string, invalid, def interface{}, err error) {
	RecordConfigFallback(field)
	logger.Warn("configuration fallback applied",
		slog.String("field", field),
		slog.Any("invalid_value", invalid),
		slog.Any("default_value", def),
		slog.Any("error", err))
}
