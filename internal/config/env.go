package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g. EMAIL_SMTP_SERVER).
type EnvConfig struct {
	// DataDir is the data directory path.
	// Env: DATA_DIR (default: ~/.quantwatch)
	DataDir string `envconfig:"DATA_DIR"`

	// DatabaseURL is the database connection URL.
	// Env: DATABASE_URL
	// Default: sqlite:///{data_dir}/quantwatch.db
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT"`

	// ScheduleTime is the daily run time in HH:MM.
	// Env: SCHEDULE_TIME (default: 20:00)
	ScheduleTime string `envconfig:"SCHEDULE_TIME"`

	// RunOnStart triggers an immediate run when scheduling.
	// Env: RUN_ON_START
	RunOnStart *bool `envconfig:"RUN_ON_START"`

	// APIAddr is the bind address for the status API.
	// Env: API_ADDR (default: 127.0.0.1:8750)
	APIAddr string `envconfig:"API_ADDR"`

	// HTTPTimeoutSeconds is the page-fetch timeout in seconds.
	// Env: HTTP_TIMEOUT_SECONDS (default: 10)
	HTTPTimeoutSeconds float64 `envconfig:"HTTP_TIMEOUT_SECONDS"`

	// Email configures SMTP delivery.
	Email EmailEnv `envconfig:"EMAIL"`

	// Scrape configures per-content-type toggles.
	Scrape ScrapeEnv `envconfig:"SCRAPE"`
}

// EmailEnv holds environment configuration for SMTP delivery.
type EmailEnv struct {
	// Enabled controls whether email delivery is attempted.
	// Env: EMAIL_ENABLED. Setting EMAIL_SMTP_SERVER also implies
	// enabled, matching the YAML loader.
	Enabled *bool `envconfig:"ENABLED"`

	// SMTPServer is the SMTP server host.
	// Env: EMAIL_SMTP_SERVER
	SMTPServer string `envconfig:"SMTP_SERVER"`

	// SMTPPort is the SMTP server port.
	// Env: EMAIL_SMTP_PORT
	SMTPPort int `envconfig:"SMTP_PORT"`

	// Sender is the sender address.
	// Env: EMAIL_SENDER
	Sender string `envconfig:"SENDER"`

	// Password is the SMTP password.
	// Env: EMAIL_PASSWORD
	Password string `envconfig:"PASSWORD"`

	// Recipient is the destination address.
	// Env: EMAIL_RECIPIENT
	Recipient string `envconfig:"RECIPIENT"`
}

// ScrapeEnv holds environment configuration for scrape toggles.
// Unset variables leave the existing toggle value untouched.
type ScrapeEnv struct {
	// Env: SCRAPE_EVENTS
	Events *bool `envconfig:"EVENTS"`
	// Env: SCRAPE_JOBS
	Jobs *bool `envconfig:"JOBS"`
	// Env: SCRAPE_BLOGS
	Blogs *bool `envconfig:"BLOGS"`
	// Env: SCRAPE_REPORTS
	Reports *bool `envconfig:"REPORTS"`
	// Env: SCRAPE_VIDEOS
	Videos *bool `envconfig:"VIDEOS"`
	// Env: SCRAPE_KNOWN_FIRMS
	KnownFirms *bool `envconfig:"KNOWN_FIRMS"`
	// Env: SCRAPE_EVENT_FIRMS
	EventFirms *bool `envconfig:"EVENT_FIRMS"`
}

// LoadFromEnv loads configuration from environment variables with no prefix.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// apply overlays set environment values on top of an existing email
// configuration. A configured SMTP server implies enablement even
// without EMAIL_ENABLED.
func (e EmailEnv) apply(email EmailConfig) EmailConfig {
	if e.Enabled != nil {
		email.enabled = *e.Enabled
	}
	if e.SMTPServer != "" {
		email.server = e.SMTPServer
		email.enabled = email.enabled || e.Enabled == nil
	}
	if e.SMTPPort != 0 {
		email.port = e.SMTPPort
	}
	if e.Sender != "" {
		email.sender = e.Sender
	}
	if e.Password != "" {
		email.password = e.Password
	}
	if e.Recipient != "" {
		email.recipient = e.Recipient
	}
	if email.port == 0 {
		email.port = DefaultSMTPPort
	}
	return email
}

// apply overlays set environment values on top of existing toggles.
func (s ScrapeEnv) apply(t ScrapeToggles) ScrapeToggles {
	setToggle(&t.events, s.Events)
	setToggle(&t.jobs, s.Jobs)
	setToggle(&t.blogs, s.Blogs)
	setToggle(&t.reports, s.Reports)
	setToggle(&t.videos, s.Videos)
	setToggle(&t.knownFirms, s.KnownFirms)
	setToggle(&t.eventFirms, s.EventFirms)
	return t
}

// Apply overlays environment values on top of an AppConfig.
func (e EnvConfig) Apply(cfg AppConfig) AppConfig {
	if e.DataDir != "" {
		WithDataDir(e.DataDir)(&cfg)
	}
	if e.DatabaseURL != "" {
		WithDBURL(e.DatabaseURL)(&cfg)
	}
	if e.LogLevel != "" {
		WithLogLevel(e.LogLevel)(&cfg)
	}
	if e.LogFormat != "" {
		WithLogFormat(parseLogFormat(e.LogFormat))(&cfg)
	}
	if e.ScheduleTime != "" {
		WithScheduleTime(e.ScheduleTime)(&cfg)
	}
	if e.RunOnStart != nil {
		WithRunOnStart(*e.RunOnStart)(&cfg)
	}
	if e.APIAddr != "" {
		WithAPIAddr(e.APIAddr)(&cfg)
	}
	if e.HTTPTimeoutSeconds > 0 {
		WithHTTPTimeout(time.Duration(e.HTTPTimeoutSeconds * float64(time.Second)))(&cfg)
	}
	WithEmail(e.Email.apply(cfg.Email()))(&cfg)
	WithToggles(e.Scrape.apply(cfg.Toggles()))(&cfg)
	return cfg
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
