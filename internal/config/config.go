// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultLogLevel      = "INFO"
	DefaultScheduleTime  = "20:00"
	DefaultHTTPTimeout   = 10 * time.Second
	DefaultReportTimeout = 30 * time.Second
	DefaultSMTPPort      = 587
	DefaultAPIAddr       = "127.0.0.1:8750"
	DefaultArchiveSubdir = "content"
	DefaultDBFile        = "quantwatch.db"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// DefaultDataDir returns the default data directory (~/.quantwatch).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".quantwatch"
	}
	return filepath.Join(home, ".quantwatch")
}

// EmailConfig holds SMTP delivery settings.
type EmailConfig struct {
	enabled   bool
	server    string
	port      int
	sender    string
	password  string
	recipient string
}

// NewEmailConfig creates an EmailConfig with defaults (disabled).
func NewEmailConfig() EmailConfig {
	return EmailConfig{port: DefaultSMTPPort}
}

// NewSMTPEmail creates an enabled EmailConfig for the given SMTP
// account. A zero port falls back to the default submission port.
func NewSMTPEmail(server string, port int, sender, password, recipient string) EmailConfig {
	if port == 0 {
		port = DefaultSMTPPort
	}
	return EmailConfig{
		enabled:   true,
		server:    server,
		port:      port,
		sender:    sender,
		password:  password,
		recipient: recipient,
	}
}

// Enabled returns whether email delivery is requested.
func (e EmailConfig) Enabled() bool { return e.enabled }

// Server returns the SMTP server host.
func (e EmailConfig) Server() string { return e.server }

// Port returns the SMTP server port.
func (e EmailConfig) Port() int { return e.port }

// Sender returns the sender address used for authentication and From.
func (e EmailConfig) Sender() string { return e.sender }

// Password returns the SMTP password.
func (e EmailConfig) Password() string { return e.password }

// Recipient returns the destination address.
func (e EmailConfig) Recipient() string { return e.recipient }

// IsComplete reports whether every field required to actually send an
// email is present. Enabled-but-incomplete configurations fall back to
// console delivery.
func (e EmailConfig) IsComplete() bool {
	return e.server != "" && e.sender != "" && e.password != "" && e.recipient != ""
}

// EventSource is an additional events page or feed beyond the built-in
// campus sources.
type EventSource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	RSS  string `yaml:"rss"`
}

// ScrapeToggles controls which content types a run covers.
type ScrapeToggles struct {
	events  bool
	jobs    bool
	blogs   bool
	reports bool
	videos  bool

	// Job source toggles.
	knownFirms bool
	eventFirms bool
}

// NewScrapeToggles returns toggles with everything enabled.
func NewScrapeToggles() ScrapeToggles {
	return ScrapeToggles{
		events:     true,
		jobs:       true,
		blogs:      true,
		reports:    true,
		videos:     true,
		knownFirms: true,
		eventFirms: true,
	}
}

// WithEvents returns a copy with event scraping set.
func (s ScrapeToggles) WithEvents(v bool) ScrapeToggles { s.events = v; return s }

// WithJobs returns a copy with job scraping set.
func (s ScrapeToggles) WithJobs(v bool) ScrapeToggles { s.jobs = v; return s }

// WithBlogs returns a copy with blog scraping set.
func (s ScrapeToggles) WithBlogs(v bool) ScrapeToggles { s.blogs = v; return s }

// WithReports returns a copy with report scraping set.
func (s ScrapeToggles) WithReports(v bool) ScrapeToggles { s.reports = v; return s }

// WithVideos returns a copy with video scraping set.
func (s ScrapeToggles) WithVideos(v bool) ScrapeToggles { s.videos = v; return s }

// WithKnownFirms returns a copy with the known-careers job source set.
func (s ScrapeToggles) WithKnownFirms(v bool) ScrapeToggles { s.knownFirms = v; return s }

// WithEventFirms returns a copy with the firms-with-events job source set.
func (s ScrapeToggles) WithEventFirms(v bool) ScrapeToggles { s.eventFirms = v; return s }

// Events reports whether event scraping is enabled.
func (s ScrapeToggles) Events() bool { return s.events }

// Jobs reports whether job scraping is enabled.
func (s ScrapeToggles) Jobs() bool { return s.jobs }

// Blogs reports whether blog scraping is enabled.
func (s ScrapeToggles) Blogs() bool { return s.blogs }

// Reports reports whether investor-report scraping is enabled.
func (s ScrapeToggles) Reports() bool { return s.reports }

// Videos reports whether video scraping is enabled.
func (s ScrapeToggles) Videos() bool { return s.videos }

// KnownFirms reports whether the registry's careers URLs are scraped.
func (s ScrapeToggles) KnownFirms() bool { return s.knownFirms }

// EventFirms reports whether firms discovered via events are scraped for jobs.
func (s ScrapeToggles) EventFirms() bool { return s.eventFirms }

// AppConfig is the immutable application configuration.
type AppConfig struct {
	dataDir       string
	dbURL         string
	logLevel      string
	logFormat     LogFormat
	scheduleTime  string
	runOnStart    bool
	apiAddr       string
	httpTimeout   time.Duration
	reportTimeout time.Duration
	email         EmailConfig
	toggles       ScrapeToggles
	eventSources  []EventSource
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		dataDir:       DefaultDataDir(),
		logLevel:      DefaultLogLevel,
		logFormat:     LogFormatPretty,
		scheduleTime:  DefaultScheduleTime,
		apiAddr:       DefaultAPIAddr,
		httpTimeout:   DefaultHTTPTimeout,
		reportTimeout: DefaultReportTimeout,
		email:         NewEmailConfig(),
		toggles:       NewScrapeToggles(),
	}
}

// DataDir returns the data directory.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL. When unset, a SQLite file
// under the data directory is used.
func (c AppConfig) DBURL() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	return "sqlite:///" + filepath.Join(c.dataDir, DefaultDBFile)
}

// ArchiveDir returns the directory for stored blog posts, reports, and
// transcripts.
func (c AppConfig) ArchiveDir() string {
	return filepath.Join(c.dataDir, DefaultArchiveSubdir)
}

// LogLevel returns the configured log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the configured log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// ScheduleTime returns the daily run time in HH:MM.
func (c AppConfig) ScheduleTime() string { return c.scheduleTime }

// RunOnStart reports whether a scheduled deployment also runs immediately.
func (c AppConfig) RunOnStart() bool { return c.runOnStart }

// APIAddr returns the bind address for the read-only status API.
func (c AppConfig) APIAddr() string { return c.apiAddr }

// HTTPTimeout returns the per-request timeout for page and feed fetches.
func (c AppConfig) HTTPTimeout() time.Duration { return c.httpTimeout }

// ReportTimeout returns the per-request timeout for report downloads,
// which are larger binaries.
func (c AppConfig) ReportTimeout() time.Duration { return c.reportTimeout }

// Email returns the email delivery settings.
func (c AppConfig) Email() EmailConfig { return c.email }

// Toggles returns the per-content-type scrape toggles.
func (c AppConfig) Toggles() ScrapeToggles { return c.toggles }

// EventSources returns additional event sources from configuration.
func (c AppConfig) EventSources() []EventSource {
	result := make([]EventSource, len(c.eventSources))
	copy(result, c.eventSources)
	return result
}

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	if err := os.MkdirAll(c.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

// AppConfigOption mutates an AppConfig during construction.
type AppConfigOption func(*AppConfig)

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) { c.dataDir = dir }
}

// WithDBURL sets the database connection URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithScheduleTime sets the daily run time (HH:MM).
func WithScheduleTime(t string) AppConfigOption {
	return func(c *AppConfig) { c.scheduleTime = t }
}

// WithRunOnStart sets whether a scheduled deployment runs immediately.
func WithRunOnStart(v bool) AppConfigOption {
	return func(c *AppConfig) { c.runOnStart = v }
}

// WithAPIAddr sets the status API bind address.
func WithAPIAddr(addr string) AppConfigOption {
	return func(c *AppConfig) { c.apiAddr = addr }
}

// WithHTTPTimeout sets the page-fetch timeout.
func WithHTTPTimeout(d time.Duration) AppConfigOption {
	return func(c *AppConfig) { c.httpTimeout = d }
}

// WithEmail sets the email delivery settings.
func WithEmail(e EmailConfig) AppConfigOption {
	return func(c *AppConfig) { c.email = e }
}

// WithToggles sets the scrape toggles.
func WithToggles(t ScrapeToggles) AppConfigOption {
	return func(c *AppConfig) { c.toggles = t }
}

// WithEventSources sets additional event sources.
func WithEventSources(sources []EventSource) AppConfigOption {
	return func(c *AppConfig) {
		c.eventSources = make([]EventSource, len(sources))
		copy(c.eventSources, sources)
	}
}

// New builds an AppConfig from defaults plus options.
func New(opts ...AppConfigOption) AppConfig {
	cfg := NewAppConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
