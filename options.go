package quantwatch

import (
	"io"

	"github.com/quantwatch/quantwatch/internal/config"
	"github.com/quantwatch/quantwatch/internal/log"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	appOpts []config.AppConfigOption
	appCfg  *config.AppConfig
	logger  *log.Logger
	console io.Writer
}

// Option configures the Client.
type Option func(*clientConfig)

// WithConfig uses a fully loaded application config, for example one
// produced by config.Load. It replaces the config assembled from the
// other options.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *clientConfig) {
		c.appCfg = &cfg
	}
}

// WithSQLite stores data in a SQLite database at the given path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.appOpts = append(c.appOpts, config.WithDBURL("sqlite:///"+path))
	}
}

// WithDatabaseURL sets the database URL. Both sqlite:// and
// postgres:// schemes are supported.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.appOpts = append(c.appOpts, config.WithDBURL(url))
	}
}

// WithDataDir sets the directory for archived content and the default
// SQLite database.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.appOpts = append(c.appOpts, config.WithDataDir(dir))
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *log.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithEmail enables email digests over SMTP.
func WithEmail(server string, port int, sender, password, recipient string) Option {
	return func(c *clientConfig) {
		c.appOpts = append(c.appOpts, config.WithEmail(
			config.NewSMTPEmail(server, port, sender, password, recipient),
		))
	}
}

// WithToggles sets which content types the monitor scrapes.
func WithToggles(t config.ScrapeToggles) Option {
	return func(c *clientConfig) {
		c.appOpts = append(c.appOpts, config.WithToggles(t))
	}
}

// WithEventSources adds extra event pages or feeds beyond the built-in
// registry.
func WithEventSources(sources []config.EventSource) Option {
	return func(c *clientConfig) {
		c.appOpts = append(c.appOpts, config.WithEventSources(sources))
	}
}

// WithScheduleTime sets the daily HH:MM run time used by Schedule.
func WithScheduleTime(at string) Option {
	return func(c *clientConfig) {
		c.appOpts = append(c.appOpts, config.WithScheduleTime(at))
	}
}

// WithConsoleWriter redirects console digest output, used by tests.
func WithConsoleWriter(w io.Writer) Option {
	return func(c *clientConfig) {
		c.console = w
	}
}
