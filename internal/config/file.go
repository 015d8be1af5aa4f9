package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the on-disk YAML config file layout.
type fileConfig struct {
	DataDir            string        `yaml:"data_dir"`
	DatabaseURL        string        `yaml:"database_url"`
	LogLevel           string        `yaml:"log_level"`
	LogFormat          string        `yaml:"log_format"`
	ScheduleTime       string        `yaml:"schedule_time"`
	RunOnStart         bool          `yaml:"run_on_start"`
	APIAddr            string        `yaml:"api_addr"`
	HTTPTimeoutSeconds float64       `yaml:"http_timeout_seconds"`
	Email              fileEmail     `yaml:"email"`
	Scrape             *fileScrape   `yaml:"scrape"`
	EventSources       []EventSource `yaml:"event_sources"`
}

type fileEmail struct {
	Enabled    bool   `yaml:"enabled"`
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Sender     string `yaml:"sender"`
	Password   string `yaml:"password"`
	Recipient  string `yaml:"recipient"`
}

type fileScrape struct {
	Events     *bool `yaml:"events"`
	Jobs       *bool `yaml:"jobs"`
	Blogs      *bool `yaml:"blogs"`
	Reports    *bool `yaml:"reports"`
	Videos     *bool `yaml:"videos"`
	KnownFirms *bool `yaml:"known_firms"`
	EventFirms *bool `yaml:"event_firms"`
}

// LoadFile reads a YAML config file and overlays it on cfg.
// A missing file is not an error when optional is true.
func LoadFile(path string, cfg AppConfig, optional bool) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return fc.apply(cfg), nil
}

func (fc fileConfig) apply(cfg AppConfig) AppConfig {
	if fc.DataDir != "" {
		WithDataDir(fc.DataDir)(&cfg)
	}
	if fc.DatabaseURL != "" {
		WithDBURL(fc.DatabaseURL)(&cfg)
	}
	if fc.LogLevel != "" {
		WithLogLevel(fc.LogLevel)(&cfg)
	}
	if fc.LogFormat != "" {
		WithLogFormat(parseLogFormat(fc.LogFormat))(&cfg)
	}
	if fc.ScheduleTime != "" {
		WithScheduleTime(fc.ScheduleTime)(&cfg)
	}
	if fc.RunOnStart {
		WithRunOnStart(true)(&cfg)
	}
	if fc.APIAddr != "" {
		WithAPIAddr(fc.APIAddr)(&cfg)
	}
	if fc.HTTPTimeoutSeconds > 0 {
		WithHTTPTimeout(time.Duration(fc.HTTPTimeoutSeconds * float64(time.Second)))(&cfg)
	}
	if fc.Email.SMTPServer != "" || fc.Email.Enabled {
		email := EmailConfig{
			enabled:   fc.Email.Enabled || fc.Email.SMTPServer != "",
			server:    fc.Email.SMTPServer,
			port:      fc.Email.SMTPPort,
			sender:    fc.Email.Sender,
			password:  fc.Email.Password,
			recipient: fc.Email.Recipient,
		}
		if email.port == 0 {
			email.port = DefaultSMTPPort
		}
		WithEmail(email)(&cfg)
	}
	if fc.Scrape != nil {
		toggles := cfg.Toggles()
		setToggle(&toggles.events, fc.Scrape.Events)
		setToggle(&toggles.jobs, fc.Scrape.Jobs)
		setToggle(&toggles.blogs, fc.Scrape.Blogs)
		setToggle(&toggles.reports, fc.Scrape.Reports)
		setToggle(&toggles.videos, fc.Scrape.Videos)
		setToggle(&toggles.knownFirms, fc.Scrape.KnownFirms)
		setToggle(&toggles.eventFirms, fc.Scrape.EventFirms)
		WithToggles(toggles)(&cfg)
	}
	if len(fc.EventSources) > 0 {
		WithEventSources(fc.EventSources)(&cfg)
	}
	return cfg
}

func setToggle(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
