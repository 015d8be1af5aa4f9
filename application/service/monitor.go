// Package service orchestrates scraping runs, scheduling, and read-side
// queries over the content stores.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/infrastructure/notify"
	"github.com/quantwatch/quantwatch/internal/config"
	"github.com/quantwatch/quantwatch/internal/log"
)

// EventScraper scrapes one events source.
type EventScraper interface {
	ScrapeSource(ctx context.Context, src firm.Source) int
}

// JobScraper scrapes one firm's careers page.
type JobScraper interface {
	ScrapeCareersPage(ctx context.Context, firmName, careersURL string) int
}

// BlogScraper scrapes one firm's blog.
type BlogScraper interface {
	ScrapeBlog(ctx context.Context, firmName, blogURL string) int
}

// ReportScraper scrapes one firm's investor relations page.
type ReportScraper interface {
	ScrapeInvestorPage(ctx context.Context, firmName, investorURL string) int
}

// VideoScraper scrapes one firm's video channel.
type VideoScraper interface {
	ScrapeChannel(ctx context.Context, firmName, channelID string) int
}

// ItemNotifier announces newly stored content.
type ItemNotifier interface {
	NotifyNewItems(ctx context.Context) notify.Summary
}

// RunSummary reports what one monitoring run did.
type RunSummary struct {
	RunID     string
	Started   time.Time
	Duration  time.Duration
	Events    int
	Jobs      int
	BlogPosts int
	Reports   int
	Videos    int
	Notified  notify.Summary
}

// Monitor runs the extractors in a fixed sequence and then the
// notifier, once per invocation.
type Monitor struct {
	cfg      config.AppConfig
	registry *firm.Registry
	firms    firm.Store
	events   EventScraper
	jobs     JobScraper
	blogs    BlogScraper
	reports  ReportScraper
	videos   VideoScraper
	notifier ItemNotifier
	logger   *log.Logger
}

// NewMonitor creates a Monitor.
func NewMonitor(
	cfg config.AppConfig,
	registry *firm.Registry,
	firms firm.Store,
	events EventScraper,
	jobs JobScraper,
	blogs BlogScraper,
	reports ReportScraper,
	videos VideoScraper,
	notifier ItemNotifier,
	logger *log.Logger,
) *Monitor {
	return &Monitor{
		cfg:      cfg,
		registry: registry,
		firms:    firms,
		events:   events,
		jobs:     jobs,
		blogs:    blogs,
		reports:  reports,
		videos:   videos,
		notifier: notifier,
		logger:   logger,
	}
}

// Run executes one full monitoring pass: every enabled content type in
// sequence, then one notification pass. A panic anywhere in the run is
// logged and ends the run with whatever was counted so far.
func (m *Monitor) Run(ctx context.Context) (summary RunSummary) {
	runID := uuid.NewString()
	ctx = log.WithRunID(ctx, runID)

	summary.RunID = runID
	summary.Started = time.Now()
	defer func() {
		summary.Duration = time.Since(summary.Started)
		if r := recover(); r != nil {
			m.logger.ErrorContext(ctx, "monitoring run panicked", "panic", r)
			return
		}
		m.logger.InfoContext(ctx, "monitoring run complete",
			"events", summary.Events,
			"jobs", summary.Jobs,
			"blog_posts", summary.BlogPosts,
			"reports", summary.Reports,
			"videos", summary.Videos,
			"notified", summary.Notified.Total(),
			"duration", summary.Duration,
		)
	}()

	m.logger.InfoContext(ctx, "monitoring run started")
	toggles := m.cfg.Toggles()

	if toggles.Events() {
		summary.Events = m.scrapeEvents(ctx)
	}
	if toggles.Jobs() {
		summary.Jobs = m.scrapeJobs(ctx, toggles)
	}
	if toggles.Blogs() {
		summary.BlogPosts = m.scrapeBlogs(ctx)
	}
	if toggles.Reports() {
		summary.Reports = m.scrapeReports(ctx)
	}
	if toggles.Videos() {
		summary.Videos = m.scrapeVideos(ctx)
	}

	summary.Notified = m.notifier.NotifyNewItems(ctx)
	return summary
}

// scrapeEvents covers the built-in campus sources plus any extra
// sources from configuration.
func (m *Monitor) scrapeEvents(ctx context.Context) int {
	found := 0
	for _, src := range m.registry.EventSources() {
		found += m.events.ScrapeSource(ctx, src)
	}
	for _, src := range m.cfg.EventSources() {
		found += m.events.ScrapeSource(ctx, firm.Source{Name: src.Name, URL: src.URL, RSS: src.RSS})
	}
	return found
}

// scrapeJobs covers the firms selected by the job-source toggles: the
// known-careers registry, firms that have shown up in events, or both.
// Each firm is scraped at most once per run.
func (m *Monitor) scrapeJobs(ctx context.Context, toggles config.ScrapeToggles) int {
	type target struct {
		firmName   string
		careersURL string
	}
	var targets []target
	seen := make(map[string]struct{})

	add := func(firmName, careersURL string) {
		if careersURL == "" {
			return
		}
		if _, ok := seen[firmName]; ok {
			return
		}
		seen[firmName] = struct{}{}
		targets = append(targets, target{firmName: firmName, careersURL: careersURL})
	}

	if toggles.KnownFirms() {
		for _, name := range m.registry.CareersFirms() {
			url, _ := m.registry.CareersURL(name)
			add(name, url)
		}
	}
	if toggles.EventFirms() {
		firms, err := m.firms.HavingEvents(ctx)
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to list firms with events", "error", err)
		}
		for _, f := range firms {
			url := f.CareersURL()
			if url == "" {
				url, _ = m.registry.CareersURL(f.Name())
			}
			add(f.Name(), url)
		}
	}

	found := 0
	for _, tgt := range targets {
		found += m.jobs.ScrapeCareersPage(ctx, tgt.firmName, tgt.careersURL)
	}
	return found
}

func (m *Monitor) scrapeBlogs(ctx context.Context) int {
	found := 0
	for _, name := range m.registry.BlogFirms() {
		if url, ok := m.registry.BlogURL(name); ok {
			found += m.blogs.ScrapeBlog(ctx, name, url)
		}
	}
	return found
}

func (m *Monitor) scrapeReports(ctx context.Context) int {
	found := 0
	for _, name := range m.registry.InvestorFirms() {
		if url, ok := m.registry.InvestorURL(name); ok {
			found += m.reports.ScrapeInvestorPage(ctx, name, url)
		}
	}
	return found
}

func (m *Monitor) scrapeVideos(ctx context.Context) int {
	found := 0
	for _, name := range m.registry.YouTubeFirms() {
		if channelID, ok := m.registry.YouTubeChannel(name); ok {
			found += m.videos.ScrapeChannel(ctx, name, channelID)
		}
	}
	return found
}
