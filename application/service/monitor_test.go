package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/infrastructure/notify"
	"github.com/quantwatch/quantwatch/infrastructure/persistence"
	"github.com/quantwatch/quantwatch/internal/config"
	"github.com/quantwatch/quantwatch/internal/log"
	"github.com/quantwatch/quantwatch/internal/testdb"
)

type stubEventScraper struct {
	sources []firm.Source
	per     int
}

func (s *stubEventScraper) ScrapeSource(_ context.Context, src firm.Source) int {
	s.sources = append(s.sources, src)
	return s.per
}

type stubJobScraper struct {
	firms []string
	per   int
}

func (s *stubJobScraper) ScrapeCareersPage(_ context.Context, firmName, _ string) int {
	s.firms = append(s.firms, firmName)
	return s.per
}

type stubFirmScraper struct {
	firms []string
	per   int
}

func (s *stubFirmScraper) ScrapeBlog(_ context.Context, firmName, _ string) int {
	s.firms = append(s.firms, firmName)
	return s.per
}

func (s *stubFirmScraper) ScrapeInvestorPage(_ context.Context, firmName, _ string) int {
	s.firms = append(s.firms, firmName)
	return s.per
}

func (s *stubFirmScraper) ScrapeChannel(_ context.Context, firmName, _ string) int {
	s.firms = append(s.firms, firmName)
	return s.per
}

type stubNotifier struct {
	calls   int
	summary notify.Summary
}

func (s *stubNotifier) NotifyNewItems(_ context.Context) notify.Summary {
	s.calls++
	return s.summary
}

type monitorEnv struct {
	events   *stubEventScraper
	jobs     *stubJobScraper
	blogs    *stubFirmScraper
	reports  *stubFirmScraper
	videos   *stubFirmScraper
	notifier *stubNotifier
	firms    persistence.FirmStore
	store    persistence.EventStore
	registry *firm.Registry
}

func newMonitorEnv(t *testing.T, cfg config.AppConfig) (*Monitor, *monitorEnv) {
	t.Helper()
	db := testdb.New(t)
	env := &monitorEnv{
		events:   &stubEventScraper{per: 1},
		jobs:     &stubJobScraper{per: 1},
		blogs:    &stubFirmScraper{per: 1},
		reports:  &stubFirmScraper{per: 1},
		videos:   &stubFirmScraper{per: 1},
		notifier: &stubNotifier{summary: notify.Summary{Events: 1}},
		firms:    persistence.NewFirmStore(db),
		store:    persistence.NewEventStore(db),
		registry: firm.NewRegistry(),
	}
	logger := log.NewLoggerWithWriter(io.Discard, config.LogFormatJSON, "ERROR")
	monitor := NewMonitor(cfg, env.registry, env.firms, env.events, env.jobs, env.blogs, env.reports, env.videos, env.notifier, logger)
	return monitor, env
}

func TestMonitorRunCoversEverySource(t *testing.T) {
	cfg := config.New(config.WithEventSources([]config.EventSource{
		{Name: "Extra Calendar", URL: "https://example.edu/events"},
	}))
	monitor, env := newMonitorEnv(t, cfg)

	summary := monitor.Run(context.Background())

	wantEvents := len(env.registry.EventSources()) + 1
	assert.Equal(t, wantEvents, summary.Events)
	require.Len(t, env.events.sources, wantEvents)
	assert.Equal(t, "Extra Calendar", env.events.sources[wantEvents-1].Name)

	assert.Equal(t, len(env.registry.CareersFirms()), summary.Jobs)
	assert.Equal(t, len(env.registry.BlogFirms()), summary.BlogPosts)
	assert.Equal(t, len(env.registry.InvestorFirms()), summary.Reports)
	assert.Equal(t, len(env.registry.YouTubeFirms()), summary.Videos)

	assert.Equal(t, 1, env.notifier.calls)
	assert.Equal(t, 1, summary.Notified.Total())
	assert.NotEmpty(t, summary.RunID)
}

func TestMonitorTogglesDisableScrapers(t *testing.T) {
	toggles := config.NewScrapeToggles().
		WithEvents(false).
		WithJobs(false).
		WithBlogs(false).
		WithReports(false).
		WithVideos(false)
	monitor, env := newMonitorEnv(t, config.New(config.WithToggles(toggles)))

	summary := monitor.Run(context.Background())

	assert.Zero(t, summary.Events+summary.Jobs+summary.BlogPosts+summary.Reports+summary.Videos)
	assert.Empty(t, env.events.sources)
	assert.Empty(t, env.jobs.firms)
	assert.Equal(t, 1, env.notifier.calls)
}

func TestMonitorJobTargetsFromEventFirms(t *testing.T) {
	ctx := context.Background()
	toggles := config.NewScrapeToggles().
		WithEvents(false).
		WithBlogs(false).
		WithReports(false).
		WithVideos(false).
		WithKnownFirms(false)
	monitor, env := newMonitorEnv(t, config.New(config.WithToggles(toggles)))

	citadel, err := env.firms.GetOrCreate(ctx, firm.New("Citadel"))
	require.NoError(t, err)
	generic, err := env.firms.GetOrCreate(ctx, firm.New(firm.GenericFirmName))
	require.NoError(t, err)

	_, _, err = env.store.Add(ctx, content.NewEvent(citadel.ID(), "Tech Talk"))
	require.NoError(t, err)
	_, _, err = env.store.Add(ctx, content.NewEvent(generic.ID(), "Open Workshop"))
	require.NoError(t, err)

	monitor.Run(ctx)

	// The generic placeholder firm has no careers page and is skipped.
	assert.Equal(t, []string{"Citadel"}, env.jobs.firms)
}
