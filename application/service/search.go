package service

import (
	"context"
	"fmt"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/domain/store"
)

// Search is the read side: title search across every content type and
// the firm and audit queries backing the API.
type Search struct {
	firms   firm.Store
	events  content.EventStore
	jobs    content.JobStore
	blogs   content.BlogStore
	reports content.ReportStore
	videos  content.VideoStore
	scrapes content.ScrapeLogStore
}

// NewSearch creates a Search over the given stores.
func NewSearch(
	firms firm.Store,
	events content.EventStore,
	jobs content.JobStore,
	blogs content.BlogStore,
	reports content.ReportStore,
	videos content.VideoStore,
	scrapes content.ScrapeLogStore,
) *Search {
	return &Search{
		firms:   firms,
		events:  events,
		jobs:    jobs,
		blogs:   blogs,
		reports: reports,
		videos:  videos,
		scrapes: scrapes,
	}
}

// Query returns every content record whose title contains q,
// case-insensitively, merged across the five content types in a fixed
// type order.
func (s *Search) Query(ctx context.Context, q string) ([]content.Item, error) {
	var items []content.Item

	events, err := s.events.Find(ctx, store.WithTitleContains(q))
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	for _, e := range events {
		items = append(items, e.Item())
	}

	jobs, err := s.jobs.Find(ctx, store.WithTitleContains(q))
	if err != nil {
		return nil, fmt.Errorf("search job postings: %w", err)
	}
	for _, j := range jobs {
		items = append(items, j.Item())
	}

	posts, err := s.blogs.Find(ctx, store.WithTitleContains(q))
	if err != nil {
		return nil, fmt.Errorf("search blog posts: %w", err)
	}
	for _, p := range posts {
		items = append(items, p.Item())
	}

	reports, err := s.reports.Find(ctx, store.WithTitleContains(q))
	if err != nil {
		return nil, fmt.Errorf("search investor reports: %w", err)
	}
	for _, r := range reports {
		items = append(items, r.Item())
	}

	videos, err := s.videos.Find(ctx, store.WithTitleContains(q))
	if err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}
	for _, v := range videos {
		items = append(items, v.Item())
	}

	return items, nil
}

// Firms returns every tracked firm on record.
func (s *Search) Firms(ctx context.Context) ([]firm.Firm, error) {
	return s.firms.Find(ctx, store.WithOrderAsc("name"))
}

// FirmsWithEvents returns the firms that have produced at least one
// stored event.
func (s *Search) FirmsWithEvents(ctx context.Context) ([]firm.Firm, error) {
	return s.firms.HavingEvents(ctx)
}

// FirmEventHistory returns a firm's stored events, newest first.
func (s *Search) FirmEventHistory(ctx context.Context, firmName string) ([]content.Event, error) {
	f, err := s.firms.ByName(ctx, firmName)
	if err != nil {
		return nil, fmt.Errorf("look up firm %q: %w", firmName, err)
	}
	return s.events.Find(ctx, store.WithFirmID(f.ID()), store.WithOrderDesc("created_at"))
}

// RecentScrapes returns the latest scrape audit entries, newest first.
func (s *Search) RecentScrapes(ctx context.Context, limit int) ([]content.ScrapeLog, error) {
	return s.scrapes.Recent(ctx, limit)
}
