package content

import (
	"context"

	"github.com/quantwatch/quantwatch/domain/store"
)

// EventStore defines event persistence operations.
type EventStore interface {
	// Add inserts the event unless one with the same (firm, title)
	// pair exists. The bool result reports whether a new row was
	// created; a duplicate is not an error.
	Add(ctx context.Context, event Event) (Event, bool, error)

	// Unnotified returns every event not yet announced.
	Unnotified(ctx context.Context) ([]Event, error)

	// MarkNotified flips the notified flag for one event.
	MarkNotified(ctx context.Context, id int64) error

	// Find returns events matching the given options.
	Find(ctx context.Context, options ...store.Option) ([]Event, error)

	// Count returns the number of events matching the given options.
	Count(ctx context.Context, options ...store.Option) (int64, error)
}

// JobStore defines job posting persistence operations.
type JobStore interface {
	// Add inserts the posting unless one with the same job URL exists.
	Add(ctx context.Context, job JobPosting) (JobPosting, bool, error)

	// Unnotified returns every posting not yet announced.
	Unnotified(ctx context.Context) ([]JobPosting, error)

	// MarkNotified flips the notified flag for one posting.
	MarkNotified(ctx context.Context, id int64) error

	// Find returns postings matching the given options.
	Find(ctx context.Context, options ...store.Option) ([]JobPosting, error)

	// Count returns the number of postings matching the given options.
	Count(ctx context.Context, options ...store.Option) (int64, error)
}

// BlogStore defines blog post persistence operations.
type BlogStore interface {
	// Add inserts the post unless one with the same URL exists.
	Add(ctx context.Context, post BlogPost) (BlogPost, bool, error)

	// Unnotified returns every post not yet announced.
	Unnotified(ctx context.Context) ([]BlogPost, error)

	// MarkNotified flips the notified flag for one post.
	MarkNotified(ctx context.Context, id int64) error

	// Find returns posts matching the given options.
	Find(ctx context.Context, options ...store.Option) ([]BlogPost, error)

	// Count returns the number of posts matching the given options.
	Count(ctx context.Context, options ...store.Option) (int64, error)
}

// ReportStore defines investor report persistence operations.
type ReportStore interface {
	// Add inserts the report unless one with the same URL exists.
	Add(ctx context.Context, report InvestorReport) (InvestorReport, bool, error)

	// Unnotified returns every report not yet announced.
	Unnotified(ctx context.Context) ([]InvestorReport, error)

	// MarkNotified flips the notified flag for one report.
	MarkNotified(ctx context.Context, id int64) error

	// Find returns reports matching the given options.
	Find(ctx context.Context, options ...store.Option) ([]InvestorReport, error)

	// Count returns the number of reports matching the given options.
	Count(ctx context.Context, options ...store.Option) (int64, error)
}

// VideoStore defines video content persistence operations.
type VideoStore interface {
	// Add inserts the video unless one with the same URL exists.
	Add(ctx context.Context, video VideoContent) (VideoContent, bool, error)

	// Unnotified returns every video not yet announced.
	Unnotified(ctx context.Context) ([]VideoContent, error)

	// MarkNotified flips the notified flag for one video.
	MarkNotified(ctx context.Context, id int64) error

	// Find returns videos matching the given options.
	Find(ctx context.Context, options ...store.Option) ([]VideoContent, error)

	// Count returns the number of videos matching the given options.
	Count(ctx context.Context, options ...store.Option) (int64, error)
}

// ScrapeLogStore defines scrape audit persistence. Entries are append
// only.
type ScrapeLogStore interface {
	// Log appends one scrape record.
	Log(ctx context.Context, entry ScrapeLog) (ScrapeLog, error)

	// Recent returns the most recent entries, newest first.
	Recent(ctx context.Context, limit int) ([]ScrapeLog, error)

	// Find returns entries matching the given options.
	Find(ctx context.Context, options ...store.Option) ([]ScrapeLog, error)
}
