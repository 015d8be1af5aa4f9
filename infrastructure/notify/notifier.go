// Package notify drains unnotified content records, formats digests,
// and delivers them to the console or over email.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/internal/log"
)

// Summary reports how many records one notification pass announced.
type Summary struct {
	Events    int
	Jobs      int
	BlogPosts int
	Reports   int
	Videos    int
}

// Total returns the grand total across all content types.
func (s Summary) Total() int {
	return s.Events + s.Jobs + s.BlogPosts + s.Reports + s.Videos
}

// Notifier announces newly discovered content exactly once. Records are
// marked notified after the delivery attempt whether or not delivery
// succeeded; delivery is best effort, the notified flag is not.
type Notifier struct {
	firms     firm.Store
	events    content.EventStore
	jobs      content.JobStore
	blogs     content.BlogStore
	reports   content.ReportStore
	videos    content.VideoStore
	deliverer Deliverer
	logger    *log.Logger
	now       func() time.Time
}

// NewNotifier creates a Notifier over the given stores and delivery
// channel.
func NewNotifier(
	firms firm.Store,
	events content.EventStore,
	jobs content.JobStore,
	blogs content.BlogStore,
	reports content.ReportStore,
	videos content.VideoStore,
	deliverer Deliverer,
	logger *log.Logger,
) *Notifier {
	return &Notifier{
		firms:     firms,
		events:    events,
		jobs:      jobs,
		blogs:     blogs,
		reports:   reports,
		videos:    videos,
		deliverer: deliverer,
		logger:    logger,
		now:       time.Now,
	}
}

// NotifyNewItems drains every unnotified record across the five content
// types, delivers one digest per non-empty type, and marks the drained
// records notified. Store read failures skip that type for the run.
func (n *Notifier) NotifyNewItems(ctx context.Context) Summary {
	var summary Summary
	firmNames := n.firmNames(ctx)

	if events, err := n.events.Unnotified(ctx); err != nil {
		n.logger.ErrorContext(ctx, "failed to load unnotified events", "error", err)
	} else if len(events) > 0 {
		subject, body := formatEvents(events, firmNames)
		n.deliver(ctx, subject, body)
		for _, event := range events {
			n.markNotified(ctx, "event", event.ID(), n.events.MarkNotified)
		}
		summary.Events = len(events)
	}

	if jobs, err := n.jobs.Unnotified(ctx); err != nil {
		n.logger.ErrorContext(ctx, "failed to load unnotified jobs", "error", err)
	} else if len(jobs) > 0 {
		subject, body := formatJobs(jobs, firmNames)
		n.deliver(ctx, subject, body)
		for _, job := range jobs {
			n.markNotified(ctx, "job posting", job.ID(), n.jobs.MarkNotified)
		}
		summary.Jobs = len(jobs)
	}

	if posts, err := n.blogs.Unnotified(ctx); err != nil {
		n.logger.ErrorContext(ctx, "failed to load unnotified blog posts", "error", err)
	} else if len(posts) > 0 {
		subject, body := formatBlogPosts(posts, firmNames)
		n.deliver(ctx, subject, body)
		for _, post := range posts {
			n.markNotified(ctx, "blog post", post.ID(), n.blogs.MarkNotified)
		}
		summary.BlogPosts = len(posts)
	}

	if reports, err := n.reports.Unnotified(ctx); err != nil {
		n.logger.ErrorContext(ctx, "failed to load unnotified reports", "error", err)
	} else if len(reports) > 0 {
		subject, body := formatReports(reports, firmNames)
		n.deliver(ctx, subject, body)
		for _, report := range reports {
			n.markNotified(ctx, "investor report", report.ID(), n.reports.MarkNotified)
		}
		summary.Reports = len(reports)
	}

	if videos, err := n.videos.Unnotified(ctx); err != nil {
		n.logger.ErrorContext(ctx, "failed to load unnotified videos", "error", err)
	} else if len(videos) > 0 {
		subject, body := formatVideos(videos, firmNames)
		n.deliver(ctx, subject, body)
		for _, video := range videos {
			n.markNotified(ctx, "video", video.ID(), n.videos.MarkNotified)
		}
		summary.Videos = len(videos)
	}

	n.logger.InfoContext(ctx, "notification pass complete",
		"events", summary.Events,
		"jobs", summary.Jobs,
		"blog_posts", summary.BlogPosts,
		"reports", summary.Reports,
		"videos", summary.Videos,
		"total", summary.Total(),
	)
	return summary
}

// SendTest sends a test message to verify the delivery channel.
func (n *Notifier) SendTest(ctx context.Context) error {
	body := fmt.Sprintf(
		"Test notification from QuantWatch sent at %s.\n\nIf you can read this, the notification channel is configured correctly.",
		n.now().Format("2006-01-02 15:04:05"),
	)
	if err := n.deliverer.Deliver(ctx, "QuantWatch: test notification", body); err != nil {
		return fmt.Errorf("failed to deliver test notification: %w", err)
	}
	return nil
}

func (n *Notifier) deliver(ctx context.Context, subject, body string) {
	if err := n.deliverer.Deliver(ctx, subject, body); err != nil {
		n.logger.ErrorContext(ctx, "digest delivery failed", "subject", subject, "error", err)
	}
}

func (n *Notifier) markNotified(ctx context.Context, label string, id int64, mark func(context.Context, int64) error) {
	if err := mark(ctx, id); err != nil {
		n.logger.ErrorContext(ctx, "failed to mark record notified", "type", label, "id", id, "error", err)
	}
}

// firmNames loads the id-to-name mapping used in digest lines. Lookup
// failures degrade to digests without firm lines.
func (n *Notifier) firmNames(ctx context.Context) map[int64]string {
	firms, err := n.firms.Find(ctx)
	if err != nil {
		n.logger.WarnContext(ctx, "failed to load firms for digest", "error", err)
		return nil
	}
	names := make(map[int64]string, len(firms))
	for _, f := range firms {
		names[f.ID()] = f.Name()
	}
	return names
}
