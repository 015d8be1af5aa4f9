package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/infrastructure/persistence"
	"github.com/quantwatch/quantwatch/internal/config"
	"github.com/quantwatch/quantwatch/internal/log"
	"github.com/quantwatch/quantwatch/internal/testdb"
)

type recordedDigest struct {
	subject string
	body    string
}

type recordingDeliverer struct {
	digests []recordedDigest
	err     error
}

func (d *recordingDeliverer) Deliver(_ context.Context, subject, body string) error {
	d.digests = append(d.digests, recordedDigest{subject: subject, body: body})
	return d.err
}

type notifierEnv struct {
	notifier  *Notifier
	deliverer *recordingDeliverer
	firms     persistence.FirmStore
	events    persistence.EventStore
	jobs      persistence.JobStore
	blogs     persistence.BlogStore
	reports   persistence.ReportStore
	videos    persistence.VideoStore
}

func newNotifierEnv(t *testing.T) notifierEnv {
	t.Helper()
	db := testdb.New(t)
	env := notifierEnv{
		deliverer: &recordingDeliverer{},
		firms:     persistence.NewFirmStore(db),
		events:    persistence.NewEventStore(db),
		jobs:      persistence.NewJobStore(db),
		blogs:     persistence.NewBlogStore(db),
		reports:   persistence.NewReportStore(db),
		videos:    persistence.NewVideoStore(db),
	}
	logger := log.NewLoggerWithWriter(io.Discard, config.LogFormatJSON, "ERROR")
	env.notifier = NewNotifier(env.firms, env.events, env.jobs, env.blogs, env.reports, env.videos, env.deliverer, logger)
	return env
}

func (e notifierEnv) seedFirm(t *testing.T, name string) firm.Firm {
	t.Helper()
	f, err := e.firms.GetOrCreate(context.Background(), firm.New(name))
	require.NoError(t, err)
	return f
}

func TestNotifyNewItemsDrainsAndMarks(t *testing.T) {
	ctx := context.Background()
	env := newNotifierEnv(t)
	owner := env.seedFirm(t, "Citadel")

	_, _, err := env.events.Add(ctx, content.NewEvent(owner.ID(), "Quant Tech Talk").WithLocation("NYC"))
	require.NoError(t, err)
	_, _, err = env.events.Add(ctx, content.NewEvent(owner.ID(), "Trading Systems Night"))
	require.NoError(t, err)
	_, _, err = env.jobs.Add(ctx, content.NewJobPosting(owner.ID(), "Quant Researcher", "https://example.com/jobs/1"))
	require.NoError(t, err)
	_, _, err = env.blogs.Add(ctx, content.NewBlogPost(owner.ID(), "Latency Deep Dive", "https://example.com/blog/1"))
	require.NoError(t, err)
	_, _, err = env.reports.Add(ctx, content.NewInvestorReport(owner.ID(), "Q1 2026 Letter", "https://example.com/q1.pdf", content.ReportQuarterly))
	require.NoError(t, err)
	_, _, err = env.videos.Add(ctx, content.NewVideoContent(owner.ID(), "Markets Talk", "https://youtube.com/watch?v=abcdefghijk", "youtube", "abcdefghijk"))
	require.NoError(t, err)

	summary := env.notifier.NotifyNewItems(ctx)
	assert.Equal(t, 2, summary.Events)
	assert.Equal(t, 1, summary.Jobs)
	assert.Equal(t, 1, summary.BlogPosts)
	assert.Equal(t, 1, summary.Reports)
	assert.Equal(t, 1, summary.Videos)
	assert.Equal(t, 6, summary.Total())

	require.Len(t, env.deliverer.digests, 5)
	assert.Contains(t, env.deliverer.digests[0].body, "Quant Tech Talk")
	assert.Contains(t, env.deliverer.digests[0].body, "Firm: Citadel")
	assert.Contains(t, env.deliverer.digests[1].body, "Apply: https://example.com/jobs/1")

	for name, unnotified := range map[string]func() int{
		"events":  func() int { items, err := env.events.Unnotified(ctx); require.NoError(t, err); return len(items) },
		"jobs":    func() int { items, err := env.jobs.Unnotified(ctx); require.NoError(t, err); return len(items) },
		"blogs":   func() int { items, err := env.blogs.Unnotified(ctx); require.NoError(t, err); return len(items) },
		"reports": func() int { items, err := env.reports.Unnotified(ctx); require.NoError(t, err); return len(items) },
		"videos":  func() int { items, err := env.videos.Unnotified(ctx); require.NoError(t, err); return len(items) },
	} {
		assert.Zero(t, unnotified(), name)
	}
}

func TestNotifyNewItemsSecondPassIsEmpty(t *testing.T) {
	ctx := context.Background()
	env := newNotifierEnv(t)
	owner := env.seedFirm(t, "Two Sigma")

	_, _, err := env.events.Add(ctx, content.NewEvent(owner.ID(), "Research Forum"))
	require.NoError(t, err)

	first := env.notifier.NotifyNewItems(ctx)
	assert.Equal(t, 1, first.Total())

	second := env.notifier.NotifyNewItems(ctx)
	assert.Equal(t, 0, second.Total())
	assert.Len(t, env.deliverer.digests, 1)
}

func TestNotifyNewItemsMarksDespiteDeliveryFailure(t *testing.T) {
	ctx := context.Background()
	env := newNotifierEnv(t)
	env.deliverer.err = errors.New("smtp connection refused")
	owner := env.seedFirm(t, "DE Shaw")

	_, _, err := env.events.Add(ctx, content.NewEvent(owner.ID(), "Campus Visit"))
	require.NoError(t, err)

	summary := env.notifier.NotifyNewItems(ctx)
	assert.Equal(t, 1, summary.Events)

	remaining, err := env.events.Unnotified(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestNotifyNewItemsNothingPending(t *testing.T) {
	ctx := context.Background()
	env := newNotifierEnv(t)

	summary := env.notifier.NotifyNewItems(ctx)
	assert.Equal(t, 0, summary.Total())
	assert.Empty(t, env.deliverer.digests)
}

func TestSendTest(t *testing.T) {
	ctx := context.Background()
	env := newNotifierEnv(t)

	require.NoError(t, env.notifier.SendTest(ctx))
	require.Len(t, env.deliverer.digests, 1)
	assert.Equal(t, "QuantWatch: test notification", env.deliverer.digests[0].subject)
	assert.Contains(t, env.deliverer.digests[0].body, "configured correctly")
}

func TestFormatEventsFieldConditionalLines(t *testing.T) {
	names := map[int64]string{1: "Citadel"}

	bare := content.NewEvent(1, "Minimal Event")
	full := content.NewEvent(1, "Full Event").
		WithDescription(strings.Repeat("x", 250)).
		WithLocation("Chicago").
		WithEventURL("https://example.com/event").
		WithSourceName("MIT CSAIL").
		WithRegistration(true, "https://example.com/register")

	_, body := formatEvents([]content.Event{reconstructWithID(bare, 11), reconstructWithID(full, 12)}, names)

	assert.Contains(t, body, "1. Minimal Event")
	assert.Contains(t, body, "2. Full Event")
	assert.Contains(t, body, "Location: Chicago")
	assert.Contains(t, body, "Registration required: https://example.com/register")
	assert.NotContains(t, body, "URL: https://example.com/event")
	assert.Contains(t, body, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, body, strings.Repeat("x", 201))

	minimal := body[:strings.Index(body, "2. Full Event")]
	assert.NotContains(t, minimal, "Location:")
	assert.NotContains(t, minimal, "Description:")
}

// reconstructWithID stamps an ID onto a freshly built event, as the
// store would after insert.
func reconstructWithID(e content.Event, id int64) content.Event {
	return content.ReconstructEvent(
		id, e.FirmID(), e.Title(), e.Description(), e.EventURL(), e.EventDate(),
		e.Location(), e.SourceName(), e.RequiresRegistration(), e.RegistrationURL(),
		e.Notified(), e.CreatedAt(), e.UpdatedAt(),
	)
}

func TestConsoleDeliverer(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDeliverer(&buf)

	require.NoError(t, d.Deliver(context.Background(), "Subject Line", "digest body"))
	out := buf.String()
	assert.Contains(t, out, "Subject Line")
	assert.Contains(t, out, "digest body")
	assert.Contains(t, out, strings.Repeat("=", 80))
}

func TestDelivererFor(t *testing.T) {
	console := DelivererFor(config.NewEmailConfig(), io.Discard)
	assert.IsType(t, &ConsoleDeliverer{}, console)

	email := DelivererFor(config.NewSMTPEmail("smtp.example.com", 587, "a@example.com", "secret", "b@example.com"), io.Discard)
	assert.IsType(t, &EmailDeliverer{}, email)
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("a@example.com", "b@example.com", "Hello", "line one\nline <two>"))
	assert.Contains(t, msg, "Subject: Hello\r\n")
	assert.Contains(t, msg, "Content-Type: multipart/alternative")
	assert.Contains(t, msg, "line one\nline <two>")
	assert.Contains(t, msg, "line &lt;two&gt;")
}
