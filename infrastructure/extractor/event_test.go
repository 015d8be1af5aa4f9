package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/infrastructure/persistence"
	"github.com/quantwatch/quantwatch/internal/testdb"
)

const eventsPage = `<html><body>
<div class="event-card">
  <h3 class="title">Citadel Quantitative Trading Tech Talk</h3>
  <p class="description">Join Citadel traders to discuss algorithmic trading and machine learning. Register now.</p>
  <a href="/events/citadel-talk">Details</a>
  <span class="date">2026-09-15</span>
  <span class="location">Cambridge, MA</span>
</div>
<div class="event-card">
  <h3>Intro to Pottery</h3>
  <p class="description">Hands on clay at the student center.</p>
  <a href="/events/pottery">Details</a>
</div>
</body></html>`

const eventsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Campus Events</title>
<item>
  <title>Workshop on High Frequency Trading</title>
  <link>https://events.example.edu/hft-workshop</link>
  <description>Covers low latency systems, volatility, and arbitrage.</description>
  <pubDate>Tue, 10 Mar 2026 09:00:00 -0400</pubDate>
</item>
</channel></rss>`

func newEventExtractor(t *testing.T) (*EventExtractor, persistence.EventStore, persistence.FirmStore, persistence.ScrapeLogStore) {
	t.Helper()
	db := testdb.New(t)
	firms := persistence.NewFirmStore(db)
	events := persistence.NewEventStore(db)
	logs := persistence.NewScrapeLogStore(db)
	detector := firm.NewDetector(firm.NewRegistry())
	ext := NewEventExtractor(testClient(), detector, firms, events, logs, testLogger())
	return ext, events, firms, logs
}

func TestScrapeEventsPage(t *testing.T) {
	ctx := context.Background()
	ext, events, firms, logs := newEventExtractor(t)
	srv := serveFixtures(t, map[string]string{"/events": eventsPage})

	found := ext.ScrapePage(ctx, srv.URL+"/events", "MIT CSAIL")
	require.Equal(t, 1, found)

	stored, err := events.Find(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	event := stored[0]
	assert.Equal(t, "Citadel Quantitative Trading Tech Talk", event.Title())
	assert.Equal(t, srv.URL+"/events/citadel-talk", event.EventURL())
	assert.Equal(t, "Cambridge, MA", event.Location())
	assert.Equal(t, "MIT CSAIL", event.SourceName())
	assert.Equal(t, 2026, event.EventDate().Year())
	assert.True(t, event.RequiresRegistration())
	assert.Equal(t, srv.URL+"/events/citadel-talk", event.RegistrationURL())
	assert.False(t, event.Notified())

	owner, err := firms.ByName(ctx, "Citadel")
	require.NoError(t, err)
	assert.Equal(t, owner.ID(), event.FirmID())

	entries, err := logs.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Success())
	assert.Equal(t, 1, entries[0].EventsFound())
}

func TestScrapeEventsPageSecondRunFindsNothing(t *testing.T) {
	ctx := context.Background()
	ext, events, _, logs := newEventExtractor(t)
	srv := serveFixtures(t, map[string]string{"/events": eventsPage})

	require.Equal(t, 1, ext.ScrapePage(ctx, srv.URL+"/events", "MIT CSAIL"))
	require.Equal(t, 0, ext.ScrapePage(ctx, srv.URL+"/events", "MIT CSAIL"))

	count, err := events.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	entries, err := logs.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestScrapeEventsFeedGenericFirm(t *testing.T) {
	ctx := context.Background()
	ext, events, firms, _ := newEventExtractor(t)
	srv := serveFixtures(t, map[string]string{"/feed": eventsFeed})

	found := ext.ScrapeFeed(ctx, srv.URL+"/feed", "Campus Events")
	require.Equal(t, 1, found)

	stored, err := events.Find(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Workshop on High Frequency Trading", stored[0].Title())
	assert.Equal(t, "https://events.example.edu/hft-workshop", stored[0].EventURL())

	owner, err := firms.ByName(ctx, firm.GenericFirmName)
	require.NoError(t, err)
	assert.Equal(t, owner.ID(), stored[0].FirmID())
}

func TestScrapeEventsSourceDispatch(t *testing.T) {
	ctx := context.Background()
	ext, events, _, _ := newEventExtractor(t)
	srv := serveFixtures(t, map[string]string{"/feed": eventsFeed})

	found := ext.ScrapeSource(ctx, firm.Source{Name: "Campus Events", URL: srv.URL + "/page", RSS: srv.URL + "/feed"})
	require.Equal(t, 1, found)

	count, err := events.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestScrapeEventsPageFailureIsRecorded(t *testing.T) {
	ctx := context.Background()
	ext, events, _, logs := newEventExtractor(t)
	srv := serveFixtures(t, map[string]string{})

	found := ext.ScrapePage(ctx, srv.URL+"/missing", "MIT CSAIL")
	assert.Equal(t, 0, found)

	count, err := events.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	entries, err := logs.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success())
	assert.NotEmpty(t, entries[0].ErrorMessage())
}

func TestExtractEventCandidatesIDFallback(t *testing.T) {
	page := `<html><body><section id="upcoming-events">
	  <h2>Jane Street Puzzle Night</h2>
	  <a href="https://example.com/puzzles">RSVP</a>
	</section></body></html>`

	doc, err := parseHTML([]byte(page))
	require.NoError(t, err)

	candidates := extractEventCandidates(doc, "https://example.com/events")
	require.Len(t, candidates, 1)
	assert.Equal(t, "Jane Street Puzzle Night", candidates[0].title)
	assert.Equal(t, "https://example.com/puzzles", candidates[0].url)
}
