package extractor

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantwatch/quantwatch/infrastructure/archive"
	"github.com/quantwatch/quantwatch/infrastructure/persistence"
	"github.com/quantwatch/quantwatch/internal/testdb"
)

const channelFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:yt="http://www.youtube.com/xml/schemas/2015">
<title>Firm Channel</title>
<entry>
  <title>Machine Learning in Trading Systems</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=abcdefghijk"/>
  <yt:videoId>abcdefghijk</yt:videoId>
  <published>2026-05-01T10:00:00Z</published>
</entry>
</feed>`

const videoTranscript = `<transcript>
<text start="0.0" dur="4.2">John Smith: Welcome to our machine learning talk.</text>
<text start="4.2" dur="5.1">We cover trading infrastructure and data pipelines.</text>
</transcript>`

func newVideoExtractor(t *testing.T) (*VideoExtractor, persistence.VideoStore, *archive.Archive) {
	t.Helper()
	db := testdb.New(t)
	firms := persistence.NewFirmStore(db)
	videos := persistence.NewVideoStore(db)
	arch, err := archive.New(t.TempDir())
	require.NoError(t, err)
	ext := NewVideoExtractor(testClient(), firms, videos, arch, testLogger())
	return ext, videos, arch
}

func TestScrapeChannel(t *testing.T) {
	ctx := context.Background()
	ext, videos, arch := newVideoExtractor(t)
	srv := serveFixtures(t, map[string]string{
		"/feeds/UCfirm":  channelFeed,
		"/tt/abcdefghijk": videoTranscript,
	})
	ext.feedFormat = srv.URL + "/feeds/%s"
	ext.timedTextFormat = srv.URL + "/tt/%s"

	found := ext.ScrapeChannel(ctx, "Jane Street", "UCfirm")
	require.Equal(t, 1, found)

	stored, err := videos.Find(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	video := stored[0]
	assert.Equal(t, "Machine Learning in Trading Systems", video.Title())
	assert.Equal(t, "https://www.youtube.com/watch?v=abcdefghijk", video.URL())
	assert.Equal(t, "youtube", video.Platform())
	assert.Equal(t, "abcdefghijk", video.VideoID())
	assert.Equal(t, 2026, video.PublishedDate().Year())
	assert.Contains(t, video.Summary(), "Welcome to our machine learning talk.")
	assert.Contains(t, video.Topics(), "machine learning")
	assert.Contains(t, video.Topics(), "trading")
	assert.Contains(t, video.Topics(), "infrastructure")
	assert.Equal(t, []string{"John Smith"}, video.Speakers())
	require.NotEmpty(t, video.TranscriptFile())

	text, err := arch.Read(video.TranscriptFile())
	require.NoError(t, err)
	assert.Contains(t, string(text), "trading infrastructure")
}

func TestScrapeChannelSecondRunFindsNothing(t *testing.T) {
	ctx := context.Background()
	ext, videos, _ := newVideoExtractor(t)
	srv := serveFixtures(t, map[string]string{
		"/feeds/UCfirm":  channelFeed,
		"/tt/abcdefghijk": videoTranscript,
	})
	ext.feedFormat = srv.URL + "/feeds/%s"
	ext.timedTextFormat = srv.URL + "/tt/%s"

	require.Equal(t, 1, ext.ScrapeChannel(ctx, "Jane Street", "UCfirm"))
	require.Equal(t, 0, ext.ScrapeChannel(ctx, "Jane Street", "UCfirm"))

	count, err := videos.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestScrapeVideoURLWithoutTranscript(t *testing.T) {
	ctx := context.Background()
	ext, videos, _ := newVideoExtractor(t)
	srv := serveFixtures(t, map[string]string{})
	ext.timedTextFormat = srv.URL + "/tt/%s"

	stored := ext.ScrapeVideoURL(ctx, "Citadel", "https://www.youtube.com/watch?v=zzzzzzzzzzz")
	require.True(t, stored)

	all, err := videos.Find(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "zzzzzzzzzzz", all[0].VideoID())
	assert.Empty(t, all[0].Summary())
	assert.Empty(t, all[0].TranscriptFile())
}

func TestScrapeVideoURLRejectsUnparsableURL(t *testing.T) {
	ctx := context.Background()
	ext, videos, _ := newVideoExtractor(t)

	stored := ext.ScrapeVideoURL(ctx, "Citadel", "https://example.com/home")
	assert.False(t, stored)

	count, err := videos.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestExtractVideoID(t *testing.T) {
	assert.Equal(t, "abcdefghijk", extractVideoID("https://www.youtube.com/watch?v=abcdefghijk"))
	assert.Equal(t, "abcdefghijk", extractVideoID("https://youtu.be/abcdefghijk"))
	assert.Empty(t, extractVideoID("https://example.com/"))
}

func TestTranscriptSpeakers(t *testing.T) {
	transcript := "Alice Chen: Hi. Bob: Hello. Alice Chen: Again. Carol: Q. Dave: A. Erin: B. Frank: C."
	speakers := transcriptSpeakers(transcript)
	assert.Equal(t, []string{"Alice Chen", "Bob", "Carol", "Dave", "Erin"}, speakers)
}

func TestTranscriptTopicLabels(t *testing.T) {
	labels := transcriptTopicLabels("We discuss neural networks and market strategy.")
	assert.Equal(t, []string{"machine learning", "trading"}, labels)
}

func TestTranscriptSummaryRuneBoundary(t *testing.T) {
	short := "a brief transcript"
	assert.Equal(t, short, transcriptSummary(short))

	// A two-byte rune straddles the excerpt cutoff.
	transcript := strings.Repeat("x", transcriptSummaryLimit-1) + "é" + strings.Repeat("y", 50)
	summary := transcriptSummary(transcript)

	assert.True(t, utf8.ValidString(summary))
	assert.Len(t, summary, transcriptSummaryLimit-1)
	assert.True(t, strings.HasSuffix(summary, "x"))
}
