package extractor

import (
	"context"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/domain/store"
	"github.com/quantwatch/quantwatch/infrastructure/archive"
	"github.com/quantwatch/quantwatch/internal/log"
)

const (
	// maxFeedVideos bounds how many entries one channel feed can
	// contribute.
	maxFeedVideos = 20

	// maxSpeakers caps speakers extracted from one transcript.
	maxSpeakers = 5

	// transcriptSummaryLimit caps the transcript excerpt stored as the
	// video summary.
	transcriptSummaryLimit = 500

	channelFeedURL = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"
	timedTextURL   = "https://video.google.com/timedtext?lang=en&v=%s"
)

var videoIDPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// transcriptTopics maps topic labels to transcript keywords.
var transcriptTopics = []struct {
	label    string
	keywords []string
}{
	{"machine learning", []string{"machine learning", "ml", "neural network", "deep learning"}},
	{"trading", []string{"trading", "trade", "market", "strategy"}},
	{"infrastructure", []string{"infrastructure", "system", "platform", "architecture"}},
	{"data", []string{"data", "dataset", "database", "analytics"}},
	{"performance", []string{"performance", "latency", "optimization", "speed"}},
	{"research", []string{"research", "quant", "quantitative", "algorithm"}},
}

var speakerPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s*:`)

// VideoExtractor scrapes firm YouTube channels and transcripts.
type VideoExtractor struct {
	client  *Client
	firms   firm.Store
	videos  content.VideoStore
	archive *archive.Archive
	logger  *log.Logger

	// Endpoint formats, overridable in tests.
	feedFormat      string
	timedTextFormat string
}

// NewVideoExtractor creates a VideoExtractor.
func NewVideoExtractor(
	client *Client,
	firms firm.Store,
	videos content.VideoStore,
	arch *archive.Archive,
	logger *log.Logger,
) *VideoExtractor {
	return &VideoExtractor{
		client:          client,
		firms:           firms,
		videos:          videos,
		archive:         arch,
		logger:          logger,
		feedFormat:      channelFeedURL,
		timedTextFormat: timedTextURL,
	}
}

// ScrapeChannel scrapes one firm's channel feed and returns the number
// of new videos stored.
func (v *VideoExtractor) ScrapeChannel(ctx context.Context, firmName, channelID string) int {
	feedURL := fmt.Sprintf(v.feedFormat, channelID)
	v.logger.InfoContext(ctx, "scraping video channel", "firm", firmName, "channel", channelID)

	body, err := v.client.Get(ctx, feedURL)
	if err != nil {
		v.logger.ErrorContext(ctx, "video scrape failed", "firm", firmName, "error", err)
		return 0
	}
	items, err := parseFeed(body)
	if err != nil {
		v.logger.ErrorContext(ctx, "video scrape failed", "firm", firmName, "error", err)
		return 0
	}
	if len(items) > maxFeedVideos {
		items = items[:maxFeedVideos]
	}

	found := 0
	for _, item := range items {
		videoID := item.VideoID
		if videoID == "" {
			videoID = extractVideoID(item.Link)
		}
		candidate := content.NewVideoContent(0, item.Title, item.Link, "youtube", videoID)
		if !item.Published.IsZero() {
			candidate = candidate.WithPublishedDate(item.Published)
		}
		if v.process(ctx, candidate, firmName) {
			found++
		}
	}
	v.logger.InfoContext(ctx, "video channel scraped", "firm", firmName, "videos", found)
	return found
}

// ScrapeVideoURL scrapes a single video URL.
func (v *VideoExtractor) ScrapeVideoURL(ctx context.Context, firmName, videoURL string) bool {
	videoID := extractVideoID(videoURL)
	if videoID == "" {
		return false
	}
	candidate := content.NewVideoContent(0, videoURL, videoURL, "youtube", videoID)
	return v.process(ctx, candidate, firmName)
}

// process stores a candidate video with a best-effort transcript. A
// missing transcript never blocks acceptance.
func (v *VideoExtractor) process(ctx context.Context, candidate content.VideoContent, firmName string) bool {
	if candidate.VideoID() == "" || candidate.URL() == "" {
		return false
	}

	// Skip known URLs before fetching transcripts.
	known, err := v.videos.Count(ctx, store.WithURL(candidate.URL()))
	if err != nil {
		v.logger.ErrorContext(ctx, "failed to check video", "url", candidate.URL(), "error", err)
		return false
	}
	if known > 0 {
		return false
	}

	owner, err := v.firms.GetOrCreate(ctx, firm.New(firmName))
	if err != nil {
		v.logger.ErrorContext(ctx, "failed to resolve firm", "firm", firmName, "error", err)
		return false
	}

	video := content.NewVideoContent(owner.ID(), candidate.Title(), candidate.URL(), candidate.Platform(), candidate.VideoID())
	if !candidate.PublishedDate().IsZero() {
		video = video.WithPublishedDate(candidate.PublishedDate())
	}

	if transcript := v.fetchTranscript(ctx, candidate.VideoID()); transcript != "" {
		video = video.WithSummary(transcriptSummary(transcript)).
			WithTopics(transcriptTopicLabels(transcript)).
			WithSpeakers(transcriptSpeakers(transcript))

		path, err := v.archive.SaveTranscript(firmName, candidate.Title(), transcript)
		if err != nil {
			v.logger.WarnContext(ctx, "failed to archive transcript", "title", candidate.Title(), "error", err)
		} else {
			video = video.WithTranscriptFile(path)
		}
	}

	_, created, err := v.videos.Add(ctx, video)
	if err != nil {
		v.logger.ErrorContext(ctx, "failed to store video", "title", candidate.Title(), "error", err)
		return false
	}
	return created
}

type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []string `xml:"text"`
}

// fetchTranscript pulls the English timed-text track for a video,
// returning "" when unavailable.
func (v *VideoExtractor) fetchTranscript(ctx context.Context, videoID string) string {
	body, err := v.client.Get(ctx, fmt.Sprintf(v.timedTextFormat, videoID))
	if err != nil {
		v.logger.DebugContext(ctx, "no transcript available", "video", videoID, "error", err)
		return ""
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		v.logger.DebugContext(ctx, "failed to parse transcript", "video", videoID, "error", err)
		return ""
	}

	segments := make([]string, 0, len(tt.Texts))
	for _, s := range tt.Texts {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, " ")
}

func extractVideoID(url string) string {
	if m := videoIDPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// transcriptSummary shortens a transcript to the stored excerpt size,
// backing up so the cut never lands inside a multi-byte rune.
func transcriptSummary(transcript string) string {
	limit := transcriptSummaryLimit
	if len(transcript) <= limit {
		return transcript
	}
	for limit > 0 && !utf8.RuneStart(transcript[limit]) {
		limit--
	}
	return transcript[:limit]
}

// transcriptTopicLabels tags a transcript with topic labels by keyword
// matching.
func transcriptTopicLabels(transcript string) []string {
	lower := strings.ToLower(transcript)
	var labels []string
	for _, topic := range transcriptTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				labels = append(labels, topic.label)
				break
			}
		}
	}
	return labels
}

// transcriptSpeakers extracts up to maxSpeakers names from
// "Name:" style transcript markers, in order of first appearance.
func transcriptSpeakers(transcript string) []string {
	seen := make(map[string]struct{})
	var speakers []string
	for _, m := range speakerPattern.FindAllStringSubmatch(transcript, -1) {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		speakers = append(speakers, name)
		if len(speakers) == maxSpeakers {
			break
		}
	}
	return speakers
}
