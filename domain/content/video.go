package content

import "time"

// VideoContent represents a video from a firm's channel. Dedup
// identity is the URL.
type VideoContent struct {
	id             int64
	firmID         int64
	title          string
	url            string
	platform       string
	videoID        string
	publishedDate  time.Time
	duration       int
	transcriptFile string
	summary        string
	speakers       []string
	topics         []string
	notified       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewVideoContent creates a VideoContent record.
func NewVideoContent(firmID int64, title, url, platform, videoID string) VideoContent {
	now := time.Now()
	return VideoContent{
		firmID:    firmID,
		title:     title,
		url:       url,
		platform:  platform,
		videoID:   videoID,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructVideoContent rebuilds a VideoContent from persistence.
// Speakers and topics are stored comma-joined and split here.
func ReconstructVideoContent(
	id, firmID int64,
	title, url, platform, videoID string,
	publishedDate time.Time,
	duration int,
	transcriptFile, summary, speakers, topics string,
	notified bool,
	createdAt, updatedAt time.Time,
) VideoContent {
	return VideoContent{
		id:             id,
		firmID:         firmID,
		title:          title,
		url:            url,
		platform:       platform,
		videoID:        videoID,
		publishedDate:  publishedDate,
		duration:       duration,
		transcriptFile: transcriptFile,
		summary:        summary,
		speakers:       SplitTags(speakers),
		topics:         SplitTags(topics),
		notified:       notified,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ID returns the database identity (0 before first save).
func (v VideoContent) ID() int64 { return v.id }

// FirmID returns the owning firm's identity.
func (v VideoContent) FirmID() int64 { return v.firmID }

// Title returns the video title.
func (v VideoContent) Title() string { return v.title }

// URL returns the video URL, the dedup identity.
func (v VideoContent) URL() string { return v.url }

// Platform returns the hosting platform ("youtube").
func (v VideoContent) Platform() string { return v.platform }

// VideoID returns the platform-specific video identifier.
func (v VideoContent) VideoID() string { return v.videoID }

// PublishedDate returns the publication date (zero when unknown).
func (v VideoContent) PublishedDate() time.Time { return v.publishedDate }

// Duration returns the length in seconds (0 when unknown).
func (v VideoContent) Duration() int { return v.duration }

// TranscriptFile returns the relative path of the archived transcript.
func (v VideoContent) TranscriptFile() string { return v.transcriptFile }

// Summary returns the transcript excerpt.
func (v VideoContent) Summary() string { return v.summary }

// Speakers returns the identified speakers.
func (v VideoContent) Speakers() []string {
	result := make([]string, len(v.speakers))
	copy(result, v.speakers)
	return result
}

// Topics returns the identified topics.
func (v VideoContent) Topics() []string {
	result := make([]string, len(v.topics))
	copy(result, v.topics)
	return result
}

// Notified reports whether this video has been announced.
func (v VideoContent) Notified() bool { return v.notified }

// CreatedAt returns the creation time.
func (v VideoContent) CreatedAt() time.Time { return v.createdAt }

// UpdatedAt returns the last update time.
func (v VideoContent) UpdatedAt() time.Time { return v.updatedAt }

// WithPublishedDate returns a copy with the publication date set.
func (v VideoContent) WithPublishedDate(t time.Time) VideoContent {
	v.publishedDate = t
	return v
}

// WithDuration returns a copy with the duration set.
func (v VideoContent) WithDuration(seconds int) VideoContent {
	v.duration = seconds
	return v
}

// WithTranscriptFile returns a copy with the transcript path set.
func (v VideoContent) WithTranscriptFile(path string) VideoContent {
	v.transcriptFile = path
	return v
}

// WithSummary returns a copy with the summary set.
func (v VideoContent) WithSummary(summary string) VideoContent {
	v.summary = summary
	return v
}

// WithSpeakers returns a copy with the speaker list set.
func (v VideoContent) WithSpeakers(speakers []string) VideoContent {
	copied := make([]string, len(speakers))
	copy(copied, speakers)
	v.speakers = copied
	return v
}

// WithTopics returns a copy with the topic list set.
func (v VideoContent) WithTopics(topics []string) VideoContent {
	copied := make([]string, len(topics))
	copy(copied, topics)
	v.topics = copied
	return v
}
