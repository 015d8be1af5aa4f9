package content

import "time"

// ScrapeType identifies which extractor produced a scrape log entry.
type ScrapeType string

// Scrape types recorded in the audit log.
const (
	ScrapeEvent ScrapeType = "event"
	ScrapeJob   ScrapeType = "job"
)

// ScrapeLog is an append-only audit record of one scrape attempt. It
// is never updated or deleted.
type ScrapeLog struct {
	id           int64
	sourceName   string
	sourceURL    string
	scrapeType   ScrapeType
	success      bool
	eventsFound  int
	jobsFound    int
	errorMessage string
	scrapedAt    time.Time
}

// NewScrapeLog creates a successful ScrapeLog for a source.
func NewScrapeLog(sourceName, sourceURL string, scrapeType ScrapeType) ScrapeLog {
	return ScrapeLog{
		sourceName: sourceName,
		sourceURL:  sourceURL,
		scrapeType: scrapeType,
		success:    true,
		scrapedAt:  time.Now(),
	}
}

// ReconstructScrapeLog rebuilds a ScrapeLog from persistence.
func ReconstructScrapeLog(
	id int64,
	sourceName, sourceURL, scrapeType string,
	success bool,
	eventsFound, jobsFound int,
	errorMessage string,
	scrapedAt time.Time,
) ScrapeLog {
	return ScrapeLog{
		id:           id,
		sourceName:   sourceName,
		sourceURL:    sourceURL,
		scrapeType:   ScrapeType(scrapeType),
		success:      success,
		eventsFound:  eventsFound,
		jobsFound:    jobsFound,
		errorMessage: errorMessage,
		scrapedAt:    scrapedAt,
	}
}

// ID returns the database identity (0 before first save).
func (l ScrapeLog) ID() int64 { return l.id }

// SourceName returns the human-readable source name.
func (l ScrapeLog) SourceName() string { return l.sourceName }

// SourceURL returns the scraped URL.
func (l ScrapeLog) SourceURL() string { return l.sourceURL }

// Type returns the scrape type.
func (l ScrapeLog) Type() ScrapeType { return l.scrapeType }

// Success reports whether the scrape completed without error.
func (l ScrapeLog) Success() bool { return l.success }

// EventsFound returns the number of new events recorded.
func (l ScrapeLog) EventsFound() int { return l.eventsFound }

// JobsFound returns the number of new jobs recorded.
func (l ScrapeLog) JobsFound() int { return l.jobsFound }

// ErrorMessage returns the failure message, empty on success.
func (l ScrapeLog) ErrorMessage() string { return l.errorMessage }

// ScrapedAt returns the scrape timestamp.
func (l ScrapeLog) ScrapedAt() time.Time { return l.scrapedAt }

// WithCounts returns a copy with the found counters set.
func (l ScrapeLog) WithCounts(events, jobs int) ScrapeLog {
	l.eventsFound = events
	l.jobsFound = jobs
	return l
}

// WithError returns a copy marked failed with the given message.
func (l ScrapeLog) WithError(msg string) ScrapeLog {
	l.success = false
	l.errorMessage = msg
	return l
}
