package extractor

import (
	"context"
	"time"

	"golang.org/x/net/html"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/internal/log"
)

// maxEventContainers bounds how many candidate containers one page can
// contribute.
const maxEventContainers = 50

// EventExtractor scrapes campus event pages and feeds for relevant
// events.
type EventExtractor struct {
	client   *Client
	detector *firm.Detector
	firms    firm.Store
	events   content.EventStore
	logs     content.ScrapeLogStore
	logger   *log.Logger
}

// NewEventExtractor creates an EventExtractor.
func NewEventExtractor(
	client *Client,
	detector *firm.Detector,
	firms firm.Store,
	events content.EventStore,
	logs content.ScrapeLogStore,
	logger *log.Logger,
) *EventExtractor {
	return &EventExtractor{
		client:   client,
		detector: detector,
		firms:    firms,
		events:   events,
		logs:     logs,
		logger:   logger,
	}
}

type eventCandidate struct {
	title       string
	description string
	url         string
	location    string
	date        time.Time
}

// ScrapeSource dispatches to feed or HTML scraping based on the source
// shape and returns the number of relevant events stored.
func (e *EventExtractor) ScrapeSource(ctx context.Context, src firm.Source) int {
	if src.RSS != "" {
		return e.ScrapeFeed(ctx, src.RSS, src.Name)
	}
	if isFeedURL(src.URL) {
		return e.ScrapeFeed(ctx, src.URL, src.Name)
	}
	return e.ScrapePage(ctx, src.URL, src.Name)
}

// ScrapePage scrapes one events page. Failures are logged and recorded
// in the scrape audit log; the return value is the count of stored
// events.
func (e *EventExtractor) ScrapePage(ctx context.Context, url, sourceName string) int {
	e.logger.InfoContext(ctx, "scraping events page", "source", sourceName, "url", url)

	body, err := e.client.Get(ctx, url)
	if err != nil {
		return e.fail(ctx, sourceName, url, err)
	}
	doc, err := parseHTML(body)
	if err != nil {
		return e.fail(ctx, sourceName, url, err)
	}

	found := 0
	for _, candidate := range extractEventCandidates(doc, url) {
		if e.process(ctx, candidate, sourceName) {
			found++
		}
	}

	e.record(ctx, content.NewScrapeLog(sourceName, url, content.ScrapeEvent).WithCounts(found, 0))
	e.logger.InfoContext(ctx, "events page scraped", "source", sourceName, "events", found)
	return found
}

// ScrapeFeed scrapes one RSS or Atom event feed.
func (e *EventExtractor) ScrapeFeed(ctx context.Context, feedURL, sourceName string) int {
	e.logger.InfoContext(ctx, "scraping events feed", "source", sourceName, "url", feedURL)

	body, err := e.client.Get(ctx, feedURL)
	if err != nil {
		return e.fail(ctx, sourceName, feedURL, err)
	}
	items, err := parseFeed(body)
	if err != nil {
		return e.fail(ctx, sourceName, feedURL, err)
	}

	found := 0
	for _, item := range items {
		candidate := eventCandidate{
			title:       item.Title,
			description: item.Summary,
			url:         item.Link,
			date:        item.Published,
		}
		if e.process(ctx, candidate, sourceName) {
			found++
		}
	}

	e.record(ctx, content.NewScrapeLog(sourceName, feedURL, content.ScrapeEvent).WithCounts(found, 0))
	e.logger.InfoContext(ctx, "events feed scraped", "source", sourceName, "events", found)
	return found
}

// process stores a candidate when it clears the relevance bar and can
// be attributed to a firm. Returns true only for newly stored events.
func (e *EventExtractor) process(ctx context.Context, candidate eventCandidate, sourceName string) bool {
	combined := candidate.title + " " + candidate.description

	score := e.detector.ScoreEventRelevance(candidate.title, candidate.description)
	if score < firm.EventAcceptScore {
		return false
	}

	firmName, found := e.detector.FirstFirm(combined)
	if !found {
		related, _ := e.detector.IsQuantRelated(combined, firm.QuantRelatedThreshold)
		if !related {
			return false
		}
		firmName = firm.GenericFirmName
	}

	owner, err := e.firms.GetOrCreate(ctx, firm.New(firmName))
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to resolve firm", "firm", firmName, "error", err)
		return false
	}

	event := content.NewEvent(owner.ID(), candidate.title).
		WithDescription(candidate.description).
		WithEventURL(candidate.url).
		WithLocation(candidate.location).
		WithSourceName(sourceName)
	if !candidate.date.IsZero() {
		event = event.WithEventDate(candidate.date)
	}
	if e.detector.RequiresRegistration(combined) {
		event = event.WithRegistration(true, candidate.url)
	}

	_, created, err := e.events.Add(ctx, event)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to store event", "title", candidate.title, "error", err)
		return false
	}
	return created
}

func (e *EventExtractor) fail(ctx context.Context, sourceName, url string, err error) int {
	e.logger.ErrorContext(ctx, "event scrape failed", "source", sourceName, "error", err)
	e.record(ctx, content.NewScrapeLog(sourceName, url, content.ScrapeEvent).WithError(err.Error()))
	return 0
}

func (e *EventExtractor) record(ctx context.Context, entry content.ScrapeLog) {
	if _, err := e.logs.Log(ctx, entry); err != nil {
		e.logger.WarnContext(ctx, "failed to write scrape log", "source", entry.SourceName(), "error", err)
	}
}

var (
	eventClassKeywords = []string{"event", "calendar", "listing"}
	eventIDKeywords    = []string{"event", "calendar", "upcoming"}
)

// extractEventCandidates pulls candidate events out of a page using
// class and id keyword heuristics.
func extractEventCandidates(doc *html.Node, baseURL string) []eventCandidate {
	containers := findNodes(doc, func(n *html.Node) bool {
		return isElement(n, "article", "div", "li") && attrContainsAny(n, "class", eventClassKeywords)
	}, maxEventContainers)

	if len(containers) == 0 {
		containers = findNodes(doc, func(n *html.Node) bool {
			return isElement(n, "section", "div") && attrContainsAny(n, "id", eventIDKeywords)
		}, maxEventContainers)
	}

	var candidates []eventCandidate
	for _, container := range containers {
		candidate := extractEventFromContainer(container, baseURL)
		if candidate.title != "" {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

func extractEventFromContainer(container *html.Node, baseURL string) eventCandidate {
	var candidate eventCandidate

	title := firstByClass(container, []string{"h1", "h2", "h3", "h4", "a", "span"}, []string{"title"})
	if title == nil {
		title = firstByClass(container, []string{"h1", "h2", "h3", "h4"}, nil)
	}
	candidate.title = nodeText(title)

	candidate.description = nodeText(firstByClass(container, []string{"p", "div"}, []string{"description", "summary", "content"}))

	if link := firstLink(container); link != nil {
		candidate.url = resolveURL(baseURL, attrValue(link, "href"))
	} else {
		candidate.url = baseURL
	}

	if date := firstByClass(container, []string{"time", "span"}, []string{"date"}); date != nil {
		raw := attrValue(date, "datetime")
		if raw == "" {
			raw = nodeText(date)
		}
		candidate.date = parseDate(raw)
	}

	candidate.location = nodeText(firstByClass(container, []string{"span", "div"}, []string{"location"}))

	return candidate
}
