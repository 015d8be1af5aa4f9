package extractor

import (
	"context"
	"time"

	"golang.org/x/net/html"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/internal/log"
)

// maxJobContainers bounds how many candidate listings one careers page
// can contribute.
const maxJobContainers = 100

// JobExtractor scrapes firm careers pages for relevant postings.
type JobExtractor struct {
	client   *Client
	detector *firm.Detector
	firms    firm.Store
	jobs     content.JobStore
	logs     content.ScrapeLogStore
	logger   *log.Logger
}

// NewJobExtractor creates a JobExtractor.
func NewJobExtractor(
	client *Client,
	detector *firm.Detector,
	firms firm.Store,
	jobs content.JobStore,
	logs content.ScrapeLogStore,
	logger *log.Logger,
) *JobExtractor {
	return &JobExtractor{
		client:   client,
		detector: detector,
		firms:    firms,
		jobs:     jobs,
		logs:     logs,
		logger:   logger,
	}
}

type jobCandidate struct {
	title       string
	description string
	url         string
	location    string
	jobType     string
	postedDate  time.Time
}

// ScrapeCareersPage scrapes one firm's careers page and returns the
// number of relevant postings stored. Failures are logged and recorded
// in the scrape audit log.
func (j *JobExtractor) ScrapeCareersPage(ctx context.Context, firmName, careersURL string) int {
	j.logger.InfoContext(ctx, "scraping careers page", "firm", firmName, "url", careersURL)

	body, err := j.client.Get(ctx, careersURL)
	if err != nil {
		return j.fail(ctx, firmName, careersURL, err)
	}
	doc, err := parseHTML(body)
	if err != nil {
		return j.fail(ctx, firmName, careersURL, err)
	}

	found := 0
	for _, candidate := range extractJobCandidates(doc, careersURL) {
		if j.process(ctx, candidate, firmName, careersURL) {
			found++
		}
	}

	j.record(ctx, content.NewScrapeLog(firmName, careersURL, content.ScrapeJob).WithCounts(0, found))
	j.logger.InfoContext(ctx, "careers page scraped", "firm", firmName, "jobs", found)
	return found
}

// process stores a candidate when it looks like a quant role and has a
// URL. Returns true only for newly stored postings.
func (j *JobExtractor) process(ctx context.Context, candidate jobCandidate, firmName, careersURL string) bool {
	if candidate.url == "" {
		return false
	}
	if !j.detector.IsRelevantJob(candidate.title, candidate.description) {
		return false
	}

	owner, err := j.firms.GetOrCreate(ctx, firm.New(firmName).WithCareersURL(careersURL))
	if err != nil {
		j.logger.ErrorContext(ctx, "failed to resolve firm", "firm", firmName, "error", err)
		return false
	}

	posting := content.NewJobPosting(owner.ID(), candidate.title, candidate.url).
		WithDescription(candidate.description).
		WithLocation(candidate.location).
		WithJobType(candidate.jobType)
	if !candidate.postedDate.IsZero() {
		posting = posting.WithPostedDate(candidate.postedDate)
	}

	_, created, err := j.jobs.Add(ctx, posting)
	if err != nil {
		j.logger.ErrorContext(ctx, "failed to store job posting", "title", candidate.title, "error", err)
		return false
	}
	return created
}

func (j *JobExtractor) fail(ctx context.Context, firmName, url string, err error) int {
	j.logger.ErrorContext(ctx, "job scrape failed", "firm", firmName, "error", err)
	j.record(ctx, content.NewScrapeLog(firmName, url, content.ScrapeJob).WithError(err.Error()))
	return 0
}

func (j *JobExtractor) record(ctx context.Context, entry content.ScrapeLog) {
	if _, err := j.logs.Log(ctx, entry); err != nil {
		j.logger.WarnContext(ctx, "failed to write scrape log", "source", entry.SourceName(), "error", err)
	}
}

var (
	jobClassKeywords = []string{"job", "position", "career", "opening", "role"}
	jobHrefKeywords  = []string{"job", "position", "career", "opening"}
)

// extractJobCandidates pulls candidate postings out of a careers page.
// When no container matches by class, parents of job-looking links are
// used as a fallback.
func extractJobCandidates(doc *html.Node, baseURL string) []jobCandidate {
	containers := findNodes(doc, func(n *html.Node) bool {
		return isElement(n, "div", "li", "article", "tr") && attrContainsAny(n, "class", jobClassKeywords)
	}, maxJobContainers)

	if len(containers) == 0 {
		links := findNodes(doc, func(n *html.Node) bool {
			return isElement(n, "a") && attrContainsAny(n, "href", jobHrefKeywords)
		}, maxJobContainers)
		for _, link := range links {
			if link.Parent != nil {
				containers = append(containers, link.Parent)
			}
		}
	}

	var candidates []jobCandidate
	for _, container := range containers {
		candidate := extractJobFromContainer(container, baseURL)
		if candidate.title != "" && candidate.url != "" {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

func extractJobFromContainer(container *html.Node, baseURL string) jobCandidate {
	var candidate jobCandidate

	title := firstByClass(container, []string{"h1", "h2", "h3", "h4", "a", "span"}, []string{"title", "name", "position"})
	if title == nil {
		title = firstByClass(container, []string{"h1", "h2", "h3", "h4", "a"}, nil)
	}
	candidate.title = nodeText(title)

	candidate.description = nodeText(firstByClass(container, []string{"p", "div"}, []string{"description", "summary"}))

	// A posting without a link is useless.
	link := firstLink(container)
	if link == nil {
		return jobCandidate{}
	}
	candidate.url = resolveURL(baseURL, attrValue(link, "href"))

	candidate.location = nodeText(firstByClass(container, []string{"span", "div"}, []string{"location", "office", "city"}))
	candidate.jobType = nodeText(firstByClass(container, []string{"span", "div"}, []string{"type", "employment"}))

	if date := firstByClass(container, []string{"time", "span"}, []string{"date", "posted"}); date != nil {
		raw := attrValue(date, "datetime")
		if raw == "" {
			raw = nodeText(date)
		}
		candidate.postedDate = parseDate(raw)
	}

	return candidate
}
