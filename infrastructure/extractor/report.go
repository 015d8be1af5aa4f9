package extractor

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/domain/store"
	"github.com/quantwatch/quantwatch/infrastructure/archive"
	"github.com/quantwatch/quantwatch/infrastructure/pdfinfo"
	"github.com/quantwatch/quantwatch/internal/log"
)

// maxReportLinks bounds how many report links one investor page can
// contribute.
const maxReportLinks = 50

var reportExtensions = []string{".pdf", ".docx", ".xlsx"}

var reportKeywords = []string{
	"report", "presentation", "filing", "earnings", "quarterly",
	"annual", "fund", "offering", "prospectus", "disclosure",
	"10-k", "10-q", "13f", "investor", "financial",
}

// ReportExtractor scrapes investor relations pages for reports and
// fund documents.
type ReportExtractor struct {
	client  *Client
	firms   firm.Store
	reports content.ReportStore
	archive *archive.Archive
	pdf     pdfinfo.Extractor
	logger  *log.Logger
}

// NewReportExtractor creates a ReportExtractor. The client should carry
// the longer report timeout since PDFs can be large.
func NewReportExtractor(
	client *Client,
	firms firm.Store,
	reports content.ReportStore,
	arch *archive.Archive,
	pdf pdfinfo.Extractor,
	logger *log.Logger,
) *ReportExtractor {
	return &ReportExtractor{
		client:  client,
		firms:   firms,
		reports: reports,
		archive: arch,
		pdf:     pdf,
		logger:  logger,
	}
}

type reportCandidate struct {
	title      string
	url        string
	reportType content.ReportType
}

// ScrapeInvestorPage scrapes one firm's investor relations page and
// returns the number of new reports stored.
func (r *ReportExtractor) ScrapeInvestorPage(ctx context.Context, firmName, investorURL string) int {
	r.logger.InfoContext(ctx, "scraping investor page", "firm", firmName, "url", investorURL)

	body, err := r.client.Get(ctx, investorURL)
	if err != nil {
		r.logger.ErrorContext(ctx, "report scrape failed", "firm", firmName, "error", err)
		return 0
	}
	doc, err := parseHTML(body)
	if err != nil {
		r.logger.ErrorContext(ctx, "report scrape failed", "firm", firmName, "error", err)
		return 0
	}

	found := 0
	for _, candidate := range extractReportCandidates(doc, investorURL) {
		if r.process(ctx, candidate, firmName) {
			found++
		}
	}
	r.logger.InfoContext(ctx, "investor page scraped", "firm", firmName, "reports", found)
	return found
}

// process stores a candidate report, downloading and summarizing PDFs.
func (r *ReportExtractor) process(ctx context.Context, candidate reportCandidate, firmName string) bool {
	// Skip known URLs before downloading anything.
	known, err := r.reports.Count(ctx, store.WithURL(candidate.url))
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to check report", "url", candidate.url, "error", err)
		return false
	}
	if known > 0 {
		return false
	}

	owner, err := r.firms.GetOrCreate(ctx, firm.New(firmName))
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to resolve firm", "firm", firmName, "error", err)
		return false
	}

	report := content.NewInvestorReport(owner.ID(), candidate.title, candidate.url, candidate.reportType)
	if date := reportDateFromText(candidate.title); !date.IsZero() {
		report = report.WithReportDate(date)
	}

	if strings.HasSuffix(strings.ToLower(candidate.url), ".pdf") {
		report = r.fetchPDF(ctx, report, candidate, firmName)
	}

	_, created, err := r.reports.Add(ctx, report)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to store report", "title", candidate.title, "error", err)
		return false
	}
	return created
}

// fetchPDF downloads, archives, and summarizes a PDF report. Any
// failure degrades to a record without file, summary, or metrics.
func (r *ReportExtractor) fetchPDF(ctx context.Context, report content.InvestorReport, candidate reportCandidate, firmName string) content.InvestorReport {
	data, err := r.client.Get(ctx, candidate.url)
	if err != nil {
		r.logger.WarnContext(ctx, "failed to download report", "url", candidate.url, "error", err)
		return report
	}

	path, err := r.archive.SaveReport(firmName, candidate.title, data, ".pdf")
	if err != nil {
		r.logger.WarnContext(ctx, "failed to archive report", "title", candidate.title, "error", err)
	} else {
		report = report.WithFilePath(path)
	}

	info, err := r.pdf.Extract(data)
	if err != nil {
		r.logger.DebugContext(ctx, "failed to extract pdf text", "title", candidate.title, "error", err)
		return report
	}
	return report.WithSummary(info.Summary).WithKeyMetrics(info.Metrics)
}

// extractReportCandidates collects report-looking links from a page.
func extractReportCandidates(doc *html.Node, baseURL string) []reportCandidate {
	links := findNodes(doc, func(n *html.Node) bool {
		return isElement(n, "a") && attrValue(n, "href") != ""
	}, 0)

	var candidates []reportCandidate
	for _, link := range links {
		if len(candidates) >= maxReportLinks {
			break
		}
		href := attrValue(link, "href")
		text := nodeText(link)
		if !isReportLink(href, text) {
			continue
		}

		title := text
		if title == "" {
			title = "Untitled Report"
		}
		candidates = append(candidates, reportCandidate{
			title:      title,
			url:        resolveURL(baseURL, href),
			reportType: classifyReport(text, href),
		})
	}
	return candidates
}

// isReportLink accepts document extensions outright and otherwise
// looks for report keywords in the link text or href.
func isReportLink(href, text string) bool {
	lowerHref := strings.ToLower(href)
	for _, ext := range reportExtensions {
		if strings.HasSuffix(lowerHref, ext) {
			return true
		}
	}

	combined := strings.ToLower(text + " " + href)
	for _, kw := range reportKeywords {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}

// classifyReport assigns a report type by keyword precedence.
func classifyReport(text, href string) content.ReportType {
	combined := strings.ToLower(text + " " + href)

	containsAny := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(combined, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("quarterly", "10-q", "q1", "q2", "q3", "q4"):
		return content.ReportQuarterly
	case containsAny("annual", "10-k", "yearly"):
		return content.ReportAnnual
	case containsAny("fund", "offering", "prospectus"):
		return content.ReportFundOffering
	case containsAny("13f", "holdings"):
		return content.ReportHoldings
	case containsAny("presentation"):
		return content.ReportPresentation
	default:
		return content.ReportOther
	}
}
