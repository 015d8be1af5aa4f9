package content

import "time"

// ReportType classifies an investor report.
type ReportType string

// Report type taxonomy. Classification precedence in the extractor is
// quarterly, annual, fund offering, holdings, presentation, other.
const (
	ReportQuarterly    ReportType = "quarterly"
	ReportAnnual       ReportType = "annual"
	ReportFundOffering ReportType = "fund_offering"
	ReportHoldings     ReportType = "holdings"
	ReportPresentation ReportType = "presentation"
	ReportOther        ReportType = "other"
)

// String returns the stored representation.
func (t ReportType) String() string { return string(t) }

// ParseReportType maps a stored string to a ReportType, defaulting to
// ReportOther for unknown values.
func ParseReportType(s string) ReportType {
	switch ReportType(s) {
	case ReportQuarterly, ReportAnnual, ReportFundOffering, ReportHoldings, ReportPresentation:
		return ReportType(s)
	default:
		return ReportOther
	}
}

// InvestorReport represents a filing, fund document, or presentation
// from a firm's investor relations page. Dedup identity is the URL.
type InvestorReport struct {
	id         int64
	firmID     int64
	title      string
	url        string
	reportType ReportType
	reportDate time.Time
	filePath   string
	summary    string
	keyMetrics string
	notified   bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewInvestorReport creates an InvestorReport.
func NewInvestorReport(firmID int64, title, url string, reportType ReportType) InvestorReport {
	now := time.Now()
	return InvestorReport{
		firmID:     firmID,
		title:      title,
		url:        url,
		reportType: reportType,
		createdAt:  now,
		updatedAt:  now,
	}
}

// ReconstructInvestorReport rebuilds an InvestorReport from persistence.
func ReconstructInvestorReport(
	id, firmID int64,
	title, url, reportType string,
	reportDate time.Time,
	filePath, summary, keyMetrics string,
	notified bool,
	createdAt, updatedAt time.Time,
) InvestorReport {
	return InvestorReport{
		id:         id,
		firmID:     firmID,
		title:      title,
		url:        url,
		reportType: ParseReportType(reportType),
		reportDate: reportDate,
		filePath:   filePath,
		summary:    summary,
		keyMetrics: keyMetrics,
		notified:   notified,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ID returns the database identity (0 before first save).
func (r InvestorReport) ID() int64 { return r.id }

// FirmID returns the owning firm's identity.
func (r InvestorReport) FirmID() int64 { return r.firmID }

// Title returns the report title.
func (r InvestorReport) Title() string { return r.title }

// URL returns the report URL, the dedup identity.
func (r InvestorReport) URL() string { return r.url }

// Type returns the report classification.
func (r InvestorReport) Type() ReportType { return r.reportType }

// ReportDate returns the reporting period start (zero when unknown).
func (r InvestorReport) ReportDate() time.Time { return r.reportDate }

// FilePath returns the relative path of the archived document.
func (r InvestorReport) FilePath() string { return r.filePath }

// Summary returns the first-page text excerpt.
func (r InvestorReport) Summary() string { return r.summary }

// KeyMetrics returns the extracted metrics serialized as JSON, or empty.
func (r InvestorReport) KeyMetrics() string { return r.keyMetrics }

// Notified reports whether this report has been announced.
func (r InvestorReport) Notified() bool { return r.notified }

// CreatedAt returns the creation time.
func (r InvestorReport) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last update time.
func (r InvestorReport) UpdatedAt() time.Time { return r.updatedAt }

// WithReportDate returns a copy with the report date set.
func (r InvestorReport) WithReportDate(t time.Time) InvestorReport {
	r.reportDate = t
	return r
}

// WithFilePath returns a copy with the archived document path set.
func (r InvestorReport) WithFilePath(path string) InvestorReport {
	r.filePath = path
	return r
}

// WithSummary returns a copy with the summary set.
func (r InvestorReport) WithSummary(summary string) InvestorReport {
	r.summary = summary
	return r
}

// WithKeyMetrics returns a copy with the serialized metrics set.
func (r InvestorReport) WithKeyMetrics(metrics string) InvestorReport {
	r.keyMetrics = metrics
	return r
}
