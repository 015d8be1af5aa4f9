package extractor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/infrastructure/archive"
	"github.com/quantwatch/quantwatch/infrastructure/pdfinfo"
	"github.com/quantwatch/quantwatch/infrastructure/persistence"
	"github.com/quantwatch/quantwatch/internal/testdb"
)

const investorPage = `<html><body>
<a href="/docs/q2-2026-letter.pdf">Q2 2026 Investor Letter</a>
<a href="/docs/annual-review-2025">Annual Review 2025</a>
<a href="/about">About Us</a>
</body></html>`

type stubPDF struct {
	info pdfinfo.Info
	err  error
}

func (s stubPDF) Extract(data []byte) (pdfinfo.Info, error) {
	return s.info, s.err
}

func newReportExtractor(t *testing.T, pdf pdfinfo.Extractor) (*ReportExtractor, persistence.ReportStore, *archive.Archive) {
	t.Helper()
	db := testdb.New(t)
	firms := persistence.NewFirmStore(db)
	reports := persistence.NewReportStore(db)
	arch, err := archive.New(t.TempDir())
	require.NoError(t, err)
	ext := NewReportExtractor(testClient(), firms, reports, arch, pdf, testLogger())
	return ext, reports, arch
}

func TestScrapeInvestorPage(t *testing.T) {
	ctx := context.Background()
	pdf := stubPDF{info: pdfinfo.Info{
		Summary: "Performance was strong across strategies.",
		Metrics: `{"aum":"62.5 billion"}`,
	}}
	ext, reports, arch := newReportExtractor(t, pdf)
	srv := serveFixtures(t, map[string]string{
		"/investors":               investorPage,
		"/docs/q2-2026-letter.pdf": "%PDF-1.4 fake letter body",
	})

	found := ext.ScrapeInvestorPage(ctx, "Citadel", srv.URL+"/investors")
	require.Equal(t, 2, found)

	stored, err := reports.Find(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	byTitle := make(map[string]content.InvestorReport, len(stored))
	for _, report := range stored {
		byTitle[report.Title()] = report
	}

	letter := byTitle["Q2 2026 Investor Letter"]
	assert.Equal(t, srv.URL+"/docs/q2-2026-letter.pdf", letter.URL())
	assert.Equal(t, content.ReportQuarterly, letter.Type())
	assert.Equal(t, time.April, letter.ReportDate().Month())
	assert.Equal(t, 2026, letter.ReportDate().Year())
	assert.Equal(t, "Performance was strong across strategies.", letter.Summary())
	assert.Equal(t, `{"aum":"62.5 billion"}`, letter.KeyMetrics())
	require.NotEmpty(t, letter.FilePath())

	data, err := arch.Read(letter.FilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "fake letter body")

	review := byTitle["Annual Review 2025"]
	assert.Equal(t, content.ReportAnnual, review.Type())
	assert.Equal(t, 2025, review.ReportDate().Year())
	assert.Empty(t, review.FilePath())
	assert.Empty(t, review.Summary())
}

func TestScrapeInvestorPagePDFFailureDegrades(t *testing.T) {
	ctx := context.Background()
	pdf := stubPDF{err: errors.New("unreadable document")}
	ext, reports, _ := newReportExtractor(t, pdf)
	srv := serveFixtures(t, map[string]string{
		"/investors":               investorPage,
		"/docs/q2-2026-letter.pdf": "%PDF-1.4 fake letter body",
	})

	found := ext.ScrapeInvestorPage(ctx, "Citadel", srv.URL+"/investors")
	require.Equal(t, 2, found)

	letters, err := reports.Find(ctx)
	require.NoError(t, err)
	for _, report := range letters {
		assert.Empty(t, report.Summary())
		assert.Empty(t, report.KeyMetrics())
	}
}

func TestScrapeInvestorPageSecondRunFindsNothing(t *testing.T) {
	ctx := context.Background()
	ext, reports, _ := newReportExtractor(t, stubPDF{})
	srv := serveFixtures(t, map[string]string{
		"/investors":               investorPage,
		"/docs/q2-2026-letter.pdf": "%PDF-1.4 fake letter body",
	})

	require.Equal(t, 2, ext.ScrapeInvestorPage(ctx, "Citadel", srv.URL+"/investors"))
	require.Equal(t, 0, ext.ScrapeInvestorPage(ctx, "Citadel", srv.URL+"/investors"))

	count, err := reports.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestIsReportLink(t *testing.T) {
	assert.True(t, isReportLink("/files/statement.pdf", "Statement"))
	assert.True(t, isReportLink("/files/holdings.xlsx", ""))
	assert.True(t, isReportLink("/news/42", "Quarterly earnings call"))
	assert.False(t, isReportLink("/contact", "Get in touch"))
}

func TestClassifyReport(t *testing.T) {
	tests := []struct {
		text string
		href string
		want content.ReportType
	}{
		{"Q3 2025 Letter", "/q3.pdf", content.ReportQuarterly},
		{"Form 10-K", "/filings/10-k.pdf", content.ReportAnnual},
		{"Fund Prospectus", "/docs/fund.pdf", content.ReportFundOffering},
		{"13F Holdings", "/13f.pdf", content.ReportHoldings},
		{"Investor Day Presentation", "/deck.pdf", content.ReportPresentation},
		{"Misc Document", "/misc.pdf", content.ReportOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyReport(tt.text, tt.href), tt.text)
	}
}
