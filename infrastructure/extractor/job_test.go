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

const careersPage = `<html><body>
<div class="job-listing">
  <a class="title" href="/careers/quant-researcher">Quantitative Researcher</a>
  <p class="description">Research systematic trading strategies on our core desk.</p>
  <span class="location">New York</span>
  <span class="type">Full-time</span>
</div>
<div class="job-listing">
  <a class="title" href="/careers/chef">Executive Chef</a>
  <p class="description">Run the office kitchen.</p>
</div>
</body></html>`

func newJobExtractor(t *testing.T) (*JobExtractor, persistence.JobStore, persistence.FirmStore, persistence.ScrapeLogStore) {
	t.Helper()
	db := testdb.New(t)
	firms := persistence.NewFirmStore(db)
	jobs := persistence.NewJobStore(db)
	logs := persistence.NewScrapeLogStore(db)
	detector := firm.NewDetector(firm.NewRegistry())
	ext := NewJobExtractor(testClient(), detector, firms, jobs, logs, testLogger())
	return ext, jobs, firms, logs
}

func TestScrapeCareersPage(t *testing.T) {
	ctx := context.Background()
	ext, jobs, firms, logs := newJobExtractor(t)
	srv := serveFixtures(t, map[string]string{"/careers": careersPage})

	found := ext.ScrapeCareersPage(ctx, "Jane Street", srv.URL+"/careers")
	require.Equal(t, 1, found)

	stored, err := jobs.Find(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	posting := stored[0]
	assert.Equal(t, "Quantitative Researcher", posting.Title())
	assert.Equal(t, srv.URL+"/careers/quant-researcher", posting.JobURL())
	assert.Equal(t, "New York", posting.Location())
	assert.Equal(t, "Full-time", posting.JobType())
	assert.True(t, posting.IsRelevant())

	owner, err := firms.ByName(ctx, "Jane Street")
	require.NoError(t, err)
	assert.Equal(t, owner.ID(), posting.FirmID())
	assert.Equal(t, srv.URL+"/careers", owner.CareersURL())

	entries, err := logs.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Success())
	assert.Equal(t, 1, entries[0].JobsFound())
	assert.Equal(t, 0, entries[0].EventsFound())
}

func TestScrapeCareersPageSecondRunFindsNothing(t *testing.T) {
	ctx := context.Background()
	ext, jobs, _, _ := newJobExtractor(t)
	srv := serveFixtures(t, map[string]string{"/careers": careersPage})

	require.Equal(t, 1, ext.ScrapeCareersPage(ctx, "Jane Street", srv.URL+"/careers"))
	require.Equal(t, 0, ext.ScrapeCareersPage(ctx, "Jane Street", srv.URL+"/careers"))

	count, err := jobs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestScrapeCareersPageFailureIsRecorded(t *testing.T) {
	ctx := context.Background()
	ext, _, _, logs := newJobExtractor(t)
	srv := serveFixtures(t, map[string]string{})

	found := ext.ScrapeCareersPage(ctx, "Jane Street", srv.URL+"/careers")
	assert.Equal(t, 0, found)

	entries, err := logs.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success())
	assert.NotEmpty(t, entries[0].ErrorMessage())
}

func TestExtractJobCandidatesLinkParentFallback(t *testing.T) {
	page := `<html><body><ul>
	  <li><a href="https://example.com/jobs/42">Quant Trader</a></li>
	  <li><a href="https://example.com/about">About Us</a></li>
	</ul></body></html>`

	doc, err := parseHTML([]byte(page))
	require.NoError(t, err)

	candidates := extractJobCandidates(doc, "https://example.com/careers")
	require.Len(t, candidates, 1)
	assert.Equal(t, "Quant Trader", candidates[0].title)
	assert.Equal(t, "https://example.com/jobs/42", candidates[0].url)
}
