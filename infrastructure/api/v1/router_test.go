package v1_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantwatch/quantwatch/application/service"
	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	v1 "github.com/quantwatch/quantwatch/infrastructure/api/v1"
	"github.com/quantwatch/quantwatch/infrastructure/api/v1/dto"
	"github.com/quantwatch/quantwatch/infrastructure/persistence"
	"github.com/quantwatch/quantwatch/internal/config"
	"github.com/quantwatch/quantwatch/internal/log"
	"github.com/quantwatch/quantwatch/internal/testdb"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	ctx := context.Background()
	db := testdb.New(t)

	firms := persistence.NewFirmStore(db)
	events := persistence.NewEventStore(db)
	jobs := persistence.NewJobStore(db)
	logs := persistence.NewScrapeLogStore(db)

	citadel, err := firms.GetOrCreate(ctx, firm.New("Citadel").WithQuantFlag(true))
	require.NoError(t, err)
	jane, err := firms.GetOrCreate(ctx, firm.New("Jane Street"))
	require.NoError(t, err)

	_, _, err = events.Add(ctx, content.NewEvent(citadel.ID(), "Quant Research Night"))
	require.NoError(t, err)
	_, _, err = jobs.Add(ctx, content.NewJobPosting(jane.ID(), "Quant Trader", "https://example.com/jobs/1"))
	require.NoError(t, err)
	_, err = logs.Log(ctx, content.NewScrapeLog("MIT CSAIL", "https://example.edu/events", content.ScrapeEvent))
	require.NoError(t, err)

	search := service.NewSearch(
		firms,
		events,
		jobs,
		persistence.NewBlogStore(db),
		persistence.NewReportStore(db),
		persistence.NewVideoStore(db),
		logs,
	)
	logger := log.NewLoggerWithWriter(io.Discard, config.LogFormatJSON, "ERROR")

	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		v1.Mount(r, search, logger)
	})
	return router
}

func TestFirmsRouterList(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/firms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.FirmsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Citadel", resp.Data[0].Name)
	assert.True(t, resp.Data[0].IsQuantFirm)
	assert.Equal(t, "Jane Street", resp.Data[1].Name)
}

func TestFirmsRouterWithEvents(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/firms/with-events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.FirmsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Citadel", resp.Data[0].Name)
}

func TestFirmsRouterEvents(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/firms/Citadel/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Citadel", resp.Firm)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Quant Research Night", resp.Data[0].Title)
	assert.Nil(t, resp.Data[0].EventDate)
}

func TestFirmsRouterEventsUnknownFirm(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/firms/Unknown/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchRouter(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=quant", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "quant", resp.Query)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "event", resp.Data[0].Kind)
	assert.Equal(t, "Quant Research Night", resp.Data[0].Title)
	assert.Equal(t, "job", resp.Data[1].Kind)
	assert.Equal(t, "https://example.com/jobs/1", resp.Data[1].URL)
}

func TestSearchRouterMissingQuery(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScrapesRouter(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scrapes?limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ScrapesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "MIT CSAIL", resp.Data[0].SourceName)
	assert.True(t, resp.Data[0].Success)
}

func TestScrapesRouterBadLimit(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scrapes?limit=-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
