package v1

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quantwatch/quantwatch/application/service"
	"github.com/quantwatch/quantwatch/infrastructure/api/middleware"
	"github.com/quantwatch/quantwatch/infrastructure/api/v1/dto"
	"github.com/quantwatch/quantwatch/internal/log"
)

const defaultScrapeLimit = 50

// ScrapesRouter handles scrape audit API endpoints.
type ScrapesRouter struct {
	search *service.Search
	logger *log.Logger
}

// NewScrapesRouter creates a new ScrapesRouter.
func NewScrapesRouter(search *service.Search, logger *log.Logger) *ScrapesRouter {
	return &ScrapesRouter{search: search, logger: logger}
}

// Routes returns the chi router for scrape audit endpoints.
func (r *ScrapesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.Recent)

	return router
}

// Recent handles GET /api/v1/scrapes?limit=.
func (r *ScrapesRouter) Recent(w http.ResponseWriter, req *http.Request) {
	limit := defaultScrapeLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			middleware.WriteBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	logs, err := r.search.RecentScrapes(req.Context(), limit)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data := make([]dto.ScrapeLog, len(logs))
	for i, l := range logs {
		data[i] = dto.ScrapeLog{
			ID:           l.ID(),
			SourceName:   l.SourceName(),
			SourceURL:    l.SourceURL(),
			Type:         string(l.Type()),
			Success:      l.Success(),
			EventsFound:  l.EventsFound(),
			JobsFound:    l.JobsFound(),
			ErrorMessage: l.ErrorMessage(),
			ScrapedAt:    l.ScrapedAt(),
		}
	}
	middleware.WriteJSON(w, http.StatusOK, dto.ScrapesResponse{Data: data})
}
