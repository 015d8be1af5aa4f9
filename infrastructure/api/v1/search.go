// Package v1 implements the v1 status API routes.
package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quantwatch/quantwatch/application/service"
	"github.com/quantwatch/quantwatch/infrastructure/api/middleware"
	"github.com/quantwatch/quantwatch/infrastructure/api/v1/dto"
	"github.com/quantwatch/quantwatch/internal/log"
)

// SearchRouter handles search API endpoints.
type SearchRouter struct {
	search *service.Search
	logger *log.Logger
}

// NewSearchRouter creates a new SearchRouter.
func NewSearchRouter(search *service.Search, logger *log.Logger) *SearchRouter {
	return &SearchRouter{search: search, logger: logger}
}

// Routes returns the chi router for search endpoints.
func (r *SearchRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.Search)

	return router
}

// Search handles GET /api/v1/search?q=.
func (r *SearchRouter) Search(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query().Get("q")
	if q == "" {
		middleware.WriteBadRequest(w, "missing query parameter q")
		return
	}

	items, err := r.search.Query(req.Context(), q)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data := make([]dto.Item, len(items))
	for i, item := range items {
		data[i] = dto.Item{
			Kind:   string(item.Kind()),
			ID:     item.ID(),
			FirmID: item.FirmID(),
			Title:  item.Title(),
			URL:    item.URL(),
		}
	}
	middleware.WriteJSON(w, http.StatusOK, dto.SearchResponse{Query: q, Data: data})
}
