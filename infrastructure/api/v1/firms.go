package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quantwatch/quantwatch/application/service"
	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/infrastructure/api/middleware"
	"github.com/quantwatch/quantwatch/infrastructure/api/v1/dto"
	"github.com/quantwatch/quantwatch/internal/log"
)

// FirmsRouter handles firm API endpoints.
type FirmsRouter struct {
	search *service.Search
	logger *log.Logger
}

// NewFirmsRouter creates a new FirmsRouter.
func NewFirmsRouter(search *service.Search, logger *log.Logger) *FirmsRouter {
	return &FirmsRouter{search: search, logger: logger}
}

// Routes returns the chi router for firm endpoints.
func (r *FirmsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/with-events", r.WithEvents)
	router.Get("/{name}/events", r.Events)

	return router
}

// List handles GET /api/v1/firms.
func (r *FirmsRouter) List(w http.ResponseWriter, req *http.Request) {
	firms, err := r.search.Firms(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, buildFirmsResponse(firms))
}

// WithEvents handles GET /api/v1/firms/with-events.
func (r *FirmsRouter) WithEvents(w http.ResponseWriter, req *http.Request) {
	firms, err := r.search.FirmsWithEvents(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, buildFirmsResponse(firms))
}

// Events handles GET /api/v1/firms/{name}/events.
func (r *FirmsRouter) Events(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")

	events, err := r.search.FirmEventHistory(req.Context(), name)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data := make([]dto.Event, len(events))
	for i, e := range events {
		data[i] = eventToDTO(e)
	}
	middleware.WriteJSON(w, http.StatusOK, dto.EventsResponse{Firm: name, Data: data})
}

func buildFirmsResponse(firms []firm.Firm) dto.FirmsResponse {
	data := make([]dto.Firm, len(firms))
	for i, f := range firms {
		data[i] = dto.Firm{
			ID:          f.ID(),
			Name:        f.Name(),
			Website:     f.Website(),
			CareersURL:  f.CareersURL(),
			Description: f.Description(),
			IsQuantFirm: f.IsQuantFirm(),
		}
	}
	return dto.FirmsResponse{Data: data}
}

func eventToDTO(e content.Event) dto.Event {
	out := dto.Event{
		ID:                   e.ID(),
		Title:                e.Title(),
		Description:          e.Description(),
		EventURL:             e.EventURL(),
		Location:             e.Location(),
		SourceName:           e.SourceName(),
		RequiresRegistration: e.RequiresRegistration(),
		RegistrationURL:      e.RegistrationURL(),
	}
	if d := e.EventDate(); !d.IsZero() {
		out.EventDate = &d
	}
	return out
}
