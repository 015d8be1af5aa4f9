package v1

import (
	"github.com/go-chi/chi/v5"

	"github.com/quantwatch/quantwatch/application/service"
	"github.com/quantwatch/quantwatch/internal/log"
)

// Mount attaches every v1 router under the given chi router.
func Mount(router chi.Router, search *service.Search, logger *log.Logger) {
	router.Mount("/firms", NewFirmsRouter(search, logger).Routes())
	router.Mount("/search", NewSearchRouter(search, logger).Routes())
	router.Mount("/scrapes", NewScrapesRouter(search, logger).Routes())
}
