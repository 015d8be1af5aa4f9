// Package middleware provides HTTP helpers shared by API routers.
package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quantwatch/quantwatch/internal/database"
	"github.com/quantwatch/quantwatch/internal/log"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an error response, mapping known error kinds to
// status codes.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *log.Logger) {
	status := http.StatusInternalServerError
	if errors.Is(err, database.ErrNotFound) {
		status = http.StatusNotFound
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}

	WriteJSON(w, status, map[string]string{"error": err.Error()})
}

// WriteBadRequest writes a 400 response with the given message.
func WriteBadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}
