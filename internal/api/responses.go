package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oguzk/mobilebill/internal/service"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response of the form {"error": message}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps the service error taxonomy onto the wire statuses
// and messages the original API used. ErrForbiddenParameter and ErrBillExists
// both map to 400 rather than the more conventional 403/409 to stay
// wire-compatible with existing clients.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrForbiddenParameter):
		writeError(w, http.StatusBadRequest, "Invalid subscriber_no parameter")
	case errors.Is(err, service.ErrMissingMonth):
		writeError(w, http.StatusBadRequest, "Month parameter is missing")
	case errors.Is(err, service.ErrBillNotFound):
		writeError(w, http.StatusNotFound, "Bill not found")
	case errors.Is(err, service.ErrBillExists):
		writeError(w, http.StatusBadRequest, "Bill already exists for the subscriber and month")
	case errors.Is(err, service.ErrNotAdmin):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		slog.Error("Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
