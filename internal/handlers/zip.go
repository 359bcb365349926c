package handlers

import (
	"net/http"

	"rebateatlas-backend/internal/location"
)

type zipResponse struct {
	Zip   string `json:"zip"`
	City  string `json:"city"`
	State string `json:"state"`
}

// ZipLookup resolves ?code=12345 to a city/state pair. Used by the site's
// ZIP landing pages before any chat starts.
func ZipLookup(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if !location.ValidZip(code) {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid ZIP", r))
		return
	}

	loc, ok := location.Resolve(code)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Not found for this ZIP yet", r))
		return
	}

	writeJSON(w, http.StatusOK, zipResponse{Zip: code, City: loc.City, State: loc.State})
}
