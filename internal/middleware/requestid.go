package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID tags each request with a UUID, reusing one supplied by the edge
// if present. Handlers echo it in error bodies for support correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
