package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rebateatlas-backend/internal/handlers"
	"rebateatlas-backend/internal/middleware"
)

func New(chatHandler *handlers.ChatHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}`))
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	// CORS covers only the browser-facing API. It also terminates OPTIONS
	// preflights there, so they never reach routing (and never count
	// against rate limits). /health and /metrics are infrastructure
	// endpoints with no cross-origin callers.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CORS(allowedOrigins))
		r.Post("/chat", chatHandler.Ask)
		r.Get("/zip", handlers.ZipLookup)
	})

	return r
}
