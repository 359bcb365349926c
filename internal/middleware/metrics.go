package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rebate_chat_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rebate_chat_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	rateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rebate_chat_rate_limit_rejections_total",
		Help: "Total number of requests rejected by the rate limiter",
	})

	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rebate_chat_upstream_requests_total",
		Help: "Total number of upstream completion API calls",
	}, []string{"model", "status"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rebate_chat_upstream_request_duration_seconds",
		Help:    "Duration of upstream completion API calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"model"})

	enrichmentFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rebate_chat_enrichment_failures_total",
		Help: "Total number of failed static-data fetches",
	}, []string{"source"})
)

// RecordRateLimited counts a 429 rejection.
func RecordRateLimited() {
	rateLimitRejections.Inc()
}

// RecordUpstreamRequest counts an upstream completion call.
func RecordUpstreamRequest(model, status string, duration time.Duration) {
	upstreamRequests.WithLabelValues(model, status).Inc()
	upstreamDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// RecordEnrichmentFailure counts a tolerated data-fetch failure.
func RecordEnrichmentFailure(source string) {
	enrichmentFailures.WithLabelValues(source).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Metrics records request counts and latency per method/status.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		httpRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
