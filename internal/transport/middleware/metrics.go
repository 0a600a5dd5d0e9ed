package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/ecoponto-backend/internal/metrics"
)

// Metrics records request counts and latencies labelled by the chi route
// pattern, so /collection-points/{id} is one series regardless of the id.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := routePattern(r)
		metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(sw.status)).Inc()
		metrics.HTTPRequestDurationMs.WithLabelValues(route, r.Method).
			Observe(float64(time.Since(start).Microseconds()) / 1000)
	})
}
