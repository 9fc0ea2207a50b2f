package middleware

import (
	"net/http"
	"time"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/metrics"
)

// Metrics records request counts and latency per route pattern.
func Metrics(mtr *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if mtr == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			mtr.ObserveRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
