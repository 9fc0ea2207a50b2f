package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mythrilmerch/mythrilmerch-backend/api/responses"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/config"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/logger"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/metrics"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/ratelimit"
)

type rateLimitWindow struct {
	name   string
	window time.Duration
	limit  int
}

// RateLimit enforces fixed-window per-IP counters across minute, hour and
// day windows. Counters live in the supplied store, so a Redis-backed store
// makes the limits shared across replicas while the in-process store keeps
// them per instance.
//
// A store failure blocks the request with a dependency error rather than
// letting traffic through unmetered.
func RateLimit(cfg config.RateLimitConfig, store ratelimit.CounterStore, mtr *metrics.HTTPMetrics, logg *logger.Logger) func(http.Handler) http.Handler {
	windows := []rateLimitWindow{
		{name: "minute", window: time.Minute, limit: cfg.PerMinute},
		{name: "hour", window: time.Hour, limit: cfg.PerHour},
		{name: "day", window: 24 * time.Hour, limit: cfg.PerDay},
	}

	return func(next http.Handler) http.Handler {
		if store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := clientIP(r)

			for _, win := range windows {
				if win.limit <= 0 {
					continue
				}
				key := fmt.Sprintf("rl:ip:%s:%s", win.name, ip)
				count, err := store.IncrWithTTL(ctx, key, win.window)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
					return
				}
				if count > int64(win.limit) {
					respondRateLimited(ctx, logg, mtr, w, win, ip, count)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondRateLimited(ctx context.Context, logg *logger.Logger, mtr *metrics.HTTPMetrics, w http.ResponseWriter, win rateLimitWindow, ip string, count int64) {
	if mtr != nil {
		mtr.IncRateLimitHit(win.name)
	}
	if logg != nil {
		logCtx := logg.WithFields(ctx, map[string]any{
			"ip":             ip,
			"window":         win.name,
			"attempts":       count,
			"limit":          win.limit,
			"window_seconds": int(win.window.Seconds()),
		})
		logg.Warn(logCtx, "rate_limit.blocked")
	}
	w.Header().Set("Retry-After", strconv.Itoa(int(win.window.Seconds())))
	responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
