package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/mythrilmerch/mythrilmerch-backend/api/responses"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/config"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status           string `json:"status"`
	StorageReachable bool   `json:"storageReachable"`
}

// Health reports API and storage liveness. The database gates readiness; a
// Redis failure only degrades rate limiting, so it is logged but does not
// flip the status.
func Health(cfg *config.Config, database, cache Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MythrilMerch-Env", cfg.App.Env)

		ctx := r.Context()

		var checks, dbErr error
		if database != nil {
			dbErr = database.Ping(ctx)
			checks = multierr.Append(checks, dbErr)
		}
		if cache != nil {
			checks = multierr.Append(checks, cache.Ping(ctx))
		}

		if checks != nil && logg != nil {
			logg.Warn(logg.WithField(ctx, "checks", multierr.Errors(checks)), "health.degraded")
		}

		if dbErr != nil {
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, healthResponse{
				Status:           "degraded",
				StorageReachable: false,
			})
			return
		}

		responses.WriteSuccess(w, healthResponse{Status: "ok", StorageReachable: true})
	}
}
