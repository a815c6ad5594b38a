package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/stylelane/stylelane-backend/api/responses"
	"github.com/stylelane/stylelane-backend/pkg/config"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/logger"
)

const readinessTimeout = 5 * time.Second

// Pinger checks that a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-StyleLane-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every registered dependency. Nil pingers are
// treated as disabled and reported as skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, checks map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-StyleLane-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		statuses := make(map[string]string, len(checks))
		healthy := true
		for name, check := range checks {
			if check == nil {
				statuses[name] = "skipped"
				continue
			}
			if err := check.Ping(ctx); err != nil {
				fctx := logg.WithField(ctx, "dependency", name)
				logg.Error(fctx, "readiness check failed", err)
				statuses[name] = "unreachable"
				healthy = false
				continue
			}
			statuses[name] = "ok"
		}

		if !healthy {
			err := pkgerrors.New(pkgerrors.CodeDependency, "one or more dependencies are unreachable").WithDetails(statuses)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": statuses})
	}
}
