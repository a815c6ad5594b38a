package controllers

import (
	"net/http"

	"github.com/stylelane/stylelane-backend/api/responses"
	"github.com/stylelane/stylelane-backend/internal/seed"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/logger"
)

// InitDB loads the demo dataset. The seeder is idempotent so the
// endpoint can be hit repeatedly during local development.
func InitDB(seeder *seed.Seeder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if seeder == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seeder unavailable"))
			return
		}

		result, err := seeder.Run(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seeding incomplete"))
			return
		}
		responses.WriteSuccess(w, result)
	}
}
