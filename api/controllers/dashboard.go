package controllers

import (
	"net/http"

	"github.com/theegirlieshub/girlieshub-backend/api/responses"
	"github.com/theegirlieshub/girlieshub-backend/internal/dashboard"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
)

// AdminDashboard serves the back-office analytics panel.
func AdminDashboard(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
