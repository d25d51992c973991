package controllers

import (
	"context"
	"net/http"

	"github.com/theegirlieshub/girlieshub-backend/api/responses"
	"github.com/theegirlieshub/girlieshub-backend/pkg/config"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
)

type pinger interface {
	Ping(context.Context) error
}

// ReadyCheck names one dependency consulted by the readiness probe.
type ReadyCheck struct {
	Name   string
	Target pinger
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, checks ...ReadyCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if check.Target == nil {
				continue
			}
			if err := check.Target.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, check.Name+" unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
