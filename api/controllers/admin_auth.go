package controllers

import (
	"net/http"

	"github.com/theegirlieshub/girlieshub-backend/api/responses"
	"github.com/theegirlieshub/girlieshub-backend/api/validators"
	"github.com/theegirlieshub/girlieshub-backend/internal/auth"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
)

type adminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLogin exchanges the shared back-office password for a session
// token.
func AdminLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload adminLoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(r.Context(), payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}

// AdminLogout revokes the presented session token.
func AdminLogout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		token := ""
		if raw := r.Header.Get("Authorization"); raw != "" {
			token = raw
			if len(raw) > 7 && (raw[:7] == "Bearer " || raw[:7] == "bearer ") {
				token = raw[7:]
			}
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}
