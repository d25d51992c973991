package controllers

import (
	"net/http"

	"github.com/theegirlieshub/girlieshub-backend/api/responses"
	"github.com/theegirlieshub/girlieshub-backend/api/validators"
	"github.com/theegirlieshub/girlieshub-backend/internal/orders"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
)

// AdminListOrders serves the back-office order ledger, newest first,
// with line items and product names.
func AdminListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		params := validators.PaginationParams(r)
		result, err := svc.ListOrders(r.Context(), params, orders.ListFilters{
			Status: validators.OptionalQueryString(r, "status"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
