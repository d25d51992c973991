package controllers

import (
	"net/http"

	"github.com/theegirlieshub/girlieshub-backend/api/responses"
	"github.com/theegirlieshub/girlieshub-backend/internal/shipping"
)

// ListShippingOptions serves the flat shipping fee table.
func ListShippingOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, shipping.Options())
	}
}
