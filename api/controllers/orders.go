package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/theegirlieshub/girlieshub-backend/api/responses"
	"github.com/theegirlieshub/girlieshub-backend/api/validators"
	"github.com/theegirlieshub/girlieshub-backend/internal/orders"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/types"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
)

type submitOrderItemRequest struct {
	ProductID        uuid.UUID            `json:"product_id" validate:"required"`
	Quantity         int                  `json:"quantity" validate:"required,gt=0"`
	Price            decimal.Decimal      `json:"price"`
	SelectedVariants types.VariantChoices `json:"selected_variants,omitempty"`
}

type submitOrderRequest struct {
	CustomerName     string                   `json:"customer_name" validate:"required"`
	CustomerEmail    string                   `json:"customer_email" validate:"required,email"`
	CustomerPhone    string                   `json:"customer_phone" validate:"required"`
	CustomerAddress  string                   `json:"customer_address" validate:"required"`
	ShippingLocation string                   `json:"shipping_location" validate:"required"`
	ShippingFee      decimal.Decimal          `json:"shipping_fee"`
	TotalAmount      decimal.Decimal          `json:"total_amount"`
	Items            []submitOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r submitOrderRequest) toInput() orders.SubmitInput {
	input := orders.SubmitInput{
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		CustomerAddress:  r.CustomerAddress,
		ShippingLocation: r.ShippingLocation,
		ShippingFee:      r.ShippingFee,
		TotalAmount:      r.TotalAmount,
		Items:            make([]orders.LineInput, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		input.Items = append(input.Items, orders.LineInput{
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			Price:            item.Price,
			SelectedVariants: item.SelectedVariants,
		})
	}
	return input
}

// SubmitOrder handles storefront checkout submissions.
func SubmitOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload submitOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Submit(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// GetOrder serves the order confirmation readback.
func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		id, err := validators.UUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetOrder(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}
