package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/theegirlieshub/girlieshub-backend/api/responses"
	"github.com/theegirlieshub/girlieshub-backend/api/validators"
	productsvc "github.com/theegirlieshub/girlieshub-backend/internal/products"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
)

type productPayload struct {
	Name          string          `json:"name" validate:"required"`
	Description   *string         `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      *string         `json:"image_url,omitempty"`
	ImageURLs     []string        `json:"image_urls,omitempty"`
	Category      string          `json:"category" validate:"required"`
	StockQuantity int             `json:"stock_quantity" validate:"omitempty,min=0"`
	IsFeatured    bool            `json:"is_featured"`
	Sizes         []string        `json:"sizes,omitempty"`
	Colors        []string        `json:"colors,omitempty"`
	Designs       []string        `json:"designs,omitempty"`
}

// AdminListProducts serves the back-office catalog view.
func AdminListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		params := validators.PaginationParams(r)
		result, err := svc.List(r.Context(), params, productsvc.ListFilters{
			Category: validators.OptionalQueryString(r, "category"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminCreateProduct handles back-office product creation.
func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload productPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), productsvc.CreateInput{
			Name:          payload.Name,
			Description:   payload.Description,
			Price:         payload.Price,
			ImageURL:      payload.ImageURL,
			ImageURLs:     payload.ImageURLs,
			Category:      payload.Category,
			StockQuantity: payload.StockQuantity,
			IsFeatured:    payload.IsFeatured,
			Sizes:         payload.Sizes,
			Colors:        payload.Colors,
			Designs:       payload.Designs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct replaces an existing product.
func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.UUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, productsvc.UpdateInput{
			Name:          payload.Name,
			Description:   payload.Description,
			Price:         payload.Price,
			ImageURL:      payload.ImageURL,
			ImageURLs:     payload.ImageURLs,
			Category:      payload.Category,
			StockQuantity: payload.StockQuantity,
			IsFeatured:    payload.IsFeatured,
			Sizes:         payload.Sizes,
			Colors:        payload.Colors,
			Designs:       payload.Designs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product from the catalog.
func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.UUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
