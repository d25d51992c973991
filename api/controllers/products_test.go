package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	productsvc "github.com/theegirlieshub/girlieshub-backend/internal/products"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/pagination"
)

type stubProductService struct {
	list       *productsvc.ListResult
	listErr    error
	detail     *productsvc.DetailResult
	detailErr  error
	created    *productsvc.ProductDTO
	createErr  error
	updated    *productsvc.ProductDTO
	updateErr  error
	deleteErr  error
	gotFilters productsvc.ListFilters
}

func (s *stubProductService) List(_ context.Context, _ pagination.Params, filters productsvc.ListFilters) (*productsvc.ListResult, error) {
	s.gotFilters = filters
	return s.list, s.listErr
}

func (s *stubProductService) GetDetail(context.Context, uuid.UUID) (*productsvc.DetailResult, error) {
	return s.detail, s.detailErr
}

func (s *stubProductService) Create(context.Context, productsvc.CreateInput) (*productsvc.ProductDTO, error) {
	return s.created, s.createErr
}

func (s *stubProductService) Update(context.Context, uuid.UUID, productsvc.UpdateInput) (*productsvc.ProductDTO, error) {
	return s.updated, s.updateErr
}

func (s *stubProductService) Delete(context.Context, uuid.UUID) error { return s.deleteErr }

func (s *stubProductService) DecrementStock(context.Context, uuid.UUID, int) error { return nil }

func sampleProduct(name string) productsvc.ProductDTO {
	category := "tops"
	return productsvc.ProductDTO{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.NewFromInt(4500),
		Category: &category,
	}
}

func TestListProductsSuccess(t *testing.T) {
	t.Parallel()

	svc := &stubProductService{
		list: &productsvc.ListResult{
			Products:   []productsvc.ProductDTO{sampleProduct("Silk Top")},
			Pagination: pagination.NewPage(pagination.Params{Page: 1, Limit: 8}, 1),
		},
	}
	handler := ListProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=tops&featured=true", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotFilters.Category == nil || *svc.gotFilters.Category != "tops" {
		t.Fatalf("category filter not forwarded: %+v", svc.gotFilters)
	}
	if svc.gotFilters.Featured == nil || !*svc.gotFilters.Featured {
		t.Fatalf("featured filter not forwarded: %+v", svc.gotFilters)
	}

	var envelope struct {
		Data productsvc.ListResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(envelope.Data.Products))
	}
	if envelope.Data.Pagination.Total != 1 {
		t.Fatalf("unexpected pagination: %+v", envelope.Data.Pagination)
	}
}

func TestListProductsInvalidFeatured(t *testing.T) {
	t.Parallel()

	handler := ListProducts(&stubProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?featured=banana", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func newProductDetailRequest(t *testing.T, id string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetProductNotFound(t *testing.T) {
	t.Parallel()

	svc := &stubProductService{detailErr: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := GetProduct(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newProductDetailRequest(t, uuid.NewString()))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("unexpected error code: %s", envelope.Error.Code)
	}
}

func TestGetProductInvalidID(t *testing.T) {
	t.Parallel()

	handler := GetProduct(&stubProductService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newProductDetailRequest(t, "not-a-uuid"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetProductWithRelated(t *testing.T) {
	t.Parallel()

	svc := &stubProductService{
		detail: &productsvc.DetailResult{
			Product: sampleProduct("Subject"),
			Related: []productsvc.ProductDTO{sampleProduct("Sibling")},
		},
	}
	handler := GetProduct(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newProductDetailRequest(t, uuid.NewString()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data productsvc.DetailResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Product.Name != "Subject" {
		t.Fatalf("unexpected product: %s", envelope.Data.Product.Name)
	}
	if len(envelope.Data.Related) != 1 || envelope.Data.Related[0].Name != "Sibling" {
		t.Fatalf("unexpected related products: %+v", envelope.Data.Related)
	}
}
