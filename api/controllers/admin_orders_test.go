package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/theegirlieshub/girlieshub-backend/internal/orders"
	"github.com/theegirlieshub/girlieshub-backend/pkg/pagination"
)

func TestAdminListOrdersSuccess(t *testing.T) {
	t.Parallel()

	svc := &stubOrderService{list: &orders.ListResult{
		Orders: []orders.OrderDTO{
			{ID: uuid.New(), CustomerName: "Ada Obi", Status: "pending"},
		},
		Pagination: pagination.Page{Page: 1, Limit: 8, Total: 1, TotalPages: 1},
	}}
	handler := AdminListOrders(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders?status=pending", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotFilters.Status == nil || *svc.gotFilters.Status != "pending" {
		t.Fatalf("status filter not forwarded: %+v", svc.gotFilters)
	}

	var envelope struct {
		Data orders.ListResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Orders) != 1 {
		t.Fatalf("expected one order, got %d", len(envelope.Data.Orders))
	}
	if envelope.Data.Orders[0].CustomerName != "Ada Obi" {
		t.Fatalf("unexpected customer: %s", envelope.Data.Orders[0].CustomerName)
	}
	if envelope.Data.Pagination.Total != 1 {
		t.Fatalf("unexpected pagination: %+v", envelope.Data.Pagination)
	}
}

func TestAdminListOrdersNoStatusFilter(t *testing.T) {
	t.Parallel()

	svc := &stubOrderService{list: &orders.ListResult{Orders: []orders.OrderDTO{}}}
	handler := AdminListOrders(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotFilters.Status != nil {
		t.Fatalf("expected nil status filter, got %q", *svc.gotFilters.Status)
	}
}
