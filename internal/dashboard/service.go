package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
)

type repository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountUniqueCustomers(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (decimal.Decimal, error)
	RecentOrders(ctx context.Context) ([]RecentOrder, error)
	TopProducts(ctx context.Context) ([]TopProduct, error)
}

// Stats is the full dashboard payload.
type Stats struct {
	TotalProducts  int64           `json:"total_products"`
	TotalOrders    int64           `json:"total_orders"`
	TotalCustomers int64           `json:"total_customers"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	RecentOrders   []RecentOrder   `json:"recent_orders"`
	TopProducts    []TopProduct    `json:"top_products"`
}

// Service computes the back-office dashboard.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo repository
}

// NewService builds the dashboard service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	products, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count products")
	}
	orders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count orders")
	}
	customers, err := s.repo.CountUniqueCustomers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count customers")
	}
	revenue, err := s.repo.SumRevenue(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum revenue")
	}
	recent, err := s.repo.RecentOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list recent orders")
	}
	top, err := s.repo.TopProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rank top products")
	}

	if recent == nil {
		recent = []RecentOrder{}
	}
	if top == nil {
		top = []TopProduct{}
	}

	return &Stats{
		TotalProducts:  products,
		TotalOrders:    orders,
		TotalCustomers: customers,
		TotalRevenue:   revenue,
		RecentOrders:   recent,
		TopProducts:    top,
	}, nil
}
