package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/models"
	"gorm.io/gorm"
)

const (
	recentOrdersLimit = 5
	topProductsLimit  = 3
)

// RecentOrder is one row of the dashboard's latest-orders panel.
type RecentOrder struct {
	ID           uuid.UUID       `json:"id"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TopProduct is one row of the best-sellers panel, ranked by units
// sold across all order lines.
type TopProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitsSold int64     `json:"units_sold"`
}

// Repository runs the dashboard aggregate queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error
	return n, err
}

func (r *Repository) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&n).Error
	return n, err
}

// CountUniqueCustomers counts distinct customer names, the closest
// thing to a customer identity the order table carries.
func (r *Repository) CountUniqueCustomers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Distinct("customer_name").
		Count(&n).
		Error
	return n, err
}

func (r *Repository) SumRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Revenue decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Scan(&row).
		Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Revenue, nil
}

func (r *Repository) RecentOrders(ctx context.Context) ([]RecentOrder, error) {
	var rows []RecentOrder
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("id, customer_name, total_amount, status, created_at").
		Order("created_at DESC").
		Limit(recentOrdersLimit).
		Scan(&rows).
		Error
	return rows, err
}

func (r *Repository) TopProducts(ctx context.Context) ([]TopProduct, error) {
	var rows []TopProduct
	err := r.db.WithContext(ctx).
		Table("order_items oi").
		Select("oi.product_id, p.name, SUM(oi.quantity) AS units_sold").
		Joins("JOIN products p ON p.id = oi.product_id").
		Group("oi.product_id, p.name").
		Order("units_sold DESC").
		Limit(topProductsLimit).
		Scan(&rows).
		Error
	return rows, err
}
