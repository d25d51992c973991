package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDashboardTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := []string{
		`CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL,
  image_url TEXT,
  image_urls TEXT,
  category TEXT,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  is_featured INTEGER NOT NULL DEFAULT 0,
  sizes TEXT,
  colors TEXT,
  designs TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  customer_address TEXT NOT NULL,
  shipping_location TEXT NOT NULL,
  shipping_fee NUMERIC NOT NULL,
  total_amount NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price NUMERIC NOT NULL,
  selected_variants TEXT,
  created_at DATETIME
);`,
	}
	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedDashProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()
	row := &models.Product{ID: uuid.New(), Name: name, Price: decimal.NewFromInt(1000)}
	require.NoError(t, db.Create(row).Error)
	return row
}

func seedDashOrder(t *testing.T, db *gorm.DB, customer string, total int64, created time.Time, lines map[uuid.UUID]int) *models.Order {
	t.Helper()
	order := &models.Order{
		ID:               uuid.New(),
		CustomerName:     customer,
		CustomerEmail:    customer + "@example.com",
		CustomerPhone:    "+2348000000000",
		CustomerAddress:  "somewhere",
		ShippingLocation: "pickup",
		ShippingFee:      decimal.Zero,
		TotalAmount:      decimal.NewFromInt(total),
		Status:           models.OrderStatusPending,
		CreatedAt:        created,
		UpdatedAt:        created,
	}
	require.NoError(t, db.Create(order).Error)
	for productID, qty := range lines {
		item := &models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: productID,
			Quantity:  qty,
			Price:     decimal.NewFromInt(1000),
			CreatedAt: created,
		}
		require.NoError(t, db.Create(item).Error)
	}
	return order
}

func TestStats_aggregates(t *testing.T) {
	db := setupDashboardTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	top := seedDashProduct(t, db, "Best Seller")
	mid := seedDashProduct(t, db, "Mid Seller")
	slow := seedDashProduct(t, db, "Slow Seller")
	least := seedDashProduct(t, db, "Least Seller")

	now := time.Now().UTC()
	seedDashOrder(t, db, "Ada", 5000, now.Add(-3*time.Hour), map[uuid.UUID]int{top.ID: 5})
	seedDashOrder(t, db, "Ada", 3000, now.Add(-2*time.Hour), map[uuid.UUID]int{top.ID: 3, mid.ID: 4})
	seedDashOrder(t, db, "Bisi", 2000, now.Add(-time.Hour), map[uuid.UUID]int{slow.ID: 2})
	seedDashOrder(t, db, "Chika", 1000, now, map[uuid.UUID]int{least.ID: 1})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalProducts)
	assert.Equal(t, int64(4), stats.TotalOrders)
	assert.Equal(t, int64(3), stats.TotalCustomers)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(11000)), "got %s", stats.TotalRevenue)

	require.Len(t, stats.RecentOrders, 4)
	assert.Equal(t, "Chika", stats.RecentOrders[0].CustomerName)

	require.Len(t, stats.TopProducts, 3)
	assert.Equal(t, "Best Seller", stats.TopProducts[0].Name)
	assert.Equal(t, int64(8), stats.TopProducts[0].UnitsSold)
	assert.Equal(t, "Mid Seller", stats.TopProducts[1].Name)
}

func TestStats_recentOrdersCapped(t *testing.T) {
	db := setupDashboardTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	now := time.Now().UTC()
	for i := 0; i < 7; i++ {
		seedDashOrder(t, db, fmt.Sprintf("Customer %d", i), 100, now.Add(time.Duration(i)*time.Minute), nil)
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Len(t, stats.RecentOrders, recentOrdersLimit)
	assert.Equal(t, "Customer 6", stats.RecentOrders[0].CustomerName)
}

func TestStats_emptyDatabase(t *testing.T) {
	db := setupDashboardTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalCustomers)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Empty(t, stats.RecentOrders)
	assert.Empty(t, stats.TopProducts)
}
