package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/types"
)

// OrderItem is one line of an order, snapshotting the unit price and the
// variant choices made at add-to-cart time.
type OrderItem struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID          uuid.UUID            `gorm:"column:order_id;type:uuid;not null"`
	ProductID        uuid.UUID            `gorm:"column:product_id;type:uuid;not null"`
	Quantity         int                  `gorm:"column:quantity;not null"`
	Price            decimal.Decimal      `gorm:"column:price;type:numeric(12,2);not null"`
	SelectedVariants types.VariantChoices `gorm:"column:selected_variants;type:jsonb;serializer:json"`
	Product          *Product             `gorm:"foreignKey:ProductID"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime"`
}
