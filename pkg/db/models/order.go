package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status every new order starts in.
const OrderStatusPending = "pending"

// Order is the persisted header for a completed checkout.
type Order struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName     string          `gorm:"column:customer_name;not null"`
	CustomerEmail    string          `gorm:"column:customer_email;not null"`
	CustomerPhone    string          `gorm:"column:customer_phone;not null"`
	CustomerAddress  string          `gorm:"column:customer_address;not null"`
	ShippingLocation string          `gorm:"column:shipping_location;not null"`
	ShippingFee      decimal.Decimal `gorm:"column:shipping_fee;type:numeric(12,2);not null"`
	TotalAmount      decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Status           string          `gorm:"column:status;not null;default:'pending'"`
	Items            []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
