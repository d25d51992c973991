package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is the canonical catalog listing managed by the back office.
type Product struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string          `gorm:"column:name;not null"`
	Description   *string         `gorm:"column:description"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	ImageURL      *string         `gorm:"column:image_url"`
	ImageURLs     pq.StringArray  `gorm:"column:image_urls;type:text[];not null;default:ARRAY[]::text[]"`
	Category      *string         `gorm:"column:category"`
	StockQuantity int             `gorm:"column:stock_quantity;not null;default:0"`
	IsFeatured    bool            `gorm:"column:is_featured;not null;default:false"`
	Sizes         pq.StringArray  `gorm:"column:sizes;type:text[];not null;default:ARRAY[]::text[]"`
	Colors        pq.StringArray  `gorm:"column:colors;type:text[];not null;default:ARRAY[]::text[]"`
	Designs       pq.StringArray  `gorm:"column:designs;type:text[];not null;default:ARRAY[]::text[]"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
