package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/models"
	"github.com/theegirlieshub/girlieshub-backend/pkg/pagination"
)

// ProductDTO is the wire shape for a catalog product.
type ProductDTO struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      *string         `json:"image_url"`
	ImageURLs     []string        `json:"image_urls"`
	Category      *string         `json:"category"`
	StockQuantity int             `json:"stock_quantity"`
	IsFeatured    bool            `json:"is_featured"`
	Sizes         []string        `json:"sizes"`
	Colors        []string        `json:"colors"`
	Designs       []string        `json:"designs"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ListResult pairs a page of products with its pagination envelope.
type ListResult struct {
	Products   []ProductDTO    `json:"products"`
	Pagination pagination.Page `json:"pagination"`
}

// DetailResult carries a product plus a handful of related products
// from the same category.
type DetailResult struct {
	Product ProductDTO   `json:"product"`
	Related []ProductDTO `json:"relatedProducts"`
}

func toDTO(m *models.Product) ProductDTO {
	return ProductDTO{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		ImageURL:      m.ImageURL,
		ImageURLs:     []string(m.ImageURLs),
		Category:      m.Category,
		StockQuantity: m.StockQuantity,
		IsFeatured:    m.IsFeatured,
		Sizes:         []string(m.Sizes),
		Colors:        []string(m.Colors),
		Designs:       []string(m.Designs),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out
}
