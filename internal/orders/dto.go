package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/models"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/types"
	"github.com/theegirlieshub/girlieshub-backend/pkg/pagination"
)

// ListResult is one page of the back-office order listing.
type ListResult struct {
	Orders     []OrderDTO      `json:"orders"`
	Pagination pagination.Page `json:"pagination"`
}

// LineProduct is the slice of the product embedded in a confirmation
// view line.
type LineProduct struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL *string   `json:"image_url"`
}

// OrderItemDTO is the wire shape for one order line.
type OrderItemDTO struct {
	ID               uuid.UUID            `json:"id"`
	ProductID        uuid.UUID            `json:"product_id"`
	Quantity         int                  `json:"quantity"`
	Price            decimal.Decimal      `json:"price"`
	SelectedVariants types.VariantChoices `json:"selected_variants,omitempty"`
	Product          *LineProduct         `json:"product,omitempty"`
}

// OrderDTO is the wire shape for an order header plus its lines.
type OrderDTO struct {
	ID               uuid.UUID       `json:"id"`
	CustomerName     string          `json:"customer_name"`
	CustomerEmail    string          `json:"customer_email"`
	CustomerPhone    string          `json:"customer_phone"`
	CustomerAddress  string          `json:"customer_address"`
	ShippingLocation string          `json:"shipping_location"`
	ShippingFee      decimal.Decimal `json:"shipping_fee"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Status           string          `json:"status"`
	Items            []OrderItemDTO  `json:"items"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toDTO(m *models.Order) *OrderDTO {
	items := make([]OrderItemDTO, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, toItemDTO(&m.Items[i]))
	}
	return &OrderDTO{
		ID:               m.ID,
		CustomerName:     m.CustomerName,
		CustomerEmail:    m.CustomerEmail,
		CustomerPhone:    m.CustomerPhone,
		CustomerAddress:  m.CustomerAddress,
		ShippingLocation: m.ShippingLocation,
		ShippingFee:      m.ShippingFee,
		TotalAmount:      m.TotalAmount,
		Status:           m.Status,
		Items:            items,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toItemDTO(m *models.OrderItem) OrderItemDTO {
	dto := OrderItemDTO{
		ID:               m.ID,
		ProductID:        m.ProductID,
		Quantity:         m.Quantity,
		Price:            m.Price,
		SelectedVariants: m.SelectedVariants,
	}
	if m.Product != nil {
		dto.Product = &LineProduct{
			ID:       m.Product.ID,
			Name:     m.Product.Name,
			ImageURL: m.Product.ImageURL,
		}
	}
	return dto
}
