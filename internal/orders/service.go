package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/theegirlieshub/girlieshub-backend/internal/shipping"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/models"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/types"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
	"github.com/theegirlieshub/girlieshub-backend/pkg/pagination"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type orderRepository interface {
	WithTx(tx *gorm.DB) *Repository
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, params pagination.Params, filters ListFilters) ([]models.Order, int64, error)
}

type stockDecrementer interface {
	DecrementStock(ctx context.Context, productID uuid.UUID, qty int) error
}

// Service exposes order submission, the confirmation readback, and
// the back-office order listing.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*OrderDTO, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	ListOrders(ctx context.Context, params pagination.Params, filters ListFilters) (*ListResult, error)
}

type service struct {
	repo  orderRepository
	tx    txRunner
	stock stockDecrementer
	logg  *logger.Logger
}

// NewService builds the order service.
func NewService(repo orderRepository, tx txRunner, stock stockDecrementer, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if stock == nil {
		return nil, fmt.Errorf("stock decrementer required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, tx: tx, stock: stock, logg: logg}, nil
}

// LineInput is one order line as submitted by the storefront.
type LineInput struct {
	ProductID        uuid.UUID
	Quantity         int
	Price            decimal.Decimal
	SelectedVariants types.VariantChoices
}

// SubmitInput is the full order submission payload.
type SubmitInput struct {
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerAddress  string
	ShippingLocation string
	ShippingFee      decimal.Decimal
	TotalAmount      decimal.Decimal
	Items            []LineInput
}

// Submit validates the payload, re-derives the shipping fee from the
// authoritative table, then writes the header and items in one
// transaction. Stock decrements happen after commit, per line, best
// effort: a failed decrement is logged and swallowed.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*OrderDTO, error) {
	if err := validateSubmitInput(input); err != nil {
		return nil, err
	}

	fee, ok := shipping.Fee(input.ShippingLocation)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown shipping location").
			WithDetails(map[string]string{"shipping_location": input.ShippingLocation})
	}
	if !fee.Equal(input.ShippingFee) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping fee does not match selected location")
	}

	order := &models.Order{
		ID:               uuid.New(),
		CustomerName:     strings.TrimSpace(input.CustomerName),
		CustomerEmail:    strings.TrimSpace(input.CustomerEmail),
		CustomerPhone:    strings.TrimSpace(input.CustomerPhone),
		CustomerAddress:  strings.TrimSpace(input.CustomerAddress),
		ShippingLocation: input.ShippingLocation,
		ShippingFee:      fee,
		TotalAmount:      input.TotalAmount,
		Status:           models.OrderStatusPending,
		Items:            make([]models.OrderItem, 0, len(input.Items)),
	}
	for _, line := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:               uuid.New(),
			ProductID:        line.ProductID,
			Quantity:         line.Quantity,
			Price:            line.Price,
			SelectedVariants: line.SelectedVariants,
		})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, order)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order")
	}

	s.decrementStock(ctx, order)

	return toDTO(order), nil
}

// ListOrders pages through all orders for the back office, newest
// first, with line items and product names preloaded.
func (s *service) ListOrders(ctx context.Context, params pagination.Params, filters ListFilters) (*ListResult, error) {
	params = params.Normalize()

	rows, total, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	items := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *toDTO(&rows[i]))
	}
	return &ListResult{
		Orders:     items,
		Pagination: pagination.NewPage(params, total),
	}, nil
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return toDTO(row), nil
}

// decrementStock runs one update per line. Overselling is possible
// when a decrement fails; the order stands regardless.
func (s *service) decrementStock(ctx context.Context, order *models.Order) {
	for _, item := range order.Items {
		if err := s.stock.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			lineCtx := s.logg.WithOrderID(ctx, order.ID.String())
			lineCtx = s.logg.WithProductID(lineCtx, item.ProductID.String())
			lineCtx = s.logg.WithFields(lineCtx, map[string]any{"quantity": item.Quantity})
			s.logg.Error(lineCtx, "stock decrement failed", err)
		}
	}
}

func validateSubmitInput(input SubmitInput) error {
	missing := []string{}
	if strings.TrimSpace(input.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(input.CustomerEmail) == "" {
		missing = append(missing, "customer_email")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		missing = append(missing, "customer_phone")
	}
	if strings.TrimSpace(input.CustomerAddress) == "" {
		missing = append(missing, "customer_address")
	}
	if strings.TrimSpace(input.ShippingLocation) == "" {
		missing = append(missing, "shipping_location")
	}
	if input.TotalAmount.IsZero() {
		missing = append(missing, "total_amount")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing required fields").
			WithDetails(map[string][]string{"fields": missing})
	}

	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	for _, line := range input.Items {
		if line.ProductID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "item product id is required")
		}
		if line.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
		if line.Price.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "item price must be non-negative")
		}
	}

	if input.TotalAmount.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "total amount must be non-negative")
	}
	return nil
}
