package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/models"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Service exposes catalog reads plus the admin product operations.
type Service interface {
	List(ctx context.Context, params pagination.Params, filters ListFilters) (*ListResult, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*DetailResult, error)
	Create(ctx context.Context, input CreateInput) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}

type repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, params pagination.Params, filters ListFilters) ([]models.Product, int64, error)
	ListRelated(ctx context.Context, category string, excludeID uuid.UUID) ([]models.Product, error)
	Create(ctx context.Context, row *models.Product) (*models.Product, error)
	Update(ctx context.Context, row *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}

type service struct {
	repo repository
}

// NewService builds the catalog service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

// CreateInput captures the admin payload for a new product.
type CreateInput struct {
	Name          string
	Description   *string
	Price         decimal.Decimal
	ImageURL      *string
	ImageURLs     []string
	Category      string
	StockQuantity int
	IsFeatured    bool
	Sizes         []string
	Colors        []string
	Designs       []string
}

// UpdateInput carries the replacement state for an existing product.
type UpdateInput struct {
	Name          string
	Description   *string
	Price         decimal.Decimal
	ImageURL      *string
	ImageURLs     []string
	Category      string
	StockQuantity int
	IsFeatured    bool
	Sizes         []string
	Colors        []string
	Designs       []string
}

func (s *service) List(ctx context.Context, params pagination.Params, filters ListFilters) (*ListResult, error) {
	params = params.Normalize()

	rows, total, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	return &ListResult{
		Products:   toDTOs(rows),
		Pagination: pagination.NewPage(params, total),
	}, nil
}

func (s *service) GetDetail(ctx context.Context, id uuid.UUID) (*DetailResult, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	result := &DetailResult{Product: toDTO(row), Related: []ProductDTO{}}
	if row.Category != nil && *row.Category != "" {
		related, err := s.repo.ListRelated(ctx, *row.Category, row.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load related products")
		}
		result.Related = toDTOs(related)
	}
	return result, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*ProductDTO, error) {
	if err := validateProductInput(input.Name, input.Price, input.Category); err != nil {
		return nil, err
	}

	row := &models.Product{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		ImageURL:      input.ImageURL,
		ImageURLs:     pq.StringArray(input.ImageURLs),
		Category:      strPtr(strings.TrimSpace(input.Category)),
		StockQuantity: input.StockQuantity,
		IsFeatured:    input.IsFeatured,
		Sizes:         pq.StringArray(input.Sizes),
		Colors:        pq.StringArray(input.Colors),
		Designs:       pq.StringArray(input.Designs),
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert product")
	}
	dto := toDTO(created)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*ProductDTO, error) {
	if err := validateProductInput(input.Name, input.Price, input.Category); err != nil {
		return nil, err
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	row.Name = strings.TrimSpace(input.Name)
	row.Description = input.Description
	row.Price = input.Price
	row.ImageURL = input.ImageURL
	row.ImageURLs = pq.StringArray(input.ImageURLs)
	row.Category = strPtr(strings.TrimSpace(input.Category))
	row.StockQuantity = input.StockQuantity
	row.IsFeatured = input.IsFeatured
	row.Sizes = pq.StringArray(input.Sizes)
	row.Colors = pq.StringArray(input.Colors)
	row.Designs = pq.StringArray(input.Designs)

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	dto := toDTO(updated)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func (s *service) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	if qty <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if err := s.repo.DecrementStock(ctx, id, qty); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
	}
	return nil
}

func validateProductInput(name string, price decimal.Decimal, category string) error {
	if strings.TrimSpace(name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if strings.TrimSpace(category) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	return nil
}

func strPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
