package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/types"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
)

// Item is a single cart line. Lines with the same product id are
// merged, so a product appears at most once.
type Item struct {
	ProductID        string               `json:"productId"`
	Name             string               `json:"name"`
	Price            decimal.Decimal      `json:"price"`
	Quantity         int                  `json:"quantity"`
	StockQuantity    int                  `json:"stockQuantity,omitempty"`
	ImageURL         *string              `json:"imageUrl,omitempty"`
	SelectedVariants types.VariantChoices `json:"selectedVariants,omitempty"`
}

// Snapshot is a read-only view of the cart with derived totals.
type Snapshot struct {
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// Store holds one customer's cart and writes it through to Storage on
// every mutation. Totals are always recomputed from the lines, never
// stored as authoritative state.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
	logg    *logger.Logger
}

// NewStore loads any previously persisted cart. A corrupt blob is
// logged and replaced with an empty cart rather than surfaced.
func NewStore(storage Storage, logg *logger.Logger) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("cart storage required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}

	s := &Store{storage: storage, logg: logg}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory lines with whatever storage holds. A
// corrupt blob resets the cart to empty instead of failing.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.storage.Get(StorageKey)
	switch {
	case err == ErrNotFound:
		s.items = nil
	case err != nil:
		return fmt.Errorf("load cart: %w", err)
	default:
		var items []Item
		if err := json.Unmarshal([]byte(blob), &items); err != nil {
			s.logg.Warn(context.Background(), "discarding unreadable cart blob")
			items = nil
		}
		s.items = items
	}
	return nil
}

// Add merges the line into the cart. An existing line for the same
// product gains the quantity; otherwise the line is appended.
func (s *Store) Add(item Item) error {
	if item.ProductID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if item.Quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += item.Quantity
			return s.persistLocked()
		}
	}
	s.items = append(s.items, item)
	return s.persistLocked()
}

// Remove drops the line for a product id. Removing an absent product
// is a no-op.
func (s *Store) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persistLocked()
		}
	}
	return s.persistLocked()
}

// UpdateQuantity sets the quantity for a product line. A quantity of
// zero or less removes the line.
func (s *Store) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.persistLocked()
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persistLocked()
}

// Snapshot returns the current lines and their derived totals.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	total, count := calculateTotals(items)
	return Snapshot{Items: items, Total: total, ItemCount: count}
}

// CheckoutItems converts the cart into order line inputs for
// submission. The caller clears the cart after a successful order.
func (s *Store) CheckoutItems() []CheckoutLine {
	snap := s.Snapshot()
	lines := make([]CheckoutLine, 0, len(snap.Items))
	for _, it := range snap.Items {
		lines = append(lines, CheckoutLine{
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			Price:            it.Price,
			SelectedVariants: it.SelectedVariants,
		})
	}
	return lines
}

// CheckoutLine is the cart's view of an order line about to be placed.
type CheckoutLine struct {
	ProductID        string
	Quantity         int
	Price            decimal.Decimal
	SelectedVariants types.VariantChoices
}

func (s *Store) persistLocked() error {
	blob, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("serialize cart: %w", err)
	}
	if err := s.storage.Set(StorageKey, string(blob)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

func calculateTotals(items []Item) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}
	return total, count
}
