package menu

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Errors returned by menu item constructors.
var (
	ErrInvalidQuantity = errors.New("quantity must be >= 1")
	ErrSizeRequired    = errors.New("size is required")
	ErrUnknownSize     = errors.New("unknown cup size")
	ErrUnknownCategory = errors.New("unknown donut category")
	ErrBreadRequired   = errors.New("bread is required")
	ErrProteinRequired = errors.New("protein is required")
	ErrUnknownBread    = errors.New("unknown bread")
	ErrUnknownProtein  = errors.New("unknown protein")
)

// Item is a priced, quantity-bearing purchasable unit. The set of
// implementations is closed: Coffee, Donut and Sandwich. Price is a pure
// function of current state and safe to call repeatedly for live previews.
type Item interface {
	// ID identifies this instance. Two structurally identical items carry
	// distinct IDs; removal from an order addresses the exact instance.
	ID() uuid.UUID
	Quantity() int
	Price() decimal.Decimal
	String() string

	menuItem()
}

// base carries the identity and quantity shared by every variant.
type base struct {
	id  uuid.UUID
	qty int
}

func newBase(quantity int) (base, error) {
	if quantity < 1 {
		return base{}, ErrInvalidQuantity
	}
	return base{id: uuid.New(), qty: quantity}, nil
}

func (b *base) ID() uuid.UUID { return b.id }

func (b *base) Quantity() int { return b.qty }

// SetQuantity replaces the quantity, preserving the >= 1 invariant.
func (b *base) SetQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	b.qty = quantity
	return nil
}

func (b *base) menuItem() {}

// addOption appends v to opts if it is non-empty and not already present.
// Reports whether the option was newly added; duplicates are silent no-ops.
func addOption(opts *[]string, v string) bool {
	if v == "" {
		return false
	}
	for _, o := range *opts {
		if o == v {
			return false
		}
	}
	*opts = append(*opts, v)
	return true
}

// removeOption removes v from opts, reporting whether it was present.
func removeOption(opts *[]string, v string) bool {
	for i, o := range *opts {
		if o == v {
			*opts = append((*opts)[:i], (*opts)[i+1:]...)
			return true
		}
	}
	return false
}
