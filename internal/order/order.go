package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beanery-pos/api/internal/enum"
	"github.com/beanery-pos/api/internal/menu"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NJTaxRate is the fixed New Jersey sales tax rate applied to every order.
var NJTaxRate = decimal.RequireFromString("0.06625")

// Errors returned by order mutations.
var (
	ErrNilItem     = errors.New("item is required")
	ErrOrderPlaced = errors.New("order has already been placed")
)

// Order is a numbered, insertion-ordered collection of menu items. It is
// OPEN while being assembled and PLACED once moved into the store ledger;
// a placed order rejects further structural mutation.
//
// Order does no locking of its own. The Session owning it serializes access.
type Order struct {
	number int
	status string
	items  []menu.Item
}

// New creates an empty open order with the given number.
func New(number int) *Order {
	return &Order{number: number, status: enum.OrderStatusOpen}
}

func (o *Order) Number() int { return o.number }

func (o *Order) Status() string { return o.status }

// Items returns the item sequence in insertion order.
func (o *Order) Items() []menu.Item {
	out := make([]menu.Item, len(o.items))
	copy(out, o.items)
	return out
}

// AddItem appends an item to the order.
func (o *Order) AddItem(item menu.Item) error {
	if item == nil {
		return ErrNilItem
	}
	if o.status == enum.OrderStatusPlaced {
		return ErrOrderPlaced
	}
	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes the item with the given ID, reporting whether it was
// present. Removing an absent item is a no-op, not an error.
func (o *Order) RemoveItem(id uuid.UUID) (bool, error) {
	if o.status == enum.OrderStatusPlaced {
		return false, ErrOrderPlaced
	}
	for i, item := range o.items {
		if item.ID() == id {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Clear empties the item sequence.
func (o *Order) Clear() error {
	if o.status == enum.OrderStatusPlaced {
		return ErrOrderPlaced
	}
	o.items = o.items[:0]
	return nil
}

// markPlaced transitions the order to PLACED. Called only by Session.
func (o *Order) markPlaced() { o.status = enum.OrderStatusPlaced }

// Subtotal is the sum of each item's price, recomputed on every call.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.items {
		sum = sum.Add(item.Price())
	}
	return sum
}

// Tax is the subtotal times the NJ rate, rounded to the cent.
func (o *Order) Tax() decimal.Decimal {
	return o.Subtotal().Mul(NJTaxRate).Round(2)
}

// Total is subtotal plus tax, rounded to the cent.
func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.Tax()).Round(2)
}

// ExportLine is a single-line summary for compact ledger views:
// order number, item count, subtotal, and each item's display string.
func (o *Order) ExportLine() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Order %d | %d items | Total: %s | [", o.number, len(o.items), o.Subtotal().StringFixed(2))
	for i, item := range o.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteString("]")
	return sb.String()
}
