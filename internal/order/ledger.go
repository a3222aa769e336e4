package order

import (
	"fmt"
	"strings"
)

// StoreOrders is the ledger of placed orders, in placement order.
// Membership is by instance: two structurally identical orders are distinct
// entries, and adding the same instance twice is a silent no-op.
//
// StoreOrders does no locking of its own. The Session owning it serializes
// access.
type StoreOrders struct {
	orders []*Order
}

// NewStoreOrders creates an empty ledger.
func NewStoreOrders() *StoreOrders {
	return &StoreOrders{}
}

// AddOrder appends an order unless it is nil or already present.
func (s *StoreOrders) AddOrder(o *Order) {
	if o == nil {
		return
	}
	for _, existing := range s.orders {
		if existing == o {
			return
		}
	}
	s.orders = append(s.orders, o)
}

// RemoveOrder removes an order by instance, reporting whether it was present.
func (s *StoreOrders) RemoveOrder(o *Order) bool {
	for i, existing := range s.orders {
		if existing == o {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}

// Orders returns the placed orders in placement order.
func (s *StoreOrders) Orders() []*Order {
	out := make([]*Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Find returns the placed order with the given number.
func (s *StoreOrders) Find(number int) (*Order, bool) {
	for _, o := range s.orders {
		if o.number == number {
			return o, true
		}
	}
	return nil, false
}

// Export renders the full multi-line report: for each order a header,
// an itemized bullet list, the subtotal/tax/total breakdown, then a blank
// separator line. Pure string building; the ledger is never mutated.
func (s *StoreOrders) Export() string {
	var sb strings.Builder
	for _, o := range s.orders {
		fmt.Fprintf(&sb, "Order #%d\n", o.number)
		sb.WriteString("Items:\n")
		for _, item := range o.items {
			fmt.Fprintf(&sb, "  • %s\n", item.String())
		}
		fmt.Fprintf(&sb, "Subtotal: $%s\n", o.Subtotal().StringFixed(2))
		fmt.Fprintf(&sb, "Tax: $%s\n", o.Tax().StringFixed(2))
		fmt.Fprintf(&sb, "Total: $%s\n", o.Total().StringFixed(2))
		sb.WriteString("\n")
	}
	return sb.String()
}
