package service

import (
	"errors"
	"fmt"

	"github.com/beanery-pos/api/internal/enum"
	"github.com/beanery-pos/api/internal/menu"
	"github.com/beanery-pos/api/internal/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Errors returned by the order service.
var (
	ErrUnknownItemType = errors.New("unknown item type")
	ErrUnknownAddIn    = errors.New("unknown add-in")
	ErrUnknownAddOn    = errors.New("unknown add-on")
	ErrItemNotFound    = errors.New("item not found in current order")
	ErrOrderNotFound   = errors.New("order not found")
)

// ItemRequest is the validated input for constructing a menu item. Type
// selects the variant; the remaining fields apply per variant.
type ItemRequest struct {
	Type     string
	Quantity int

	// Coffee
	Size   string
	AddIns []string

	// Donut
	Category string
	Flavor   string

	// Sandwich
	Bread   string
	Protein string
	AddOns  []string
}

// OrderService exposes the order-building and ledger operations over a
// single register session.
type OrderService struct {
	session *order.Session
}

// NewOrderService creates a new OrderService.
func NewOrderService(session *order.Session) *OrderService {
	return &OrderService{session: session}
}

// BuildItem constructs a menu item from the request without touching the
// current order. Used for live price previews.
func (s *OrderService) BuildItem(req ItemRequest) (menu.Item, error) {
	switch req.Type {
	case enum.ItemTypeCoffee:
		return buildCoffee(req)
	case enum.ItemTypeDonut:
		return menu.NewDonut(req.Category, req.Flavor, req.Quantity)
	case enum.ItemTypeSandwich:
		return buildSandwich(req)
	}
	return nil, ErrUnknownItemType
}

// PreviewPrice prices a prospective item configuration without adding it.
func (s *OrderService) PreviewPrice(req ItemRequest) (decimal.Decimal, error) {
	item, err := s.BuildItem(req)
	if err != nil {
		return decimal.Zero, err
	}
	return item.Price(), nil
}

// AddItem constructs an item and appends it to the current order.
func (s *OrderService) AddItem(req ItemRequest) (menu.Item, error) {
	item, err := s.BuildItem(req)
	if err != nil {
		return nil, err
	}
	if err := s.session.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem removes an item from the current order by ID.
func (s *OrderService) RemoveItem(id uuid.UUID) error {
	if !s.session.RemoveItem(id) {
		return ErrItemNotFound
	}
	return nil
}

// ClearCurrent empties the current order.
func (s *OrderService) ClearCurrent() {
	s.session.Clear()
}

// Current returns a snapshot of the order being assembled.
func (s *OrderService) Current() order.Snapshot {
	return s.session.Current()
}

// PlaceCurrent commits the current order into the store ledger and returns
// its number. Placing an empty order fails with order.ErrEmptyOrder and
// leaves both the ledger and the current order untouched.
func (s *OrderService) PlaceCurrent() (int, error) {
	return s.session.PlaceCurrent()
}

// Orders returns the placed orders in placement order.
func (s *OrderService) Orders() []*order.Order {
	return s.session.Orders()
}

// Order returns the placed order with the given number.
func (s *OrderService) Order(number int) (*order.Order, error) {
	o, ok := s.session.Find(number)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// CancelOrder removes a placed order from the ledger.
func (s *OrderService) CancelOrder(number int) error {
	if !s.session.Cancel(number) {
		return ErrOrderNotFound
	}
	return nil
}

// ExportText renders the full ledger report.
func (s *OrderService) ExportText() string {
	return s.session.ExportText()
}

// --- Variant builders ---

func buildCoffee(req ItemRequest) (menu.Item, error) {
	c, err := menu.NewCoffee(req.Size, req.Quantity)
	if err != nil {
		return nil, err
	}
	for _, a := range req.AddIns {
		if !menu.ValidAddIn(a) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAddIn, a)
		}
		c.AddAddIn(a) // duplicates in the request are silent no-ops
	}
	return c, nil
}

func buildSandwich(req ItemRequest) (menu.Item, error) {
	sw, err := menu.NewSandwich(req.Bread, req.Protein, req.Quantity)
	if err != nil {
		return nil, err
	}
	for _, a := range req.AddOns {
		if !menu.ValidAddOn(a) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAddOn, a)
		}
		sw.AddAddOn(a)
	}
	return sw, nil
}
