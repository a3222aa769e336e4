package order

import (
	"errors"
	"sync"

	"github.com/beanery-pos/api/internal/menu"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// firstOrderNumber seeds the monotonic order number sequence.
const firstOrderNumber = 10001

// ErrEmptyOrder is returned when placing an order with no items.
var ErrEmptyOrder = errors.New("current order is empty")

// Session owns the one order currently being assembled and the store ledger.
// A single mutex guards both, so the place transition (mark placed, append to
// ledger, swap in a fresh order) is observed atomically by every caller.
type Session struct {
	mu      sync.Mutex
	nextNum int
	current *Order
	store   *StoreOrders
}

// NewSession creates a session with an empty current order numbered 10001
// and an empty ledger.
func NewSession() *Session {
	s := &Session{nextNum: firstOrderNumber, store: NewStoreOrders()}
	s.current = New(s.takeNumber())
	return s
}

// takeNumber returns the next order number. Numbers are strictly increasing
// and never reused within the process lifetime. Caller holds mu (or is the
// constructor).
func (s *Session) takeNumber() int {
	n := s.nextNum
	s.nextNum++
	return n
}

// Snapshot is a point-in-time view of the current order.
type Snapshot struct {
	Number   int
	Items    []menu.Item
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Current returns a snapshot of the order being assembled.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Number:   s.current.Number(),
		Items:    s.current.Items(),
		Subtotal: s.current.Subtotal(),
		Tax:      s.current.Tax(),
		Total:    s.current.Total(),
	}
}

// AddItem appends an item to the current order.
func (s *Session) AddItem(item menu.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.AddItem(item)
}

// RemoveItem removes an item from the current order by ID, reporting whether
// it was present.
func (s *Session) RemoveItem(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed, _ := s.current.RemoveItem(id) // current is always OPEN
	return removed
}

// Clear empties the current order.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.current.Clear() // current is always OPEN
}

// PlaceCurrent commits the current order into the ledger and starts a fresh
// one. Returns the placed order's number, or ErrEmptyOrder (leaving all
// state untouched) if the current order has no items. The three steps are a
// single critical section: no reader ever sees the placed order still
// current, or an absent current order.
func (s *Session) PlaceCurrent() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.current.items) == 0 {
		return 0, ErrEmptyOrder
	}

	placed := s.current
	placed.markPlaced()
	s.store.AddOrder(placed)
	s.current = New(s.takeNumber())
	return placed.Number(), nil
}

// Orders returns the placed orders in placement order.
func (s *Session) Orders() []*Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Orders()
}

// Find returns the placed order with the given number.
func (s *Session) Find(number int) (*Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Find(number)
}

// Cancel removes the placed order with the given number from the ledger,
// reporting whether it was present.
func (s *Session) Cancel(number int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.store.Find(number)
	if !ok {
		return false
	}
	return s.store.RemoveOrder(o)
}

// ExportText renders the full ledger report.
func (s *Session) ExportText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Export()
}
