package menu

import (
	"fmt"

	"github.com/beanery-pos/api/internal/enum"
	"github.com/shopspring/decimal"
)

var (
	coffeeBase    = decimal.RequireFromString("2.39") // short black
	sizeStepPrice = decimal.RequireFromString("0.60")
	addInPrice    = decimal.RequireFromString("0.25")
)

// Coffee is a cup of a given size with a set of unique add-ins.
type Coffee struct {
	base
	size   string
	addIns []string
}

// NewCoffee creates a coffee. Size must be a known cup size and quantity >= 1.
func NewCoffee(size string, quantity int) (*Coffee, error) {
	b, err := newBase(quantity)
	if err != nil {
		return nil, err
	}
	if size == "" {
		return nil, ErrSizeRequired
	}
	if _, ok := sizeSteps(size); !ok {
		return nil, ErrUnknownSize
	}
	return &Coffee{base: b, size: size}, nil
}

func (c *Coffee) Size() string { return c.size }

// SetSize changes the cup size for live re-pricing.
func (c *Coffee) SetSize(size string) error {
	if size == "" {
		return ErrSizeRequired
	}
	if _, ok := sizeSteps(size); !ok {
		return ErrUnknownSize
	}
	c.size = size
	return nil
}

// AddIns returns the add-ins in insertion order.
func (c *Coffee) AddIns() []string {
	out := make([]string, len(c.addIns))
	copy(out, c.addIns)
	return out
}

// AddAddIn adds an add-in, reporting whether it was newly added. Adding an
// add-in that is already present or not a known add-in is a no-op.
func (c *Coffee) AddAddIn(a string) bool {
	if !ValidAddIn(a) {
		return false
	}
	return addOption(&c.addIns, a)
}

// RemoveAddIn removes an add-in, reporting whether it was present.
func (c *Coffee) RemoveAddIn(a string) bool { return removeOption(&c.addIns, a) }

// Price is the short-black base plus 0.60 per size step above SHORT plus
// 0.25 per distinct add-in, multiplied by quantity.
func (c *Coffee) Price() decimal.Decimal {
	steps, ok := sizeSteps(c.size)
	if !ok {
		panic(fmt.Sprintf("menu: unknown cup size %q", c.size))
	}
	cup := coffeeBase.Add(sizeStepPrice.Mul(decimal.NewFromInt(int64(steps))))
	addIns := addInPrice.Mul(decimal.NewFromInt(int64(len(c.addIns))))
	return cup.Add(addIns).Mul(decimal.NewFromInt(int64(c.qty)))
}

func (c *Coffee) String() string {
	return fmt.Sprintf("Coffee x%d $%s", c.qty, c.Price().StringFixed(2))
}

// ValidAddIn reports whether a is a known coffee add-in.
func ValidAddIn(a string) bool {
	switch a {
	case enum.AddInSweetCream, enum.AddInFrenchVanilla, enum.AddInIrishCream,
		enum.AddInCaramel, enum.AddInMocha:
		return true
	}
	return false
}

// sizeSteps maps a cup size to its step count above SHORT.
func sizeSteps(size string) (int, bool) {
	switch size {
	case enum.CupSizeShort:
		return 0, true
	case enum.CupSizeTall:
		return 1, true
	case enum.CupSizeGrande:
		return 2, true
	case enum.CupSizeVenti:
		return 3, true
	}
	return 0, false
}
