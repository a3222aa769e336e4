package menu

import (
	"fmt"

	"github.com/beanery-pos/api/internal/enum"
	"github.com/shopspring/decimal"
)

var donutPrices = map[string]decimal.Decimal{
	enum.DonutYeast:    decimal.RequireFromString("1.99"),
	enum.DonutCake:     decimal.RequireFromString("2.19"),
	enum.DonutHole:     decimal.RequireFromString("0.39"),
	enum.DonutSeasonal: decimal.RequireFromString("2.49"),
}

// Donut is priced by category. Flavor is informational only.
type Donut struct {
	base
	category string
	flavor   string
}

// NewDonut creates a donut. Category must be a known donut category and
// quantity >= 1.
func NewDonut(category, flavor string, quantity int) (*Donut, error) {
	b, err := newBase(quantity)
	if err != nil {
		return nil, err
	}
	if _, ok := donutPrices[category]; !ok {
		return nil, ErrUnknownCategory
	}
	return &Donut{base: b, category: category, flavor: flavor}, nil
}

func (d *Donut) Category() string { return d.category }

func (d *Donut) Flavor() string { return d.flavor }

// Price is the category unit price multiplied by quantity.
func (d *Donut) Price() decimal.Decimal {
	unit, ok := donutPrices[d.category]
	if !ok {
		panic(fmt.Sprintf("menu: unknown donut category %q", d.category))
	}
	return unit.Mul(decimal.NewFromInt(int64(d.qty)))
}

func (d *Donut) String() string {
	return fmt.Sprintf("%s Donut - %s x%d ($%s)", d.category, d.flavor, d.qty, d.Price().StringFixed(2))
}
