package menu

import (
	"fmt"

	"github.com/beanery-pos/api/internal/enum"
	"github.com/shopspring/decimal"
)

var (
	proteinPrices = map[string]decimal.Decimal{
		enum.ProteinBeef:    decimal.RequireFromString("12.99"),
		enum.ProteinChicken: decimal.RequireFromString("10.99"),
		enum.ProteinSalmon:  decimal.RequireFromString("14.99"),
	}

	cheesePrice = decimal.RequireFromString("1.00")
	veggiePrice = decimal.RequireFromString("0.30") // lettuce, tomatoes, onions
)

// Sandwich is priced by protein with per-add-on extras. Bread does not
// affect the price.
type Sandwich struct {
	base
	bread   string
	protein string
	addOns  []string
}

// NewSandwich creates a sandwich. Bread and protein are required and must be
// known values; quantity >= 1.
func NewSandwich(bread, protein string, quantity int) (*Sandwich, error) {
	b, err := newBase(quantity)
	if err != nil {
		return nil, err
	}
	if bread == "" {
		return nil, ErrBreadRequired
	}
	if !validBread(bread) {
		return nil, ErrUnknownBread
	}
	if protein == "" {
		return nil, ErrProteinRequired
	}
	if _, ok := proteinPrices[protein]; !ok {
		return nil, ErrUnknownProtein
	}
	return &Sandwich{base: b, bread: bread, protein: protein}, nil
}

func (s *Sandwich) Bread() string { return s.bread }

func (s *Sandwich) SetBread(bread string) error {
	if bread == "" {
		return ErrBreadRequired
	}
	if !validBread(bread) {
		return ErrUnknownBread
	}
	s.bread = bread
	return nil
}

func (s *Sandwich) Protein() string { return s.protein }

func (s *Sandwich) SetProtein(protein string) error {
	if protein == "" {
		return ErrProteinRequired
	}
	if _, ok := proteinPrices[protein]; !ok {
		return ErrUnknownProtein
	}
	s.protein = protein
	return nil
}

// AddOns returns the add-ons in insertion order.
func (s *Sandwich) AddOns() []string {
	out := make([]string, len(s.addOns))
	copy(out, s.addOns)
	return out
}

// AddAddOn adds an add-on, reporting whether it was newly added. Adding an
// add-on that is already present or not a known add-on is a no-op.
func (s *Sandwich) AddAddOn(a string) bool {
	if !ValidAddOn(a) {
		return false
	}
	return addOption(&s.addOns, a)
}

// RemoveAddOn removes an add-on, reporting whether it was present.
func (s *Sandwich) RemoveAddOn(a string) bool { return removeOption(&s.addOns, a) }

// Price is the protein base plus 1.00 for cheese and 0.30 for each other
// add-on, multiplied by quantity.
func (s *Sandwich) Price() decimal.Decimal {
	price, ok := proteinPrices[s.protein]
	if !ok {
		panic(fmt.Sprintf("menu: unknown protein %q", s.protein))
	}
	for _, a := range s.addOns {
		if a == enum.AddOnCheese {
			price = price.Add(cheesePrice)
		} else {
			price = price.Add(veggiePrice)
		}
	}
	return price.Mul(decimal.NewFromInt(int64(s.qty)))
}

func (s *Sandwich) String() string {
	return fmt.Sprintf("Sandwich x%d $%s", s.qty, s.Price().StringFixed(2))
}

// ValidAddOn reports whether a is a known sandwich add-on.
func ValidAddOn(a string) bool {
	switch a {
	case enum.AddOnCheese, enum.AddOnLettuce, enum.AddOnTomatoes, enum.AddOnOnions:
		return true
	}
	return false
}

func validBread(bread string) bool {
	switch bread {
	case enum.BreadBagel, enum.BreadWheat, enum.BreadSourdough:
		return true
	}
	return false
}
