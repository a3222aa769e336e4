package menu_test

import (
	"errors"
	"testing"

	"github.com/beanery-pos/api/internal/enum"
	"github.com/beanery-pos/api/internal/menu"
	"github.com/shopspring/decimal"
)

func TestSandwichPrice(t *testing.T) {
	tests := []struct {
		name     string
		protein  string
		addOns   []string
		quantity int
		want     string
	}{
		{"plain chicken", enum.ProteinChicken, nil, 1, "10.99"},
		{"plain beef", enum.ProteinBeef, nil, 1, "12.99"},
		{"beef with cheese", enum.ProteinBeef, []string{enum.AddOnCheese}, 1, "13.99"},
		{"chicken with lettuce and tomatoes", enum.ProteinChicken, []string{enum.AddOnLettuce, enum.AddOnTomatoes}, 1, "11.59"},
		{"loaded salmon qty 2", enum.ProteinSalmon, []string{
			enum.AddOnCheese, enum.AddOnLettuce, enum.AddOnTomatoes, enum.AddOnOnions,
		}, 2, "33.78"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, err := menu.NewSandwich(enum.BreadWheat, tt.protein, tt.quantity)
			if err != nil {
				t.Fatalf("new sandwich: %v", err)
			}
			for _, a := range tt.addOns {
				if !sw.AddAddOn(a) {
					t.Fatalf("add-on %q not added", a)
				}
			}

			want := decimal.RequireFromString(tt.want)
			if got := sw.Price(); !got.Equal(want) {
				t.Errorf("price: got %s, want %s", got, want)
			}
		})
	}
}

func TestSandwichBreadDoesNotAffectPrice(t *testing.T) {
	bagel, _ := menu.NewSandwich(enum.BreadBagel, enum.ProteinBeef, 1)
	sourdough, _ := menu.NewSandwich(enum.BreadSourdough, enum.ProteinBeef, 1)

	if !bagel.Price().Equal(sourdough.Price()) {
		t.Errorf("bread changed price: %s vs %s", bagel.Price(), sourdough.Price())
	}
}

func TestSandwichDuplicateAddOn(t *testing.T) {
	sw, _ := menu.NewSandwich(enum.BreadWheat, enum.ProteinBeef, 1)

	if !sw.AddAddOn(enum.AddOnCheese) {
		t.Fatal("first add should report true")
	}
	if sw.AddAddOn(enum.AddOnCheese) {
		t.Fatal("duplicate add should report false")
	}

	// Cheese is charged once.
	want := decimal.RequireFromString("13.99")
	if got := sw.Price(); !got.Equal(want) {
		t.Errorf("price: got %s, want %s", got, want)
	}
}

func TestSandwichRemoveAddOn(t *testing.T) {
	sw, _ := menu.NewSandwich(enum.BreadWheat, enum.ProteinBeef, 1)
	sw.AddAddOn(enum.AddOnOnions)

	if !sw.RemoveAddOn(enum.AddOnOnions) {
		t.Fatal("remove of present add-on should report true")
	}
	if sw.RemoveAddOn(enum.AddOnOnions) {
		t.Fatal("remove of absent add-on should report false")
	}

	want := decimal.RequireFromString("12.99")
	if got := sw.Price(); !got.Equal(want) {
		t.Errorf("price after removal: got %s, want %s", got, want)
	}
}

func TestSandwichUnknownAddOnRejected(t *testing.T) {
	sw, _ := menu.NewSandwich(enum.BreadBagel, enum.ProteinChicken, 1)
	before := sw.Price()

	for _, a := range []string{"", "BACON", "cheese"} {
		if sw.AddAddOn(a) {
			t.Errorf("add-on %q should report false", a)
		}
	}
	if len(sw.AddOns()) != 0 {
		t.Errorf("add-ons recorded: %v", sw.AddOns())
	}
	if got := sw.Price(); !got.Equal(before) {
		t.Errorf("price changed: got %s, want %s", got, before)
	}
}

func TestNewSandwichValidation(t *testing.T) {
	tests := []struct {
		name     string
		bread    string
		protein  string
		quantity int
		wantErr  error
	}{
		{"zero quantity", enum.BreadWheat, enum.ProteinBeef, 0, menu.ErrInvalidQuantity},
		{"missing bread", "", enum.ProteinBeef, 1, menu.ErrBreadRequired},
		{"unknown bread", "RYE", enum.ProteinBeef, 1, menu.ErrUnknownBread},
		{"missing protein", enum.BreadWheat, "", 1, menu.ErrProteinRequired},
		{"unknown protein", enum.BreadWheat, "TOFU", 1, menu.ErrUnknownProtein},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := menu.NewSandwich(tt.bread, tt.protein, tt.quantity)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestItemIDsAreDistinct(t *testing.T) {
	a, _ := menu.NewSandwich(enum.BreadWheat, enum.ProteinBeef, 1)
	b, _ := menu.NewSandwich(enum.BreadWheat, enum.ProteinBeef, 1)

	if a.ID() == b.ID() {
		t.Fatal("structurally identical items must carry distinct IDs")
	}
}
