package service_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/beanery-pos/api/internal/enum"
	"github.com/beanery-pos/api/internal/menu"
	"github.com/beanery-pos/api/internal/order"
	"github.com/beanery-pos/api/internal/service"
	"github.com/google/uuid"
)

func newService() *service.OrderService {
	return service.NewOrderService(order.NewSession())
}

func TestBuildItem(t *testing.T) {
	tests := []struct {
		name      string
		req       service.ItemRequest
		wantPrice string
		wantErr   error
	}{
		{
			name: "plain short coffee",
			req: service.ItemRequest{
				Type:     enum.ItemTypeCoffee,
				Quantity: 1,
				Size:     enum.CupSizeShort,
			},
			wantPrice: "2.39",
		},
		{
			name: "grande coffee with add-ins",
			req: service.ItemRequest{
				Type:     enum.ItemTypeCoffee,
				Quantity: 1,
				Size:     enum.CupSizeGrande,
				AddIns:   []string{enum.AddInMocha, enum.AddInCaramel},
			},
			wantPrice: "4.09",
		},
		{
			name: "duplicate add-ins charged once",
			req: service.ItemRequest{
				Type:     enum.ItemTypeCoffee,
				Quantity: 1,
				Size:     enum.CupSizeShort,
				AddIns:   []string{enum.AddInMocha, enum.AddInMocha},
			},
			wantPrice: "2.64",
		},
		{
			name: "cake donut",
			req: service.ItemRequest{
				Type:     enum.ItemTypeDonut,
				Quantity: 3,
				Category: enum.DonutCake,
				Flavor:   "Old Fashioned",
			},
			wantPrice: "6.57",
		},
		{
			name: "sandwich with add-ons",
			req: service.ItemRequest{
				Type:     enum.ItemTypeSandwich,
				Quantity: 1,
				Bread:    enum.BreadBagel,
				Protein:  enum.ProteinChicken,
				AddOns:   []string{enum.AddOnCheese, enum.AddOnLettuce},
			},
			wantPrice: "12.29",
		},
		{
			name:    "unknown type",
			req:     service.ItemRequest{Type: "PIZZA", Quantity: 1},
			wantErr: service.ErrUnknownItemType,
		},
		{
			name: "unknown add-in",
			req: service.ItemRequest{
				Type:     enum.ItemTypeCoffee,
				Quantity: 1,
				Size:     enum.CupSizeTall,
				AddIns:   []string{"PUMPKIN_SPICE"},
			},
			wantErr: service.ErrUnknownAddIn,
		},
		{
			name: "unknown add-on",
			req: service.ItemRequest{
				Type:     enum.ItemTypeSandwich,
				Quantity: 1,
				Bread:    enum.BreadWheat,
				Protein:  enum.ProteinBeef,
				AddOns:   []string{"BACON"},
			},
			wantErr: service.ErrUnknownAddOn,
		},
		{
			name: "coffee without size",
			req: service.ItemRequest{
				Type:     enum.ItemTypeCoffee,
				Quantity: 1,
			},
			wantErr: menu.ErrSizeRequired,
		},
		{
			name: "donut with bad category",
			req: service.ItemRequest{
				Type:     enum.ItemTypeDonut,
				Quantity: 1,
				Category: "FRIED",
				Flavor:   "Glazed",
			},
			wantErr: menu.ErrUnknownCategory,
		},
		{
			name: "zero quantity",
			req: service.ItemRequest{
				Type:     enum.ItemTypeDonut,
				Quantity: 0,
				Category: enum.DonutYeast,
				Flavor:   "Glazed",
			},
			wantErr: menu.ErrInvalidQuantity,
		},
	}

	svc := newService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := svc.BuildItem(tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := item.Price().StringFixed(2); got != tt.wantPrice {
				t.Errorf("price: got %s, want %s", got, tt.wantPrice)
			}
		})
	}
}

func TestPreviewPriceDoesNotTouchOrder(t *testing.T) {
	svc := newService()

	price, err := svc.PreviewPrice(service.ItemRequest{
		Type:     enum.ItemTypeCoffee,
		Quantity: 2,
		Size:     enum.CupSizeVenti,
	})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if got := price.StringFixed(2); got != "8.38" {
		t.Errorf("preview price: got %s, want 8.38", got)
	}
	if snap := svc.Current(); len(snap.Items) != 0 {
		t.Error("preview must not add items to the current order")
	}
}

func TestAddAndRemoveItem(t *testing.T) {
	svc := newService()

	item, err := svc.AddItem(service.ItemRequest{
		Type:     enum.ItemTypeDonut,
		Quantity: 1,
		Category: enum.DonutYeast,
		Flavor:   "Glazed",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if snap := svc.Current(); len(snap.Items) != 1 {
		t.Fatalf("current order has %d items, want 1", len(snap.Items))
	}

	if err := svc.RemoveItem(item.ID()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveItem(item.ID()); !errors.Is(err, service.ErrItemNotFound) {
		t.Fatalf("second remove: got %v, want %v", err, service.ErrItemNotFound)
	}
	if err := svc.RemoveItem(uuid.New()); !errors.Is(err, service.ErrItemNotFound) {
		t.Fatalf("remove of random id: got %v, want %v", err, service.ErrItemNotFound)
	}
}

func TestClearCurrent(t *testing.T) {
	svc := newService()
	svc.AddItem(service.ItemRequest{
		Type:     enum.ItemTypeDonut,
		Quantity: 2,
		Category: enum.DonutHole,
		Flavor:   "Cinnamon",
	})

	svc.ClearCurrent()
	if snap := svc.Current(); len(snap.Items) != 0 {
		t.Error("items remain after clear")
	}
}

func TestPlaceCurrent(t *testing.T) {
	svc := newService()

	if _, err := svc.PlaceCurrent(); !errors.Is(err, order.ErrEmptyOrder) {
		t.Fatalf("place empty: got %v, want %v", err, order.ErrEmptyOrder)
	}

	svc.AddItem(service.ItemRequest{
		Type:     enum.ItemTypeCoffee,
		Quantity: 1,
		Size:     enum.CupSizeTall,
	})
	number, err := svc.PlaceCurrent()
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	placed, err := svc.Order(number)
	if err != nil {
		t.Fatalf("lookup placed order: %v", err)
	}
	if placed.Number() != number {
		t.Errorf("order number: got %d, want %d", placed.Number(), number)
	}
	if got := len(svc.Orders()); got != 1 {
		t.Errorf("ledger size: got %d, want 1", got)
	}
}

func TestOrderNotFound(t *testing.T) {
	svc := newService()

	if _, err := svc.Order(99999); !errors.Is(err, service.ErrOrderNotFound) {
		t.Fatalf("lookup: got %v, want %v", err, service.ErrOrderNotFound)
	}
	if err := svc.CancelOrder(99999); !errors.Is(err, service.ErrOrderNotFound) {
		t.Fatalf("cancel: got %v, want %v", err, service.ErrOrderNotFound)
	}
}

func TestCancelOrder(t *testing.T) {
	svc := newService()
	svc.AddItem(service.ItemRequest{
		Type:     enum.ItemTypeDonut,
		Quantity: 1,
		Category: enum.DonutSeasonal,
		Flavor:   "Pumpkin",
	})
	number, _ := svc.PlaceCurrent()

	if err := svc.CancelOrder(number); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.Order(number); !errors.Is(err, service.ErrOrderNotFound) {
		t.Errorf("cancelled order still found")
	}
}

func TestExportText(t *testing.T) {
	svc := newService()
	svc.AddItem(service.ItemRequest{
		Type:     enum.ItemTypeCoffee,
		Quantity: 1,
		Size:     enum.CupSizeShort,
	})
	number, _ := svc.PlaceCurrent()

	report := svc.ExportText()
	if report == "" {
		t.Fatal("report is empty")
	}
	want := fmt.Sprintf("Order #%d", number)
	if !strings.HasPrefix(report, want) {
		t.Errorf("report header: got %q, want prefix %q", report, want)
	}
}
