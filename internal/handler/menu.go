package handler

import (
	"encoding/json"
	"net/http"

	"github.com/beanery-pos/api/internal/enum"
	"github.com/go-chi/chi/v5"
)

// MenuHandler serves the option lists UI pickers are built from and the
// live price preview.
type MenuHandler struct {
	svc OrderServicer
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(svc OrderServicer) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Options)
	r.Post("/price", h.Price)
}

type menuOptionsResponse struct {
	CupSizes        []string `json:"cup_sizes"`
	CoffeeAddIns    []string `json:"coffee_add_ins"`
	DonutCategories []string `json:"donut_categories"`
	Breads          []string `json:"breads"`
	Proteins        []string `json:"proteins"`
	SandwichAddOns  []string `json:"sandwich_add_ons"`
}

type priceResponse struct {
	Price string `json:"price"`
}

// Options handles GET /menu.
func (h *MenuHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, menuOptionsResponse{
		CupSizes: []string{
			enum.CupSizeShort, enum.CupSizeTall, enum.CupSizeGrande, enum.CupSizeVenti,
		},
		CoffeeAddIns: []string{
			enum.AddInSweetCream, enum.AddInFrenchVanilla, enum.AddInIrishCream,
			enum.AddInCaramel, enum.AddInMocha,
		},
		DonutCategories: []string{
			enum.DonutYeast, enum.DonutCake, enum.DonutHole, enum.DonutSeasonal,
		},
		Breads: []string{
			enum.BreadBagel, enum.BreadWheat, enum.BreadSourdough,
		},
		Proteins: []string{
			enum.ProteinBeef, enum.ProteinChicken, enum.ProteinSalmon,
		},
		SandwichAddOns: []string{
			enum.AddOnCheese, enum.AddOnLettuce, enum.AddOnTomatoes, enum.AddOnOnions,
		},
	})
}

// Price handles POST /menu/price. It prices a prospective item
// configuration without adding it to the current order, so UIs can show a
// running price while options are being picked.
func (h *MenuHandler) Price(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	price, err := h.svc.PreviewPrice(toServiceItemRequest(req))
	if err != nil {
		respondOrderError(w, err, "preview price")
		return
	}

	writeJSON(w, http.StatusOK, priceResponse{Price: price.StringFixed(2)})
}
