package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/beanery-pos/api/internal/export"
	"github.com/beanery-pos/api/internal/menu"
	"github.com/beanery-pos/api/internal/order"
	"github.com/beanery-pos/api/internal/service"
	"github.com/beanery-pos/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderServicer defines the service methods needed by order handlers.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderServicer interface {
	PreviewPrice(req service.ItemRequest) (decimal.Decimal, error)
	AddItem(req service.ItemRequest) (menu.Item, error)
	RemoveItem(id uuid.UUID) error
	ClearCurrent()
	Current() order.Snapshot
	PlaceCurrent() (int, error)
	Orders() []*order.Order
	Order(number int) (*order.Order, error)
	CancelOrder(number int) error
	ExportText() string
}

// Broadcaster pushes order lifecycle events to connected displays.
// Satisfied by *ws.Hub.
type Broadcaster interface {
	Broadcast(event ws.Event)
}

// CurrentOrderHandler handles the order currently being assembled.
type CurrentOrderHandler struct {
	svc OrderServicer
}

// NewCurrentOrderHandler creates a new CurrentOrderHandler.
func NewCurrentOrderHandler(svc OrderServicer) *CurrentOrderHandler {
	return &CurrentOrderHandler{svc: svc}
}

// RegisterRoutes registers current-order endpoints on the given Chi router.
func (h *CurrentOrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Post("/items", h.AddItem)
	r.Delete("/items/{id}", h.RemoveItem)
	r.Delete("/items", h.Clear)
}

// OrdersHandler handles the store ledger of placed orders.
type OrdersHandler struct {
	svc        OrderServicer
	hub        Broadcaster
	exportPath string
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(svc OrderServicer, hub Broadcaster, exportPath string) *OrdersHandler {
	return &OrdersHandler{svc: svc, hub: hub, exportPath: exportPath}
}

// RegisterRoutes registers the ledger endpoints any signed-in staff member
// may use.
func (h *OrdersHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Place)
	r.Get("/", h.List)
	r.Get("/{number}", h.Get)
}

// RegisterOwnerRoutes registers the destructive ledger endpoints, meant to
// be mounted behind a RequireRole guard.
func (h *OrdersHandler) RegisterOwnerRoutes(r chi.Router) {
	r.Post("/export", h.Export)
	r.Delete("/{number}", h.Cancel)
}

// --- Request / Response types ---

type itemRequest struct {
	Type     string   `json:"type"`
	Quantity int      `json:"quantity"`
	Size     string   `json:"size,omitempty"`
	AddIns   []string `json:"add_ins,omitempty"`
	Category string   `json:"category,omitempty"`
	Flavor   string   `json:"flavor,omitempty"`
	Bread    string   `json:"bread,omitempty"`
	Protein  string   `json:"protein,omitempty"`
	AddOns   []string `json:"add_ons,omitempty"`
}

type itemResponse struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Quantity int       `json:"quantity"`
	Price    string    `json:"price"`
	Display  string    `json:"display"`
	Size     string    `json:"size,omitempty"`
	AddIns   []string  `json:"add_ins,omitempty"`
	Category string    `json:"category,omitempty"`
	Flavor   string    `json:"flavor,omitempty"`
	Bread    string    `json:"bread,omitempty"`
	Protein  string    `json:"protein,omitempty"`
	AddOns   []string  `json:"add_ons,omitempty"`
}

type currentOrderResponse struct {
	OrderNumber int            `json:"order_number"`
	Items       []itemResponse `json:"items"`
	Subtotal    string         `json:"subtotal"`
	Tax         string         `json:"tax"`
	Total       string         `json:"total"`
}

type placedOrderResponse struct {
	OrderNumber int            `json:"order_number"`
	Status      string         `json:"status"`
	Items       []itemResponse `json:"items"`
	Subtotal    string         `json:"subtotal"`
	Tax         string         `json:"tax"`
	Total       string         `json:"total"`
	Summary     string         `json:"summary"`
}

type orderListResponse struct {
	Orders []placedOrderResponse `json:"orders"`
}

type exportRequest struct {
	Path string `json:"path"`
}

type exportResponse struct {
	Path string `json:"path"`
}

// --- Current order handlers ---

// Get handles GET /current-order.
func (h *CurrentOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCurrentOrderResponse(h.svc.Current()))
}

// AddItem handles POST /current-order/items.
func (h *CurrentOrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := h.svc.AddItem(toServiceItemRequest(req))
	if err != nil {
		respondOrderError(w, err, "add item")
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// RemoveItem handles DELETE /current-order/items/{id}.
func (h *CurrentOrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	if err := h.svc.RemoveItem(id); err != nil {
		respondOrderError(w, err, "remove item")
		return
	}

	writeJSON(w, http.StatusOK, toCurrentOrderResponse(h.svc.Current()))
}

// Clear handles DELETE /current-order/items.
func (h *CurrentOrderHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearCurrent()
	writeJSON(w, http.StatusOK, toCurrentOrderResponse(h.svc.Current()))
}

// --- Ledger handlers ---

// Place handles POST /orders. It commits the current order into the ledger
// and starts a fresh one.
func (h *OrdersHandler) Place(w http.ResponseWriter, r *http.Request) {
	number, err := h.svc.PlaceCurrent()
	if err != nil {
		respondOrderError(w, err, "place order")
		return
	}

	placed, err := h.svc.Order(number)
	if err != nil {
		log.Printf("ERROR: load placed order %d: %v", number, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcast(ws.EventOrderPlaced, placed)
	writeJSON(w, http.StatusCreated, toPlacedOrderResponse(placed))
}

// List handles GET /orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.svc.Orders()
	resp := orderListResponse{Orders: make([]placedOrderResponse, len(orders))}
	for i, o := range orders {
		resp.Orders[i] = toPlacedOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /orders/{number}.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order number"})
		return
	}

	o, err := h.svc.Order(number)
	if err != nil {
		respondOrderError(w, err, "get order")
		return
	}

	writeJSON(w, http.StatusOK, toPlacedOrderResponse(o))
}

// Cancel handles DELETE /orders/{number}.
func (h *OrdersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order number"})
		return
	}

	if err := h.svc.CancelOrder(number); err != nil {
		respondOrderError(w, err, "cancel order")
		return
	}

	if payload, err := json.Marshal(map[string]int{"order_number": number}); err == nil {
		h.hub.Broadcast(ws.Event{Type: ws.EventOrderCancelled, Payload: payload})
	}

	writeJSON(w, http.StatusOK, map[string]int{"order_number": number})
}

// Export handles POST /orders/export. It writes the ledger report to disk
// and responds with the written path. A write failure never affects the
// ledger itself.
func (h *OrdersHandler) Export(w http.ResponseWriter, r *http.Request) {
	path := h.exportPath

	// Optional body may override the destination path. An absent body is
	// fine; a present but malformed one is not.
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Path != "" {
		path = req.Path
	}

	if err := export.WriteReport(path, h.svc.ExportText()); err != nil {
		log.Printf("ERROR: export orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "export failed: " + err.Error()})
		return
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	writeJSON(w, http.StatusOK, exportResponse{Path: abs})
}

// --- Helpers ---

func (h *OrdersHandler) broadcast(eventType string, o *order.Order) {
	payload, err := json.Marshal(map[string]string{
		"order_number": strconv.Itoa(o.Number()),
		"total":        o.Total().StringFixed(2),
	})
	if err != nil {
		return
	}
	h.hub.Broadcast(ws.Event{Type: eventType, Payload: payload})
}

// respondOrderError maps known domain and service errors to HTTP statuses.
func respondOrderError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, service.ErrItemNotFound), errors.Is(err, service.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, order.ErrOrderPlaced):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		log.Printf("ERROR: %s: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// isValidationError checks if the error is a known validation error that
// should result in 400 Bad Request.
func isValidationError(err error) bool {
	return errors.Is(err, service.ErrUnknownItemType) ||
		errors.Is(err, service.ErrUnknownAddIn) ||
		errors.Is(err, service.ErrUnknownAddOn) ||
		errors.Is(err, menu.ErrInvalidQuantity) ||
		errors.Is(err, menu.ErrSizeRequired) ||
		errors.Is(err, menu.ErrUnknownSize) ||
		errors.Is(err, menu.ErrUnknownCategory) ||
		errors.Is(err, menu.ErrBreadRequired) ||
		errors.Is(err, menu.ErrProteinRequired) ||
		errors.Is(err, menu.ErrUnknownBread) ||
		errors.Is(err, menu.ErrUnknownProtein) ||
		errors.Is(err, order.ErrNilItem) ||
		errors.Is(err, order.ErrEmptyOrder)
}

func toServiceItemRequest(req itemRequest) service.ItemRequest {
	return service.ItemRequest{
		Type:     req.Type,
		Quantity: req.Quantity,
		Size:     req.Size,
		AddIns:   req.AddIns,
		Category: req.Category,
		Flavor:   req.Flavor,
		Bread:    req.Bread,
		Protein:  req.Protein,
		AddOns:   req.AddOns,
	}
}

func toItemResponse(item menu.Item) itemResponse {
	resp := itemResponse{
		ID:       item.ID(),
		Quantity: item.Quantity(),
		Price:    item.Price().StringFixed(2),
		Display:  item.String(),
	}

	switch it := item.(type) {
	case *menu.Coffee:
		resp.Type = "COFFEE"
		resp.Size = it.Size()
		resp.AddIns = it.AddIns()
	case *menu.Donut:
		resp.Type = "DONUT"
		resp.Category = it.Category()
		resp.Flavor = it.Flavor()
	case *menu.Sandwich:
		resp.Type = "SANDWICH"
		resp.Bread = it.Bread()
		resp.Protein = it.Protein()
		resp.AddOns = it.AddOns()
	}

	return resp
}

func toCurrentOrderResponse(snap order.Snapshot) currentOrderResponse {
	items := make([]itemResponse, len(snap.Items))
	for i, item := range snap.Items {
		items[i] = toItemResponse(item)
	}
	return currentOrderResponse{
		OrderNumber: snap.Number,
		Items:       items,
		Subtotal:    snap.Subtotal.StringFixed(2),
		Tax:         snap.Tax.StringFixed(2),
		Total:       snap.Total.StringFixed(2),
	}
}

func toPlacedOrderResponse(o *order.Order) placedOrderResponse {
	orderItems := o.Items()
	items := make([]itemResponse, len(orderItems))
	for i, item := range orderItems {
		items[i] = toItemResponse(item)
	}
	return placedOrderResponse{
		OrderNumber: o.Number(),
		Status:      o.Status(),
		Items:       items,
		Subtotal:    o.Subtotal().StringFixed(2),
		Tax:         o.Tax().StringFixed(2),
		Total:       o.Total().StringFixed(2),
		Summary:     o.ExportLine(),
	}
}
