package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/amorty-hall/api/internal/calc"
	"github.com/amorty-hall/api/internal/enum"
	"github.com/amorty-hall/api/internal/model"
	"github.com/amorty-hall/api/internal/store"
	"github.com/amorty-hall/api/internal/table"
)

var orderColumns = []table.Column[model.Order]{
	{Key: "customerName", Label: "Customer", Sortable: true, Value: func(o model.Order) any { return o.CustomerName }},
	{Key: "items", Label: "Items", Value: func(o model.Order) any { return len(o.Items) },
		Render: func(o model.Order) string { return fmt.Sprintf("%d items", len(o.Items)) }},
	{Key: "totalAmount", Label: "Total", Sortable: true, Value: func(o model.Order) any { return o.TotalAmount }},
	{Key: "orderDate", Label: "Date", Sortable: true, Value: func(o model.Order) any { return o.OrderDate }},
	{Key: "status", Label: "Status", Value: func(o model.Order) any { return o.Status }},
	{Key: "tableNumber", Label: "Table", Value: func(o model.Order) any { return o.TableNumber }},
}

// OrderHandler handles the order screen's CRUD endpoints. Customer
// name and line-item menu name/price are snapshotted at submit time;
// totals are computed once on submit and stored as-is.
type OrderHandler struct {
	orders    *store.Collection[model.Order]
	customers *store.Collection[model.Customer]
	menu      *store.Collection[model.MenuItem]
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *store.Collection[model.Order], customers *store.Collection[model.Customer], menu *store.Collection[model.MenuItem]) *OrderHandler {
	return &OrderHandler{orders: orders, customers: customers, menu: menu}
}

// RegisterRoutes registers order endpoints on the given router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

type orderItemRequest struct {
	MenuID              string `json:"menuId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
}

type orderRequest struct {
	CustomerID  string             `json:"customerId"`
	Items       []orderItemRequest `json:"items"`
	OrderDate   string             `json:"orderDate"`
	Status      enum.OrderStatus   `json:"status"`
	TableNumber int                `json:"tableNumber"`
	Notes       string             `json:"notes"`
	Discount    float64            `json:"discount"`
}

func (req *orderRequest) validate() string {
	if req.CustomerID == "" {
		return "customerId is required"
	}
	if len(req.Items) == 0 {
		return "items are required"
	}
	for _, item := range req.Items {
		if item.MenuID == "" {
			return "menuId is required for every item"
		}
		if item.Quantity <= 0 {
			return "quantity must be > 0"
		}
	}
	if req.Status == "" {
		req.Status = enum.OrderPending
	}
	if !enum.Valid(req.Status, enum.AllOrderStatuses()) {
		return "invalid status"
	}
	if req.Discount < 0 || req.Discount > 100 {
		return "discount must be between 0 and 100"
	}
	return ""
}

// buildOrder resolves the customer and menu snapshots and computes the
// stored totals.
func (h *OrderHandler) buildOrder(ctx context.Context, id string, req orderRequest) (model.Order, string, error) {
	customer, err := h.customers.Get(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Order{}, "customer not found", nil
		}
		return model.Order{}, "", err
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		menuItem, err := h.menu.Get(ctx, item.MenuID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return model.Order{}, "menu item not found", nil
			}
			return model.Order{}, "", err
		}
		items[i] = model.OrderItem{
			MenuID:              menuItem.ID,
			MenuName:            menuItem.Name,
			Quantity:            item.Quantity,
			UnitPrice:           menuItem.Price,
			Subtotal:            calc.LineSubtotal(item.Quantity, menuItem.Price),
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	totals := calc.OrderTotals(items, req.Discount)

	orderDate := req.OrderDate
	if orderDate == "" {
		orderDate = time.Now().UTC().Format(time.RFC3339)
	}

	return model.Order{
		ID:           id,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Items:        items,
		TotalAmount:  totals.Total,
		OrderDate:    orderDate,
		Status:       req.Status,
		TableNumber:  req.TableNumber,
		Notes:        req.Notes,
		Discount:     req.Discount,
		Tax:          totals.TaxAmount,
	}, "", nil
}

// List returns orders with optional search (by customer name), sort,
// and table view.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, orderColumns, h.orders, "customerName")
}

// Get returns a single order by ID.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, ok := getRecord(w, r, h.orders, chi.URLParam(r, "id"), "order")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Create adds a new order with snapshots and totals computed at
// submit time.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	order, msg, err := h.buildOrder(r.Context(), uuid.NewString(), req)
	if err != nil {
		log.Printf("ERROR: create order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if err := h.orders.Insert(r.Context(), order); err != nil {
		log.Printf("ERROR: create order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// Update replaces an existing order, recomputing snapshots and totals
// from the submitted items; the id is immutable.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	order, msg, err := h.buildOrder(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		log.Printf("ERROR: update order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if err := h.orders.Update(r.Context(), order); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: update order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Delete removes an order from the collection.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: delete order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
