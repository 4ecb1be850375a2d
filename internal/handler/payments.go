package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/amorty-hall/api/internal/enum"
	"github.com/amorty-hall/api/internal/model"
	"github.com/amorty-hall/api/internal/store"
	"github.com/amorty-hall/api/internal/table"
)

var paymentColumns = []table.Column[model.Payment]{
	{Key: "orderId", Label: "Order", Value: func(p model.Payment) any { return p.OrderID }},
	{Key: "amount", Label: "Amount", Sortable: true, Value: func(p model.Payment) any { return p.Amount }},
	{Key: "paymentMethod", Label: "Method", Sortable: true, Value: func(p model.Payment) any { return p.PaymentMethod }},
	{Key: "paymentDate", Label: "Date", Sortable: true, Value: func(p model.Payment) any { return p.PaymentDate }},
	{Key: "status", Label: "Status", Value: func(p model.Payment) any { return p.Status }},
	{Key: "transactionId", Label: "Transaction", Value: func(p model.Payment) any { return p.TransactionID }},
	{Key: "cashierName", Label: "Cashier", Value: func(p model.Payment) any { return p.CashierName }},
}

// PaymentHandler handles the payment screen's CRUD endpoints. A
// payment references an order for the amount suggestion only; no link
// consistency with the order's status is enforced.
type PaymentHandler struct {
	payments  *store.Collection[model.Payment]
	orders    *store.Collection[model.Order]
	employees *store.Collection[model.Employee]
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments *store.Collection[model.Payment], orders *store.Collection[model.Order], employees *store.Collection[model.Employee]) *PaymentHandler {
	return &PaymentHandler{payments: payments, orders: orders, employees: employees}
}

// RegisterRoutes registers payment endpoints on the given router.
func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

type paymentRequest struct {
	OrderID       string             `json:"orderId"`
	Amount        float64            `json:"amount"`
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
	PaymentDate   string             `json:"paymentDate"`
	Status        enum.PaymentStatus `json:"status"`
	TransactionID string             `json:"transactionId"`
	EmployeeID    string             `json:"employeeId"`
	CashierName   string             `json:"cashierName"`
	Change        float64            `json:"change"`
}

func (req *paymentRequest) validate() string {
	if req.OrderID == "" {
		return "orderId is required"
	}
	if req.Amount < 0 {
		return "amount must not be negative"
	}
	if !enum.Valid(req.PaymentMethod, enum.AllPaymentMethods()) {
		return "invalid paymentMethod"
	}
	if req.Status == "" {
		req.Status = enum.PaymentPending
	}
	if !enum.Valid(req.Status, enum.AllPaymentStatuses()) {
		return "invalid status"
	}
	return ""
}

// buildPayment resolves the order reference and, when one is given,
// the cashier employee for the name snapshot. A zero amount is
// prefilled from the order's stored total.
func (h *PaymentHandler) buildPayment(r *http.Request, id string, req paymentRequest) (model.Payment, string, error) {
	ctx := r.Context()

	order, err := h.orders.Get(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Payment{}, "order not found", nil
		}
		return model.Payment{}, "", err
	}

	amount := req.Amount
	if amount == 0 {
		amount = order.TotalAmount
	}

	cashierName := req.CashierName
	if req.EmployeeID != "" {
		employee, err := h.employees.Get(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return model.Payment{}, "employee not found", nil
			}
			return model.Payment{}, "", err
		}
		cashierName = employee.Name
	}

	paymentDate := req.PaymentDate
	if paymentDate == "" {
		paymentDate = time.Now().UTC().Format(time.RFC3339)
	}

	return model.Payment{
		ID:            id,
		OrderID:       order.ID,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   paymentDate,
		Status:        req.Status,
		TransactionID: req.TransactionID,
		CashierName:   cashierName,
		Change:        req.Change,
	}, "", nil
}

// List returns payments with optional search (by order id), sort, and
// table view.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, paymentColumns, h.payments, "orderId")
}

// Get returns a single payment by ID.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	payment, ok := getRecord(w, r, h.payments, chi.URLParam(r, "id"), "payment")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

// Create adds a new payment; an omitted amount defaults to the
// referenced order's total.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	payment, msg, err := h.buildPayment(r, uuid.NewString(), req)
	if err != nil {
		log.Printf("ERROR: create payment: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if err := h.payments.Insert(r.Context(), payment); err != nil {
		log.Printf("ERROR: create payment: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, payment)
}

// Update replaces an existing payment; no automatic recomputation
// happens on edit.
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	payment, msg, err := h.buildPayment(r, chi.URLParam(r, "id"), req)
	if err != nil {
		log.Printf("ERROR: update payment: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if err := h.payments.Update(r.Context(), payment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "payment not found"})
			return
		}
		log.Printf("ERROR: update payment: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, payment)
}

// Delete removes a payment from the collection.
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.payments.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "payment not found"})
			return
		}
		log.Printf("ERROR: delete payment: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
