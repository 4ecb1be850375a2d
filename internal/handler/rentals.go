package handler

import (
	"context"
	"encoding/json"
	"errors"
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

var rentalColumns = []table.Column[model.RentalTransaction]{
	{Key: "customerName", Label: "Customer", Sortable: true, Value: func(r model.RentalTransaction) any { return r.CustomerName }},
	{Key: "tableNumber", Label: "Table", Sortable: true, Value: func(r model.RentalTransaction) any { return r.TableNumber }},
	{Key: "startTime", Label: "Start", Sortable: true, Value: func(r model.RentalTransaction) any { return r.StartTime }},
	{Key: "endTime", Label: "End", Value: func(r model.RentalTransaction) any { return r.EndTime }},
	{Key: "duration", Label: "Hours", Sortable: true, Value: func(r model.RentalTransaction) any { return r.Duration }},
	{Key: "totalAmount", Label: "Total", Sortable: true, Value: func(r model.RentalTransaction) any { return r.TotalAmount }},
	{Key: "status", Label: "Status", Value: func(r model.RentalTransaction) any { return r.Status }},
	{Key: "paymentStatus", Label: "Payment", Value: func(r model.RentalTransaction) any { return r.PaymentStatus }},
}

// RentalHandler handles the rental transaction screen. Rentals are the
// one entity with a real lifecycle: Active and Paused move freely
// toward Completed or Cancelled, and completion always restamps
// endTime, duration, and totalAmount from wall-clock elapsed time.
type RentalHandler struct {
	rentals   *store.Collection[model.RentalTransaction]
	customers *store.Collection[model.Customer]
	tables    *store.Collection[model.BilliardTable]
	employees *store.Collection[model.Employee]

	now func() time.Time
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(rentals *store.Collection[model.RentalTransaction], customers *store.Collection[model.Customer], tables *store.Collection[model.BilliardTable], employees *store.Collection[model.Employee]) *RentalHandler {
	return &RentalHandler{
		rentals:   rentals,
		customers: customers,
		tables:    tables,
		employees: employees,
		now:       time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (h *RentalHandler) WithClock(now func() time.Time) *RentalHandler {
	h.now = now
	return h
}

// RegisterRoutes registers rental endpoints on the given router.
func (h *RentalHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Post("/complete", h.Complete)
	})
}

type rentalRequest struct {
	CustomerID         string                   `json:"customerId"`
	TableID            string                   `json:"tableId"`
	EmployeeID         string                   `json:"employeeId"`
	StartTime          string                   `json:"startTime"`
	EndTime            string                   `json:"endTime"`
	Duration           float64                  `json:"duration"`
	Status             enum.RentalStatus        `json:"status"`
	AdditionalServices []string                 `json:"additionalServices"`
	PaymentStatus      enum.RentalPaymentStatus `json:"paymentStatus"`
}

func (req *rentalRequest) validate() string {
	if req.CustomerID == "" {
		return "customerId is required"
	}
	if req.TableID == "" {
		return "tableId is required"
	}
	if req.EmployeeID == "" {
		return "employeeId is required"
	}
	if req.Status == "" {
		req.Status = enum.RentalActive
	}
	if !enum.Valid(req.Status, enum.AllRentalStatuses()) {
		return "invalid status"
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = enum.RentalUnpaid
	}
	if !enum.Valid(req.PaymentStatus, enum.AllRentalPaymentStatuses()) {
		return "invalid paymentStatus"
	}
	if req.Duration < 0 {
		return "duration must not be negative"
	}
	return ""
}

// buildRental resolves the customer, table, and employee snapshots and
// derives duration and total: wall-clock elapsed time when an end time
// is present, the operator's estimate otherwise.
func (h *RentalHandler) buildRental(ctx context.Context, id string, req rentalRequest) (model.RentalTransaction, string, error) {
	customer, err := h.customers.Get(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.RentalTransaction{}, "customer not found", nil
		}
		return model.RentalTransaction{}, "", err
	}

	bt, err := h.tables.Get(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.RentalTransaction{}, "table not found", nil
		}
		return model.RentalTransaction{}, "", err
	}

	employee, err := h.employees.Get(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.RentalTransaction{}, "employee not found", nil
		}
		return model.RentalTransaction{}, "", err
	}

	startTime := req.StartTime
	if startTime == "" {
		startTime = h.now().UTC().Format(time.RFC3339)
	}

	duration := req.Duration
	if req.EndTime != "" {
		start, err := time.Parse(time.RFC3339, startTime)
		if err != nil {
			return model.RentalTransaction{}, "startTime must be RFC3339", nil
		}
		end, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			return model.RentalTransaction{}, "endTime must be RFC3339", nil
		}
		duration = calc.ElapsedHours(start, end)
	}

	services := req.AdditionalServices
	if services == nil {
		services = []string{}
	}

	return model.RentalTransaction{
		ID:                 id,
		CustomerID:         customer.ID,
		CustomerName:       customer.Name,
		TableID:            bt.ID,
		TableNumber:        bt.TableNumber,
		StartTime:          startTime,
		EndTime:            req.EndTime,
		Duration:           duration,
		HourlyRate:         bt.HourlyRate,
		TotalAmount:        calc.RentalTotal(duration, bt.HourlyRate),
		Status:             req.Status,
		AdditionalServices: services,
		EmployeeID:         employee.ID,
		EmployeeName:       employee.Name,
		PaymentStatus:      req.PaymentStatus,
	}, "", nil
}

// List returns rentals with optional search (by customer name), sort,
// and table view.
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, rentalColumns, h.rentals, "customerName")
}

// Get returns a single rental by ID.
func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, ok := getRecord(w, r, h.rentals, chi.URLParam(r, "id"), "rental")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// Create starts a new rental transaction.
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	rental, msg, err := h.buildRental(r.Context(), uuid.NewString(), req)
	if err != nil {
		log.Printf("ERROR: create rental: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if err := h.rentals.Insert(r.Context(), rental); err != nil {
		log.Printf("ERROR: create rental: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, rental)
}

// Update replaces an existing rental, enforcing the status lifecycle:
// Completed and Cancelled are terminal.
func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	id := chi.URLParam(r, "id")
	existing, ok := getRecord(w, r, h.rentals, id, "rental")
	if !ok {
		return
	}

	if !enum.CanTransitionRental(existing.Status, req.Status) {
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "cannot change status from " + string(existing.Status) + " to " + string(req.Status),
		})
		return
	}

	rental, msg, err := h.buildRental(r.Context(), id, req)
	if err != nil {
		log.Printf("ERROR: update rental: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if err := h.rentals.Update(r.Context(), rental); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "rental not found"})
			return
		}
		log.Printf("ERROR: update rental: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, rental)
}

// Complete is the one-click close of an Active rental: it stamps the
// current time as endTime, recomputes duration and total from elapsed
// wall-clock time, and marks the rental Completed.
func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rental, ok := getRecord(w, r, h.rentals, chi.URLParam(r, "id"), "rental")
	if !ok {
		return
	}

	if rental.Status != enum.RentalActive {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "only active rentals can be completed"})
		return
	}

	start, err := time.Parse(time.RFC3339, rental.StartTime)
	if err != nil {
		log.Printf("ERROR: complete rental %s: bad startTime %q: %v", rental.ID, rental.StartTime, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	end := h.now().UTC()
	rental.EndTime = end.Format(time.RFC3339)
	rental.Duration = calc.ElapsedHours(start, end)
	rental.TotalAmount = calc.RentalTotal(rental.Duration, rental.HourlyRate)
	rental.Status = enum.RentalCompleted

	if err := h.rentals.Update(r.Context(), rental); err != nil {
		log.Printf("ERROR: complete rental: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, rental)
}

// Delete removes a rental from the collection.
func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.rentals.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "rental not found"})
			return
		}
		log.Printf("ERROR: delete rental: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
