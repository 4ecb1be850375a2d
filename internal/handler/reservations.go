package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/amorty-hall/api/internal/calc"
	"github.com/amorty-hall/api/internal/enum"
	"github.com/amorty-hall/api/internal/model"
	"github.com/amorty-hall/api/internal/store"
	"github.com/amorty-hall/api/internal/table"
)

var reservationColumns = []table.Column[model.Reservation]{
	{Key: "customerName", Label: "Customer", Sortable: true, Value: func(r model.Reservation) any { return r.CustomerName }},
	{Key: "tableNumber", Label: "Table", Sortable: true, Value: func(r model.Reservation) any { return r.TableNumber }},
	{Key: "reservationDate", Label: "Date", Sortable: true, Value: func(r model.Reservation) any { return r.ReservationDate }},
	{Key: "startTime", Label: "Start", Value: func(r model.Reservation) any { return r.StartTime }},
	{Key: "endTime", Label: "End", Value: func(r model.Reservation) any { return r.EndTime }},
	{Key: "partySize", Label: "Party", Sortable: true, Value: func(r model.Reservation) any { return r.PartySize }},
	{Key: "status", Label: "Status", Value: func(r model.Reservation) any { return r.Status }},
	{Key: "deposit", Label: "Deposit", Value: func(r model.Reservation) any { return r.Deposit },
		Render: func(r model.Reservation) string { return fmt.Sprintf("$%.2f", r.Deposit) }},
}

// ReservationHandler handles the reservation screen's CRUD endpoints.
// End time is derived from start time plus duration (wrapping at
// midnight) and the deposit defaults to a 20% suggestion of the
// projected table cost.
type ReservationHandler struct {
	reservations *store.Collection[model.Reservation]
	customers    *store.Collection[model.Customer]
	tables       *store.Collection[model.BilliardTable]
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(reservations *store.Collection[model.Reservation], customers *store.Collection[model.Customer], tables *store.Collection[model.BilliardTable]) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, customers: customers, tables: tables}
}

// RegisterRoutes registers reservation endpoints on the given router.
func (h *ReservationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

type reservationRequest struct {
	CustomerID      string                 `json:"customerId"`
	TableID         string                 `json:"tableId"`
	ReservationDate string                 `json:"reservationDate"`
	StartTime       string                 `json:"startTime"`
	Duration        float64                `json:"duration"`
	Status          enum.ReservationStatus `json:"status"`
	PartySize       int                    `json:"partySize"`
	SpecialRequests string                 `json:"specialRequests"`
	Deposit         float64                `json:"deposit"`
}

func (req *reservationRequest) validate() string {
	if req.CustomerID == "" {
		return "customerId is required"
	}
	if req.TableID == "" {
		return "tableId is required"
	}
	if req.ReservationDate == "" {
		return "reservationDate is required"
	}
	if req.StartTime == "" {
		return "startTime is required"
	}
	if req.Duration <= 0 {
		return "duration must be > 0"
	}
	if req.Status == "" {
		req.Status = enum.ReservationPending
	}
	if !enum.Valid(req.Status, enum.AllReservationStatuses()) {
		return "invalid status"
	}
	if req.PartySize <= 0 {
		return "partySize must be > 0"
	}
	if req.Deposit < 0 {
		return "deposit must not be negative"
	}
	return ""
}

// buildReservation resolves customer and table snapshots and derives
// the end time and deposit suggestion.
func (h *ReservationHandler) buildReservation(ctx context.Context, id string, req reservationRequest) (model.Reservation, string, error) {
	customer, err := h.customers.Get(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Reservation{}, "customer not found", nil
		}
		return model.Reservation{}, "", err
	}

	bt, err := h.tables.Get(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Reservation{}, "table not found", nil
		}
		return model.Reservation{}, "", err
	}

	endTime, err := calc.AddClockTime(req.StartTime, req.Duration)
	if err != nil {
		return model.Reservation{}, "startTime must be in HH:MM format", nil
	}

	deposit := req.Deposit
	if deposit == 0 {
		deposit = calc.ReservationDeposit(bt.HourlyRate, req.Duration)
	}

	return model.Reservation{
		ID:              id,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		TableID:         bt.ID,
		TableNumber:     bt.TableNumber,
		ReservationDate: req.ReservationDate,
		StartTime:       req.StartTime,
		EndTime:         endTime,
		Duration:        req.Duration,
		Status:          req.Status,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
		Deposit:         deposit,
	}, "", nil
}

// List returns reservations with optional search (by customer name),
// sort, and table view.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, reservationColumns, h.reservations, "customerName")
}

// Get returns a single reservation by ID.
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	reservation, ok := getRecord(w, r, h.reservations, chi.URLParam(r, "id"), "reservation")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

// Create adds a new reservation with derived end time and deposit.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	reservation, msg, err := h.buildReservation(r.Context(), uuid.NewString(), req)
	if err != nil {
		log.Printf("ERROR: create reservation: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if err := h.reservations.Insert(r.Context(), reservation); err != nil {
		log.Printf("ERROR: create reservation: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, reservation)
}

// Update replaces an existing reservation, re-deriving the end time
// and deposit suggestion; the id is immutable.
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	reservation, msg, err := h.buildReservation(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		log.Printf("ERROR: update reservation: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if err := h.reservations.Update(r.Context(), reservation); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "reservation not found"})
			return
		}
		log.Printf("ERROR: update reservation: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, reservation)
}

// Delete removes a reservation from the collection.
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reservations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "reservation not found"})
			return
		}
		log.Printf("ERROR: delete reservation: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
