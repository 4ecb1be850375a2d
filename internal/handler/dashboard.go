package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/amorty-hall/api/internal/enum"
	"github.com/amorty-hall/api/internal/model"
	"github.com/amorty-hall/api/internal/store"
)

// DashboardHandler serves the read-only cross-collection rollup. The
// stats are recomputed from the collections on every request; nothing
// is cached.
type DashboardHandler struct {
	collections *store.Collections

	now func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(collections *store.Collections) *DashboardHandler {
	return &DashboardHandler{collections: collections, now: time.Now}
}

// WithClock overrides the wall clock, for tests.
func (h *DashboardHandler) WithClock(now func() time.Time) *DashboardHandler {
	h.now = now
	return h
}

// RegisterRoutes registers the dashboard endpoint.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Stats)
}

// Stats returns counts of each collection, today's order count and
// revenue, active rentals, pending reservations, and available
// tables.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := h.collections.Customers.Load(ctx)
	if err != nil {
		h.fail(w, "customers", err)
		return
	}
	employees, err := h.collections.Employees.Load(ctx)
	if err != nil {
		h.fail(w, "employees", err)
		return
	}
	menu, err := h.collections.Menu.Load(ctx)
	if err != nil {
		h.fail(w, "menu", err)
		return
	}
	tables, err := h.collections.Tables.Load(ctx)
	if err != nil {
		h.fail(w, "tables", err)
		return
	}
	orders, err := h.collections.Orders.Load(ctx)
	if err != nil {
		h.fail(w, "orders", err)
		return
	}
	reservations, err := h.collections.Reservations.Load(ctx)
	if err != nil {
		h.fail(w, "reservations", err)
		return
	}
	rentals, err := h.collections.Rentals.Load(ctx)
	if err != nil {
		h.fail(w, "rentals", err)
		return
	}

	today := h.now().UTC()
	stats := model.DashboardStats{
		TotalCustomers: len(customers),
		TotalEmployees: len(employees),
		TotalMenuItems: len(menu),
		TotalTables:    len(tables),
	}

	for _, order := range orders {
		if !sameDay(order.OrderDate, today) {
			continue
		}
		stats.TodayOrders++
		stats.TodayRevenue += order.TotalAmount
	}
	for _, rental := range rentals {
		if rental.Status == enum.RentalActive {
			stats.ActiveRentals++
		}
	}
	for _, reservation := range reservations {
		if reservation.Status == enum.ReservationPending {
			stats.PendingReservations++
		}
	}
	for _, bt := range tables {
		if bt.Status == enum.TableAvailable {
			stats.AvailableTables++
		}
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) fail(w http.ResponseWriter, key string, err error) {
	log.Printf("ERROR: dashboard load %s: %v", key, err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// sameDay reports whether an RFC3339 order date falls on the given
// UTC calendar day.
func sameDay(orderDate string, day time.Time) bool {
	t, err := time.Parse(time.RFC3339, orderDate)
	if err != nil {
		return false
	}
	y1, m1, d1 := t.UTC().Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
