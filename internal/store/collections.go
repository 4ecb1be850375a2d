package store

import (
	"github.com/amorty-hall/api/internal/model"
	"github.com/amorty-hall/api/internal/seed"
)

// Slot keys, one per entity type.
const (
	KeyCustomers    = "customers"
	KeyEmployees    = "employees"
	KeyMenu         = "menu"
	KeyTables       = "tables"
	KeyOrders       = "orders"
	KeyPayments     = "payments"
	KeyReservations = "reservations"
	KeyRentals      = "rentals"
)

// Collections bundles every entity collection over one slot backend.
type Collections struct {
	Customers    *Collection[model.Customer]
	Employees    *Collection[model.Employee]
	Menu         *Collection[model.MenuItem]
	Tables       *Collection[model.BilliardTable]
	Orders       *Collection[model.Order]
	Payments     *Collection[model.Payment]
	Reservations *Collection[model.Reservation]
	Rentals      *Collection[model.RentalTransaction]
}

// NewCollections wires all eight collections to their slot keys and
// mock seed datasets.
func NewCollections(slots Slots) *Collections {
	return &Collections{
		Customers:    NewCollection(slots, KeyCustomers, seed.Customers()),
		Employees:    NewCollection(slots, KeyEmployees, seed.Employees()),
		Menu:         NewCollection(slots, KeyMenu, seed.MenuItems()),
		Tables:       NewCollection(slots, KeyTables, seed.BilliardTables()),
		Orders:       NewCollection(slots, KeyOrders, seed.Orders()),
		Payments:     NewCollection(slots, KeyPayments, seed.Payments()),
		Reservations: NewCollection(slots, KeyReservations, seed.Reservations()),
		Rentals:      NewCollection(slots, KeyRentals, seed.RentalTransactions()),
	}
}
