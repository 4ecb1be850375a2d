package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/amorty-hall/api/internal/enum"
	"github.com/amorty-hall/api/internal/model"
	"github.com/amorty-hall/api/internal/store"
)

// --- Fixtures ---

func fixtureCustomers() []model.Customer {
	return []model.Customer{
		{ID: "c1", Name: "Budi Santoso", Email: "budi@example.com", Phone: "0811-111", MembershipType: enum.MembershipVIP, JoinDate: "2023-01-15"},
		{ID: "c2", Name: "Siti Rahayu", Email: "siti@example.com", Phone: "0822-222", MembershipType: enum.MembershipRegular, JoinDate: "2023-06-20"},
	}
}

func fixtureEmployees() []model.Employee {
	return []model.Employee{
		{ID: "e1", Name: "Rina Kusuma", Email: "rina@example.com", Phone: "0833-333", Position: "Cashier", Department: enum.DepartmentCafe, Salary: 2200, HireDate: "2022-04-01", Status: enum.EmployeeActive, Shift: enum.ShiftMorning},
		{ID: "e2", Name: "Lia Hartono", Email: "lia@example.com", Phone: "0844-444", Position: "Supervisor", Department: enum.DepartmentManagement, Salary: 3100, HireDate: "2021-09-12", Status: enum.EmployeeOnLeave, Shift: enum.ShiftAfternoon},
	}
}

func fixtureMenu() []model.MenuItem {
	return []model.MenuItem{
		{ID: "m1", Name: "Cheeseburger", Category: enum.CategoryFood, Price: 8.50, Ingredients: []string{"beef", "cheese"}, Availability: true, PreparationTime: 12},
		{ID: "m2", Name: "Iced Latte", Category: enum.CategoryBeverage, Price: 4.50, Ingredients: []string{"espresso", "milk"}, Availability: true, PreparationTime: 4},
	}
}

func fixtureTables() []model.BilliardTable {
	return []model.BilliardTable{
		{ID: "t1", TableNumber: 1, Type: enum.TableEightBall, Status: enum.TableAvailable, HourlyRate: 12, Location: "Main Hall", Condition: enum.ConditionExcellent},
		{ID: "t2", TableNumber: 2, Type: enum.TableSnooker, Status: enum.TableOccupied, HourlyRate: 15, Location: "VIP Room", Condition: enum.ConditionGood},
	}
}

func fixtureOrders() []model.Order {
	return []model.Order{
		{
			ID: "o1", CustomerID: "c1", CustomerName: "Budi Santoso",
			Items: []model.OrderItem{
				{MenuID: "m1", MenuName: "Cheeseburger", Quantity: 2, UnitPrice: 8.50, Subtotal: 17.00},
				{MenuID: "m2", MenuName: "Iced Latte", Quantity: 1, UnitPrice: 4.50, Subtotal: 4.50},
			},
			TotalAmount: 23.65, OrderDate: "2024-03-10T12:00:00Z",
			Status: enum.OrderPending, TableNumber: 3, Tax: 2.15,
		},
	}
}

func fixturePayments() []model.Payment {
	return []model.Payment{
		{ID: "p1", OrderID: "o1", Amount: 23.65, PaymentMethod: enum.MethodCash, PaymentDate: "2024-03-10T12:30:00Z", Status: enum.PaymentCompleted, CashierName: "Rina Kusuma"},
	}
}

func fixtureReservations() []model.Reservation {
	return []model.Reservation{
		{ID: "r1", CustomerID: "c1", CustomerName: "Budi Santoso", CustomerPhone: "0811-111", TableID: "t1", TableNumber: 1, ReservationDate: "2024-03-15", StartTime: "18:00", EndTime: "20:00", Duration: 2, Status: enum.ReservationPending, PartySize: 4, Deposit: 4.80},
	}
}

func fixtureRentals() []model.RentalTransaction {
	return []model.RentalTransaction{
		{ID: "rt1", CustomerID: "c1", CustomerName: "Budi Santoso", TableID: "t2", TableNumber: 2, StartTime: "2024-03-10T12:00:00Z", Duration: 2, HourlyRate: 15, TotalAmount: 30, Status: enum.RentalActive, AdditionalServices: []string{}, EmployeeID: "e1", EmployeeName: "Rina Kusuma", PaymentStatus: enum.RentalUnpaid},
		{ID: "rt2", CustomerID: "c2", CustomerName: "Siti Rahayu", TableID: "t1", TableNumber: 1, StartTime: "2024-03-09T10:00:00Z", EndTime: "2024-03-09T11:30:00Z", Duration: 1.5, HourlyRate: 12, TotalAmount: 18, Status: enum.RentalCompleted, AdditionalServices: []string{}, EmployeeID: "e2", EmployeeName: "Lia Hartono", PaymentStatus: enum.RentalPaid},
	}
}

// testCollections wires every collection over one in-memory backend
// with the fixtures above as seeds.
func testCollections() *store.Collections {
	mem := store.NewMemory()
	return &store.Collections{
		Customers:    store.NewCollection(mem, store.KeyCustomers, fixtureCustomers()),
		Employees:    store.NewCollection(mem, store.KeyEmployees, fixtureEmployees()),
		Menu:         store.NewCollection(mem, store.KeyMenu, fixtureMenu()),
		Tables:       store.NewCollection(mem, store.KeyTables, fixtureTables()),
		Orders:       store.NewCollection(mem, store.KeyOrders, fixtureOrders()),
		Payments:     store.NewCollection(mem, store.KeyPayments, fixturePayments()),
		Reservations: store.NewCollection(mem, store.KeyReservations, fixtureReservations()),
		Rentals:      store.NewCollection(mem, store.KeyRentals, fixtureRentals()),
	}
}

// --- Helpers ---

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

// records pulls the records array out of a list envelope.
func records(t *testing.T, rr *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	resp := decodeResponse(t, rr)
	recs, ok := resp["records"].([]interface{})
	if !ok {
		t.Fatalf("response has no records array: %v", resp)
	}
	return recs
}
