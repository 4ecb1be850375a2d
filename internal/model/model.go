// Package model defines the record types held in the persisted
// collections. JSON tags match the persisted wire format exactly:
// timestamps are RFC3339 strings, calendar dates are "2006-01-02",
// and reservation clock times are "15:04".
package model

import "github.com/amorty-hall/api/internal/enum"

// Customer is an independent root entity.
type Customer struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address"`
	MembershipType enum.MembershipType `json:"membershipType"`
	JoinDate       string              `json:"joinDate"`
	TotalSpent     float64             `json:"totalSpent"`
	LoyaltyPoints  int                 `json:"loyaltyPoints"`
}

func (c Customer) RecordID() string { return c.ID }

// Employee is an independent root entity.
type Employee struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	Position   string              `json:"position"`
	Department enum.Department     `json:"department"`
	Salary     float64             `json:"salary"`
	HireDate   string              `json:"hireDate"`
	Status     enum.EmployeeStatus `json:"status"`
	Shift      enum.Shift          `json:"shift"`
}

func (e Employee) RecordID() string { return e.ID }

// MenuItem is a cafe menu entry.
type MenuItem struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Category        enum.MenuCategory `json:"category"`
	Price           float64           `json:"price"`
	Description     string            `json:"description"`
	Ingredients     []string          `json:"ingredients"`
	Availability    bool              `json:"availability"`
	PreparationTime int               `json:"preparationTime"`
	ImageURL        string            `json:"imageUrl,omitempty"`
}

func (m MenuItem) RecordID() string { return m.ID }

// BilliardTable is a rentable table in the hall.
type BilliardTable struct {
	ID          string              `json:"id"`
	TableNumber int                 `json:"tableNumber"`
	Type        enum.TableType      `json:"type"`
	Status      enum.TableStatus    `json:"status"`
	HourlyRate  float64             `json:"hourlyRate"`
	Location    string              `json:"location"`
	Condition   enum.TableCondition `json:"condition"`
}

func (t BilliardTable) RecordID() string { return t.ID }

// OrderItem is a line item embedded in an Order. MenuName and
// UnitPrice are snapshots taken when the order is submitted;
// Subtotal always equals Quantity * UnitPrice.
type OrderItem struct {
	MenuID              string  `json:"menuId"`
	MenuName            string  `json:"menuName"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unitPrice"`
	Subtotal            float64 `json:"subtotal"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

// Order is a cafe order. CustomerName is a snapshot, and TotalAmount
// and Tax are computed at submit time and stored, never re-derived on
// read.
type Order struct {
	ID           string           `json:"id"`
	CustomerID   string           `json:"customerId"`
	CustomerName string           `json:"customerName"`
	Items        []OrderItem      `json:"items"`
	TotalAmount  float64          `json:"totalAmount"`
	OrderDate    string           `json:"orderDate"`
	Status       enum.OrderStatus `json:"status"`
	TableNumber  int              `json:"tableNumber,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	Discount     float64          `json:"discount"`
	Tax          float64          `json:"tax"`
}

func (o Order) RecordID() string { return o.ID }

// Payment records money received against an order. CashierName is a
// snapshot of the employee's name; consistency with Order.Status is
// not enforced.
type Payment struct {
	ID            string             `json:"id"`
	OrderID       string             `json:"orderId"`
	Amount        float64            `json:"amount"`
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
	PaymentDate   string             `json:"paymentDate"`
	Status        enum.PaymentStatus `json:"status"`
	TransactionID string             `json:"transactionId,omitempty"`
	CashierName   string             `json:"cashierName"`
	Change        float64            `json:"change,omitempty"`
}

func (p Payment) RecordID() string { return p.ID }

// Reservation books a billiard table ahead of time. EndTime is derived
// from StartTime plus Duration (wrapping at midnight) and Deposit
// defaults to a 20% suggestion unless the operator overrides it.
type Reservation struct {
	ID              string                 `json:"id"`
	CustomerID      string                 `json:"customerId"`
	CustomerName    string                 `json:"customerName"`
	CustomerPhone   string                 `json:"customerPhone"`
	TableID         string                 `json:"tableId"`
	TableNumber     int                    `json:"tableNumber"`
	ReservationDate string                 `json:"reservationDate"`
	StartTime       string                 `json:"startTime"`
	EndTime         string                 `json:"endTime"`
	Duration        float64                `json:"duration"`
	Status          enum.ReservationStatus `json:"status"`
	PartySize       int                    `json:"partySize"`
	SpecialRequests string                 `json:"specialRequests,omitempty"`
	Deposit         float64                `json:"deposit"`
}

func (r Reservation) RecordID() string { return r.ID }

// RentalTransaction tracks table time actually played. HourlyRate,
// CustomerName, TableNumber and EmployeeName are snapshots. A
// Completed rental always carries an EndTime with Duration and
// TotalAmount recomputed from wall-clock elapsed time.
type RentalTransaction struct {
	ID                 string                   `json:"id"`
	CustomerID         string                   `json:"customerId"`
	CustomerName       string                   `json:"customerName"`
	TableID            string                   `json:"tableId"`
	TableNumber        int                      `json:"tableNumber"`
	StartTime          string                   `json:"startTime"`
	EndTime            string                   `json:"endTime,omitempty"`
	Duration           float64                  `json:"duration"`
	HourlyRate         float64                  `json:"hourlyRate"`
	TotalAmount        float64                  `json:"totalAmount"`
	Status             enum.RentalStatus        `json:"status"`
	AdditionalServices []string                 `json:"additionalServices"`
	EmployeeID         string                   `json:"employeeId"`
	EmployeeName       string                   `json:"employeeName"`
	PaymentStatus      enum.RentalPaymentStatus `json:"paymentStatus"`
}

func (r RentalTransaction) RecordID() string { return r.ID }

// DashboardStats is the read-only cross-collection rollup.
type DashboardStats struct {
	TotalCustomers      int     `json:"totalCustomers"`
	TotalEmployees      int     `json:"totalEmployees"`
	TotalMenuItems      int     `json:"totalMenuItems"`
	TotalTables         int     `json:"totalTables"`
	TodayOrders         int     `json:"todayOrders"`
	TodayRevenue        float64 `json:"todayRevenue"`
	ActiveRentals       int     `json:"activeRentals"`
	PendingReservations int     `json:"pendingReservations"`
	AvailableTables     int     `json:"availableTables"`
}
