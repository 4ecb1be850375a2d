// Package seed holds the static mock datasets every collection falls
// back to when its storage slot is absent or unreadable. cmd/seed
// writes the same datasets into a fresh database.
package seed

import (
	"github.com/amorty-hall/api/internal/enum"
	"github.com/amorty-hall/api/internal/model"
)

// Customers returns the mock customer dataset.
func Customers() []model.Customer {
	return []model.Customer{
		{
			ID:             "1",
			Name:           "Budi Santoso",
			Email:          "budi.santoso@gmail.com",
			Phone:          "081234567890",
			Address:        "Jl. Merdeka No. 12, Jakarta",
			MembershipType: enum.MembershipVIP,
			JoinDate:       "2024-01-15",
			TotalSpent:     1250.50,
			LoyaltyPoints:  340,
		},
		{
			ID:             "2",
			Name:           "Siti Rahayu",
			Email:          "siti.rahayu@yahoo.com",
			Phone:          "082198765432",
			Address:        "Jl. Sudirman No. 45, Jakarta",
			MembershipType: enum.MembershipRegular,
			JoinDate:       "2024-03-22",
			TotalSpent:     420.00,
			LoyaltyPoints:  85,
		},
		{
			ID:             "3",
			Name:           "Andre Wijaya",
			Email:          "andre.w@gmail.com",
			Phone:          "085677889900",
			Address:        "Jl. Gatot Subroto No. 8, Jakarta",
			MembershipType: enum.MembershipPremium,
			JoinDate:       "2023-11-03",
			TotalSpent:     3180.75,
			LoyaltyPoints:  920,
		},
		{
			ID:             "4",
			Name:           "Maya Lestari",
			Email:          "maya.lestari@outlook.com",
			Phone:          "087811223344",
			Address:        "Jl. Thamrin No. 101, Jakarta",
			MembershipType: enum.MembershipRegular,
			JoinDate:       "2025-02-18",
			TotalSpent:     95.25,
			LoyaltyPoints:  19,
		},
	}
}

// Employees returns the mock employee dataset.
func Employees() []model.Employee {
	return []model.Employee{
		{
			ID:         "1",
			Name:       "Rina Kusuma",
			Email:      "rina.kusuma@amorty.com",
			Phone:      "081122334455",
			Position:   "Cashier",
			Department: enum.DepartmentCafe,
			Salary:     650.00,
			HireDate:   "2023-06-01",
			Status:     enum.EmployeeActive,
			Shift:      enum.ShiftMorning,
		},
		{
			ID:         "2",
			Name:       "Dedi Pratama",
			Email:      "dedi.pratama@amorty.com",
			Phone:      "082233445566",
			Position:   "Table Attendant",
			Department: enum.DepartmentBilliard,
			Salary:     580.00,
			HireDate:   "2024-01-10",
			Status:     enum.EmployeeActive,
			Shift:      enum.ShiftNight,
		},
		{
			ID:         "3",
			Name:       "Lia Hartono",
			Email:      "lia.hartono@amorty.com",
			Phone:      "083344556677",
			Position:   "Shift Supervisor",
			Department: enum.DepartmentManagement,
			Salary:     950.00,
			HireDate:   "2022-09-15",
			Status:     enum.EmployeeOnLeave,
			Shift:      enum.ShiftAfternoon,
		},
		{
			ID:         "4",
			Name:       "Joko Susilo",
			Email:      "joko.susilo@amorty.com",
			Phone:      "089988776655",
			Position:   "Technician",
			Department: enum.DepartmentMaintenance,
			Salary:     600.00,
			HireDate:   "2023-12-04",
			Status:     enum.EmployeeActive,
			Shift:      enum.ShiftMorning,
		},
	}
}

// MenuItems returns the mock cafe menu.
func MenuItems() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:              "1",
			Name:            "Cheeseburger",
			Category:        enum.CategoryFood,
			Price:           8.50,
			Description:     "Beef patty with cheddar, lettuce and house sauce",
			Ingredients:     []string{"beef", "cheddar", "lettuce", "brioche bun"},
			Availability:    true,
			PreparationTime: 15,
		},
		{
			ID:              "2",
			Name:            "Iced Latte",
			Category:        enum.CategoryBeverage,
			Price:           4.50,
			Description:     "Double espresso over milk and ice",
			Ingredients:     []string{"espresso", "milk", "ice"},
			Availability:    true,
			PreparationTime: 5,
		},
		{
			ID:              "3",
			Name:            "Chicken Wings",
			Category:        enum.CategorySnack,
			Price:           7.00,
			Description:     "Six wings tossed in barbecue glaze",
			Ingredients:     []string{"chicken wings", "barbecue sauce"},
			Availability:    true,
			PreparationTime: 20,
		},
		{
			ID:              "4",
			Name:            "Lemon Tea",
			Category:        enum.CategoryBeverage,
			Price:           3.00,
			Description:     "Fresh brewed black tea with lemon",
			Ingredients:     []string{"black tea", "lemon", "sugar"},
			Availability:    true,
			PreparationTime: 4,
		},
		{
			ID:              "5",
			Name:            "Chocolate Lava Cake",
			Category:        enum.CategoryDessert,
			Price:           6.25,
			Description:     "Warm chocolate cake with a molten center",
			Ingredients:     []string{"dark chocolate", "flour", "eggs", "butter"},
			Availability:    false,
			PreparationTime: 18,
		},
	}
}

// BilliardTables returns the mock table inventory.
func BilliardTables() []model.BilliardTable {
	return []model.BilliardTable{
		{
			ID:          "1",
			TableNumber: 1,
			Type:        enum.TableEightBall,
			Status:      enum.TableOccupied,
			HourlyRate:  12.00,
			Location:    "Main hall, front row",
			Condition:   enum.ConditionExcellent,
		},
		{
			ID:          "2",
			TableNumber: 2,
			Type:        enum.TableNineBall,
			Status:      enum.TableReserved,
			HourlyRate:  10.00,
			Location:    "Main hall, back row",
			Condition:   enum.ConditionGood,
		},
		{
			ID:          "3",
			TableNumber: 3,
			Type:        enum.TableSnooker,
			Status:      enum.TableAvailable,
			HourlyRate:  15.00,
			Location:    "VIP room",
			Condition:   enum.ConditionExcellent,
		},
		{
			ID:          "4",
			TableNumber: 4,
			Type:        enum.TableCarom,
			Status:      enum.TableMaintenance,
			HourlyRate:  8.00,
			Location:    "Mezzanine",
			Condition:   enum.ConditionNeedsRepair,
		},
	}
}

// Orders returns the mock order history. Stored totals follow the
// submit-time formula: (sum of subtotals - discount) + 10% tax.
func Orders() []model.Order {
	return []model.Order{
		{
			ID:           "1",
			CustomerID:   "1",
			CustomerName: "Budi Santoso",
			Items: []model.OrderItem{
				{MenuID: "1", MenuName: "Cheeseburger", Quantity: 2, UnitPrice: 8.50, Subtotal: 17.00},
				{MenuID: "2", MenuName: "Iced Latte", Quantity: 1, UnitPrice: 4.50, Subtotal: 4.50},
			},
			TotalAmount: 23.65,
			OrderDate:   "2025-07-14T19:05:00Z",
			Status:      enum.OrderServed,
			TableNumber: 1,
			Discount:    0,
			Tax:         2.15,
		},
		{
			ID:           "2",
			CustomerID:   "3",
			CustomerName: "Andre Wijaya",
			Items: []model.OrderItem{
				{MenuID: "3", MenuName: "Chicken Wings", Quantity: 1, UnitPrice: 7.00, Subtotal: 7.00},
				{MenuID: "4", MenuName: "Lemon Tea", Quantity: 2, UnitPrice: 3.00, Subtotal: 6.00},
			},
			TotalAmount: 12.87,
			OrderDate:   "2025-07-15T13:40:00Z",
			Status:      enum.OrderPending,
			TableNumber: 3,
			Notes:       "Extra sauce on the wings",
			Discount:    10,
			Tax:         1.17,
		},
	}
}

// Payments returns the mock payment history.
func Payments() []model.Payment {
	return []model.Payment{
		{
			ID:            "1",
			OrderID:       "1",
			Amount:        23.65,
			PaymentMethod: enum.MethodCash,
			PaymentDate:   "2025-07-14T19:45:00Z",
			Status:        enum.PaymentCompleted,
			TransactionID: "TXN-20250714-001",
			CashierName:   "Rina Kusuma",
			Change:        1.35,
		},
		{
			ID:            "2",
			OrderID:       "2",
			Amount:        12.87,
			PaymentMethod: enum.MethodDigitalWallet,
			PaymentDate:   "2025-07-15T13:42:00Z",
			Status:        enum.PaymentPending,
			CashierName:   "Rina Kusuma",
		},
	}
}

// Reservations returns the mock reservation book.
func Reservations() []model.Reservation {
	return []model.Reservation{
		{
			ID:              "1",
			CustomerID:      "1",
			CustomerName:    "Budi Santoso",
			CustomerPhone:   "081234567890",
			TableID:         "2",
			TableNumber:     2,
			ReservationDate: "2025-07-18",
			StartTime:       "18:00",
			EndTime:         "20:00",
			Duration:        2,
			Status:          enum.ReservationConfirmed,
			PartySize:       4,
			Deposit:         4.00,
		},
		{
			ID:              "2",
			CustomerID:      "4",
			CustomerName:    "Maya Lestari",
			CustomerPhone:   "087811223344",
			TableID:         "3",
			TableNumber:     3,
			ReservationDate: "2025-07-19",
			StartTime:       "22:30",
			EndTime:         "00:30",
			Duration:        2,
			Status:          enum.ReservationPending,
			PartySize:       2,
			SpecialRequests: "Birthday decoration on the table",
			Deposit:         6.00,
		},
	}
}

// RentalTransactions returns the mock rental ledger.
func RentalTransactions() []model.RentalTransaction {
	return []model.RentalTransaction{
		{
			ID:                 "1",
			CustomerID:         "2",
			CustomerName:       "Siti Rahayu",
			TableID:            "1",
			TableNumber:        1,
			StartTime:          "2025-07-15T19:00:00Z",
			Duration:           2,
			HourlyRate:         12.00,
			TotalAmount:        24.00,
			Status:             enum.RentalActive,
			AdditionalServices: []string{"cue rental"},
			EmployeeID:         "2",
			EmployeeName:       "Dedi Pratama",
			PaymentStatus:      enum.RentalUnpaid,
		},
		{
			ID:                 "2",
			CustomerID:         "3",
			CustomerName:       "Andre Wijaya",
			TableID:            "3",
			TableNumber:        3,
			StartTime:          "2025-07-13T15:00:00Z",
			EndTime:            "2025-07-13T16:30:00Z",
			Duration:           1.5,
			HourlyRate:         15.00,
			TotalAmount:        22.50,
			Status:             enum.RentalCompleted,
			AdditionalServices: []string{},
			EmployeeID:         "2",
			EmployeeName:       "Dedi Pratama",
			PaymentStatus:      enum.RentalPaid,
		},
	}
}
