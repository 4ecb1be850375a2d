// Package enum holds the closed status sets of every entity, the badge
// variant each status renders with, and the rental lifecycle
// transitions. Each set has an All list; enum_test.go asserts that the
// badge tables cover every variant so an added status cannot fall
// through to an undefined style.
package enum

// Badge is the visual variant a status renders as in the console.
type Badge string

const (
	BadgeDefault     Badge = "default"
	BadgeSecondary   Badge = "secondary"
	BadgeSuccess     Badge = "success"
	BadgeWarning     Badge = "warning"
	BadgeDestructive Badge = "destructive"
	BadgeOutline     Badge = "outline"
)

// Valid reports whether v is one of the declared variants.
func Valid[T comparable](v T, all []T) bool {
	for _, a := range all {
		if a == v {
			return true
		}
	}
	return false
}

// ── Customer ──

type MembershipType string

const (
	MembershipRegular MembershipType = "Regular"
	MembershipVIP     MembershipType = "VIP"
	MembershipPremium MembershipType = "Premium"
)

func AllMembershipTypes() []MembershipType {
	return []MembershipType{MembershipRegular, MembershipVIP, MembershipPremium}
}

var MembershipBadges = map[MembershipType]Badge{
	MembershipRegular: BadgeSecondary,
	MembershipVIP:     BadgeSuccess,
	MembershipPremium: BadgeDefault,
}

// ── Employee ──

type Department string

const (
	DepartmentCafe        Department = "Cafe"
	DepartmentBilliard    Department = "Billiard"
	DepartmentManagement  Department = "Management"
	DepartmentMaintenance Department = "Maintenance"
)

func AllDepartments() []Department {
	return []Department{DepartmentCafe, DepartmentBilliard, DepartmentManagement, DepartmentMaintenance}
}

var DepartmentBadges = map[Department]Badge{
	DepartmentCafe:        BadgeDefault,
	DepartmentBilliard:    BadgeSuccess,
	DepartmentManagement:  BadgeOutline,
	DepartmentMaintenance: BadgeSecondary,
}

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
	EmployeeOnLeave  EmployeeStatus = "On Leave"
)

func AllEmployeeStatuses() []EmployeeStatus {
	return []EmployeeStatus{EmployeeActive, EmployeeInactive, EmployeeOnLeave}
}

var EmployeeStatusBadges = map[EmployeeStatus]Badge{
	EmployeeActive:   BadgeSuccess,
	EmployeeInactive: BadgeSecondary,
	EmployeeOnLeave:  BadgeWarning,
}

type Shift string

const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
	ShiftNight     Shift = "Night"
)

func AllShifts() []Shift {
	return []Shift{ShiftMorning, ShiftAfternoon, ShiftNight}
}

var ShiftBadges = map[Shift]Badge{
	ShiftMorning:   BadgeDefault,
	ShiftAfternoon: BadgeOutline,
	ShiftNight:     BadgeSecondary,
}

// ── Menu ──

type MenuCategory string

const (
	CategoryFood     MenuCategory = "Food"
	CategoryBeverage MenuCategory = "Beverage"
	CategorySnack    MenuCategory = "Snack"
	CategoryDessert  MenuCategory = "Dessert"
)

func AllMenuCategories() []MenuCategory {
	return []MenuCategory{CategoryFood, CategoryBeverage, CategorySnack, CategoryDessert}
}

var MenuCategoryBadges = map[MenuCategory]Badge{
	CategoryFood:     BadgeDefault,
	CategoryBeverage: BadgeSuccess,
	CategorySnack:    BadgeWarning,
	CategoryDessert:  BadgeSecondary,
}

// ── Billiard table ──

type TableType string

const (
	TableEightBall TableType = "8-Ball"
	TableNineBall  TableType = "9-Ball"
	TableSnooker   TableType = "Snooker"
	TableCarom     TableType = "Carom"
)

func AllTableTypes() []TableType {
	return []TableType{TableEightBall, TableNineBall, TableSnooker, TableCarom}
}

var TableTypeBadges = map[TableType]Badge{
	TableEightBall: BadgeDefault,
	TableNineBall:  BadgeOutline,
	TableSnooker:   BadgeSuccess,
	TableCarom:     BadgeSecondary,
}

type TableStatus string

const (
	TableAvailable   TableStatus = "Available"
	TableOccupied    TableStatus = "Occupied"
	TableReserved    TableStatus = "Reserved"
	TableMaintenance TableStatus = "Maintenance"
)

func AllTableStatuses() []TableStatus {
	return []TableStatus{TableAvailable, TableOccupied, TableReserved, TableMaintenance}
}

var TableStatusBadges = map[TableStatus]Badge{
	TableAvailable:   BadgeSuccess,
	TableOccupied:    BadgeDestructive,
	TableReserved:    BadgeWarning,
	TableMaintenance: BadgeSecondary,
}

type TableCondition string

const (
	ConditionExcellent   TableCondition = "Excellent"
	ConditionGood        TableCondition = "Good"
	ConditionFair        TableCondition = "Fair"
	ConditionNeedsRepair TableCondition = "Needs Repair"
)

func AllTableConditions() []TableCondition {
	return []TableCondition{ConditionExcellent, ConditionGood, ConditionFair, ConditionNeedsRepair}
}

var TableConditionBadges = map[TableCondition]Badge{
	ConditionExcellent:   BadgeSuccess,
	ConditionGood:        BadgeDefault,
	ConditionFair:        BadgeWarning,
	ConditionNeedsRepair: BadgeDestructive,
}

// ── Order ──

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderReady     OrderStatus = "Ready"
	OrderServed    OrderStatus = "Served"
	OrderCancelled OrderStatus = "Cancelled"
)

func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderPreparing, OrderReady, OrderServed, OrderCancelled}
}

var OrderStatusBadges = map[OrderStatus]Badge{
	OrderPending:   BadgeWarning,
	OrderPreparing: BadgeDefault,
	OrderReady:     BadgeSuccess,
	OrderServed:    BadgeSecondary,
	OrderCancelled: BadgeDestructive,
}

// ── Payment ──

type PaymentMethod string

const (
	MethodCash          PaymentMethod = "Cash"
	MethodCreditCard    PaymentMethod = "Credit Card"
	MethodDebitCard     PaymentMethod = "Debit Card"
	MethodDigitalWallet PaymentMethod = "Digital Wallet"
	MethodBankTransfer  PaymentMethod = "Bank Transfer"
)

func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodCash, MethodCreditCard, MethodDebitCard, MethodDigitalWallet, MethodBankTransfer}
}

var PaymentMethodBadges = map[PaymentMethod]Badge{
	MethodCash:          BadgeSuccess,
	MethodCreditCard:    BadgeDefault,
	MethodDebitCard:     BadgeOutline,
	MethodDigitalWallet: BadgeWarning,
	MethodBankTransfer:  BadgeSecondary,
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

func AllPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded}
}

var PaymentStatusBadges = map[PaymentStatus]Badge{
	PaymentPending:   BadgeWarning,
	PaymentCompleted: BadgeSuccess,
	PaymentFailed:    BadgeDestructive,
	PaymentRefunded:  BadgeSecondary,
}

// ── Reservation ──

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationPending   ReservationStatus = "Pending"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationCompleted ReservationStatus = "Completed"
	ReservationNoShow    ReservationStatus = "No Show"
)

func AllReservationStatuses() []ReservationStatus {
	return []ReservationStatus{ReservationConfirmed, ReservationPending, ReservationCancelled, ReservationCompleted, ReservationNoShow}
}

var ReservationStatusBadges = map[ReservationStatus]Badge{
	ReservationConfirmed: BadgeSuccess,
	ReservationPending:   BadgeWarning,
	ReservationCancelled: BadgeDestructive,
	ReservationCompleted: BadgeSecondary,
	ReservationNoShow:    BadgeOutline,
}

// ── Rental transaction ──

type RentalStatus string

const (
	RentalActive    RentalStatus = "Active"
	RentalCompleted RentalStatus = "Completed"
	RentalPaused    RentalStatus = "Paused"
	RentalCancelled RentalStatus = "Cancelled"
)

func AllRentalStatuses() []RentalStatus {
	return []RentalStatus{RentalActive, RentalCompleted, RentalPaused, RentalCancelled}
}

var RentalStatusBadges = map[RentalStatus]Badge{
	RentalActive:    BadgeSuccess,
	RentalCompleted: BadgeSecondary,
	RentalPaused:    BadgeWarning,
	RentalCancelled: BadgeDestructive,
}

// RentalTransitions is the rental lifecycle: Completed and Cancelled
// are terminal. A status maps to the set of statuses it may move to.
var RentalTransitions = map[RentalStatus][]RentalStatus{
	RentalActive:    {RentalPaused, RentalCompleted, RentalCancelled},
	RentalPaused:    {RentalActive, RentalCompleted, RentalCancelled},
	RentalCompleted: {},
	RentalCancelled: {},
}

// CanTransitionRental reports whether a rental may move from one
// status to another. Staying on the same status is always allowed.
func CanTransitionRental(from, to RentalStatus) bool {
	if from == to {
		return true
	}
	for _, next := range RentalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type RentalPaymentStatus string

const (
	RentalUnpaid  RentalPaymentStatus = "Unpaid"
	RentalPaid    RentalPaymentStatus = "Paid"
	RentalPartial RentalPaymentStatus = "Partial"
)

func AllRentalPaymentStatuses() []RentalPaymentStatus {
	return []RentalPaymentStatus{RentalUnpaid, RentalPaid, RentalPartial}
}

var RentalPaymentStatusBadges = map[RentalPaymentStatus]Badge{
	RentalUnpaid:  BadgeDestructive,
	RentalPaid:    BadgeSuccess,
	RentalPartial: BadgeWarning,
}
