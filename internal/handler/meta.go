package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amorty-hall/api/internal/enum"
)

// MetaHandler exposes the closed status sets and their badge variants
// so the console can populate selects and style status chips without
// hardcoding them.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// RegisterRoutes registers the meta endpoint.
func (h *MetaHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Enums)
}

type enumValue struct {
	Value string     `json:"value"`
	Badge enum.Badge `json:"badge"`
}

// Enums returns every enum's variants with their badge styling.
func (h *MetaHandler) Enums(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]enumValue{
		"membershipType":      enumValues(enum.AllMembershipTypes(), enum.MembershipBadges),
		"department":          enumValues(enum.AllDepartments(), enum.DepartmentBadges),
		"employeeStatus":      enumValues(enum.AllEmployeeStatuses(), enum.EmployeeStatusBadges),
		"shift":               enumValues(enum.AllShifts(), enum.ShiftBadges),
		"menuCategory":        enumValues(enum.AllMenuCategories(), enum.MenuCategoryBadges),
		"tableType":           enumValues(enum.AllTableTypes(), enum.TableTypeBadges),
		"tableStatus":         enumValues(enum.AllTableStatuses(), enum.TableStatusBadges),
		"tableCondition":      enumValues(enum.AllTableConditions(), enum.TableConditionBadges),
		"orderStatus":         enumValues(enum.AllOrderStatuses(), enum.OrderStatusBadges),
		"paymentMethod":       enumValues(enum.AllPaymentMethods(), enum.PaymentMethodBadges),
		"paymentStatus":       enumValues(enum.AllPaymentStatuses(), enum.PaymentStatusBadges),
		"reservationStatus":   enumValues(enum.AllReservationStatuses(), enum.ReservationStatusBadges),
		"rentalStatus":        enumValues(enum.AllRentalStatuses(), enum.RentalStatusBadges),
		"rentalPaymentStatus": enumValues(enum.AllRentalPaymentStatuses(), enum.RentalPaymentStatusBadges),
	})
}

func enumValues[T ~string](all []T, badges map[T]enum.Badge) []enumValue {
	values := make([]enumValue, len(all))
	for i, v := range all {
		values[i] = enumValue{Value: string(v), Badge: badges[v]}
	}
	return values
}
