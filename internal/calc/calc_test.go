package calc_test

import (
	"testing"
	"time"

	"github.com/amorty-hall/api/internal/calc"
	"github.com/amorty-hall/api/internal/model"
)

func TestOrderTotalsNoDiscount(t *testing.T) {
	items := []model.OrderItem{
		{Subtotal: 17.00},
		{Subtotal: 6.00},
	}

	totals := calc.OrderTotals(items, 0)

	if totals.Subtotal != 23.00 {
		t.Errorf("subtotal: got %v, want 23.00", totals.Subtotal)
	}
	if totals.DiscountAmount != 0 {
		t.Errorf("discount: got %v, want 0", totals.DiscountAmount)
	}
	if totals.TaxAmount != 2.30 {
		t.Errorf("tax: got %v, want 2.30", totals.TaxAmount)
	}
	if totals.Total != 25.30 {
		t.Errorf("total: got %v, want 25.30", totals.Total)
	}
}

func TestOrderTotalsWithDiscount(t *testing.T) {
	// Tax applies to the post-discount subtotal.
	items := []model.OrderItem{{Subtotal: 20.00}}

	totals := calc.OrderTotals(items, 10)

	if totals.Subtotal != 20.00 {
		t.Errorf("subtotal: got %v, want 20.00", totals.Subtotal)
	}
	if totals.DiscountAmount != 2.00 {
		t.Errorf("discount: got %v, want 2.00", totals.DiscountAmount)
	}
	if totals.TaxAmount != 1.80 {
		t.Errorf("tax: got %v, want 1.80", totals.TaxAmount)
	}
	if totals.Total != 19.80 {
		t.Errorf("total: got %v, want 19.80", totals.Total)
	}
}

func TestOrderTotalsFullDiscount(t *testing.T) {
	items := []model.OrderItem{{Subtotal: 12.50}}

	totals := calc.OrderTotals(items, 100)

	if totals.DiscountAmount != 12.50 {
		t.Errorf("discount: got %v, want 12.50", totals.DiscountAmount)
	}
	if totals.TaxAmount != 0 {
		t.Errorf("tax: got %v, want 0", totals.TaxAmount)
	}
	if totals.Total != 0 {
		t.Errorf("total: got %v, want 0", totals.Total)
	}
}

func TestOrderTotalsEmpty(t *testing.T) {
	totals := calc.OrderTotals(nil, 0)

	if totals.Subtotal != 0 || totals.Total != 0 {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}

func TestLineSubtotal(t *testing.T) {
	if got := calc.LineSubtotal(3, 4.50); got != 13.50 {
		t.Errorf("got %v, want 13.50", got)
	}
	if got := calc.LineSubtotal(1, 8.50); got != 8.50 {
		t.Errorf("got %v, want 8.50", got)
	}
}

func TestElapsedHours(t *testing.T) {
	start := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	if got := calc.ElapsedHours(start, start.Add(90*time.Minute)); got != 1.5 {
		t.Errorf("90 minutes: got %v, want 1.5", got)
	}
	if got := calc.ElapsedHours(start, start.Add(2*time.Hour)); got != 2 {
		t.Errorf("2 hours: got %v, want 2", got)
	}
	// Rounded to two places.
	if got := calc.ElapsedHours(start, start.Add(100*time.Minute)); got != 1.67 {
		t.Errorf("100 minutes: got %v, want 1.67", got)
	}
}

func TestElapsedHoursZeroEndUsesNow(t *testing.T) {
	start := time.Now().Add(-time.Hour)

	got := calc.ElapsedHours(start, time.Time{})
	if got < 0.99 || got > 1.01 {
		t.Errorf("got %v, want ~1.0", got)
	}
}

func TestRentalTotal(t *testing.T) {
	if got := calc.RentalTotal(1.5, 15); got != 22.50 {
		t.Errorf("got %v, want 22.50", got)
	}
	if got := calc.RentalTotal(2, 12); got != 24 {
		t.Errorf("got %v, want 24", got)
	}
}

func TestReservationDeposit(t *testing.T) {
	// 20% of the projected table cost.
	if got := calc.ReservationDeposit(8, 2); got != 3.20 {
		t.Errorf("got %v, want 3.20", got)
	}
	if got := calc.ReservationDeposit(15, 2); got != 6.00 {
		t.Errorf("got %v, want 6.00", got)
	}
}

func TestAddClockTime(t *testing.T) {
	tests := []struct {
		start string
		hours float64
		want  string
	}{
		{"14:00", 1.5, "15:30"},
		{"09:15", 2, "11:15"},
		{"22:30", 2, "00:30"}, // wraps past midnight
		{"23:00", 1, "00:00"},
	}
	for _, tt := range tests {
		got, err := calc.AddClockTime(tt.start, tt.hours)
		if err != nil {
			t.Errorf("AddClockTime(%q, %v): %v", tt.start, tt.hours, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AddClockTime(%q, %v): got %q, want %q", tt.start, tt.hours, got, tt.want)
		}
	}
}

func TestAddClockTimeInvalid(t *testing.T) {
	if _, err := calc.AddClockTime("25:99", 1); err == nil {
		t.Error("expected error for invalid clock time")
	}
	if _, err := calc.AddClockTime("", 1); err == nil {
		t.Error("expected error for empty clock time")
	}
}
