// Package calc holds the pure derived-value calculators: order
// totals, rental durations and costs, and reservation end times and
// deposits. Money math runs through shopspring/decimal and is rounded
// to two places before conversion back to the stored float form.
package calc

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amorty-hall/api/internal/model"
)

const (
	taxRate     = 0.10
	depositRate = 0.20
)

// Totals is the breakdown of an order's price. The 10% tax applies to
// the post-discount subtotal: Total = Subtotal - DiscountAmount +
// TaxAmount.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	TaxAmount      float64 `json:"taxAmount"`
	Total          float64 `json:"total"`
}

// OrderTotals computes the price breakdown from the stored line-item
// subtotals and a discount percentage in [0,100].
func OrderTotals(items []model.OrderItem, discountPercent float64) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(item.Subtotal))
	}

	discount := subtotal.Mul(decimal.NewFromFloat(discountPercent)).Div(decimal.NewFromInt(100))
	tax := subtotal.Sub(discount).Mul(decimal.NewFromFloat(taxRate))
	total := subtotal.Sub(discount).Add(tax)

	return Totals{
		Subtotal:       subtotal.Round(2).InexactFloat64(),
		DiscountAmount: discount.Round(2).InexactFloat64(),
		TaxAmount:      tax.Round(2).InexactFloat64(),
		Total:          total.Round(2).InexactFloat64(),
	}
}

// LineSubtotal is quantity times the snapshotted unit price.
func LineSubtotal(quantity int, unitPrice float64) float64 {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity))).Round(2).InexactFloat64()
}

// ElapsedHours is the wall-clock difference between start and end in
// hours, rounded to two places. A zero end means now.
func ElapsedHours(start, end time.Time) float64 {
	if end.IsZero() {
		end = time.Now()
	}
	return round2(end.Sub(start).Hours())
}

// RentalTotal is the cost of a rental: duration in hours times the
// snapshotted hourly rate.
func RentalTotal(durationHours, hourlyRate float64) float64 {
	return decimal.NewFromFloat(durationHours).Mul(decimal.NewFromFloat(hourlyRate)).Round(2).InexactFloat64()
}

// ReservationDeposit is the suggested deposit: 20% of the projected
// table cost.
func ReservationDeposit(hourlyRate, durationHours float64) float64 {
	return decimal.NewFromFloat(hourlyRate).
		Mul(decimal.NewFromFloat(durationHours)).
		Mul(decimal.NewFromFloat(depositRate)).
		Round(2).InexactFloat64()
}

// AddClockTime adds a duration in hours to a "15:04" clock time,
// wrapping past midnight: ("22:30", 2) yields "00:30".
func AddClockTime(start string, hours float64) (string, error) {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return "", fmt.Errorf("parse start time %q: %w", start, err)
	}
	minutes := int(math.Round(hours * 60))
	total := (t.Hour()*60 + t.Minute() + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
