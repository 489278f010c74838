package analytics

import "github.com/shopspring/decimal"

// PeriodTotals accumulates one window's attributed revenue and order count.
type PeriodTotals struct {
	RevenueCents int64
	OrderCount   int
}

// TotalsFor sums attributed orders into period totals.
func TotalsFor(attributed []AttributedOrder) PeriodTotals {
	var totals PeriodTotals
	for _, entry := range attributed {
		totals.RevenueCents += entry.RevenueCents
		totals.OrderCount++
	}
	return totals
}

// RevenueOrdersSummary is the period-over-period comparison for one vendor.
type RevenueOrdersSummary struct {
	Current       PeriodTotals
	Previous      PeriodTotals
	RevenueChange float64
	OrderChange   float64
}

// SummarizePeriods compares current against previous totals. The same
// zero-baseline rule applies to revenue and order counts.
func SummarizePeriods(current, previous []AttributedOrder) RevenueOrdersSummary {
	cur := TotalsFor(current)
	prev := TotalsFor(previous)
	return RevenueOrdersSummary{
		Current:       cur,
		Previous:      prev,
		RevenueChange: PercentChange(cur.RevenueCents, prev.RevenueCents),
		OrderChange:   PercentChange(int64(cur.OrderCount), int64(prev.OrderCount)),
	}
}

// PercentChange computes ((current-previous)/previous)*100 rounded to two
// decimal places. A zero baseline yields exactly 100 rather than a division
// error, so a vendor's first active period reads as full growth.
func PercentChange(current, previous int64) float64 {
	if previous == 0 {
		return 100
	}
	change := decimal.NewFromInt(current - previous).
		Div(decimal.NewFromInt(previous)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	value, _ := change.Float64()
	return value
}

// CentsToAmount converts integer cents into the base currency unit.
func CentsToAmount(cents int64) float64 {
	value, _ := decimal.New(cents, -2).Float64()
	return value
}
