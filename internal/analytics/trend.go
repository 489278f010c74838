package analytics

import (
	"math"
	"time"

	"github.com/dcastaneda/mercato-backend/pkg/enums"
)

// BucketPoint is one calendar bucket of a trend series. Buckets are
// pre-enumerated across the whole range so charts render without gaps.
type BucketPoint struct {
	Label        string
	RevenueCents int64
	OrderCount   int
}

const (
	dayLabelFormat   = "2006-01-02"
	monthLabelFormat = "2006-01"
)

// DailyBuckets buckets attributed orders by calendar day (UTC) across the
// window, one point per day with zero-filled gaps.
func DailyBuckets(window Window, attributed []AttributedOrder) []BucketPoint {
	var points []BucketPoint
	index := make(map[string]int)
	for day := window.Start.UTC().Truncate(24 * time.Hour); day.Before(window.End); day = day.AddDate(0, 0, 1) {
		label := day.Format(dayLabelFormat)
		index[label] = len(points)
		points = append(points, BucketPoint{Label: label})
	}

	for _, entry := range attributed {
		ts := entry.Order.CreatedAt.UTC()
		if !window.Contains(entry.Order.CreatedAt) {
			continue
		}
		i, ok := index[ts.Format(dayLabelFormat)]
		if !ok {
			continue
		}
		points[i].RevenueCents += entry.RevenueCents
		points[i].OrderCount++
	}
	return points
}

// MonthlyBuckets buckets attributed orders by calendar month (UTC) for the
// trailing months window ending at now's month, zero-filled.
func MonthlyBuckets(now time.Time, months int, attributed []AttributedOrder) []BucketPoint {
	if months <= 0 {
		return []BucketPoint{}
	}

	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	points := make([]BucketPoint, 0, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		label := first.AddDate(0, i, 0).Format(monthLabelFormat)
		index[label] = len(points)
		points = append(points, BucketPoint{Label: label})
	}

	for _, entry := range attributed {
		label := entry.Order.CreatedAt.UTC().Format(monthLabelFormat)
		i, ok := index[label]
		if !ok {
			continue
		}
		points[i].RevenueCents += entry.RevenueCents
		points[i].OrderCount++
	}
	return points
}

// MonthStart returns the first instant of ts's calendar month in UTC.
func MonthStart(ts time.Time) time.Time {
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// FulfillmentRate is the share of the window's attributed orders that
// reached delivered status, as a rounded whole percentage. An empty window
// is vacuously fulfilled and reads as 100.
func FulfillmentRate(attributed []AttributedOrder) (rate, delivered, total int) {
	for _, entry := range attributed {
		if entry.Order.Status == enums.OrderStatusCancelled {
			continue
		}
		total++
		if entry.Order.Status == enums.OrderStatusDelivered {
			delivered++
		}
	}
	if total == 0 {
		return 100, 0, 0
	}
	rate = int(math.Round(float64(delivered) / float64(total) * 100))
	return rate, delivered, total
}
