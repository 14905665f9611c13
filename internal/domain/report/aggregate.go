package report

import (
	"time"

	"github.com/tvmauto/partsbot/internal/domain/sales"
)

type Window string

const (
	Week  Window = "week"  // 7 day buckets ending today
	Month Window = "month" // 30 day buckets ending today
	Year  Window = "year"  // 12 month buckets ending this month
)

// Bucket is one slot of the sales chart. A window always yields its full
// bucket count; empty periods report zeros, never gaps.
type Bucket struct {
	Label       string
	PeriodKey   string
	SalesTotal  float64
	ProfitTotal float64
}

func dayKey(t time.Time) string   { return t.Format("2006-01-02") }
func monthKey(t time.Time) string { return t.Format("2006-01") }

// profit sums (selling price - wholesale price) * qty over a sale's items.
// Legacy sales carry no wholesale price; their cost counts as zero, which
// intentionally overstates profit rather than guessing a cost.
func profit(s sales.Sale) float64 {
	var p float64
	for _, it := range s.Items {
		p += (it.Price - it.WholesalePrice) * float64(it.Quantity)
	}
	return p
}

// Aggregate buckets past sales for charting. It is a pure function of its
// arguments: the sale list is never mutated and equal inputs produce equal
// output, so callers may recompute on every window switch.
func Aggregate(list []sales.Sale, w Window, now time.Time) []Bucket {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var buckets []Bucket
	index := make(map[string]int)

	switch w {
	case Year:
		for i := 11; i >= 0; i-- {
			m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -i, 0)
			key := monthKey(m)
			index[key] = len(buckets)
			buckets = append(buckets, Bucket{Label: m.Format("Jan"), PeriodKey: key})
		}
		for _, s := range list {
			if i, ok := index[monthKey(s.CreatedAt.In(loc))]; ok {
				buckets[i].SalesTotal += s.GrandTotal
				buckets[i].ProfitTotal += profit(s)
			}
		}
		return buckets
	case Month:
		buckets, index = dayBuckets(today, 30, "02 Jan")
	default:
		buckets, index = dayBuckets(today, 7, "Mon")
	}

	for _, s := range list {
		if i, ok := index[dayKey(s.CreatedAt.In(loc))]; ok {
			buckets[i].SalesTotal += s.GrandTotal
			buckets[i].ProfitTotal += profit(s)
		}
	}
	return buckets
}

func dayBuckets(today time.Time, n int, labelFormat string) ([]Bucket, map[string]int) {
	buckets := make([]Bucket, 0, n)
	index := make(map[string]int, n)
	for i := n - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		key := dayKey(d)
		index[key] = len(buckets)
		buckets = append(buckets, Bucket{Label: d.Format(labelFormat), PeriodKey: key})
	}
	return buckets, index
}

// WindowTotals sums a bucket series for the period headline.
func WindowTotals(buckets []Bucket) (salesTotal, profitTotal float64) {
	for _, b := range buckets {
		salesTotal += b.SalesTotal
		profitTotal += b.ProfitTotal
	}
	return salesTotal, profitTotal
}
