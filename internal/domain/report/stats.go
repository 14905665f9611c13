package report

import (
	"time"

	"github.com/tvmauto/partsbot/internal/domain/parts"
	"github.com/tvmauto/partsbot/internal/domain/sales"
)

// Parts with no explicit minimum fall back to this restock threshold.
const defaultMinStockLevel = 5

type Stats struct {
	TotalRevenue  float64
	TotalStock    int
	LowStockCount int
	SalesToday    float64
}

// Compute derives the dashboard headline numbers from full part and sale
// lists, the same reduction the stats cards run on.
func Compute(partList []parts.Part, saleList []sales.Sale, now time.Time) Stats {
	var st Stats
	for _, p := range partList {
		st.TotalStock += p.Quantity
		min := p.MinStockLevel
		if min == 0 {
			min = defaultMinStockLevel
		}
		if p.Quantity <= min {
			st.LowStockCount++
		}
	}
	todayKey := dayKey(now)
	loc := now.Location()
	for _, s := range saleList {
		st.TotalRevenue += s.GrandTotal
		if dayKey(s.CreatedAt.In(loc)) == todayKey {
			st.SalesToday += s.GrandTotal
		}
	}
	return st
}

// Recent returns up to n of the newest sales; the API already returns the
// list newest first.
func Recent(saleList []sales.Sale, n int) []sales.Sale {
	if len(saleList) < n {
		n = len(saleList)
	}
	return saleList[:n]
}
