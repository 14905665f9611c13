package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tvmauto/partsbot/internal/domain/parts"
	"github.com/tvmauto/partsbot/internal/domain/sales"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	partList := []parts.Part{
		{Quantity: 10, MinStockLevel: 3},
		{Quantity: 2, MinStockLevel: 3},  // low
		{Quantity: 4, MinStockLevel: 0},  // low against the default 5
		{Quantity: 20, MinStockLevel: 0}, // healthy
	}
	saleList := []sales.Sale{
		{GrandTotal: 100, CreatedAt: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)},
		{GrandTotal: 200, CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
	}

	st := Compute(partList, saleList, now)
	assert.Equal(t, 36, st.TotalStock)
	assert.Equal(t, 2, st.LowStockCount)
	assert.Equal(t, 300.0, st.TotalRevenue)
	assert.Equal(t, 100.0, st.SalesToday)
}

func TestRecent(t *testing.T) {
	list := []sales.Sale{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	assert.Len(t, Recent(list, 5), 3)
	got := Recent(list, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Len(t, got, 2)
	assert.Empty(t, Recent(nil, 5))
}
