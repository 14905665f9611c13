package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tvmauto/partsbot/internal/domain/sales"
)

func TestInvoiceNo(t *testing.T) {
	assert.Equal(t, "#INV-F1E2D3", invoiceNo("65a4b8c9f1e2d3"))
	assert.Equal(t, "#INV-AB12", invoiceNo("ab12"))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 100, 8))
	assert.Equal(t, "", bar(50, 0, 8))
	assert.Equal(t, "▇▇▇▇▇▇▇▇", bar(100, 100, 8))
	// small but non-zero values stay visible
	assert.Equal(t, "▇", bar(1, 1000, 8))
}

func TestFilterSales(t *testing.T) {
	list := []sales.Sale{
		{ID: "abc123", CustomerName: "Ravi Kumar"},
		{ID: "def456", CustomerName: "Asha"},
	}

	assert.Len(t, filterSales(list, ""), 2)
	assert.Len(t, filterSales(list, "ravi"), 1)
	assert.Len(t, filterSales(list, "DEF"), 1)
	assert.Empty(t, filterSales(list, "nobody"))
}
