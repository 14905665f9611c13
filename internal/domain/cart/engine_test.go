package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvmauto/partsbot/internal/domain/parts"
)

func part(id string, stock int, price float64) parts.Part {
	return parts.Part{ID: id, Name: "Part " + id, SKU: "SKU-" + id, Quantity: stock, Price: price}
}

func TestAddItemUntilStockRunsOut(t *testing.T) {
	p := part("p1", 3, 10)
	e := New()

	for i := 0; i < 3; i++ {
		require.NoError(t, e.AddItem(p))
	}
	require.Equal(t, 1, e.Len())
	l, ok := e.Line("p1")
	require.True(t, ok)
	assert.Equal(t, 3, l.Quantity)

	err := e.AddItem(p)
	require.ErrorIs(t, err, ErrInsufficientStock)

	l, _ = e.Line("p1")
	assert.Equal(t, 3, l.Quantity, "failed add must not change the line")
}

func TestAddItemOutOfStock(t *testing.T) {
	e := New()
	err := e.AddItem(part("p1", 0, 10))
	require.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, 0, e.Len())
}

func TestAddItemKeepsOneLinePerPart(t *testing.T) {
	e := New()
	require.NoError(t, e.AddItem(part("a", 5, 10)))
	require.NoError(t, e.AddItem(part("b", 5, 20)))
	require.NoError(t, e.AddItem(part("a", 5, 10)))

	lines := e.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].PartID, "insertion order is kept")
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 20.0, lines[0].LineTotal)
}

func TestSetQuantity(t *testing.T) {
	e := New()
	require.NoError(t, e.AddItem(part("p1", 4, 25)))

	require.NoError(t, e.SetQuantity("p1", 4))
	l, _ := e.Line("p1")
	assert.Equal(t, 4, l.Quantity)
	assert.Equal(t, 100.0, l.LineTotal)

	err := e.SetQuantity("p1", 5)
	require.ErrorIs(t, err, ErrInsufficientStock)
	l, _ = e.Line("p1")
	assert.Equal(t, 4, l.Quantity, "failed set must leave state unchanged")

	// missing part is a no-op
	require.NoError(t, e.SetQuantity("ghost", 2))
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	e := New()
	require.NoError(t, e.AddItem(part("p1", 4, 25)))
	require.NoError(t, e.SetQuantity("p1", 0))
	assert.Equal(t, 0, e.Len())

	require.NoError(t, e.AddItem(part("p1", 4, 25)))
	require.NoError(t, e.SetQuantity("p1", -3))
	assert.Equal(t, 0, e.Len())
}

func TestRemoveItem(t *testing.T) {
	e := New()
	require.NoError(t, e.AddItem(part("p1", 4, 25)))
	e.RemoveItem("p1")
	assert.Equal(t, 0, e.Len())
	e.RemoveItem("p1") // no-op on a missing line
}

func TestTotals(t *testing.T) {
	e := New()
	require.NoError(t, e.AddItem(part("a", 10, 100)))
	require.NoError(t, e.SetQuantity("a", 2))
	require.NoError(t, e.AddItem(part("b", 10, 50)))

	t1 := e.Totals(18)
	assert.Equal(t, 250.0, t1.Subtotal)
	assert.InDelta(t, 45.0, t1.GSTAmount, 1e-9)
	assert.Equal(t, t1.Subtotal+t1.GSTAmount, t1.GrandTotal)

	// pure: a second call with unchanged state is identical
	t2 := e.Totals(18)
	assert.Equal(t, t1, t2)
	assert.Equal(t, 2, e.Len())
}

func TestTotalsEmptyCart(t *testing.T) {
	e := New()
	tt := e.Totals(18)
	assert.Zero(t, tt.Subtotal)
	assert.Zero(t, tt.GSTAmount)
	assert.Zero(t, tt.GrandTotal)
}

func TestClearAndDraft(t *testing.T) {
	e := New()
	require.NoError(t, e.AddItem(part("a", 5, 10)))
	require.NoError(t, e.AddItem(part("a", 5, 10)))
	require.NoError(t, e.AddItem(part("b", 5, 20)))

	d := e.Draft("Ravi", 18)
	require.Len(t, d.Items, 2)
	assert.Equal(t, "a", d.Items[0].PartID)
	assert.Equal(t, 2, d.Items[0].Quantity)
	assert.Equal(t, "Ravi", d.CustomerName)
	assert.Equal(t, 18.0, d.GSTRate)

	e.Clear()
	assert.Equal(t, 0, e.Len())
}

func TestLinesReturnsCopy(t *testing.T) {
	e := New()
	require.NoError(t, e.AddItem(part("a", 5, 10)))
	lines := e.Lines()
	lines[0].Quantity = 99
	l, _ := e.Line("a")
	assert.Equal(t, 1, l.Quantity)
}
