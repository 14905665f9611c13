package cart

import (
	"errors"
	"fmt"

	"github.com/tvmauto/partsbot/internal/domain/parts"
	"github.com/tvmauto/partsbot/internal/domain/sales"
)

var (
	ErrOutOfStock        = errors.New("out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Line is one cart entry. MaxStock is the part's stock at the moment it was
// added; the API re-checks real stock on checkout.
type Line struct {
	PartID    string
	Name      string
	SKU       string
	UnitPrice float64
	Quantity  int
	MaxStock  int
	LineTotal float64
}

type Totals struct {
	Subtotal   float64
	GSTAmount  float64
	GrandTotal float64
}

// Engine holds the lines of one sale in progress, at most one line per part,
// in the order parts were first added. It is mutated only from the bot's
// update loop, so it carries no lock.
type Engine struct {
	lines []Line
}

func New() *Engine { return &Engine{} }

func (e *Engine) find(partID string) int {
	for i := range e.lines {
		if e.lines[i].PartID == partID {
			return i
		}
	}
	return -1
}

// AddItem puts one unit of p into the cart, or bumps the existing line.
func (e *Engine) AddItem(p parts.Part) error {
	if i := e.find(p.ID); i >= 0 {
		l := &e.lines[i]
		if l.Quantity+1 > p.Quantity {
			return fmt.Errorf("%w: only %d of %s available", ErrInsufficientStock, p.Quantity, p.Name)
		}
		l.Quantity++
		l.LineTotal = float64(l.Quantity) * l.UnitPrice
		return nil
	}
	if p.Quantity < 1 {
		return fmt.Errorf("%w: %s", ErrOutOfStock, p.Name)
	}
	e.lines = append(e.lines, Line{
		PartID:    p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		UnitPrice: p.Price,
		Quantity:  1,
		MaxStock:  p.Quantity,
		LineTotal: p.Price,
	})
	return nil
}

// SetQuantity replaces a line's quantity. Zero and below removes the line;
// above MaxStock fails and leaves the line untouched.
func (e *Engine) SetQuantity(partID string, quantity int) error {
	i := e.find(partID)
	if i < 0 {
		return nil
	}
	if quantity < 1 {
		e.RemoveItem(partID)
		return nil
	}
	l := &e.lines[i]
	if quantity > l.MaxStock {
		return fmt.Errorf("%w: only %d of %s available", ErrInsufficientStock, l.MaxStock, l.Name)
	}
	l.Quantity = quantity
	l.LineTotal = float64(quantity) * l.UnitPrice
	return nil
}

func (e *Engine) RemoveItem(partID string) {
	if i := e.find(partID); i >= 0 {
		e.lines = append(e.lines[:i], e.lines[i+1:]...)
	}
}

func (e *Engine) Clear() { e.lines = nil }

func (e *Engine) Len() int { return len(e.lines) }

// Lines returns a copy; callers cannot reach the engine's state through it.
func (e *Engine) Lines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

func (e *Engine) Line(partID string) (Line, bool) {
	if i := e.find(partID); i >= 0 {
		return e.lines[i], true
	}
	return Line{}, false
}

// Totals is a pure read: subtotal, GST at the given percent rate, and their
// sum. Calling it does not change the cart.
func (e *Engine) Totals(gstRatePercent float64) Totals {
	var t Totals
	for i := range e.lines {
		t.Subtotal += e.lines[i].LineTotal
	}
	t.GSTAmount = t.Subtotal * gstRatePercent / 100
	t.GrandTotal = t.Subtotal + t.GSTAmount
	return t
}

// Draft builds the checkout payload from the current lines.
func (e *Engine) Draft(customerName string, gstRatePercent float64) sales.Draft {
	d := sales.Draft{
		Items:        make([]sales.DraftItem, 0, len(e.lines)),
		CustomerName: customerName,
		GSTRate:      gstRatePercent,
	}
	for i := range e.lines {
		d.Items = append(d.Items, sales.DraftItem{PartID: e.lines[i].PartID, Quantity: e.lines[i].Quantity})
	}
	return d
}
