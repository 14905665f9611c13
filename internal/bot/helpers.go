package bot

import (
	"fmt"
	"strings"
)

func money(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// invoiceNo shortens a sale id to the printed invoice number, the last six
// characters uppercased.
func invoiceNo(id string) string {
	tail := id
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	return "#INV-" + strings.ToUpper(tail)
}

// bar renders a chart cell: value scaled against max into 0..width blocks.
func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n == 0 {
		n = 1
	}
	return strings.Repeat("▇", n)
}
