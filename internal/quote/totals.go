// Package quote implements the billable arithmetic and input rules for
// quote line items.
package quote

import "math"

// Totals carries the derived money fields of a line item or of a whole
// quote, rounded to cent precision.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Round2 rounds to two decimal places at the cent boundary.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ItemTotals computes the derived fields of a single line item. The tax
// rate is a fraction, e.g. 0.19 for 19%. Each field is rounded
// independently from the raw products.
func ItemTotals(quantity, price, taxRate float64) Totals {
	subtotal := quantity * price
	tax := subtotal * taxRate
	total := subtotal + tax

	return Totals{
		Subtotal: Round2(subtotal),
		Tax:      Round2(tax),
		Total:    Round2(total),
	}
}

// Sum aggregates per-item totals into quote-level totals. Each field is
// summed over the already-rounded item values and rounded again; stored
// quotes depend on exactly this accumulation.
func Sum(items []Totals) Totals {
	var subtotal, tax, total float64

	for _, item := range items {
		subtotal += item.Subtotal
		tax += item.Tax
		total += item.Total
	}

	return Totals{
		Subtotal: Round2(subtotal),
		Tax:      Round2(tax),
		Total:    Round2(total),
	}
}
