// Package totals derives money figures from an estimate's line items. All
// functions are pure and recomputed on every read.
package totals

import (
	"strconv"

	"gyeonjeok/internal/domain/entities"
)

// Totals is the subtotal / VAT / grand-total split of a document or a line.
type Totals struct {
	Subtotal  int64 `json:"subtotal"`
	TaxAmount int64 `json:"taxAmount"`
	Total     int64 `json:"total"`
}

// ComputeTotals derives the aggregate figures for a set of items.
//
// Rounding is two-stage and must stay that way: in "including" mode the net
// unit price is floored per item before summation, then the aggregate tax is
// floored once from the subtotal. Summing un-floored nets and flooring at the
// end gives different figures for mixed carts, and downstream documents rely
// on the exact values this convention produces.
func ComputeTotals(items []entities.LineItem, taxOption entities.TaxOption) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += unitNet(it.Price, taxOption) * int64(it.Quantity)
	}
	tax := subtotal / 10
	return Totals{Subtotal: subtotal, TaxAmount: tax, Total: subtotal + tax}
}

// LineTotals derives the display figures for a single row using the same
// per-item floor rule, independently of the aggregate. Displayed per-line
// taxes therefore do not always sum to the aggregate tax amount; that is the
// accepted display artifact, not something to reconcile.
func LineTotals(item entities.LineItem, taxOption entities.TaxOption) Totals {
	supply := unitNet(item.Price, taxOption) * int64(item.Quantity)
	tax := supply / 10
	return Totals{Subtotal: supply, TaxAmount: tax, Total: supply + tax}
}

// unitNet strips VAT from a unit price in "including" mode. price*10/11 is
// the exact integer floor(price/1.1); float division would round 1100/1.1
// below 1000 and floor to 999.
func unitNet(price int64, taxOption entities.TaxOption) int64 {
	if taxOption == entities.TaxOptionIncluding {
		return price * 10 / 11
	}
	return price
}

// FormatThousands renders a non-negative amount with comma grouping for the
// document preview ("1234567" -> "1,234,567").
func FormatThousands(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
