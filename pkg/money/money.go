// Package money provides monetary helpers for the planner.
//
// All planner amounts are Indian rupees. Formatting follows the Indian
// digit-grouping convention (lakh/crore): the last three digits form one
// group, every group above that has two digits, e.g. ₹1,00,000.
// Downstream consumers (chat grounding, the public retrieval endpoint)
// echo these strings verbatim, so the convention is part of the external
// interface, not cosmetics.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSign is the currency prefix used in all rendered amounts.
const RupeeSign = "₹"

// GroupIndian formats n with Indian digit grouping, without a currency sign.
func GroupIndian(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	digits := decimal.NewFromInt(n).String()
	if len(digits) <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	var b strings.Builder
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	// Groups of two from the right of the head. The three-digit tail always
	// follows, so every head group ends with a comma.
	rem := len(head) % 2
	if rem == 1 {
		b.WriteString(head[:1])
		head = head[1:]
		b.WriteByte(',')
	}
	for i := 0; i < len(head); i += 2 {
		b.WriteString(head[i : i+2])
		b.WriteByte(',')
	}
	b.WriteString(tail)

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatINR renders a whole-rupee amount as e.g. "₹1,00,000".
func FormatINR(n int64) string {
	if n < 0 {
		return "-" + RupeeSign + GroupIndian(-n)
	}
	return RupeeSign + GroupIndian(n)
}

// FormatINRDecimal rounds d to the nearest rupee and renders it with the
// grouping convention. Used for ledger values and totals.
func FormatINRDecimal(d decimal.Decimal) string {
	return FormatINR(d.Round(0).IntPart())
}
