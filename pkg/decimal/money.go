package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a calculated rupee amount as shown in reports.
type Money struct {
	decimal.Decimal
}

var (
	lakh  = decimal.NewFromInt(100000)
	crore = decimal.NewFromInt(10000000)
)

// NewMoneyFromDecimal wraps a calculated amount for display.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// String returns the amount fixed to two places, without grouping. CSV
// exports use it so spreadsheets read plain numbers.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with the rupee sign and Indian digit grouping,
// e.g. ₹25,00,000.00.
func (m Money) Format() string {
	return m.FormatWithSymbol("₹")
}

// FormatWithSymbol is Format with a caller-chosen currency prefix. The PDF
// renderer uses "Rs." because its core fonts have no rupee glyph.
func (m Money) FormatWithSymbol(symbol string) string {
	fixed := m.Decimal.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if m.Decimal.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + symbol + groupIndian(whole) + "." + frac
}

// Compact renders large amounts in lakhs or crores, e.g. ₹6.80 Cr.
// Amounts under one lakh fall back to Format.
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}

	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + "₹" + abs.Div(crore).StringFixed(2) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + "₹" + abs.Div(lakh).StringFixed(2) + " L"
	default:
		return m.Format()
	}
}

// groupIndian inserts separators after the last three digits and then
// after every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
