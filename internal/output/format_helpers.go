package output

import (
	"fmt"
	"strconv"

	"github.com/dhanam/fincalc/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as rupees with Indian digit grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Format()
}

// FormatAmount renders a plain two-place amount for machine-readable outputs.
func FormatAmount(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).String()
}

// FormatCompact formats large amounts in lakhs or crores.
func FormatCompact(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Compact()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount stddec.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMonths renders a month count as years and months, e.g. "12y 6m".
func FormatMonths(months int) string {
	if months < 0 {
		return "-" + FormatMonths(-months)
	}
	years, rest := months/12, months%12
	switch {
	case years == 0:
		return fmt.Sprintf("%dm", rest)
	case rest == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dm", years, rest)
	}
}

func intToString(i int) string { return strconv.Itoa(i) }
