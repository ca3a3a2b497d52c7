package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	percentDivisor = decimal.NewFromInt(100)
	monthsPerYear  = decimal.NewFromInt(12)
	one            = decimal.NewFromInt(1)
	minusOne       = decimal.NewFromInt(-1)
)

// interestPrecision bounds digit growth in iterative loops.
const interestPrecision = 10

// nonNegative clamps d at zero.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// annualRate converts a whole percentage (8.5) into a fraction (0.085).
// Negative rates are treated as zero; loans and debts never earn interest.
func annualRate(percent decimal.Decimal) decimal.Decimal {
	return nonNegative(percent).Div(percentDivisor)
}

// monthlyRate converts an annual whole percentage into a monthly fraction.
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return nonNegative(annualRatePercent).Div(monthsPerYear).Div(percentDivisor)
}

// signedAnnualRate is annualRate for returns and inflation, which may be
// negative. Rates below -100% are floored there since nothing loses more
// than everything.
func signedAnnualRate(percent decimal.Decimal) decimal.Decimal {
	return decimal.Max(percent.Div(percentDivisor), minusOne)
}

// signedMonthlyRate spreads a signed annual rate over twelve months.
func signedMonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return signedAnnualRate(annualRatePercent).Div(monthsPerYear)
}

// growthFactor returns (1+rate)^periods. The power is taken in float64 and
// converted back; decimal has no efficient fractional pow.
func growthFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	return toDecimal(math.Pow(1+rate.InexactFloat64(), float64(periods)))
}

// toDecimal converts a float result, mapping NaN to zero and infinities to the
// largest finite float so nothing non-finite reaches decimal.NewFromFloat.
func toDecimal(f float64) decimal.Decimal {
	switch {
	case math.IsNaN(f):
		return decimal.Zero
	case math.IsInf(f, 1):
		return decimal.NewFromFloat(math.MaxFloat64)
	case math.IsInf(f, -1):
		return decimal.NewFromFloat(-math.MaxFloat64)
	}
	return decimal.NewFromFloat(f)
}

func intDecimal(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
