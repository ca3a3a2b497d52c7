package calculation

import (
	"math"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// realRateTolerance treats near-zero real returns as exactly zero.
const realRateTolerance = 1e-12

// PlanRetirement sizes the corpus needed to fund inflation-adjusted expenses
// through retirement and the monthly saving required to close any gap.
//
// Expenses are inflated to the retirement date at the pre-retirement rate.
// The corpus is the present value, at retirement, of an annual withdrawal
// annuity discounted at the real post-retirement return.
func PlanRetirement(profile domain.RetirementProfile) domain.RetirementResult {
	yearsToRetire := max(0, profile.RetirementAge-profile.CurrentAge)
	yearsInRetirement := max(0, profile.LifeExpectancy-profile.RetirementAge)

	monthlyExpense := nonNegative(profile.MonthlyExpense).
		Mul(growthFactor(signedAnnualRate(profile.PreRetirementInflationPercent), yearsToRetire))
	annualExpense := monthlyExpense.Mul(monthsPerYear)

	realRate := realRateOfReturn(profile.PostRetirementReturnPercent, profile.PostRetirementInflationPercent)
	requiredCorpus := annualExpense.Mul(presentValueFactor(realRate, yearsInRetirement))

	existing := ProjectLumpSum(profile.ExistingCorpus, profile.PreRetirementReturnPercent, yearsToRetire).FutureValue
	shortfall := nonNegative(requiredCorpus.Sub(existing))

	monthly := decimal.Zero
	if shortfall.IsPositive() {
		monthly = SolveRequiredContribution(shortfall, profile.PreRetirementReturnPercent, yearsToRetire*12)
	}

	return domain.RetirementResult{
		YearsToRetire:               yearsToRetire,
		YearsInRetirement:           yearsInRetirement,
		MonthlyExpenseAtRetirement:  monthlyExpense,
		RequiredCorpus:              requiredCorpus,
		FutureValueOfExistingCorpus: existing,
		CorpusShortfall:             shortfall,
		RequiredMonthlyContribution: monthly,
	}
}

// realRateOfReturn is (1+return)/(1+inflation) - 1. Inflation of -100%
// makes every future expense free, reported as an infinite real rate.
func realRateOfReturn(returnPercent, inflationPercent decimal.Decimal) float64 {
	nominal := one.Add(signedAnnualRate(returnPercent))
	inflation := one.Add(signedAnnualRate(inflationPercent))
	if !inflation.IsPositive() {
		return math.Inf(1)
	}
	return nominal.Div(inflation).Sub(one).InexactFloat64()
}

// presentValueFactor is (1 - (1+r)^-n) / r, or n when r is zero.
func presentValueFactor(rate float64, years int) decimal.Decimal {
	if years <= 0 || math.IsInf(rate, 1) {
		return decimal.Zero
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || math.Abs(rate) < realRateTolerance {
		return intDecimal(years)
	}
	return toDecimal(-math.Expm1(-float64(years)*math.Log1p(rate)) / rate)
}
