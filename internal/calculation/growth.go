package calculation

import (
	"math"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSeriesYears bounds the yearly points kept in a GrowthResult series.
// Longer horizons keep the first MaxSeriesYears points and the final year.
const MaxSeriesYears = domain.MaxHorizonMonths / 12

// ProjectLumpSum compounds a one-time investment annually for the given years.
func ProjectLumpSum(principal, annualRatePercent decimal.Decimal, years int) domain.GrowthResult {
	if !principal.IsPositive() || years < 0 {
		return zeroGrowth()
	}

	rate := signedAnnualRate(annualRatePercent)
	series := make([]domain.GrowthPoint, 0, min(years, MaxSeriesYears+1))
	for year := 1; year <= years; year++ {
		if year > MaxSeriesYears && year != years {
			year = years
		}
		series = append(series, domain.GrowthPoint{
			Year:     year,
			Invested: principal,
			Value:    principal.Mul(growthFactor(rate, year)),
		})
	}

	futureValue := principal.Mul(growthFactor(rate, years))
	return domain.GrowthResult{
		InvestedAmount:   principal,
		EstimatedReturns: futureValue.Sub(principal),
		FutureValue:      futureValue,
		Series:           series,
	}
}

// ProjectPeriodicContribution projects a monthly investment (SIP). Each
// contribution is made at the start of its month and compounds for that month.
// A positive stepUpPercent raises the contribution once per contribution year
// and is simulated month by month since no closed form applies.
func ProjectPeriodicContribution(monthlyContribution, annualRatePercent decimal.Decimal, termMonths int, stepUpPercent decimal.Decimal) domain.GrowthResult {
	if !monthlyContribution.IsPositive() || termMonths <= 0 {
		return zeroGrowth()
	}

	rate := signedMonthlyRate(annualRatePercent)
	if stepUpPercent.IsPositive() {
		return simulateContributions(monthlyContribution, rate, termMonths, stepUpPercent)
	}

	var series []domain.GrowthPoint
	for month := 12; month < termMonths+12; month += 12 {
		if month > MaxSeriesYears*12 || month > termMonths {
			month = termMonths
		}
		series = append(series, domain.GrowthPoint{
			Year:     yearOf(month),
			Invested: monthlyContribution.Mul(intDecimal(month)),
			Value:    monthlyContribution.Mul(annuityDueFactor(rate, month)),
		})
	}

	invested := monthlyContribution.Mul(intDecimal(termMonths))
	futureValue := monthlyContribution.Mul(annuityDueFactor(rate, termMonths))
	return domain.GrowthResult{
		InvestedAmount:   invested,
		EstimatedReturns: futureValue.Sub(invested),
		FutureValue:      futureValue,
		Series:           series,
	}
}

// simulateContributions runs the month-by-month contribution loop. With a zero
// step-up it reproduces the annuity-due closed form.
func simulateContributions(monthlyContribution, rate decimal.Decimal, termMonths int, stepUpPercent decimal.Decimal) domain.GrowthResult {
	growth := one.Add(rate)
	stepUp := one.Add(annualRate(stepUpPercent))

	contribution := monthlyContribution
	value := decimal.Zero
	invested := decimal.Zero
	series := make([]domain.GrowthPoint, 0, termMonths/12+1)

	for month := 1; month <= termMonths; month++ {
		if month > 1 && (month-1)%12 == 0 {
			contribution = contribution.Mul(stepUp).Round(interestPrecision)
		}

		value = value.Add(contribution).Mul(growth).Round(interestPrecision)
		invested = invested.Add(contribution)

		if month == termMonths || (month%12 == 0 && month <= MaxSeriesYears*12) {
			series = append(series, domain.GrowthPoint{
				Year:     yearOf(month),
				Invested: invested,
				Value:    value,
			})
		}
	}

	return domain.GrowthResult{
		InvestedAmount:   invested,
		EstimatedReturns: value.Sub(invested),
		FutureValue:      value,
		Series:           series,
	}
}

// annuityDueFactor is ((1+i)^n - 1)/i * (1+i), or n when i is zero.
func annuityDueFactor(rate decimal.Decimal, n int) decimal.Decimal {
	if rate.IsZero() {
		return intDecimal(n)
	}
	i := rate.InexactFloat64()
	// expm1/log1p keep precision for tiny monthly rates
	accumulated := math.Expm1(float64(n)*math.Log1p(i)) / i
	return toDecimal(accumulated * (1 + i))
}

// SolveRequiredContribution inverts the annuity-due formula to find the
// monthly contribution that grows to targetFutureValue over termMonths.
func SolveRequiredContribution(targetFutureValue, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || !targetFutureValue.IsPositive() {
		return decimal.Zero
	}

	factor := annuityDueFactor(signedMonthlyRate(annualRatePercent), termMonths)
	if !factor.IsPositive() {
		return decimal.Zero
	}
	return targetFutureValue.Div(factor)
}

// PlanGoal inflates a goal's cost to its target year, credits the growth of
// savings already set aside and solves for the monthly contribution that
// covers the rest.
func PlanGoal(plan domain.GoalPlan) domain.GoalResult {
	years := plan.Years
	if years < 0 {
		years = 0
	}

	futureCost := nonNegative(plan.CurrentCost).Mul(growthFactor(signedAnnualRate(plan.InflationPercent), years))
	savings := ProjectLumpSum(plan.ExistingSavings, plan.AnnualRatePercent, years).FutureValue
	shortfall := nonNegative(futureCost.Sub(savings))

	required := decimal.Zero
	if shortfall.IsPositive() {
		required = SolveRequiredContribution(shortfall, plan.AnnualRatePercent, years*12)
	}

	return domain.GoalResult{
		FutureCost:                  futureCost,
		FutureValueOfSavings:        savings,
		Shortfall:                   shortfall,
		RequiredMonthlyContribution: required,
	}
}

func yearOf(month int) int {
	return (month + 11) / 12
}

func zeroGrowth() domain.GrowthResult {
	return domain.GrowthResult{
		InvestedAmount:   decimal.Zero,
		EstimatedReturns: decimal.Zero,
		FutureValue:      decimal.Zero,
	}
}
