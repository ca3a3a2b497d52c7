package calculation

import (
	"math"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// termTolerance absorbs float noise when rounding a fractional term up.
const termTolerance = 1e-9

// ComputeEMI calculates the equated monthly installment for a loan and the
// totals paid over its full term. Invalid terms yield an all-zero result.
func ComputeEMI(terms domain.LoanTerms) domain.AmortizationResult {
	if !terms.Principal.IsPositive() || terms.TermMonths <= 0 {
		return zeroAmortization()
	}

	emi := installment(terms.Principal, monthlyRate(terms.AnnualRatePercent), terms.TermMonths)
	totalPayment := emi.Mul(intDecimal(terms.TermMonths))

	return domain.AmortizationResult{
		MonthlyPayment: emi,
		// P/n is rounded at 16 places, so a zero rate can land a hair below P
		TotalInterest: nonNegative(totalPayment.Sub(terms.Principal)),
		TotalPayment:  totalPayment,
	}
}

// installment is P*r*(1+r)^n / ((1+r)^n - 1), or P/n when r is zero.
func installment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	if rate.IsZero() {
		return principal.Div(intDecimal(n))
	}

	r := rate.InexactFloat64()
	growth := math.Pow(1+r, float64(n))
	if math.IsInf(growth, 1) {
		// The principal never shrinks meaningfully; the installment is pure interest.
		return principal.Mul(rate)
	}
	return principal.Mul(toDecimal(r * growth / (growth - 1)))
}

func zeroAmortization() domain.AmortizationResult {
	return domain.AmortizationResult{
		MonthlyPayment: decimal.Zero,
		TotalInterest:  decimal.Zero,
		TotalPayment:   decimal.Zero,
	}
}

// ComputePrepayment recomputes a loan after a one-time principal prepayment made
// at the start, keeping the installment unchanged so the term shortens.
//
// The new term is the exact annuity inversion t = -ln(1 - P'r/EMI) / ln(1+r).
// Interest on the shortened loan is EMI*t - P', which treats the final
// installment as partial. RemainingTermMonths is t rounded up.
func ComputePrepayment(terms domain.LoanTerms, prepayment decimal.Decimal) domain.PrepaymentResult {
	original := ComputeEMI(terms)
	if original.MonthlyPayment.IsZero() {
		return domain.PrepaymentResult{
			AmortizationResult: original,
			InterestSaved:      decimal.Zero,
			NewTotalInterest:   decimal.Zero,
			NewTermMonths:      decimal.Zero,
		}
	}

	result := domain.PrepaymentResult{
		AmortizationResult:  original,
		InterestSaved:       decimal.Zero,
		NewTotalInterest:    original.TotalInterest,
		NewTermMonths:       intDecimal(terms.TermMonths),
		RemainingTermMonths: terms.TermMonths,
	}
	if !prepayment.IsPositive() {
		return result
	}

	newPrincipal := terms.Principal.Sub(prepayment)
	if !newPrincipal.IsPositive() {
		result.LoanClosed = true
		result.InterestSaved = original.TotalInterest
		result.NewTotalInterest = decimal.Zero
		result.NewTermMonths = decimal.Zero
		result.RemainingTermMonths = 0
		return result
	}

	emi := original.MonthlyPayment
	rate := monthlyRate(terms.AnnualRatePercent)

	var newTerm decimal.Decimal
	if rate.IsZero() {
		newTerm = newPrincipal.Div(emi)
	} else {
		ratio := newPrincipal.Mul(rate).Div(emi).InexactFloat64()
		if ratio >= 1 {
			result.Unpayable = true
			result.NewTotalInterest = decimal.Zero
			result.NewTermMonths = decimal.Zero
			result.RemainingTermMonths = 0
			return result
		}
		newTerm = toDecimal(-math.Log1p(-ratio) / math.Log1p(rate.InexactFloat64()))
	}

	newInterest := nonNegative(emi.Mul(newTerm).Sub(newPrincipal))
	result.NewTermMonths = newTerm
	result.RemainingTermMonths = ceilMonths(newTerm)
	result.NewTotalInterest = newInterest
	result.InterestSaved = nonNegative(original.TotalInterest.Sub(newInterest))
	return result
}

// ceilMonths rounds a fractional month count up, ignoring float noise just
// above a whole month.
func ceilMonths(term decimal.Decimal) int {
	return int(math.Ceil(term.InexactFloat64() - termTolerance))
}

// ComputeMoratorium recomputes a loan whose repayment starts after a
// moratorium. Simple interest accrues on the principal during the deferment,
// is capitalized, and the enlarged balance is amortized over TermMonths.
func ComputeMoratorium(terms domain.LoanTerms, moratoriumMonths int) domain.AmortizationResult {
	if moratoriumMonths <= 0 {
		return ComputeEMI(terms)
	}
	if !terms.Principal.IsPositive() || terms.TermMonths <= 0 {
		return zeroAmortization()
	}

	accrued := terms.Principal.
		Mul(annualRate(terms.AnnualRatePercent)).
		Mul(intDecimal(moratoriumMonths)).
		Div(monthsPerYear)

	capitalized := ComputeEMI(domain.LoanTerms{
		Principal:         terms.Principal.Add(accrued),
		AnnualRatePercent: terms.AnnualRatePercent,
		TermMonths:        terms.TermMonths,
	})

	return domain.AmortizationResult{
		MonthlyPayment: capitalized.MonthlyPayment,
		TotalInterest:  nonNegative(capitalized.TotalPayment.Sub(terms.Principal)),
		TotalPayment:   capitalized.TotalPayment,
	}
}

// GenerateSchedule builds the month-by-month amortization table. Amounts are
// rounded to cents and the final row absorbs the rounding residual so the
// balance ends at exactly zero.
func GenerateSchedule(terms domain.LoanTerms) []domain.AmortizationEntry {
	emi := ComputeEMI(terms).MonthlyPayment
	if emi.IsZero() {
		return nil
	}

	payment := emi.Round(2)
	rate := monthlyRate(terms.AnnualRatePercent)
	remaining := terms.Principal
	schedule := make([]domain.AmortizationEntry, 0, terms.TermMonths)

	for month := 1; month <= terms.TermMonths; month++ {
		interest := remaining.Mul(rate).Round(2)
		principal := payment.Sub(interest)

		if month == terms.TermMonths || principal.GreaterThan(remaining) {
			principal = remaining
		}

		remaining = nonNegative(remaining.Sub(principal))
		schedule = append(schedule, domain.AmortizationEntry{
			Month:            month,
			Payment:          principal.Add(interest),
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: remaining,
		})

		if remaining.IsZero() {
			break
		}
	}

	return schedule
}
