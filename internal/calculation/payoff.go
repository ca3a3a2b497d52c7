package calculation

import (
	"sort"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxPayoffMonths caps every payoff simulation at 50 years so inputs whose
// payments never outpace interest still terminate.
const MaxPayoffMonths = domain.MaxHorizonMonths

// debtState is the simulator's working copy of one debt.
type debtState struct {
	ratePercent decimal.Decimal
	rate        decimal.Decimal
	minPayment  decimal.Decimal
	balance     decimal.Decimal
	interest    decimal.Decimal
	opened      bool // started with a positive balance
	paidOff     int
}

// SimulatePayoff pays down a set of debts month by month. Each month interest
// accrues on every open balance, minimum payments are made, and the extra
// payment is spread over open debts in the order the strategy dictates.
//
// The simulation stops when every balance is zero or after MaxPayoffMonths,
// in which case the result's Status is PayoffCapReached.
func SimulatePayoff(debts []domain.Debt, extraMonthlyPayment decimal.Decimal, strategy domain.PayoffStrategy) domain.PayoffResult {
	extra := nonNegative(extraMonthlyPayment)

	work := make([]debtState, len(debts))
	originalTotal := decimal.Zero
	for i, d := range debts {
		balance := nonNegative(d.Balance)
		work[i] = debtState{
			ratePercent: nonNegative(d.AnnualRatePercent),
			rate:        monthlyRate(d.AnnualRatePercent),
			minPayment:  nonNegative(d.MinPayment),
			balance:     balance,
			interest:    decimal.Zero,
			opened:      balance.IsPositive(),
		}
		originalTotal = originalTotal.Add(balance)
	}

	totalInterest := decimal.Zero
	open := make([]*debtState, 0, len(work))
	month := 0

	for month < MaxPayoffMonths && hasOpenBalance(work) {
		month++

		for i := range work {
			d := &work[i]
			if !d.balance.IsPositive() {
				continue
			}
			interest := d.balance.Mul(d.rate).Round(interestPrecision)
			d.balance = d.balance.Add(interest)
			d.interest = d.interest.Add(interest)
			totalInterest = totalInterest.Add(interest)
		}

		for i := range work {
			d := &work[i]
			if !d.balance.IsPositive() {
				continue
			}
			d.balance = d.balance.Sub(decimal.Min(d.balance, d.minPayment))
		}

		open = open[:0]
		for i := range work {
			if work[i].balance.IsPositive() {
				open = append(open, &work[i])
			}
		}
		orderByStrategy(open, strategy)

		remaining := extra
		for _, d := range open {
			if !remaining.IsPositive() {
				break
			}
			pay := decimal.Min(remaining, d.balance)
			d.balance = d.balance.Sub(pay)
			remaining = remaining.Sub(pay)
		}

		for i := range work {
			d := &work[i]
			d.balance = nonNegative(d.balance)
			if d.opened && d.paidOff == 0 && d.balance.IsZero() {
				d.paidOff = month
			}
		}
	}

	result := domain.PayoffResult{
		Strategy:          strategy,
		Status:            domain.PayoffCleared,
		MonthsToZero:      month,
		TotalInterestPaid: totalInterest,
		TotalAmountPaid:   originalTotal.Add(totalInterest),
		Debts:             make([]domain.DebtPayoff, len(debts)),
	}
	if hasOpenBalance(work) {
		result.Status = domain.PayoffCapReached
		result.MonthsToZero = MaxPayoffMonths
	}
	for i, d := range work {
		result.Debts[i] = domain.DebtPayoff{
			Name:         debts[i].Name,
			PaidOffMonth: d.paidOff,
			InterestPaid: d.interest,
		}
	}
	return result
}

// orderByStrategy sorts open debts in payment priority. Avalanche puts the
// highest rate first, Snowball the smallest balance. Equal keys keep input order.
func orderByStrategy(open []*debtState, strategy domain.PayoffStrategy) {
	sort.SliceStable(open, func(i, j int) bool {
		switch strategy {
		case domain.Snowball:
			return open[i].balance.LessThan(open[j].balance)
		default:
			return open[i].ratePercent.GreaterThan(open[j].ratePercent)
		}
	})
}

func hasOpenBalance(work []debtState) bool {
	for i := range work {
		if work[i].balance.IsPositive() {
			return true
		}
	}
	return false
}

// ComparePayoffStrategies runs both strategies over the same debts. Avalanche
// is recommended unless Snowball is strictly cheaper.
func ComparePayoffStrategies(debts []domain.Debt, extraMonthlyPayment decimal.Decimal) domain.PayoffComparison {
	avalanche := SimulatePayoff(debts, extraMonthlyPayment, domain.Avalanche)
	snowball := SimulatePayoff(debts, extraMonthlyPayment, domain.Snowball)

	recommended := domain.Avalanche
	if snowball.TotalInterestPaid.LessThan(avalanche.TotalInterestPaid) {
		recommended = domain.Snowball
	}

	return domain.PayoffComparison{
		Avalanche:     avalanche,
		Snowball:      snowball,
		InterestSaved: nonNegative(snowball.TotalInterestPaid.Sub(avalanche.TotalInterestPaid)),
		MonthsSaved:   snowball.MonthsToZero - avalanche.MonthsToZero,
		Recommended:   recommended,
	}
}
