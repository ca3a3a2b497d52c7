package main

import (
	"fmt"

	"github.com/dhanam/fincalc/internal/calculation"
	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints the reference scenarios at full precision, for checking hand
// calculations against the engine.
func main() {
	home := domain.LoanTerms{
		Principal:         decimal.NewFromInt(2500000),
		AnnualRatePercent: decimal.NewFromFloat(8.5),
		TermMonths:        240,
	}
	emi := calculation.ComputeEMI(home)
	fmt.Println("Home loan:")
	fmt.Printf("  EMI: %s\n", emi.MonthlyPayment)
	fmt.Printf("  Total interest: %s\n", emi.TotalInterest)

	prepay := calculation.ComputePrepayment(home, decimal.NewFromInt(500000))
	fmt.Printf("  Prepay 5L -> term %s months (%d installments), interest saved %s\n",
		prepay.NewTermMonths.StringFixed(4), prepay.RemainingTermMonths, prepay.InterestSaved)

	moratorium := calculation.ComputeMoratorium(home, 12)
	fmt.Printf("  12-month moratorium -> EMI %s, interest %s\n", moratorium.MonthlyPayment, moratorium.TotalInterest)

	rate := decimal.NewFromInt(12)
	lump := calculation.ProjectLumpSum(decimal.NewFromInt(100000), rate, 10)
	sip := calculation.ProjectPeriodicContribution(decimal.NewFromInt(10000), rate, 120, decimal.Zero)
	stepped := calculation.ProjectPeriodicContribution(decimal.NewFromInt(10000), rate, 120, decimal.NewFromInt(10))
	fmt.Println("Growth at 12% for 10 years:")
	fmt.Printf("  Lump sum 1L: %s\n", lump.FutureValue)
	fmt.Printf("  SIP 10k: %s\n", sip.FutureValue)
	fmt.Printf("  SIP 10k, 10%% step-up: %s (invested %s)\n", stepped.FutureValue, stepped.InvestedAmount)

	goal := calculation.PlanGoal(domain.GoalPlan{
		CurrentCost:       decimal.NewFromInt(1000000),
		InflationPercent:  decimal.NewFromInt(6),
		Years:             10,
		AnnualRatePercent: rate,
		ExistingSavings:   decimal.NewFromInt(100000),
	})
	fmt.Printf("Goal: future cost %s, shortfall %s, monthly %s\n",
		goal.FutureCost, goal.Shortfall, goal.RequiredMonthlyContribution)

	debts := []domain.Debt{
		{Name: "Credit card", Balance: decimal.NewFromInt(100000), AnnualRatePercent: decimal.NewFromInt(36), MinPayment: decimal.NewFromInt(5000)},
		{Name: "Car loan", Balance: decimal.NewFromInt(300000), AnnualRatePercent: decimal.NewFromInt(14), MinPayment: decimal.NewFromInt(8000)},
	}
	comparison := calculation.ComparePayoffStrategies(debts, decimal.NewFromInt(10000))
	for _, r := range []domain.PayoffResult{comparison.Avalanche, comparison.Snowball} {
		fmt.Printf("Payoff %s: %d months, interest %s, total %s\n", r.Strategy, r.MonthsToZero, r.TotalInterestPaid, r.TotalAmountPaid)
	}

	retirement := calculation.PlanRetirement(domain.RetirementProfile{
		CurrentAge:                     30,
		RetirementAge:                  60,
		LifeExpectancy:                 85,
		MonthlyExpense:                 decimal.NewFromInt(50000),
		PreRetirementInflationPercent:  decimal.NewFromInt(6),
		PostRetirementInflationPercent: decimal.NewFromInt(5),
		PreRetirementReturnPercent:     rate,
		PostRetirementReturnPercent:    decimal.NewFromInt(7),
		ExistingCorpus:                 decimal.NewFromInt(500000),
	})
	fmt.Printf("Retirement: corpus %s, shortfall %s, monthly %s\n",
		retirement.RequiredCorpus, retirement.CorpusShortfall, retirement.RequiredMonthlyContribution)
}
