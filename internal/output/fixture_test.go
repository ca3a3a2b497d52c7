package output

import (
	"time"

	"github.com/dhanam/fincalc/internal/calculation"
	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var fixtureTime = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

// buildTestReport runs the engine piecewise so the fixture does not depend
// on the wall clock.
func buildTestReport() *domain.Report {
	ce := calculation.NewCalculationEngine()
	prepay := decimal.NewFromInt(500000)
	moratorium := 12
	stepUp := decimal.NewFromInt(10)

	home := ce.RunLoan(domain.LoanRequest{
		Name: "Home & car",
		LoanTerms: domain.LoanTerms{
			Principal:         decimal.NewFromInt(2500000),
			AnnualRatePercent: decimal.NewFromFloat(8.5),
			TermMonths:        240,
		},
		Prepayment:       &prepay,
		MoratoriumMonths: &moratorium,
	})
	personal := ce.RunLoan(domain.LoanRequest{
		Name: "Personal",
		LoanTerms: domain.LoanTerms{
			Principal:         decimal.NewFromInt(100000),
			AnnualRatePercent: decimal.NewFromInt(12),
			TermMonths:        12,
		},
		IncludeSchedule: true,
	})

	sip, err := ce.RunInvestment(domain.InvestmentRequest{
		Name: "Index fund",
		GrowthPlan: domain.GrowthPlan{
			MonthlyContribution: decimal.NewFromInt(10000),
			AnnualRatePercent:   decimal.NewFromInt(12),
			TermMonths:          120,
			AnnualStepUpPercent: &stepUp,
		},
	})
	if err != nil {
		panic(err)
	}

	goal := ce.RunGoal(domain.GoalRequest{
		Name: "Education",
		GoalPlan: domain.GoalPlan{
			CurrentCost:       decimal.NewFromInt(1000000),
			InflationPercent:  decimal.NewFromInt(6),
			Years:             10,
			AnnualRatePercent: decimal.NewFromInt(12),
			ExistingSavings:   decimal.NewFromInt(100000),
		},
	})

	debts, err := ce.RunDebtPlan(domain.DebtPlanRequest{
		Name:                "Cards",
		ExtraMonthlyPayment: decimal.NewFromInt(10000),
		Strategy:            domain.StrategyCompare,
		Debts: []domain.Debt{
			{Name: "Credit card", Balance: decimal.NewFromInt(100000), AnnualRatePercent: decimal.NewFromInt(36), MinPayment: decimal.NewFromInt(5000)},
			{Name: "Car loan", Balance: decimal.NewFromInt(300000), AnnualRatePercent: decimal.NewFromInt(14), MinPayment: decimal.NewFromInt(8000)},
		},
	}, fixtureTime)
	if err != nil {
		panic(err)
	}

	retirement := ce.RunRetirement(domain.RetirementRequest{
		RetirementProfile: domain.RetirementProfile{
			CurrentAge:                     30,
			RetirementAge:                  60,
			LifeExpectancy:                 85,
			MonthlyExpense:                 decimal.NewFromInt(50000),
			PreRetirementInflationPercent:  decimal.NewFromInt(6),
			PostRetirementInflationPercent: decimal.NewFromInt(5),
			PreRetirementReturnPercent:     decimal.NewFromInt(12),
			PostRetirementReturnPercent:    decimal.NewFromInt(7),
			ExistingCorpus:                 decimal.NewFromInt(500000),
		},
	}, fixtureTime)

	return &domain.Report{
		Name:        "Household plan",
		GeneratedAt: fixtureTime,
		Loans:       []domain.LoanReport{home, personal},
		Investments: []domain.InvestmentReport{sip},
		Goals:       []domain.GoalReport{goal},
		DebtPlans:   []domain.DebtPlanReport{debts},
		Retirement:  &retirement,
	}
}
