package domain

import "time"

// LoanReport collects every figure computed for a LoanRequest
type LoanReport struct {
	Name       string              `json:"name" yaml:"name"`
	Terms      LoanTerms           `json:"terms" yaml:"terms"`
	EMI        AmortizationResult  `json:"emi" yaml:"emi"`
	Prepayment *PrepaymentResult   `json:"prepayment,omitempty" yaml:"prepayment,omitempty"`
	Moratorium *AmortizationResult `json:"moratorium,omitempty" yaml:"moratorium,omitempty"`
	Schedule   []AmortizationEntry `json:"schedule,omitempty" yaml:"schedule,omitempty"`
}

// InvestmentReport is the projection for an InvestmentRequest
type InvestmentReport struct {
	Name   string         `json:"name" yaml:"name"`
	Kind   InvestmentKind `json:"kind" yaml:"kind"`
	Plan   GrowthPlan     `json:"plan" yaml:"plan"`
	Result GrowthResult   `json:"result" yaml:"result"`
}

// GoalReport is the funding plan for a GoalRequest
type GoalReport struct {
	Name   string     `json:"name" yaml:"name"`
	Plan   GoalPlan   `json:"plan" yaml:"plan"`
	Result GoalResult `json:"result" yaml:"result"`
}

// DebtPlanReport holds either a single-strategy result or a comparison
type DebtPlanReport struct {
	Name         string            `json:"name" yaml:"name"`
	Strategy     string            `json:"strategy" yaml:"strategy"`
	Result       *PayoffResult     `json:"result,omitempty" yaml:"result,omitempty"`
	Comparison   *PayoffComparison `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	DebtFreeDate *time.Time        `json:"debt_free_date,omitempty" yaml:"debt_free_date,omitempty"`
}

// RetirementReport pairs the resolved profile with its corpus plan
type RetirementReport struct {
	Profile        RetirementProfile `json:"profile" yaml:"profile"`
	Result         RetirementResult  `json:"result" yaml:"result"`
	RetirementYear int               `json:"retirement_year" yaml:"retirement_year"`
}

// Report is the complete output of a calculation run
type Report struct {
	Name        string             `json:"name" yaml:"name"`
	GeneratedAt time.Time          `json:"generated_at" yaml:"generated_at"`
	Loans       []LoanReport       `json:"loans,omitempty" yaml:"loans,omitempty"`
	Investments []InvestmentReport `json:"investments,omitempty" yaml:"investments,omitempty"`
	Goals       []GoalReport       `json:"goals,omitempty" yaml:"goals,omitempty"`
	DebtPlans   []DebtPlanReport   `json:"debt_plans,omitempty" yaml:"debt_plans,omitempty"`
	Retirement  *RetirementReport  `json:"retirement,omitempty" yaml:"retirement,omitempty"`
}
