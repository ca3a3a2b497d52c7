package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxHorizonMonths is the longest horizon, 50 years, accepted for
// investments, goals and payoff simulations.
const MaxHorizonMonths = 600

// GrowthPlan describes an investment: either a lump sum (Principal) or a
// monthly contribution, optionally stepped up once per contribution year.
type GrowthPlan struct {
	Principal           decimal.Decimal  `yaml:"principal,omitempty" json:"principal,omitempty"`
	MonthlyContribution decimal.Decimal  `yaml:"monthly_contribution,omitempty" json:"monthly_contribution,omitempty"`
	AnnualRatePercent   decimal.Decimal  `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TermMonths          int              `yaml:"term_months,omitempty" json:"term_months,omitempty"`
	AnnualStepUpPercent *decimal.Decimal `yaml:"annual_step_up_percent,omitempty" json:"annual_step_up_percent,omitempty"` // nil means no step-up
}

// StepUpPercent returns the step-up rate, defaulting to zero.
func (g GrowthPlan) StepUpPercent() decimal.Decimal {
	if g.AnnualStepUpPercent == nil {
		return decimal.Zero
	}
	return *g.AnnualStepUpPercent
}

// GrowthPoint is a year-end snapshot used for charting
type GrowthPoint struct {
	Year     int             `json:"year" yaml:"year"`
	Invested decimal.Decimal `json:"invested" yaml:"invested"`
	Value    decimal.Decimal `json:"value" yaml:"value"`
}

// GrowthResult holds the outcome of a growth projection
type GrowthResult struct {
	InvestedAmount   decimal.Decimal `json:"invested_amount" yaml:"invested_amount"`
	EstimatedReturns decimal.Decimal `json:"estimated_returns" yaml:"estimated_returns"`
	FutureValue      decimal.Decimal `json:"future_value" yaml:"future_value"`
	Series           []GrowthPoint   `json:"series,omitempty" yaml:"series,omitempty"`
}

// GoalPlan describes a future purchase priced in today's money
type GoalPlan struct {
	CurrentCost       decimal.Decimal `yaml:"current_cost" json:"current_cost"`
	InflationPercent  decimal.Decimal `yaml:"inflation_percent" json:"inflation_percent"`
	Years             int             `yaml:"years" json:"years"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	ExistingSavings   decimal.Decimal `yaml:"existing_savings,omitempty" json:"existing_savings,omitempty"`
}

// GoalResult is the funding plan for a GoalPlan
type GoalResult struct {
	FutureCost                  decimal.Decimal `json:"future_cost" yaml:"future_cost"`
	FutureValueOfSavings        decimal.Decimal `json:"future_value_of_savings" yaml:"future_value_of_savings"`
	Shortfall                   decimal.Decimal `json:"shortfall" yaml:"shortfall"`
	RequiredMonthlyContribution decimal.Decimal `json:"required_monthly_contribution" yaml:"required_monthly_contribution"`
}

// InvestmentKind selects the growth model of an investment request
type InvestmentKind string

const (
	InvestmentLumpSum InvestmentKind = "lumpsum"
	InvestmentSIP     InvestmentKind = "sip"
)

// ParseInvestmentKind accepts the canonical names and a few common spellings.
func ParseInvestmentKind(s string) (InvestmentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lumpsum", "lump_sum", "lump-sum":
		return InvestmentLumpSum, nil
	case "sip", "monthly":
		return InvestmentSIP, nil
	default:
		return "", fmt.Errorf("unknown investment kind %q (want lumpsum or sip)", s)
	}
}
