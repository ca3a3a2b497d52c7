package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is a batch of calculation requests loaded from a request file
type Configuration struct {
	Name        string              `yaml:"name" json:"name"`
	Loans       []LoanRequest       `yaml:"loans,omitempty" json:"loans,omitempty"`
	Investments []InvestmentRequest `yaml:"investments,omitempty" json:"investments,omitempty"`
	Goals       []GoalRequest       `yaml:"goals,omitempty" json:"goals,omitempty"`
	DebtPlans   []DebtPlanRequest   `yaml:"debt_plans,omitempty" json:"debt_plans,omitempty"`
	Retirement  *RetirementRequest  `yaml:"retirement,omitempty" json:"retirement,omitempty"`
}

// IsEmpty reports whether the configuration contains no requests at all.
func (c *Configuration) IsEmpty() bool {
	return len(c.Loans) == 0 && len(c.Investments) == 0 && len(c.Goals) == 0 &&
		len(c.DebtPlans) == 0 && c.Retirement == nil
}

// LoanRequest asks for an EMI calculation with optional prepayment and moratorium analysis
type LoanRequest struct {
	Name      string `yaml:"name" json:"name"`
	LoanTerms `yaml:",inline"`

	Prepayment       *decimal.Decimal `yaml:"prepayment,omitempty" json:"prepayment,omitempty"`
	MoratoriumMonths *int             `yaml:"moratorium_months,omitempty" json:"moratorium_months,omitempty"`
	IncludeSchedule  bool             `yaml:"include_schedule,omitempty" json:"include_schedule,omitempty"`
}

// InvestmentRequest asks for a lump-sum or SIP projection.
// Years is used by lump sums; TermMonths by SIPs. Either falls back to the other.
type InvestmentRequest struct {
	Name       string         `yaml:"name" json:"name"`
	Kind       InvestmentKind `yaml:"kind" json:"kind"`
	Years      int            `yaml:"years,omitempty" json:"years,omitempty"`
	GrowthPlan `yaml:",inline"`
}

// ResolvedKind returns the investment kind, inferring SIP when Kind is empty
// and a monthly contribution is set.
func (r InvestmentRequest) ResolvedKind() (InvestmentKind, error) {
	if r.Kind == "" {
		if r.MonthlyContribution.IsPositive() {
			return InvestmentSIP, nil
		}
		return InvestmentLumpSum, nil
	}
	return ParseInvestmentKind(string(r.Kind))
}

// LumpSumYears returns the compounding horizon in whole years.
func (r InvestmentRequest) LumpSumYears() int {
	if r.Years > 0 {
		return r.Years
	}
	return r.TermMonths / 12
}

// ContributionMonths returns the SIP horizon in months.
func (r InvestmentRequest) ContributionMonths() int {
	if r.TermMonths > 0 {
		return r.TermMonths
	}
	return r.Years * 12
}

// GoalRequest asks for the monthly saving needed to fund a goal
type GoalRequest struct {
	Name     string `yaml:"name" json:"name"`
	GoalPlan `yaml:",inline"`
}

// DebtPlanRequest asks for a payoff simulation. Strategy may be
// "avalanche", "snowball" or "compare".
type DebtPlanRequest struct {
	Name                string          `yaml:"name" json:"name"`
	ExtraMonthlyPayment decimal.Decimal `yaml:"extra_monthly_payment" json:"extra_monthly_payment"`
	Strategy            string          `yaml:"strategy" json:"strategy"`
	Debts               []Debt          `yaml:"debts" json:"debts"`
}

// StrategyCompare requests both payoff strategies side by side.
const StrategyCompare = "compare"

// RetirementRequest wraps a RetirementProfile. When BirthDate is set it
// overrides CurrentAge, measured at calculation time.
type RetirementRequest struct {
	BirthDate         *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	RetirementProfile `yaml:",inline"`
}
