package domain

import "github.com/shopspring/decimal"

// RetirementProfile captures the inputs to retirement corpus sizing.
// Percent fields use whole percentages (6 means 6%).
type RetirementProfile struct {
	CurrentAge                     int             `yaml:"current_age" json:"current_age"`
	RetirementAge                  int             `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy                 int             `yaml:"life_expectancy" json:"life_expectancy"`
	MonthlyExpense                 decimal.Decimal `yaml:"monthly_expense" json:"monthly_expense"` // in today's money
	PreRetirementInflationPercent  decimal.Decimal `yaml:"pre_retirement_inflation_percent" json:"pre_retirement_inflation_percent"`
	PostRetirementInflationPercent decimal.Decimal `yaml:"post_retirement_inflation_percent" json:"post_retirement_inflation_percent"`
	PreRetirementReturnPercent     decimal.Decimal `yaml:"pre_retirement_return_percent" json:"pre_retirement_return_percent"`
	PostRetirementReturnPercent    decimal.Decimal `yaml:"post_retirement_return_percent" json:"post_retirement_return_percent"`
	ExistingCorpus                 decimal.Decimal `yaml:"existing_corpus" json:"existing_corpus"`
}

// RetirementResult is the corpus plan derived from a RetirementProfile
type RetirementResult struct {
	YearsToRetire               int             `json:"years_to_retire" yaml:"years_to_retire"`
	YearsInRetirement           int             `json:"years_in_retirement" yaml:"years_in_retirement"`
	MonthlyExpenseAtRetirement  decimal.Decimal `json:"monthly_expense_at_retirement" yaml:"monthly_expense_at_retirement"`
	RequiredCorpus              decimal.Decimal `json:"required_corpus" yaml:"required_corpus"`
	FutureValueOfExistingCorpus decimal.Decimal `json:"future_value_of_existing_corpus" yaml:"future_value_of_existing_corpus"`
	CorpusShortfall             decimal.Decimal `json:"corpus_shortfall" yaml:"corpus_shortfall"`
	RequiredMonthlyContribution decimal.Decimal `json:"required_monthly_contribution" yaml:"required_monthly_contribution"`
}
