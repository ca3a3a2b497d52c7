package domain

import "github.com/shopspring/decimal"

// LoanTerms describes a fixed-rate loan repaid in equal monthly installments
type LoanTerms struct {
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"` // 8.5 means 8.5%
	TermMonths        int             `yaml:"term_months" json:"term_months"`
}

// AmortizationResult holds the headline figures of an amortized loan
type AmortizationResult struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment" yaml:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest" yaml:"total_interest"`
	TotalPayment   decimal.Decimal `json:"total_payment" yaml:"total_payment"`
}

// PrepaymentResult describes the effect of a one-time principal prepayment
// made at the start of the loan while keeping the installment unchanged.
type PrepaymentResult struct {
	AmortizationResult `yaml:",inline"`

	InterestSaved       decimal.Decimal `json:"interest_saved" yaml:"interest_saved"`
	NewTotalInterest    decimal.Decimal `json:"new_total_interest" yaml:"new_total_interest"`
	NewTermMonths       decimal.Decimal `json:"new_term_months" yaml:"new_term_months"`             // exact, possibly fractional
	RemainingTermMonths int             `json:"remaining_term_months" yaml:"remaining_term_months"` // installments left, last one partial

	// LoanClosed is set when the prepayment covers the whole principal.
	LoanClosed bool `json:"loan_closed" yaml:"loan_closed"`
	// Unpayable is set when the installment no longer covers the monthly interest
	// on the reduced principal, so the loan never amortizes.
	Unpayable bool `json:"unpayable" yaml:"unpayable"`
}

// AmortizationEntry is one row of a monthly amortization schedule
type AmortizationEntry struct {
	Month            int             `json:"month" yaml:"month"`
	Payment          decimal.Decimal `json:"payment" yaml:"payment"`
	Principal        decimal.Decimal `json:"principal" yaml:"principal"`
	Interest         decimal.Decimal `json:"interest" yaml:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance" yaml:"remaining_balance"`
}
