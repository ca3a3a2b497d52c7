package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownStrategy is returned when a payoff strategy name cannot be parsed.
var ErrUnknownStrategy = errors.New("unknown payoff strategy")

// Debt is a single revolving or installment debt
type Debt struct {
	Name              string          `yaml:"name" json:"name"`
	Balance           decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	MinPayment        decimal.Decimal `yaml:"min_payment" json:"min_payment"`
}

// PayoffStrategy decides which debt receives the extra monthly payment first
type PayoffStrategy int

const (
	// Avalanche pays the highest interest rate first.
	Avalanche PayoffStrategy = iota
	// Snowball pays the smallest balance first.
	Snowball
)

func (s PayoffStrategy) String() string {
	switch s {
	case Avalanche:
		return "avalanche"
	case Snowball:
		return "snowball"
	default:
		return fmt.Sprintf("PayoffStrategy(%d)", int(s))
	}
}

// ParsePayoffStrategy parses "avalanche" or "snowball", ignoring case.
func ParsePayoffStrategy(s string) (PayoffStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avalanche":
		return Avalanche, nil
	case "snowball":
		return Snowball, nil
	default:
		return Avalanche, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func (s PayoffStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *PayoffStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParsePayoffStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// PayoffStatus is the terminal state of a payoff simulation
type PayoffStatus string

const (
	// PayoffCleared means every balance reached zero.
	PayoffCleared PayoffStatus = "cleared"
	// PayoffCapReached means the month cap was hit with balances outstanding.
	PayoffCapReached PayoffStatus = "cap_reached"
)

// DebtPayoff records how a single debt fared in a simulation
type DebtPayoff struct {
	Name         string          `json:"name" yaml:"name"`
	PaidOffMonth int             `json:"paid_off_month" yaml:"paid_off_month"` // 0 when never cleared
	InterestPaid decimal.Decimal `json:"interest_paid" yaml:"interest_paid"`
}

// PayoffResult is the outcome of a multi-debt payoff simulation.
// When Status is PayoffCapReached, MonthsToZero equals the cap and the debts
// are not payable within it; callers must branch on Status.
type PayoffResult struct {
	Strategy          PayoffStrategy  `json:"strategy" yaml:"strategy"`
	Status            PayoffStatus    `json:"status" yaml:"status"`
	MonthsToZero      int             `json:"months_to_zero" yaml:"months_to_zero"`
	TotalInterestPaid decimal.Decimal `json:"total_interest_paid" yaml:"total_interest_paid"`
	TotalAmountPaid   decimal.Decimal `json:"total_amount_paid" yaml:"total_amount_paid"`
	Debts             []DebtPayoff    `json:"debts,omitempty" yaml:"debts,omitempty"`
}

// Cleared reports whether every debt was paid off within the cap.
func (r PayoffResult) Cleared() bool {
	return r.Status == PayoffCleared
}

// PayoffComparison runs both strategies over the same debts
type PayoffComparison struct {
	Avalanche     PayoffResult    `json:"avalanche" yaml:"avalanche"`
	Snowball      PayoffResult    `json:"snowball" yaml:"snowball"`
	InterestSaved decimal.Decimal `json:"interest_saved" yaml:"interest_saved"` // snowball minus avalanche, never negative
	MonthsSaved   int             `json:"months_saved" yaml:"months_saved"`
	Recommended   PayoffStrategy  `json:"recommended" yaml:"recommended"`
}
