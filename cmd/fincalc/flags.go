package main

import (
	"fmt"
	"strings"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// decimalValue lets money and rate flags parse straight into decimals so
// "8.5" never passes through a float.
type decimalValue struct {
	d *decimal.Decimal
}

func newDecimalValue(p *decimal.Decimal) *decimalValue {
	return &decimalValue{d: p}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	parsed, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(s, ",", "")))
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*v.d = parsed
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

// parseDebt reads name:balance:rate:min. Names may not contain colons.
func parseDebt(arg string) (domain.Debt, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 4 {
		return domain.Debt{}, fmt.Errorf("debt %q: want name:balance:rate:min", arg)
	}

	name := strings.TrimSpace(parts[0])
	values := make([]decimal.Decimal, 3)
	for i, raw := range parts[1:] {
		if err := newDecimalValue(&values[i]).Set(raw); err != nil {
			return domain.Debt{}, fmt.Errorf("debt %q: %w", arg, err)
		}
	}

	return domain.Debt{
		Name:              name,
		Balance:           values[0],
		AnnualRatePercent: values[1],
		MinPayment:        values[2],
	}, nil
}
