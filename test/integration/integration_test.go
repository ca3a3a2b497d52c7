package integration

import (
	"context"
	"testing"

	"github.com/dhanam/fincalc/internal/calculation"
	"github.com/dhanam/fincalc/internal/config"
	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requestFile = "../testdata/example_config.yaml"

func runRequestFile(t *testing.T) *domain.Report {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile(requestFile)
	require.NoError(t, err)

	report, err := calculation.NewCalculationEngine().Run(context.Background(), cfg)
	require.NoError(t, err)
	return report
}

func near(t *testing.T, expected float64, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected, actual.InexactFloat64(), 0.01, msgAndArgs...)
}

func TestEndToEndCalculation(t *testing.T) {
	report := runRequestFile(t)
	assert.Equal(t, "Sharma household", report.Name)

	require.Len(t, report.Loans, 2)
	home := report.Loans[0]
	near(t, 21695.58, home.EMI.MonthlyPayment)
	near(t, 2706939.40, home.EMI.TotalInterest)
	near(t, 1253117.18, home.Prepayment.NewTotalInterest)
	near(t, 1453822.22, home.Prepayment.InterestSaved)
	assert.Equal(t, 150, home.Prepayment.RemainingTermMonths)
	near(t, 23539.71, home.Moratorium.MonthlyPayment)
	require.Len(t, home.Schedule, 240)
	assert.True(t, home.Schedule[239].RemainingBalance.IsZero())

	appliance := report.Loans[1]
	near(t, 5000, appliance.EMI.MonthlyPayment)
	assert.False(t, appliance.EMI.TotalInterest.IsNegative())

	require.Len(t, report.Investments, 3)
	near(t, 310584.82, report.Investments[0].Result.FutureValue)
	near(t, 2323390.76, report.Investments[1].Result.FutureValue)
	near(t, 3374326.26, report.Investments[2].Result.FutureValue)
	near(t, 1912490.95, report.Investments[2].Result.InvestedAmount)

	require.Len(t, report.Goals, 1)
	near(t, 6371.13, report.Goals[0].Result.RequiredMonthlyContribution)

	require.Len(t, report.DebtPlans, 2)
	compared := report.DebtPlans[0].Comparison
	require.NotNil(t, compared)
	assert.Equal(t, 24, compared.Avalanche.MonthsToZero)
	assert.Equal(t, 24, compared.Snowball.MonthsToZero)
	near(t, 65322.78, compared.Avalanche.TotalInterestPaid)
	near(t, 465322.78, compared.Avalanche.TotalAmountPaid)

	snowball := report.DebtPlans[1].Result
	require.NotNil(t, snowball)
	assert.Equal(t, 47, snowball.MonthsToZero)
	near(t, 38650.74, snowball.TotalInterestPaid)

	require.NotNil(t, report.Retirement)
	retirement := report.Retirement.Result
	near(t, 287174.56, retirement.MonthlyExpenseAtRetirement)
	assert.InDelta(t, 68038010.71, retirement.RequiredCorpus.InexactFloat64(), 0.05)
	near(t, 14979961.06, retirement.FutureValueOfExistingCorpus)
	near(t, 15030.98, retirement.RequiredMonthlyContribution)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile(requestFile)
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Retirement.LifeExpectancy = cfg.Retirement.RetirementAge
	assert.Error(t, parser.ValidateConfiguration(cfg))
}

func TestEngineIsDeterministic(t *testing.T) {
	first := runRequestFile(t)
	second := runRequestFile(t)

	assert.True(t, first.Loans[0].Prepayment.InterestSaved.Equal(second.Loans[0].Prepayment.InterestSaved))
	assert.True(t, first.Investments[2].Result.FutureValue.Equal(second.Investments[2].Result.FutureValue))
	assert.True(t, first.DebtPlans[0].Comparison.Avalanche.TotalInterestPaid.Equal(second.DebtPlans[0].Comparison.Avalanche.TotalInterestPaid))
	assert.True(t, first.Retirement.Result.RequiredCorpus.Equal(second.Retirement.Result.RequiredCorpus))
}
