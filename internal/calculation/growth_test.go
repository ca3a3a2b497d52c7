package calculation

import (
	"fmt"
	"math"
	"testing"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLumpSum(t *testing.T) {
	result := ProjectLumpSum(decimal.NewFromInt(100000), decimal.NewFromInt(12), 10)

	assertDecimalNear(t, 310584.82, result.FutureValue, 0.01)
	assert.True(t, result.InvestedAmount.Equal(decimal.NewFromInt(100000)))
	assertDecimalNear(t, 210584.82, result.EstimatedReturns, 0.01)

	require.Len(t, result.Series, 10)
	assert.Equal(t, 1, result.Series[0].Year)
	assertDecimalNear(t, 112000, result.Series[0].Value, 1e-6)
	assert.True(t, result.Series[9].Value.Equal(result.FutureValue))
}

func TestProjectLumpSum_Degenerate(t *testing.T) {
	t.Run("zero years returns principal", func(t *testing.T) {
		result := ProjectLumpSum(decimal.NewFromInt(5000), decimal.NewFromInt(9), 0)
		assert.True(t, result.FutureValue.Equal(decimal.NewFromInt(5000)))
		assert.True(t, result.EstimatedReturns.IsZero())
		assert.Empty(t, result.Series)
	})

	t.Run("non-positive principal", func(t *testing.T) {
		for _, p := range []int64{0, -100} {
			result := ProjectLumpSum(decimal.NewFromInt(p), decimal.NewFromInt(9), 5)
			assert.True(t, result.FutureValue.IsZero())
			assert.True(t, result.InvestedAmount.IsZero())
		}
	})

	t.Run("negative years", func(t *testing.T) {
		result := ProjectLumpSum(decimal.NewFromInt(5000), decimal.NewFromInt(9), -1)
		assert.True(t, result.FutureValue.IsZero())
	})

	t.Run("zero rate", func(t *testing.T) {
		result := ProjectLumpSum(decimal.NewFromInt(5000), decimal.Zero, 7)
		assert.True(t, result.FutureValue.Equal(decimal.NewFromInt(5000)))
	})
}

func TestProjectLumpSum_NegativeReturn(t *testing.T) {
	result := ProjectLumpSum(decimal.NewFromInt(100000), decimal.NewFromInt(-5), 10)

	assertDecimalNear(t, 100000*math.Pow(0.95, 10), result.FutureValue, 0.01)
	assert.True(t, result.EstimatedReturns.IsNegative())
	require.Len(t, result.Series, 10)
	assert.True(t, result.Series[9].Value.LessThan(result.Series[0].Value))

	t.Run("losses stop at the whole principal", func(t *testing.T) {
		result := ProjectLumpSum(decimal.NewFromInt(100000), decimal.NewFromInt(-150), 3)
		assert.True(t, result.FutureValue.IsZero(), "got %s", result.FutureValue)
		assert.True(t, result.EstimatedReturns.Equal(decimal.NewFromInt(-100000)))
	})
}

func TestProjectLumpSum_LongHorizonSeriesIsBounded(t *testing.T) {
	years := 2000000
	result := ProjectLumpSum(decimal.NewFromInt(100000), decimal.NewFromInt(8), years)

	require.Len(t, result.Series, MaxSeriesYears+1)
	assert.Equal(t, MaxSeriesYears, result.Series[MaxSeriesYears-1].Year)
	assert.Equal(t, years, result.Series[MaxSeriesYears].Year)
	assert.True(t, result.Series[MaxSeriesYears].Value.Equal(result.FutureValue))
	assert.True(t, result.FutureValue.IsPositive())
}

func TestProjectPeriodicContribution_LongHorizonSeriesIsBounded(t *testing.T) {
	months := 1000000
	result := ProjectPeriodicContribution(decimal.NewFromInt(1000), decimal.NewFromInt(8), months, decimal.Zero)

	require.Len(t, result.Series, MaxSeriesYears+1)
	assert.Equal(t, MaxSeriesYears, result.Series[MaxSeriesYears-1].Year)
	assert.Equal(t, yearOf(months), result.Series[MaxSeriesYears].Year)
	assert.True(t, result.InvestedAmount.Equal(decimal.NewFromInt(1000000000)))
}

func TestProjectPeriodicContribution_NegativeReturn(t *testing.T) {
	result := ProjectPeriodicContribution(decimal.NewFromInt(10000), decimal.NewFromInt(-6), 60, decimal.Zero)

	assert.True(t, result.FutureValue.IsPositive())
	assert.True(t, result.FutureValue.LessThan(result.InvestedAmount))
	assert.True(t, result.EstimatedReturns.IsNegative())

	// solving with the same negative return recovers the contribution
	monthly := SolveRequiredContribution(result.FutureValue, decimal.NewFromInt(-6), 60)
	assertDecimalNear(t, 10000, monthly, 1e-6)
}

func TestProjectPeriodicContribution_SIP(t *testing.T) {
	result := ProjectPeriodicContribution(decimal.NewFromInt(10000), decimal.NewFromInt(12), 120, decimal.Zero)

	assertDecimalNear(t, 2323390.76, result.FutureValue, 0.01)
	assert.True(t, result.InvestedAmount.Equal(decimal.NewFromInt(1200000)))
	assert.True(t, result.EstimatedReturns.Equal(result.FutureValue.Sub(result.InvestedAmount)))

	require.Len(t, result.Series, 10)
	assert.Equal(t, 10, result.Series[9].Year)
	assert.True(t, result.Series[9].Value.Equal(result.FutureValue))
	assert.True(t, result.Series[0].Invested.Equal(decimal.NewFromInt(120000)))
}

func TestProjectPeriodicContribution_PartialFinalYear(t *testing.T) {
	result := ProjectPeriodicContribution(decimal.NewFromInt(1000), decimal.NewFromInt(10), 30, decimal.Zero)

	require.Len(t, result.Series, 3)
	assert.Equal(t, 3, result.Series[2].Year)
	assert.True(t, result.Series[2].Invested.Equal(decimal.NewFromInt(30000)))
}

func TestProjectPeriodicContribution_ZeroRate(t *testing.T) {
	result := ProjectPeriodicContribution(decimal.NewFromInt(2500), decimal.Zero, 48, decimal.Zero)
	assert.True(t, result.FutureValue.Equal(decimal.NewFromInt(120000)))
	assert.True(t, result.EstimatedReturns.IsZero())
}

func TestProjectPeriodicContribution_InvalidInput(t *testing.T) {
	assert.True(t, ProjectPeriodicContribution(decimal.Zero, decimal.NewFromInt(12), 120, decimal.Zero).FutureValue.IsZero())
	assert.True(t, ProjectPeriodicContribution(decimal.NewFromInt(100), decimal.NewFromInt(12), 0, decimal.Zero).FutureValue.IsZero())
	assert.True(t, ProjectPeriodicContribution(decimal.NewFromInt(-100), decimal.NewFromInt(12), 12, decimal.NewFromInt(10)).FutureValue.IsZero())
}

func TestProjectPeriodicContribution_StepUp(t *testing.T) {
	result := ProjectPeriodicContribution(decimal.NewFromInt(10000), decimal.NewFromInt(12), 120, decimal.NewFromInt(10))

	assertDecimalNear(t, 3374326.26, result.FutureValue, 0.01)
	assertDecimalNear(t, 1912490.95, result.InvestedAmount, 0.01)

	require.Len(t, result.Series, 10)
	assert.True(t, result.Series[0].Invested.Equal(decimal.NewFromInt(120000)))
	assert.True(t, result.Series[1].Invested.Equal(decimal.NewFromInt(252000)))

	flat := ProjectPeriodicContribution(decimal.NewFromInt(10000), decimal.NewFromInt(12), 120, decimal.Zero)
	assert.True(t, result.FutureValue.GreaterThan(flat.FutureValue))
}

func TestProjectPeriodicContribution_NegativeStepUpIgnored(t *testing.T) {
	stepped := ProjectPeriodicContribution(decimal.NewFromInt(5000), decimal.NewFromInt(8), 60, decimal.NewFromInt(-5))
	flat := ProjectPeriodicContribution(decimal.NewFromInt(5000), decimal.NewFromInt(8), 60, decimal.Zero)
	assert.True(t, stepped.FutureValue.Equal(flat.FutureValue))
}

// The month-by-month loop with no step-up must agree with the closed form.
func TestSimulatedContributionsMatchClosedForm(t *testing.T) {
	rates := []float64{-4, 0, 1, 6.5, 12, 18}
	terms := []int{1, 12, 60, 120, 240, 360, 480}
	contribution := decimal.NewFromInt(7500)

	for _, rate := range rates {
		for _, n := range terms {
			t.Run(fmt.Sprintf("rate_%v_n_%d", rate, n), func(t *testing.T) {
				r := signedMonthlyRate(decimal.NewFromFloat(rate))
				simulated := simulateContributions(contribution, r, n, decimal.Zero)
				closed := ProjectPeriodicContribution(contribution, decimal.NewFromFloat(rate), n, decimal.Zero)

				rel := simulated.FutureValue.Sub(closed.FutureValue).Abs().Div(closed.FutureValue)
				assert.True(t, rel.LessThan(decimal.NewFromFloat(1e-6)), "relative error %s", rel)
				assert.True(t, simulated.InvestedAmount.Equal(closed.InvestedAmount))
			})
		}
	}
}

func TestSolveRequiredContribution(t *testing.T) {
	t.Run("inverts the SIP projection", func(t *testing.T) {
		fv := ProjectPeriodicContribution(decimal.NewFromInt(10000), decimal.NewFromInt(12), 120, decimal.Zero).FutureValue
		monthly := SolveRequiredContribution(fv, decimal.NewFromInt(12), 120)
		assertDecimalNear(t, 10000, monthly, 1e-6)
	})

	t.Run("zero rate divides evenly", func(t *testing.T) {
		monthly := SolveRequiredContribution(decimal.NewFromInt(120000), decimal.Zero, 24)
		assert.True(t, monthly.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.True(t, SolveRequiredContribution(decimal.NewFromInt(1000), decimal.NewFromInt(8), 0).IsZero())
		assert.True(t, SolveRequiredContribution(decimal.NewFromInt(1000), decimal.NewFromInt(8), -12).IsZero())
		assert.True(t, SolveRequiredContribution(decimal.Zero, decimal.NewFromInt(8), 12).IsZero())
		assert.True(t, SolveRequiredContribution(decimal.NewFromInt(-50), decimal.NewFromInt(8), 12).IsZero())
	})
}

func TestPlanGoal(t *testing.T) {
	plan := domain.GoalPlan{
		CurrentCost:       decimal.NewFromInt(1000000),
		InflationPercent:  decimal.NewFromInt(6),
		Years:             10,
		AnnualRatePercent: decimal.NewFromInt(12),
		ExistingSavings:   decimal.NewFromInt(100000),
	}

	result := PlanGoal(plan)

	assertDecimalNear(t, 1790847.70, result.FutureCost, 0.01)
	assertDecimalNear(t, 310584.82, result.FutureValueOfSavings, 0.01)
	assertDecimalNear(t, 1480262.88, result.Shortfall, 0.01)
	assertDecimalNear(t, 6371.13, result.RequiredMonthlyContribution, 0.01)
}

func TestPlanGoal_SavingsCoverGoal(t *testing.T) {
	plan := domain.GoalPlan{
		CurrentCost:       decimal.NewFromInt(100000),
		InflationPercent:  decimal.NewFromInt(5),
		Years:             5,
		AnnualRatePercent: decimal.NewFromInt(10),
		ExistingSavings:   decimal.NewFromInt(100000),
	}

	result := PlanGoal(plan)
	assert.True(t, result.Shortfall.IsZero())
	assert.True(t, result.RequiredMonthlyContribution.IsZero())
}

func TestPlanGoal_NoTimeLeft(t *testing.T) {
	plan := domain.GoalPlan{
		CurrentCost:       decimal.NewFromInt(50000),
		InflationPercent:  decimal.NewFromInt(5),
		Years:             0,
		AnnualRatePercent: decimal.NewFromInt(10),
	}

	result := PlanGoal(plan)
	assert.True(t, result.FutureCost.Equal(decimal.NewFromInt(50000)))
	assert.True(t, result.Shortfall.Equal(decimal.NewFromInt(50000)))
	assert.True(t, result.RequiredMonthlyContribution.IsZero())
}

func TestPlanGoal_Deflation(t *testing.T) {
	plan := domain.GoalPlan{
		CurrentCost:       decimal.NewFromInt(1000000),
		InflationPercent:  decimal.NewFromInt(-2),
		Years:             10,
		AnnualRatePercent: decimal.NewFromInt(12),
	}

	result := PlanGoal(plan)
	assertDecimalNear(t, 1000000*math.Pow(0.98, 10), result.FutureCost, 0.01)
	assert.True(t, result.FutureCost.LessThan(plan.CurrentCost))
	assert.True(t, result.Shortfall.Equal(result.FutureCost))
}
