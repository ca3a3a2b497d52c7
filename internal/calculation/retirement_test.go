package calculation

import (
	"math"
	"testing"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func salariedProfile() domain.RetirementProfile {
	return domain.RetirementProfile{
		CurrentAge:                     30,
		RetirementAge:                  60,
		LifeExpectancy:                 85,
		MonthlyExpense:                 decimal.NewFromInt(50000),
		PreRetirementInflationPercent:  decimal.NewFromInt(6),
		PostRetirementInflationPercent: decimal.NewFromInt(5),
		PreRetirementReturnPercent:     decimal.NewFromInt(12),
		PostRetirementReturnPercent:    decimal.NewFromInt(7),
		ExistingCorpus:                 decimal.NewFromInt(500000),
	}
}

func TestPlanRetirement_SalariedProfile(t *testing.T) {
	result := PlanRetirement(salariedProfile())

	assert.Equal(t, 30, result.YearsToRetire)
	assert.Equal(t, 25, result.YearsInRetirement)
	assertDecimalNear(t, 287174.56, result.MonthlyExpenseAtRetirement, 0.01)
	assertDecimalNear(t, 68038010.71, result.RequiredCorpus, 0.05)
	assertDecimalNear(t, 14979961.06, result.FutureValueOfExistingCorpus, 0.01)
	assertDecimalNear(t, 53058049.65, result.CorpusShortfall, 0.05)
	assertDecimalNear(t, 15030.98, result.RequiredMonthlyContribution, 0.01)
}

func TestPlanRetirement_Deterministic(t *testing.T) {
	first := PlanRetirement(salariedProfile())
	for i := 0; i < 5; i++ {
		again := PlanRetirement(salariedProfile())
		assert.True(t, first.RequiredCorpus.Equal(again.RequiredCorpus))
		assert.True(t, first.CorpusShortfall.Equal(again.CorpusShortfall))
		assert.True(t, first.RequiredMonthlyContribution.Equal(again.RequiredMonthlyContribution))
	}
}

func TestPlanRetirement_ZeroRealRate(t *testing.T) {
	profile := domain.RetirementProfile{
		CurrentAge:                     40,
		RetirementAge:                  60,
		LifeExpectancy:                 80,
		MonthlyExpense:                 decimal.NewFromInt(10000),
		PostRetirementInflationPercent: decimal.NewFromInt(5),
		PostRetirementReturnPercent:    decimal.NewFromInt(5),
		PreRetirementReturnPercent:     decimal.NewFromInt(10),
	}

	result := PlanRetirement(profile)
	assert.True(t, result.RequiredCorpus.Equal(decimal.NewFromInt(2400000)), "corpus %s", result.RequiredCorpus)
	assert.True(t, result.CorpusShortfall.Equal(result.RequiredCorpus))
	assert.True(t, result.RequiredMonthlyContribution.IsPositive())
}

func TestPlanRetirement_NegativeRealRate(t *testing.T) {
	profile := salariedProfile()
	profile.PostRetirementReturnPercent = decimal.NewFromInt(3)
	profile.PostRetirementInflationPercent = decimal.NewFromInt(6)

	result := PlanRetirement(profile)
	annual := result.MonthlyExpenseAtRetirement.Mul(decimal.NewFromInt(12))
	undiscounted := annual.Mul(decimal.NewFromInt(int64(result.YearsInRetirement)))

	// inflation outpaces returns, so the corpus must exceed the raw expense total
	assert.True(t, result.RequiredCorpus.GreaterThan(undiscounted))
}

func TestPlanRetirement_InvalidAges(t *testing.T) {
	t.Run("already retired", func(t *testing.T) {
		profile := salariedProfile()
		profile.CurrentAge = 65

		result := PlanRetirement(profile)
		assert.Equal(t, 0, result.YearsToRetire)
		assert.True(t, result.MonthlyExpenseAtRetirement.Equal(profile.MonthlyExpense))
		assert.True(t, result.RequiredMonthlyContribution.IsZero())
		assert.False(t, result.CorpusShortfall.IsNegative())
	})

	t.Run("life expectancy before retirement", func(t *testing.T) {
		profile := salariedProfile()
		profile.LifeExpectancy = 55

		result := PlanRetirement(profile)
		assert.Equal(t, 0, result.YearsInRetirement)
		assert.True(t, result.RequiredCorpus.IsZero())
		assert.True(t, result.CorpusShortfall.IsZero())
		assert.True(t, result.RequiredMonthlyContribution.IsZero())
	})
}

func TestPlanRetirement_ExistingCorpusCoversNeed(t *testing.T) {
	profile := salariedProfile()
	profile.ExistingCorpus = decimal.NewFromInt(10000000)

	result := PlanRetirement(profile)
	assert.True(t, result.CorpusShortfall.IsZero())
	assert.True(t, result.RequiredMonthlyContribution.IsZero())
}

func TestPlanRetirement_ShortfallMonotonicity(t *testing.T) {
	t.Run("non-decreasing in monthly expense", func(t *testing.T) {
		profile := salariedProfile()
		previous := decimal.NewFromInt(-1)
		for expense := int64(0); expense <= 200000; expense += 12500 {
			profile.MonthlyExpense = decimal.NewFromInt(expense)
			shortfall := PlanRetirement(profile).CorpusShortfall
			assert.True(t, shortfall.GreaterThanOrEqual(previous), "expense %d", expense)
			previous = shortfall
		}
	})

	t.Run("non-increasing in existing corpus", func(t *testing.T) {
		profile := salariedProfile()
		var previous *decimal.Decimal
		for corpus := int64(0); corpus <= 10000000; corpus += 500000 {
			profile.ExistingCorpus = decimal.NewFromInt(corpus)
			shortfall := PlanRetirement(profile).CorpusShortfall
			if previous != nil {
				assert.True(t, shortfall.LessThanOrEqual(*previous), "corpus %d", corpus)
			}
			previous = &shortfall
		}
	})
}

func TestPlanRetirement_Deflation(t *testing.T) {
	profile := salariedProfile()
	profile.PreRetirementInflationPercent = decimal.NewFromInt(-1)

	result := PlanRetirement(profile)
	assertDecimalNear(t, 50000*math.Pow(0.99, 30), result.MonthlyExpenseAtRetirement, 0.01)
	assert.True(t, result.MonthlyExpenseAtRetirement.LessThan(profile.MonthlyExpense))
}

func TestPlanRetirement_NegativePreRetirementReturn(t *testing.T) {
	profile := salariedProfile()
	profile.PreRetirementReturnPercent = decimal.NewFromInt(-2)

	result := PlanRetirement(profile)
	assertDecimalNear(t, 500000*math.Pow(0.98, 30), result.FutureValueOfExistingCorpus, 0.01)
	assert.True(t, result.RequiredMonthlyContribution.IsPositive())

	// saving into a losing investment costs more each month than into a growing one
	growing := PlanRetirement(salariedProfile())
	assert.True(t, result.RequiredMonthlyContribution.GreaterThan(growing.RequiredMonthlyContribution))
}

func TestPlanRetirement_TotalDeflationAfterRetirement(t *testing.T) {
	profile := salariedProfile()
	profile.PostRetirementInflationPercent = decimal.NewFromInt(-100)

	result := PlanRetirement(profile)
	assert.True(t, result.RequiredCorpus.IsZero())
	assert.True(t, result.CorpusShortfall.IsZero())
	assert.True(t, result.RequiredMonthlyContribution.IsZero())
}
