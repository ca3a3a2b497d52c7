package calculation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/dhanam/fincalc/pkg/dateutil"
)

// CalculationEngine runs every request of a Configuration through the
// calculators and assembles a Report
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Run evaluates every request in config. The context is checked between
// requests; the calculators themselves never block.
func (ce *CalculationEngine) Run(ctx context.Context, config *domain.Configuration) (*domain.Report, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is nil")
	}

	now := nowFunc()
	report := &domain.Report{
		Name:        config.Name,
		GeneratedAt: now,
	}

	for _, req := range config.Loans {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("calculation cancelled: %w", err)
		}
		report.Loans = append(report.Loans, ce.RunLoan(req))
	}

	for _, req := range config.Investments {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("calculation cancelled: %w", err)
		}
		inv, err := ce.RunInvestment(req)
		if err != nil {
			return nil, fmt.Errorf("investment %q: %w", req.Name, err)
		}
		report.Investments = append(report.Investments, inv)
	}

	for _, req := range config.Goals {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("calculation cancelled: %w", err)
		}
		report.Goals = append(report.Goals, ce.RunGoal(req))
	}

	for _, req := range config.DebtPlans {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("calculation cancelled: %w", err)
		}
		plan, err := ce.RunDebtPlan(req, now)
		if err != nil {
			return nil, fmt.Errorf("debt plan %q: %w", req.Name, err)
		}
		report.DebtPlans = append(report.DebtPlans, plan)
	}

	if config.Retirement != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("calculation cancelled: %w", err)
		}
		retirement := ce.RunRetirement(*config.Retirement, now)
		report.Retirement = &retirement
	}

	ce.Logger.Infof("calculated %d loans, %d investments, %d goals, %d debt plans, retirement=%t",
		len(report.Loans), len(report.Investments), len(report.Goals), len(report.DebtPlans), report.Retirement != nil)

	return report, nil
}

// RunLoan computes the EMI and any requested prepayment, moratorium or schedule
func (ce *CalculationEngine) RunLoan(req domain.LoanRequest) domain.LoanReport {
	report := domain.LoanReport{
		Name:  req.Name,
		Terms: req.LoanTerms,
		EMI:   ComputeEMI(req.LoanTerms),
	}

	if ce.Debug {
		ce.Logger.Debugf("loan %q: principal=%s rate=%s%% months=%d emi=%s",
			req.Name, req.Principal.StringFixed(2), req.AnnualRatePercent.String(), req.TermMonths,
			report.EMI.MonthlyPayment.StringFixed(2))
	}

	if req.Prepayment != nil {
		prepayment := ComputePrepayment(req.LoanTerms, *req.Prepayment)
		if prepayment.Unpayable {
			ce.Logger.Warnf("loan %q: installment no longer covers interest after prepayment of %s",
				req.Name, req.Prepayment.StringFixed(2))
		}
		report.Prepayment = &prepayment
	}

	if req.MoratoriumMonths != nil {
		moratorium := ComputeMoratorium(req.LoanTerms, *req.MoratoriumMonths)
		report.Moratorium = &moratorium
	}

	if req.IncludeSchedule {
		report.Schedule = GenerateSchedule(req.LoanTerms)
	}

	return report
}

// RunInvestment projects a lump sum or SIP. An empty kind is inferred from
// which amount is set.
func (ce *CalculationEngine) RunInvestment(req domain.InvestmentRequest) (domain.InvestmentReport, error) {
	kind, err := req.ResolvedKind()
	if err != nil {
		return domain.InvestmentReport{}, err
	}

	report := domain.InvestmentReport{
		Name: req.Name,
		Kind: kind,
		Plan: req.GrowthPlan,
	}

	switch kind {
	case domain.InvestmentSIP:
		report.Plan.TermMonths = req.ContributionMonths()
		report.Result = ProjectPeriodicContribution(req.MonthlyContribution, req.AnnualRatePercent,
			report.Plan.TermMonths, req.StepUpPercent())
	default:
		years := req.LumpSumYears()
		report.Plan.TermMonths = years * 12
		report.Result = ProjectLumpSum(req.Principal, req.AnnualRatePercent, years)
	}

	if ce.Debug {
		ce.Logger.Debugf("investment %q (%s): invested=%s value=%s",
			req.Name, kind, report.Result.InvestedAmount.StringFixed(2), report.Result.FutureValue.StringFixed(2))
	}

	return report, nil
}

// RunGoal solves the monthly saving for a goal
func (ce *CalculationEngine) RunGoal(req domain.GoalRequest) domain.GoalReport {
	result := PlanGoal(req.GoalPlan)
	if ce.Debug {
		ce.Logger.Debugf("goal %q: future cost=%s shortfall=%s monthly=%s",
			req.Name, result.FutureCost.StringFixed(2), result.Shortfall.StringFixed(2),
			result.RequiredMonthlyContribution.StringFixed(2))
	}
	return domain.GoalReport{
		Name:   req.Name,
		Plan:   req.GoalPlan,
		Result: result,
	}
}

// RunDebtPlan simulates one strategy or compares both. The debt-free date is
// counted from asOf using the chosen (or recommended) strategy.
func (ce *CalculationEngine) RunDebtPlan(req domain.DebtPlanRequest, asOf time.Time) (domain.DebtPlanReport, error) {
	report := domain.DebtPlanReport{Name: req.Name}

	var chosen domain.PayoffResult
	name := strings.ToLower(strings.TrimSpace(req.Strategy))
	if name == "" || name == domain.StrategyCompare {
		comparison := ComparePayoffStrategies(req.Debts, req.ExtraMonthlyPayment)
		report.Strategy = domain.StrategyCompare
		report.Comparison = &comparison
		chosen = comparison.Avalanche
		if comparison.Recommended == domain.Snowball {
			chosen = comparison.Snowball
		}
	} else {
		strategy, err := domain.ParsePayoffStrategy(name)
		if err != nil {
			return domain.DebtPlanReport{}, err
		}
		result := SimulatePayoff(req.Debts, req.ExtraMonthlyPayment, strategy)
		report.Strategy = strategy.String()
		report.Result = &result
		chosen = result
	}

	if !chosen.Cleared() {
		ce.Logger.Warnf("debt plan %q: balances not cleared within %d months", req.Name, MaxPayoffMonths)
		return report, nil
	}

	debtFree := dateutil.AddMonths(asOf, chosen.MonthsToZero)
	report.DebtFreeDate = &debtFree

	if ce.Debug {
		ce.Logger.Debugf("debt plan %q (%s): %d months, interest=%s",
			req.Name, chosen.Strategy, chosen.MonthsToZero, chosen.TotalInterestPaid.StringFixed(2))
	}

	return report, nil
}

// RunRetirement resolves the profile (birth date overrides current age) and
// plans the corpus
func (ce *CalculationEngine) RunRetirement(req domain.RetirementRequest, asOf time.Time) domain.RetirementReport {
	profile := req.RetirementProfile
	if req.BirthDate != nil {
		profile.CurrentAge = dateutil.Age(*req.BirthDate, asOf)
	}

	result := PlanRetirement(profile)
	if ce.Debug {
		ce.Logger.Debugf("retirement: age %d -> %d, corpus=%s shortfall=%s monthly=%s",
			profile.CurrentAge, profile.RetirementAge, result.RequiredCorpus.StringFixed(2),
			result.CorpusShortfall.StringFixed(2), result.RequiredMonthlyContribution.StringFixed(2))
	}
	if result.CorpusShortfall.IsPositive() && result.YearsToRetire == 0 {
		ce.Logger.Warnf("retirement: shortfall of %s with no years left to save", result.CorpusShortfall.StringFixed(2))
	}

	return domain.RetirementReport{
		Profile:        profile,
		Result:         result,
		RetirementYear: dateutil.AddYears(asOf, result.YearsToRetire).Year(),
	}
}
