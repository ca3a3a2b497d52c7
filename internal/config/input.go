package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/dhanam/fincalc/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// maxHorizonYears bounds investment and goal horizons.
const maxHorizonYears = domain.MaxHorizonMonths / 12

// maxLifeExpectancy bounds retirement ages.
const maxLifeExpectancy = 120

// InputParser handles parsing of calculation request files
type InputParser struct {
	now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{now: time.Now}
}

// LoadFromFile loads a request file. JSON is accepted too since it is valid YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// Parse decodes and validates request file contents
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks ranges and names before anything is calculated.
// The calculators tolerate bad input; this is where the user hears about it.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.IsEmpty() {
		return fmt.Errorf("no calculation requests provided")
	}

	for i, loan := range config.Loans {
		if err := ip.validateLoan(&loan); err != nil {
			return fmt.Errorf("loan %d (%s) validation failed: %w", i, loan.Name, err)
		}
	}

	for i, inv := range config.Investments {
		if err := ip.validateInvestment(&inv); err != nil {
			return fmt.Errorf("investment %d (%s) validation failed: %w", i, inv.Name, err)
		}
	}

	for i, goal := range config.Goals {
		if err := ip.validateGoal(&goal); err != nil {
			return fmt.Errorf("goal %d (%s) validation failed: %w", i, goal.Name, err)
		}
	}

	for i, plan := range config.DebtPlans {
		if err := ip.validateDebtPlan(&plan); err != nil {
			return fmt.Errorf("debt plan %d (%s) validation failed: %w", i, plan.Name, err)
		}
	}

	if config.Retirement != nil {
		if err := ip.validateRetirement(config.Retirement); err != nil {
			return fmt.Errorf("retirement validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateLoan(loan *domain.LoanRequest) error {
	if loan.Name == "" {
		return fmt.Errorf("loan name is required")
	}
	if !loan.Principal.IsPositive() {
		return fmt.Errorf("principal must be positive")
	}
	if loan.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("annual rate percent cannot be negative")
	}
	if loan.TermMonths <= 0 {
		return fmt.Errorf("term months must be positive")
	}
	if loan.Prepayment != nil && loan.Prepayment.IsNegative() {
		return fmt.Errorf("prepayment cannot be negative")
	}
	if loan.MoratoriumMonths != nil && *loan.MoratoriumMonths < 0 {
		return fmt.Errorf("moratorium months cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateInvestment(inv *domain.InvestmentRequest) error {
	if inv.Name == "" {
		return fmt.Errorf("investment name is required")
	}
	kind, err := inv.ResolvedKind()
	if err != nil {
		return err
	}
	if inv.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("annual rate percent cannot be negative")
	}

	switch kind {
	case domain.InvestmentSIP:
		if !inv.MonthlyContribution.IsPositive() {
			return fmt.Errorf("monthly contribution must be positive for a SIP")
		}
		if inv.ContributionMonths() <= 0 {
			return fmt.Errorf("term months or years must be positive for a SIP")
		}
		if inv.ContributionMonths() > domain.MaxHorizonMonths {
			return fmt.Errorf("term cannot exceed %d months for a SIP", domain.MaxHorizonMonths)
		}
		if inv.AnnualStepUpPercent != nil && inv.AnnualStepUpPercent.IsNegative() {
			return fmt.Errorf("annual step-up percent cannot be negative")
		}
	case domain.InvestmentLumpSum:
		if !inv.Principal.IsPositive() {
			return fmt.Errorf("principal must be positive for a lump sum")
		}
		if inv.LumpSumYears() <= 0 {
			return fmt.Errorf("years must be positive for a lump sum")
		}
		if inv.LumpSumYears() > maxHorizonYears {
			return fmt.Errorf("years cannot exceed %d for a lump sum", maxHorizonYears)
		}
	}
	return nil
}

func (ip *InputParser) validateGoal(goal *domain.GoalRequest) error {
	if goal.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if !goal.CurrentCost.IsPositive() {
		return fmt.Errorf("current cost must be positive")
	}
	if goal.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	if goal.Years > maxHorizonYears {
		return fmt.Errorf("years cannot exceed %d", maxHorizonYears)
	}
	if goal.InflationPercent.IsNegative() {
		return fmt.Errorf("inflation percent cannot be negative")
	}
	if goal.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("annual rate percent cannot be negative")
	}
	if goal.ExistingSavings.IsNegative() {
		return fmt.Errorf("existing savings cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateDebtPlan(plan *domain.DebtPlanRequest) error {
	if plan.Name == "" {
		return fmt.Errorf("debt plan name is required")
	}
	if len(plan.Debts) == 0 {
		return fmt.Errorf("at least one debt is required")
	}
	if plan.ExtraMonthlyPayment.IsNegative() {
		return fmt.Errorf("extra monthly payment cannot be negative")
	}

	strategy := strings.ToLower(strings.TrimSpace(plan.Strategy))
	if strategy != "" && strategy != domain.StrategyCompare {
		if _, err := domain.ParsePayoffStrategy(strategy); err != nil {
			return fmt.Errorf("strategy must be 'avalanche', 'snowball' or 'compare': %w", err)
		}
	}

	for i, d := range plan.Debts {
		if d.Name == "" {
			return fmt.Errorf("debt %d: name is required", i)
		}
		if d.Balance.IsNegative() {
			return fmt.Errorf("debt %s: balance cannot be negative", d.Name)
		}
		if d.AnnualRatePercent.IsNegative() {
			return fmt.Errorf("debt %s: annual rate percent cannot be negative", d.Name)
		}
		if d.MinPayment.IsNegative() {
			return fmt.Errorf("debt %s: minimum payment cannot be negative", d.Name)
		}
	}
	return nil
}

func (ip *InputParser) validateRetirement(req *domain.RetirementRequest) error {
	currentAge := req.CurrentAge
	if req.BirthDate != nil {
		now := ip.now()
		if req.BirthDate.After(now) {
			return fmt.Errorf("birth date cannot be in the future")
		}
		currentAge = dateutil.Age(*req.BirthDate, now)
	}

	if currentAge <= 0 {
		return fmt.Errorf("current age must be positive (or provide birth_date)")
	}
	if req.RetirementAge <= currentAge {
		return fmt.Errorf("retirement age (%d) must be greater than current age (%d)", req.RetirementAge, currentAge)
	}
	if req.LifeExpectancy <= req.RetirementAge {
		return fmt.Errorf("life expectancy (%d) must be greater than retirement age (%d)", req.LifeExpectancy, req.RetirementAge)
	}
	if req.LifeExpectancy > maxLifeExpectancy {
		return fmt.Errorf("life expectancy cannot exceed %d", maxLifeExpectancy)
	}
	if req.MonthlyExpense.IsNegative() {
		return fmt.Errorf("monthly expense cannot be negative")
	}
	if req.ExistingCorpus.IsNegative() {
		return fmt.Errorf("existing corpus cannot be negative")
	}

	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"pre-retirement inflation", req.PreRetirementInflationPercent},
		{"post-retirement inflation", req.PostRetirementInflationPercent},
		{"pre-retirement return", req.PreRetirementReturnPercent},
		{"post-retirement return", req.PostRetirementReturnPercent},
	}
	for _, rate := range rates {
		if rate.value.IsNegative() {
			return fmt.Errorf("%s percent cannot be negative", rate.name)
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example request file covering every
// calculator
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	prepayment := decimal.NewFromInt(500000)
	moratorium := 6
	stepUp := decimal.NewFromInt(10)

	return &domain.Configuration{
		Name: "Household plan",
		Loans: []domain.LoanRequest{
			{
				Name: "Home loan",
				LoanTerms: domain.LoanTerms{
					Principal:         decimal.NewFromInt(2500000),
					AnnualRatePercent: decimal.NewFromFloat(8.5),
					TermMonths:        240,
				},
				Prepayment: &prepayment,
			},
			{
				Name: "Education loan",
				LoanTerms: domain.LoanTerms{
					Principal:         decimal.NewFromInt(800000),
					AnnualRatePercent: decimal.NewFromInt(10),
					TermMonths:        84,
				},
				MoratoriumMonths: &moratorium,
			},
		},
		Investments: []domain.InvestmentRequest{
			{
				Name:  "Fixed deposit",
				Kind:  domain.InvestmentLumpSum,
				Years: 10,
				GrowthPlan: domain.GrowthPlan{
					Principal:         decimal.NewFromInt(100000),
					AnnualRatePercent: decimal.NewFromInt(7),
				},
			},
			{
				Name: "Index fund SIP",
				Kind: domain.InvestmentSIP,
				GrowthPlan: domain.GrowthPlan{
					MonthlyContribution: decimal.NewFromInt(10000),
					AnnualRatePercent:   decimal.NewFromInt(12),
					TermMonths:          180,
					AnnualStepUpPercent: &stepUp,
				},
			},
		},
		Goals: []domain.GoalRequest{
			{
				Name: "Child's education",
				GoalPlan: domain.GoalPlan{
					CurrentCost:       decimal.NewFromInt(1500000),
					InflationPercent:  decimal.NewFromInt(8),
					Years:             12,
					AnnualRatePercent: decimal.NewFromInt(11),
					ExistingSavings:   decimal.NewFromInt(200000),
				},
			},
		},
		DebtPlans: []domain.DebtPlanRequest{
			{
				Name:                "Consumer debt",
				ExtraMonthlyPayment: decimal.NewFromInt(10000),
				Strategy:            domain.StrategyCompare,
				Debts: []domain.Debt{
					{Name: "Credit card", Balance: decimal.NewFromInt(100000), AnnualRatePercent: decimal.NewFromInt(36), MinPayment: decimal.NewFromInt(5000)},
					{Name: "Car loan", Balance: decimal.NewFromInt(300000), AnnualRatePercent: decimal.NewFromInt(14), MinPayment: decimal.NewFromInt(8000)},
				},
			},
		},
		Retirement: &domain.RetirementRequest{
			RetirementProfile: domain.RetirementProfile{
				CurrentAge:                     30,
				RetirementAge:                  60,
				LifeExpectancy:                 85,
				MonthlyExpense:                 decimal.NewFromInt(50000),
				PreRetirementInflationPercent:  decimal.NewFromInt(6),
				PostRetirementInflationPercent: decimal.NewFromInt(5),
				PreRetirementReturnPercent:     decimal.NewFromInt(12),
				PostRetirementReturnPercent:    decimal.NewFromInt(7),
				ExistingCorpus:                 decimal.NewFromInt(500000),
			},
		},
	}
}
