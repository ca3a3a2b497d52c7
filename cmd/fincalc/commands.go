package main

import (
	"fmt"
	"time"

	"github.com/dhanam/fincalc/internal/config"
	"github.com/dhanam/fincalc/internal/domain"
	"github.com/dhanam/fincalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// calculate validates cfg, runs it and writes the report to stdout, or to a
// timestamped file when outDir is set.
func (a *app) calculate(cmd *cobra.Command, cfg *domain.Configuration, outDir string) error {
	formatter, err := output.ResolveFormatter(a.settings.Output.Format)
	if err != nil {
		return err
	}
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	report, err := a.engine.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if outDir != "" {
		path, err := output.WriteFormatted(formatter, report, outDir)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		a.logger.Info("report written", zap.String("path", path), zap.String("format", formatter.Name()))
		return nil
	}
	return output.WriteReport(cmd.OutOrStdout(), report, formatter.Name())
}

func newRunCommand(a *app) *cobra.Command {
	var input, outDir string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every calculation in a request file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(input)
			if err != nil {
				return err
			}
			a.logger.Debug("request file loaded", zap.String("path", input), zap.String("name", cfg.Name))
			return a.calculate(cmd, cfg, outDir)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "request file (YAML or JSON)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for a timestamped report file (default stdout)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newExampleCommand(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example request file covering every calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			if path == "" {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(example); err != nil {
					return err
				}
				return enc.Close()
			}
			if err := output.SaveConfiguration(example, path); err != nil {
				return fmt.Errorf("failed to write example: %w", err)
			}
			a.logger.Info("example request file written", zap.String("path", path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "out", "o", "", "file to write (default stdout)")
	return cmd
}

func newEMICommand(a *app) *cobra.Command {
	req := domain.LoanRequest{Name: "Loan"}
	var prepayment decimal.Decimal
	var moratorium int

	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Monthly installment, with optional prepayment and moratorium analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("prepay") {
				req.Prepayment = &prepayment
			}
			if cmd.Flags().Changed("moratorium") {
				req.MoratoriumMonths = &moratorium
			}
			return a.calculate(cmd, &domain.Configuration{Loans: []domain.LoanRequest{req}}, "")
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", req.Name, "label for the report")
	f.Var(newDecimalValue(&req.Principal), "principal", "loan amount")
	f.Var(newDecimalValue(&req.AnnualRatePercent), "rate", "annual interest rate in percent")
	f.IntVar(&req.TermMonths, "months", 0, "tenure in months")
	f.Var(newDecimalValue(&prepayment), "prepay", "lump-sum prepayment made now")
	f.IntVar(&moratorium, "moratorium", 0, "months of moratorium before repayment starts")
	f.BoolVar(&req.IncludeSchedule, "schedule", false, "include the month-by-month schedule")
	for _, name := range []string{"principal", "rate", "months"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSIPCommand(a *app) *cobra.Command {
	req := domain.InvestmentRequest{Name: "SIP", Kind: domain.InvestmentSIP}
	var stepUp decimal.Decimal

	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Future value of a monthly investment, with optional annual step-up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("step-up") {
				req.AnnualStepUpPercent = &stepUp
			}
			return a.calculate(cmd, &domain.Configuration{Investments: []domain.InvestmentRequest{req}}, "")
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", req.Name, "label for the report")
	f.Var(newDecimalValue(&req.MonthlyContribution), "monthly", "monthly contribution")
	f.Var(newDecimalValue(&req.AnnualRatePercent), "rate", "expected annual return in percent")
	f.IntVar(&req.TermMonths, "months", 0, "number of monthly contributions")
	f.IntVar(&req.Years, "years", 0, "horizon in years when --months is not set")
	f.Var(newDecimalValue(&stepUp), "step-up", "annual increase of the contribution in percent")
	_ = cmd.MarkFlagRequired("monthly")
	_ = cmd.MarkFlagRequired("rate")
	cmd.MarkFlagsOneRequired("months", "years")
	return cmd
}

func newLumpSumCommand(a *app) *cobra.Command {
	req := domain.InvestmentRequest{Name: "Lump sum", Kind: domain.InvestmentLumpSum}

	cmd := &cobra.Command{
		Use:   "lumpsum",
		Short: "Future value of a one-time investment compounded annually",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.calculate(cmd, &domain.Configuration{Investments: []domain.InvestmentRequest{req}}, "")
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", req.Name, "label for the report")
	f.Var(newDecimalValue(&req.Principal), "principal", "amount invested")
	f.Var(newDecimalValue(&req.AnnualRatePercent), "rate", "expected annual return in percent")
	f.IntVar(&req.Years, "years", 0, "years invested")
	for _, name := range []string{"principal", "rate", "years"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newGoalCommand(a *app) *cobra.Command {
	req := domain.GoalRequest{Name: "Goal"}

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Monthly saving needed to fund an inflating goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.calculate(cmd, &domain.Configuration{Goals: []domain.GoalRequest{req}}, "")
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", req.Name, "label for the report")
	f.Var(newDecimalValue(&req.CurrentCost), "cost", "cost of the goal today")
	f.Var(newDecimalValue(&req.InflationPercent), "inflation", "annual inflation of the cost in percent")
	f.IntVar(&req.Years, "years", 0, "years until the goal")
	f.Var(newDecimalValue(&req.AnnualRatePercent), "rate", "expected annual return in percent")
	f.Var(newDecimalValue(&req.ExistingSavings), "savings", "amount already saved for the goal")
	for _, name := range []string{"cost", "years", "rate"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newPayoffCommand(a *app) *cobra.Command {
	req := domain.DebtPlanRequest{Name: "Debts", Strategy: domain.StrategyCompare}
	var specs []string

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Simulate avalanche or snowball debt payoff, or compare both",
		Example: `  fincalc payoff --debt "card:100000:36:5000" --debt "car:300000:14:8000" --extra 10000
  fincalc payoff --debt "card:100000:36:5000" --extra 5000 --strategy snowball`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Debts = req.Debts[:0]
			for _, arg := range specs {
				d, err := parseDebt(arg)
				if err != nil {
					return err
				}
				req.Debts = append(req.Debts, d)
			}
			return a.calculate(cmd, &domain.Configuration{DebtPlans: []domain.DebtPlanRequest{req}}, "")
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", req.Name, "label for the report")
	f.StringArrayVar(&specs, "debt", nil, "debt as name:balance:rate:min (repeatable)")
	f.Var(newDecimalValue(&req.ExtraMonthlyPayment), "extra", "monthly budget on top of the minimums")
	f.StringVar(&req.Strategy, "strategy", req.Strategy, "avalanche, snowball or compare")
	_ = cmd.MarkFlagRequired("debt")
	return cmd
}

func newRetireCommand(a *app) *cobra.Command {
	req := domain.RetirementRequest{RetirementProfile: domain.RetirementProfile{
		RetirementAge:                  60,
		LifeExpectancy:                 85,
		PreRetirementInflationPercent:  decimal.NewFromInt(6),
		PostRetirementInflationPercent: decimal.NewFromInt(5),
		PreRetirementReturnPercent:     decimal.NewFromInt(12),
		PostRetirementReturnPercent:    decimal.NewFromInt(7),
	}}
	var birthDate string

	cmd := &cobra.Command{
		Use:   "retire",
		Short: "Retirement corpus and the monthly saving needed to reach it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if birthDate != "" {
				born, err := time.Parse(time.DateOnly, birthDate)
				if err != nil {
					return fmt.Errorf("birth date must be YYYY-MM-DD: %w", err)
				}
				req.BirthDate = &born
			}
			return a.calculate(cmd, &domain.Configuration{Retirement: &req}, "")
		},
	}

	p := &req.RetirementProfile
	f := cmd.Flags()
	f.IntVar(&p.CurrentAge, "current-age", 0, "age today")
	f.StringVar(&birthDate, "birth-date", "", "birth date (YYYY-MM-DD), overrides --current-age")
	f.IntVar(&p.RetirementAge, "retirement-age", p.RetirementAge, "age at retirement")
	f.IntVar(&p.LifeExpectancy, "life-expectancy", p.LifeExpectancy, "age the corpus must last to")
	f.Var(newDecimalValue(&p.MonthlyExpense), "monthly-expense", "monthly expenses in today's money")
	f.Var(newDecimalValue(&p.PreRetirementInflationPercent), "pre-inflation", "inflation until retirement in percent")
	f.Var(newDecimalValue(&p.PostRetirementInflationPercent), "post-inflation", "inflation during retirement in percent")
	f.Var(newDecimalValue(&p.PreRetirementReturnPercent), "pre-return", "annual return until retirement in percent")
	f.Var(newDecimalValue(&p.PostRetirementReturnPercent), "post-return", "annual return during retirement in percent")
	f.Var(newDecimalValue(&p.ExistingCorpus), "existing-corpus", "retirement savings today")
	_ = cmd.MarkFlagRequired("monthly-expense")
	cmd.MarkFlagsOneRequired("current-age", "birth-date")
	return cmd
}
