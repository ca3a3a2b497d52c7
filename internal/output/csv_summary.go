package output

import (
	"bytes"
	"encoding/csv"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVSummarizer writes the headline figures in long form, one metric per row,
// so sections with different shapes share one header.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Name", "Metric", "Value"}); err != nil {
		return nil, err
	}

	var rows [][]string
	add := func(section, name, metric string, value decimal.Decimal) {
		rows = append(rows, []string{section, name, metric, FormatAmount(value)})
	}
	addInt := func(section, name, metric string, value int) {
		rows = append(rows, []string{section, name, metric, intToString(value)})
	}

	for _, loan := range report.Loans {
		add("loan", loan.Name, "monthly_payment", loan.EMI.MonthlyPayment)
		add("loan", loan.Name, "total_interest", loan.EMI.TotalInterest)
		add("loan", loan.Name, "total_payment", loan.EMI.TotalPayment)
		if p := loan.Prepayment; p != nil {
			add("loan", loan.Name, "prepayment_new_total_interest", p.NewTotalInterest)
			add("loan", loan.Name, "prepayment_interest_saved", p.InterestSaved)
			addInt("loan", loan.Name, "prepayment_remaining_months", p.RemainingTermMonths)
		}
		if m := loan.Moratorium; m != nil {
			add("loan", loan.Name, "moratorium_monthly_payment", m.MonthlyPayment)
			add("loan", loan.Name, "moratorium_total_interest", m.TotalInterest)
		}
	}

	for _, inv := range report.Investments {
		add("investment", inv.Name, "invested_amount", inv.Result.InvestedAmount)
		add("investment", inv.Name, "estimated_returns", inv.Result.EstimatedReturns)
		add("investment", inv.Name, "future_value", inv.Result.FutureValue)
	}

	for _, goal := range report.Goals {
		add("goal", goal.Name, "future_cost", goal.Result.FutureCost)
		add("goal", goal.Name, "future_value_of_savings", goal.Result.FutureValueOfSavings)
		add("goal", goal.Name, "shortfall", goal.Result.Shortfall)
		add("goal", goal.Name, "required_monthly_contribution", goal.Result.RequiredMonthlyContribution)
	}

	for _, plan := range report.DebtPlans {
		results := []domain.PayoffResult{}
		if plan.Comparison != nil {
			results = append(results, plan.Comparison.Avalanche, plan.Comparison.Snowball)
		}
		if plan.Result != nil {
			results = append(results, *plan.Result)
		}
		for _, r := range results {
			prefix := r.Strategy.String() + "_"
			addInt("debt_plan", plan.Name, prefix+"months", r.MonthsToZero)
			add("debt_plan", plan.Name, prefix+"total_interest", r.TotalInterestPaid)
			add("debt_plan", plan.Name, prefix+"total_paid", r.TotalAmountPaid)
		}
		if plan.Comparison != nil {
			add("debt_plan", plan.Name, "interest_saved", plan.Comparison.InterestSaved)
		}
	}

	if r := report.Retirement; r != nil {
		add("retirement", "", "monthly_expense_at_retirement", r.Result.MonthlyExpenseAtRetirement)
		add("retirement", "", "required_corpus", r.Result.RequiredCorpus)
		add("retirement", "", "future_value_of_existing_corpus", r.Result.FutureValueOfExistingCorpus)
		add("retirement", "", "corpus_shortfall", r.Result.CorpusShortfall)
		add("retirement", "", "required_monthly_contribution", r.Result.RequiredMonthlyContribution)
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
