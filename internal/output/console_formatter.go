package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dhanam/fincalc/internal/domain"
)

// ConsoleFormatter renders the full plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

const rule = "================================================================"

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "PERSONAL FINANCE REPORT")
	if report.Name != "" {
		fmt.Fprintln(&buf, report.Name)
	}
	fmt.Fprintf(&buf, "Generated %s\n", report.GeneratedAt.Format("02 Jan 2006"))
	fmt.Fprintln(&buf, rule)

	if highlights := AnalyzeReport(report); len(highlights) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "HIGHLIGHTS:")
		for _, h := range highlights {
			fmt.Fprintf(&buf, "• %s: %s\n", h.Subject, h.Message)
		}
	}

	for _, loan := range report.Loans {
		writeLoan(&buf, loan)
	}
	for _, inv := range report.Investments {
		writeInvestment(&buf, inv)
	}
	for _, goal := range report.Goals {
		writeGoal(&buf, goal)
	}
	for _, plan := range report.DebtPlans {
		writeDebtPlan(&buf, plan)
	}
	if report.Retirement != nil {
		writeRetirement(&buf, report.Retirement)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func heading(w io.Writer, kind, name string) {
	title := strings.ToUpper(kind)
	if name != "" {
		title += ": " + name
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len([]rune(title))))
}

func line(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-30s %s\n", label+":", value)
}

func writeLoan(w io.Writer, loan domain.LoanReport) {
	heading(w, "Loan", loan.Name)
	line(w, "Principal", FormatCurrency(loan.Terms.Principal))
	line(w, "Annual rate", FormatPercentage(loan.Terms.AnnualRatePercent))
	line(w, "Term", FormatMonths(loan.Terms.TermMonths))
	line(w, "Monthly EMI", FormatCurrency(loan.EMI.MonthlyPayment))
	line(w, "Total interest", FormatCurrency(loan.EMI.TotalInterest))
	line(w, "Total payment", FormatCurrency(loan.EMI.TotalPayment))

	if p := loan.Prepayment; p != nil {
		fmt.Fprintln(w, "  After prepayment")
		switch {
		case p.LoanClosed:
			line(w, "  Status", "loan closed")
		case p.Unpayable:
			line(w, "  Status", "EMI does not cover interest")
		default:
			line(w, "  Remaining installments", intToString(p.RemainingTermMonths))
		}
		line(w, "  New total interest", FormatCurrency(p.NewTotalInterest))
		line(w, "  Interest saved", FormatCurrency(p.InterestSaved))
	}

	if m := loan.Moratorium; m != nil {
		fmt.Fprintln(w, "  With moratorium")
		line(w, "  Monthly EMI", FormatCurrency(m.MonthlyPayment))
		line(w, "  Total interest", FormatCurrency(m.TotalInterest))
	}

	if len(loan.Schedule) > 0 {
		fmt.Fprintln(w, "  Schedule")
		fmt.Fprintf(w, "  %6s %16s %16s %16s %18s\n", "Month", "Payment", "Principal", "Interest", "Balance")
		for _, e := range loan.Schedule {
			fmt.Fprintf(w, "  %6d %16s %16s %16s %18s\n", e.Month,
				FormatCurrency(e.Payment), FormatCurrency(e.Principal), FormatCurrency(e.Interest), FormatCurrency(e.RemainingBalance))
		}
	}
}

func writeInvestment(w io.Writer, inv domain.InvestmentReport) {
	heading(w, "Investment", inv.Name)
	switch inv.Kind {
	case domain.InvestmentSIP:
		line(w, "Monthly contribution", FormatCurrency(inv.Plan.MonthlyContribution))
		if step := inv.Plan.StepUpPercent(); step.IsPositive() {
			line(w, "Annual step-up", FormatPercentage(step))
		}
	default:
		line(w, "Lump sum", FormatCurrency(inv.Plan.Principal))
	}
	line(w, "Expected return", FormatPercentage(inv.Plan.AnnualRatePercent))
	line(w, "Horizon", FormatMonths(inv.Plan.TermMonths))
	line(w, "Invested", FormatCurrency(inv.Result.InvestedAmount))
	line(w, "Estimated returns", FormatCurrency(inv.Result.EstimatedReturns))
	line(w, "Future value", FormatCurrency(inv.Result.FutureValue))
}

func writeGoal(w io.Writer, goal domain.GoalReport) {
	heading(w, "Goal", goal.Name)
	line(w, "Cost today", FormatCurrency(goal.Plan.CurrentCost))
	line(w, "Cost in "+intToString(goal.Plan.Years)+" years", FormatCurrency(goal.Result.FutureCost))
	line(w, "Savings will grow to", FormatCurrency(goal.Result.FutureValueOfSavings))
	line(w, "Shortfall", FormatCurrency(goal.Result.Shortfall))
	line(w, "Required monthly SIP", FormatCurrency(goal.Result.RequiredMonthlyContribution))
}

func writeDebtPlan(w io.Writer, plan domain.DebtPlanReport) {
	heading(w, "Debt plan", plan.Name)
	if c := plan.Comparison; c != nil {
		fmt.Fprintf(w, "  %-12s %10s %20s %20s\n", "Strategy", "Months", "Interest", "Total paid")
		for _, r := range []domain.PayoffResult{c.Avalanche, c.Snowball} {
			fmt.Fprintf(w, "  %-12s %10s %20s %20s\n", r.Strategy, payoffMonths(r),
				FormatCurrency(r.TotalInterestPaid), FormatCurrency(r.TotalAmountPaid))
		}
		line(w, "Recommended", c.Recommended.String())
		line(w, "Interest saved", FormatCurrency(c.InterestSaved))
	}
	if r := plan.Result; r != nil {
		line(w, "Strategy", r.Strategy.String())
		line(w, "Months to debt-free", payoffMonths(*r))
		line(w, "Total interest", FormatCurrency(r.TotalInterestPaid))
		line(w, "Total paid", FormatCurrency(r.TotalAmountPaid))
		for _, d := range r.Debts {
			cleared := "not cleared"
			if d.PaidOffMonth > 0 {
				cleared = "month " + intToString(d.PaidOffMonth)
			}
			line(w, "  "+d.Name, fmt.Sprintf("%s, interest %s", cleared, FormatCurrency(d.InterestPaid)))
		}
	}
	if plan.DebtFreeDate != nil {
		line(w, "Debt-free by", plan.DebtFreeDate.Format("Jan 2006"))
	}
}

func payoffMonths(r domain.PayoffResult) string {
	if !r.Cleared() {
		return ">" + intToString(r.MonthsToZero)
	}
	return intToString(r.MonthsToZero)
}

func writeRetirement(w io.Writer, r *domain.RetirementReport) {
	heading(w, "Retirement", "")
	line(w, "Current age", intToString(r.Profile.CurrentAge))
	line(w, "Retirement age", fmt.Sprintf("%d (%d)", r.Profile.RetirementAge, r.RetirementYear))
	line(w, "Years in retirement", intToString(r.Result.YearsInRetirement))
	line(w, "Monthly expense at retirement", FormatCurrency(r.Result.MonthlyExpenseAtRetirement))
	line(w, "Required corpus", FormatCurrency(r.Result.RequiredCorpus))
	line(w, "Existing corpus grows to", FormatCurrency(r.Result.FutureValueOfExistingCorpus))
	line(w, "Shortfall", FormatCurrency(r.Result.CorpusShortfall))
	line(w, "Required monthly SIP", FormatCurrency(r.Result.RequiredMonthlyContribution))
}
