package output

import (
	"fmt"

	"github.com/dhanam/fincalc/internal/domain"
)

// Highlight is one takeaway line drawn from a report.
type Highlight struct {
	Subject string
	Message string
}

// AnalyzeReport picks out the figures a reader most likely wants first:
// prepayment savings, goal and retirement contributions, and which payoff
// strategy wins. Order follows the report sections.
func AnalyzeReport(report *domain.Report) []Highlight {
	var out []Highlight

	for _, loan := range report.Loans {
		if p := loan.Prepayment; p != nil {
			switch {
			case p.LoanClosed:
				out = append(out, Highlight{loan.Name, fmt.Sprintf("the prepayment closes the loan and saves %s interest", FormatCompact(p.InterestSaved))})
			case p.Unpayable:
				out = append(out, Highlight{loan.Name, "the EMI no longer covers interest after the prepayment"})
			case p.InterestSaved.IsPositive():
				out = append(out, Highlight{loan.Name, fmt.Sprintf("prepaying saves %s interest and %s of payments",
					FormatCompact(p.InterestSaved), FormatMonths(loan.Terms.TermMonths-p.RemainingTermMonths))})
			}
		}
		if m := loan.Moratorium; m != nil {
			extra := m.TotalInterest.Sub(loan.EMI.TotalInterest)
			if extra.IsPositive() {
				out = append(out, Highlight{loan.Name, fmt.Sprintf("the moratorium adds %s interest", FormatCompact(extra))})
			}
		}
	}

	for _, goal := range report.Goals {
		if goal.Result.Shortfall.IsPositive() {
			out = append(out, Highlight{goal.Name, fmt.Sprintf("save %s a month to reach %s",
				FormatCurrency(goal.Result.RequiredMonthlyContribution), FormatCompact(goal.Result.FutureCost))})
		} else {
			out = append(out, Highlight{goal.Name, "existing savings already cover the goal"})
		}
	}

	for _, plan := range report.DebtPlans {
		switch {
		case plan.Comparison != nil:
			c := plan.Comparison
			if c.Recommended == domain.Snowball {
				out = append(out, Highlight{plan.Name, "snowball is cheaper here because freed minimums are not rolled over"})
			} else if c.InterestSaved.IsPositive() {
				out = append(out, Highlight{plan.Name, fmt.Sprintf("avalanche saves %s interest over snowball", FormatCompact(c.InterestSaved))})
			} else {
				out = append(out, Highlight{plan.Name, "both strategies cost the same"})
			}
		case plan.Result != nil && !plan.Result.Cleared():
			out = append(out, Highlight{plan.Name, fmt.Sprintf("debts are not cleared within %s", FormatMonths(plan.Result.MonthsToZero))})
		}
	}

	if r := report.Retirement; r != nil {
		if r.Result.CorpusShortfall.IsPositive() {
			out = append(out, Highlight{"Retirement", fmt.Sprintf("invest %s a month to build %s by %d",
				FormatCurrency(r.Result.RequiredMonthlyContribution), FormatCompact(r.Result.RequiredCorpus), r.RetirementYear)})
		} else {
			out = append(out, Highlight{"Retirement", "the existing corpus covers the required corpus"})
		}
	}

	return out
}
