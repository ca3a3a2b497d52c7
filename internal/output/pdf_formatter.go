package output

import (
	"bytes"
	"fmt"

	"github.com/dhanam/fincalc/internal/domain"
	"github.com/dhanam/fincalc/pkg/decimal"
	"github.com/go-pdf/fpdf"
	stddec "github.com/shopspring/decimal"
)

// PDFFormatter renders a printable summary. Loan schedules are left to the
// CSV exporters.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

const (
	pdfMargin       = 15.0
	pdfContentWidth = 210.0 - 2*pdfMargin
	pdfLabelWidth   = 100.0
)

// pdfCurrency formats money for the PDF core fonts, which have no rupee glyph.
func pdfCurrency(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).FormatWithSymbol("Rs. ")
}

type pdfReport struct {
	pdf *fpdf.Fpdf
}

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	r.pdf.SetAutoPageBreak(true, pdfMargin)
	r.pdf.SetCreationDate(report.GeneratedAt)
	r.pdf.SetModificationDate(report.GeneratedAt)
	r.pdf.AddPage()

	r.title(report)

	if highlights := AnalyzeReport(report); len(highlights) > 0 {
		r.section("Highlights")
		r.pdf.SetFont("Arial", "", 10)
		for _, h := range highlights {
			r.pdf.MultiCell(pdfContentWidth, 6, pdfText(h.Subject+": "+h.Message), "", "L", false)
		}
	}

	for _, loan := range report.Loans {
		r.section("Loan: " + loan.Name)
		r.row("Principal", pdfCurrency(loan.Terms.Principal))
		r.row("Annual rate", FormatPercentage(loan.Terms.AnnualRatePercent))
		r.row("Term", FormatMonths(loan.Terms.TermMonths))
		r.row("Monthly EMI", pdfCurrency(loan.EMI.MonthlyPayment))
		r.row("Total interest", pdfCurrency(loan.EMI.TotalInterest))
		if pre := loan.Prepayment; pre != nil {
			r.row("Interest saved by prepayment", pdfCurrency(pre.InterestSaved))
			r.row("Installments left after prepayment", intToString(pre.RemainingTermMonths))
		}
		if m := loan.Moratorium; m != nil {
			r.row("EMI after moratorium", pdfCurrency(m.MonthlyPayment))
			r.row("Total interest with moratorium", pdfCurrency(m.TotalInterest))
		}
	}

	for _, inv := range report.Investments {
		r.section(fmt.Sprintf("Investment: %s (%s)", inv.Name, inv.Kind))
		r.row("Invested", pdfCurrency(inv.Result.InvestedAmount))
		r.row("Estimated returns", pdfCurrency(inv.Result.EstimatedReturns))
		r.row("Future value", pdfCurrency(inv.Result.FutureValue))
	}

	for _, goal := range report.Goals {
		r.section("Goal: " + goal.Name)
		r.row("Future cost", pdfCurrency(goal.Result.FutureCost))
		r.row("Savings grow to", pdfCurrency(goal.Result.FutureValueOfSavings))
		r.row("Shortfall", pdfCurrency(goal.Result.Shortfall))
		r.row("Required monthly SIP", pdfCurrency(goal.Result.RequiredMonthlyContribution))
	}

	for _, plan := range report.DebtPlans {
		r.section("Debt plan: " + plan.Name)
		if c := plan.Comparison; c != nil {
			r.payoff(c.Avalanche)
			r.payoff(c.Snowball)
			r.row("Recommended", c.Recommended.String())
		}
		if plan.Result != nil {
			r.payoff(*plan.Result)
		}
		if plan.DebtFreeDate != nil {
			r.row("Debt-free by", plan.DebtFreeDate.Format("January 2006"))
		}
	}

	if ret := report.Retirement; ret != nil {
		r.section("Retirement")
		r.row("Retire at", fmt.Sprintf("%d (%d)", ret.Profile.RetirementAge, ret.RetirementYear))
		r.row("Monthly expense at retirement", pdfCurrency(ret.Result.MonthlyExpenseAtRetirement))
		r.row("Required corpus", pdfCurrency(ret.Result.RequiredCorpus))
		r.row("Existing corpus grows to", pdfCurrency(ret.Result.FutureValueOfExistingCorpus))
		r.row("Shortfall", pdfCurrency(ret.Result.CorpusShortfall))
		r.row("Required monthly SIP", pdfCurrency(ret.Result.RequiredMonthlyContribution))
	}

	r.section("Key Assumptions")
	r.pdf.SetFont("Arial", "", 9)
	for _, a := range DefaultAssumptions {
		r.pdf.MultiCell(pdfContentWidth, 5, "- "+a, "", "L", false)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) title(report *domain.Report) {
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, "Personal Finance Report", "", 1, "C", false, 0, "")
	if report.Name != "" {
		r.pdf.SetFont("Arial", "", 13)
		r.pdf.SetTextColor(80, 80, 80)
		r.pdf.CellFormat(pdfContentWidth, 8, pdfText(report.Name), "", 1, "C", false, 0, "")
	}
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(pdfContentWidth, 6, "Generated "+report.GeneratedAt.Format("2 January 2006"), "", 1, "C", false, 0, "")
}

func (r *pdfReport) section(title string) {
	r.pdf.Ln(4)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, pdfText(title), "1", 1, "L", true, 0, "")
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) row(label, value string) {
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.CellFormat(pdfLabelWidth, 6, pdfText(label), "LB", 0, "L", false, 0, "")
	r.pdf.CellFormat(pdfContentWidth-pdfLabelWidth, 6, pdfText(value), "RB", 1, "R", false, 0, "")
}

func (r *pdfReport) payoff(result domain.PayoffResult) {
	months := payoffMonths(result)
	r.row(fmt.Sprintf("%s: months / interest", result.Strategy),
		fmt.Sprintf("%s / %s", months, pdfCurrency(result.TotalInterestPaid)))
}

// pdfText drops characters the Latin-1 core fonts cannot draw.
func pdfText(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == '₹':
			out = append(out, []rune("Rs. ")...)
		case r == '•':
			out = append(out, '-')
		case r < 128:
			out = append(out, r)
		default:
			out = append(out, '?')
		}
	}
	return string(out)
}
