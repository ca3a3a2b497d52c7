package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Loan interest accrues monthly at one twelfth of the annual rate",
	"A prepayment keeps the EMI unchanged and shortens the term",
	"Moratorium interest is simple interest added to the principal",
	"SIP contributions are invested at the start of each month",
	"A step-up raises the SIP contribution once every 12 months",
	"Debt payoff simulations stop after 600 months",
	"Retirement withdrawals are annual and discounted at the real post-retirement return",
}
