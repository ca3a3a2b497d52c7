package output

import (
	"bytes"
	"encoding/csv"

	"github.com/dhanam/fincalc/internal/domain"
)

// CSVDetailedExporter writes period-level detail: amortization rows for loans
// that asked for a schedule, and yearly growth points for investments.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Section", "Name", "Period", "Payment", "Principal", "Interest", "Invested", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, loan := range report.Loans {
		for _, e := range loan.Schedule {
			row := []string{
				"loan",
				loan.Name,
				intToString(e.Month),
				FormatAmount(e.Payment),
				FormatAmount(e.Principal),
				FormatAmount(e.Interest),
				"",
				FormatAmount(e.RemainingBalance),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	for _, inv := range report.Investments {
		for _, p := range inv.Result.Series {
			row := []string{
				"investment",
				inv.Name,
				intToString(p.Year),
				"", "", "",
				FormatAmount(p.Invested),
				FormatAmount(p.Value),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
