package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats a comparison as CSV.
type CSVFormatter struct{}

// Format generates CSV output for a comparison.
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Option",
		"Type",
		"Term (Months)",
		"Monthly Payment",
		"Financed Amount",
		"Drive-Off Cash",
		"Total Cost",
		"Payment Diff from First",
		"Total Diff from First",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for i := range set.Options {
		if err := writer.Write(cf.formatRow(&set.Options[i])); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(opt *OptionComparison) []string {
	return []string{
		opt.Label,
		string(opt.Type),
		strconv.Itoa(opt.TermMonths),
		opt.MonthlyPayment.StringFixed(2),
		opt.FinancedAmount.StringFixed(2),
		opt.DriveOffCash.StringFixed(2),
		opt.TotalCost.StringFixed(2),
		opt.PaymentDiffFromFirst.StringFixed(2),
		opt.TotalDiffFromFirst.StringFixed(2),
	}
}
