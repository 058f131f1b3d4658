package compare

import (
	"fmt"
	"strings"

	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats a comparison as a console table.
type TableFormatter struct{}

// Format generates a formatted deal sheet table.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("DEAL SHEET COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if set.SheetName != "" {
		sb.WriteString(fmt.Sprintf("Deal Sheet: %s\n", set.SheetName))
	}
	sb.WriteString("\n")

	nameWidth := 22
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %-*s %*s %*s %*s\n",
		nameWidth, "Option",
		8, "Type",
		numWidth, "Monthly",
		numWidth, "Drive-Off",
		numWidth, "Total Cost"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for i := range set.Options {
		sb.WriteString(tf.formatRow(&set.Options[i], nameWidth, numWidth))
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Per-option breakdowns
	for i := range set.Options {
		opt := &set.Options[i]
		sb.WriteString(fmt.Sprintf("\n%s (%s, %d months)\n", opt.Label, opt.Type, opt.TermMonths))
		sb.WriteString(strings.Repeat("-", 40) + "\n")
		switch {
		case opt.Result.Finance != nil:
			tf.writeFinanceBreakdown(&sb, opt.Result.Finance)
		case opt.Result.Lease != nil:
			tf.writeLeaseBreakdown(&sb, opt.Result.Lease)
		}
		if i > 0 {
			sb.WriteString(fmt.Sprintf("  vs %s:            %s$%s/mo\n",
				set.Options[0].Label,
				tf.deltaSymbol(opt.PaymentDiffFromFirst),
				opt.PaymentDiffFromFirst.Abs().StringFixed(2)))
		}
	}

	if len(set.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range set.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(opt *OptionComparison, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %-*s %*s %*s %*s\n",
		nameWidth, opt.Label,
		8, string(opt.Type),
		numWidth, "$"+opt.MonthlyPayment.StringFixed(2),
		numWidth, "$"+opt.DriveOffCash.StringFixed(2),
		numWidth, "$"+opt.TotalCost.StringFixed(2))
}

func (tf *TableFormatter) writeFinanceBreakdown(sb *strings.Builder, r *domain.FinanceResult) {
	sb.WriteString(fmt.Sprintf("  Tax amount:          $%s\n", r.TaxAmount.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Amount financed:     $%s\n", r.AmountFinanced.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Monthly payment:     $%s\n", r.MonthlyPayment.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Total interest:      $%s\n", r.TotalInterest.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Total of payments:   $%s\n", r.TotalOfPayments.StringFixed(2)))
}

func (tf *TableFormatter) writeLeaseBreakdown(sb *strings.Builder, r *domain.LeaseResult) {
	sb.WriteString(fmt.Sprintf("  Adjusted cap cost:   $%s\n", r.AdjustedCapitalizedCost.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Residual value:      $%s\n", r.ResidualValue.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Depreciation:        $%s/mo\n", r.MonthlyDepreciation.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Rent charge:         $%s/mo\n", r.MonthlyRentCharge.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Monthly tax:         $%s\n", r.MonthlyTax.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Monthly payment:     $%s\n", r.MonthlyPayment.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Due at signing:      $%s\n", r.DueAtSigning.StringFixed(2)))
	if !r.DispositionFee.IsZero() {
		sb.WriteString(fmt.Sprintf("  Disposition fee:     $%s at lease end\n", r.DispositionFee.StringFixed(2)))
	}
	if !r.ExcessMileageCharge.IsZero() {
		sb.WriteString(fmt.Sprintf("  Excess mileage:      $%s/mile at lease end\n", r.ExcessMileageCharge.StringFixed(2)))
	}
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}
