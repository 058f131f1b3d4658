package compare

import (
	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// OptionComparison is one column of the side-by-side comparison: an option's
// computed result plus the metrics used to rank it.
type OptionComparison struct {
	OptionID string          `json:"optionId"`
	Label    string          `json:"label"`
	Type     domain.DealType `json:"type"`
	Result   domain.DealResult `json:"result"`

	// Key metrics
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	FinancedAmount decimal.Decimal `json:"financedAmount"` // amount financed or adjusted cap cost
	TermMonths     int             `json:"termMonths"`
	DriveOffCash   decimal.Decimal `json:"driveOffCash"` // cash required up front
	TotalCost      decimal.Decimal `json:"totalCost"`    // cash out over the full term

	// Comparison to the first option
	PaymentDiffFromFirst decimal.Decimal `json:"paymentDiffFromFirst"`
	TotalDiffFromFirst   decimal.Decimal `json:"totalDiffFromFirst"`
}

// ComparisonSet is the full side-by-side comparison for a deal sheet.
type ComparisonSet struct {
	SheetName       string             `json:"sheetName,omitempty"`
	Options         []OptionComparison `json:"options"`
	Recommendations []string           `json:"recommendations"`
}

// First returns the first option column, the baseline the others are
// compared against.
func (cs *ComparisonSet) First() *OptionComparison {
	if len(cs.Options) == 0 {
		return nil
	}
	return &cs.Options[0]
}
