package compare

import (
	"fmt"

	"github.com/lotworks/dealcalc/internal/calculation"
	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine builds side-by-side comparisons by running the matching calculator
// for every option on a sheet.
type Engine struct {
	calc *calculation.Engine
}

// NewEngine creates a comparison engine with default calculators.
func NewEngine() *Engine {
	return &Engine{calc: calculation.NewEngine()}
}

// Compare computes every option and derives the comparison metrics. Results
// are recomputed from the options on every call, never cached or stored.
func (e *Engine) Compare(sheet *domain.DealSheet) (*ComparisonSet, error) {
	if len(sheet.Options) == 0 {
		return nil, fmt.Errorf("deal sheet has no options to compare")
	}

	set := &ComparisonSet{
		SheetName: sheet.Name,
		Options:   make([]OptionComparison, 0, len(sheet.Options)),
	}

	for i := range sheet.Options {
		opt := &sheet.Options[i]
		result, err := e.calc.Compute(opt)
		if err != nil {
			return nil, err
		}
		set.Options = append(set.Options, buildComparison(opt, result))
	}

	first := set.Options[0]
	for i := range set.Options {
		set.Options[i].PaymentDiffFromFirst = set.Options[i].MonthlyPayment.Sub(first.MonthlyPayment)
		set.Options[i].TotalDiffFromFirst = set.Options[i].TotalCost.Sub(first.TotalCost)
	}

	set.Recommendations = buildRecommendations(set)
	return set, nil
}

// buildComparison derives the ranking metrics for one computed option.
func buildComparison(opt *domain.DealOption, result domain.DealResult) OptionComparison {
	comparison := OptionComparison{
		OptionID:       opt.ID,
		Label:          opt.Label,
		Type:           opt.Type,
		Result:         result,
		MonthlyPayment: result.MonthlyPayment(),
		FinancedAmount: result.FinancedAmount(),
		TermMonths:     opt.Term(),
	}

	switch {
	case result.Finance != nil:
		comparison.DriveOffCash = opt.DownPayment
		// Cash out over the term: down payment plus every installment.
		comparison.TotalCost = domain.RoundCents(opt.DownPayment.Add(result.Finance.TotalOfPayments))
	case result.Lease != nil:
		comparison.DriveOffCash = result.Lease.DueAtSigning
		// Due at signing already holds the first payment; the remaining
		// term-1 payments follow.
		remaining := decimal.NewFromInt(int64(opt.Term() - 1))
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		comparison.TotalCost = domain.RoundCents(
			result.Lease.DueAtSigning.Add(result.Lease.MonthlyPayment.Mul(remaining)))
	}

	return comparison
}

// buildRecommendations ranks the columns for the deal sheet footer.
func buildRecommendations(set *ComparisonSet) []string {
	if len(set.Options) < 2 {
		return nil
	}

	lowestPayment := &set.Options[0]
	lowestTotal := &set.Options[0]
	lowestDriveOff := &set.Options[0]
	for i := range set.Options[1:] {
		opt := &set.Options[i+1]
		if opt.MonthlyPayment.LessThan(lowestPayment.MonthlyPayment) {
			lowestPayment = opt
		}
		if opt.TotalCost.LessThan(lowestTotal.TotalCost) {
			lowestTotal = opt
		}
		if opt.DriveOffCash.LessThan(lowestDriveOff.DriveOffCash) {
			lowestDriveOff = opt
		}
	}

	recommendations := []string{
		fmt.Sprintf("Lowest payment: %s at $%s/mo", lowestPayment.Label, lowestPayment.MonthlyPayment.StringFixed(2)),
		fmt.Sprintf("Lowest total cost over term: %s at $%s", lowestTotal.Label, lowestTotal.TotalCost.StringFixed(2)),
	}
	if !lowestDriveOff.DriveOffCash.Equal(lowestPayment.DriveOffCash) {
		recommendations = append(recommendations,
			fmt.Sprintf("Least cash up front: %s at $%s", lowestDriveOff.Label, lowestDriveOff.DriveOffCash.StringFixed(2)))
	}
	return recommendations
}
