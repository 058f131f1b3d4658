package calculation

import (
	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// LeaseCalculator computes closed-end lease figures for a deal option. Taxes
// are not capitalized; they are assessed monthly on the base payment.
type LeaseCalculator struct{}

// NewLeaseCalculator creates a lease calculator.
func NewLeaseCalculator() *LeaseCalculator {
	return &LeaseCalculator{}
}

// Compute derives the closed-end lease figures for an option.
//
// A zero MSRP produces a zero residual, which degenerates to full
// depreciation over the term; that is valid input, not an error. A
// non-positive LeaseTerm yields a result without payment figures, mirroring
// the finance calculator's boundary contract.
func (c *LeaseCalculator) Compute(opt *domain.DealOption) domain.LeaseResult {
	grossCapCost := opt.SellingPrice.
		Sub(opt.Rebates).
		Add(opt.AcquisitionFee).
		Add(opt.DocFee).
		Add(opt.TitleRegFee).
		Add(opt.OtherFees)

	adjustedCapCost := grossCapCost.Sub(opt.DownPayment).Sub(opt.TradeEquity())
	adjustedCapCost = domain.ClampZero(domain.RoundCents(adjustedCapCost))

	residualValue := domain.RoundCents(domain.PercentOf(opt.MSRP, opt.ResidualPct))

	result := domain.LeaseResult{
		GrossCapitalizedCost:    grossCapCost,
		AdjustedCapitalizedCost: adjustedCapCost,
		ResidualValue:           residualValue,
		DispositionFee:          opt.DispositionFee,
		ExcessMileageCharge:     opt.ExcessMileageCharge,
	}
	if opt.LeaseTerm <= 0 {
		return result
	}

	term := decimal.NewFromInt(int64(opt.LeaseTerm))
	result.MonthlyDepreciation = domain.RoundCents(adjustedCapCost.Sub(residualValue).Div(term))
	result.MonthlyRentCharge = domain.RoundCents(adjustedCapCost.Add(residualValue).Mul(opt.MoneyFactor))

	basePayment := result.MonthlyDepreciation.Add(result.MonthlyRentCharge)
	result.MonthlyTax = domain.RoundCents(domain.PercentOf(basePayment, opt.TaxRate))
	result.MonthlyPayment = domain.RoundCents(basePayment.Add(result.MonthlyTax))

	// First month's payment is due at signing; DownPayment here is any
	// additional cash due beyond it. Disposition fee and excess mileage are
	// end-of-term contingent charges and stay out of this total.
	result.DueAtSigning = domain.RoundCents(
		opt.DownPayment.
			Add(result.MonthlyPayment).
			Add(opt.AcquisitionFee).
			Add(opt.SecurityDeposit))

	return result
}
