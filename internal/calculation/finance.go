package calculation

import (
	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// FinanceCalculator computes amortizing installment-loan figures for a deal
// option. It is pure and safe for concurrent use: every call works on its own
// input snapshot and returns a new result.
type FinanceCalculator struct {
	Tax TaxPolicy
}

// NewFinanceCalculator creates a finance calculator with the default
// taxable-base policy.
func NewFinanceCalculator() *FinanceCalculator {
	return &FinanceCalculator{Tax: DefaultTaxPolicy()}
}

// Compute derives the installment-loan figures for an option.
//
// Callers validate terms at the boundary; a non-positive TermMonths yields an
// all-zero result rather than a panic, because partial input is the normal
// transient state while a user is typing.
func (c *FinanceCalculator) Compute(opt *domain.DealOption) domain.FinanceResult {
	taxableBase := c.Tax.TaxableBase(opt)
	taxAmount := domain.RoundCents(domain.PercentOf(taxableBase, opt.TaxRate))

	// Negative trade equity (upside-down trade) increases the financed amount.
	amountFinanced := opt.SellingPrice.
		Sub(opt.DownPayment).
		Sub(opt.TradeEquity()).
		Sub(opt.Rebates).
		Add(taxAmount).
		Add(opt.DocFee).
		Add(opt.TitleRegFee).
		Add(opt.OtherFees)
	amountFinanced = domain.ClampZero(domain.RoundCents(amountFinanced))

	result := domain.FinanceResult{
		TaxableBase:    taxableBase,
		TaxAmount:      taxAmount,
		AmountFinanced: amountFinanced,
	}
	if opt.TermMonths <= 0 {
		return result
	}

	result.MonthlyPayment = monthlyPayment(amountFinanced, opt.APR, opt.TermMonths)
	result.TotalOfPayments = domain.RoundCents(result.MonthlyPayment.Mul(decimal.NewFromInt(int64(opt.TermMonths))))
	result.TotalInterest = domain.RoundCents(result.TotalOfPayments.Sub(amountFinanced))

	return result
}

// monthlyPayment amortizes a principal over term months at an annual
// percentage rate. Zero APR degenerates to straight division, avoiding the
// singularity in the amortization formula.
func monthlyPayment(principal, apr decimal.Decimal, termMonths int) decimal.Decimal {
	term := decimal.NewFromInt(int64(termMonths))

	rate := apr.Div(decimal.NewFromInt(1200)) // monthly rate from percent APR
	if rate.IsZero() {
		return domain.RoundCents(principal.Div(term))
	}

	// principal * r * (1+r)^n / ((1+r)^n - 1)
	growth := decimal.NewFromInt(1).Add(rate).Pow(term)
	payment := principal.Mul(rate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
	return domain.RoundCents(payment)
}
