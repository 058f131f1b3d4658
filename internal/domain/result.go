package domain

import "github.com/shopspring/decimal"

// FinanceResult is the derived output of the finance calculator for one
// option. All fields are rounded to cents.
type FinanceResult struct {
	TaxableBase     decimal.Decimal `json:"taxable_base"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	AmountFinanced  decimal.Decimal `json:"amount_financed"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	TotalInterest   decimal.Decimal `json:"total_interest"`
	TotalOfPayments decimal.Decimal `json:"total_of_payments"`
}

// LeaseResult is the derived output of the lease calculator for one option.
// DispositionFee and ExcessMileageCharge are echoed for the document renderer
// but are end-of-term contingent charges, excluded from every total.
type LeaseResult struct {
	GrossCapitalizedCost    decimal.Decimal `json:"gross_capitalized_cost"`
	AdjustedCapitalizedCost decimal.Decimal `json:"adjusted_capitalized_cost"`
	ResidualValue           decimal.Decimal `json:"residual_value"`
	MonthlyDepreciation     decimal.Decimal `json:"monthly_depreciation"`
	MonthlyRentCharge       decimal.Decimal `json:"monthly_rent_charge"`
	MonthlyTax              decimal.Decimal `json:"monthly_tax"`
	MonthlyPayment          decimal.Decimal `json:"monthly_payment"`
	DueAtSigning            decimal.Decimal `json:"due_at_signing"`
	DispositionFee          decimal.Decimal `json:"disposition_fee"`
	ExcessMileageCharge     decimal.Decimal `json:"excess_mileage_charge"`
}

// DealResult pairs an option's type with the matching calculator output.
// Exactly one of Finance and Lease is set.
type DealResult struct {
	Type    DealType       `json:"type"`
	Finance *FinanceResult `json:"finance,omitempty"`
	Lease   *LeaseResult   `json:"lease,omitempty"`
}

// MonthlyPayment returns the payment of whichever calculator produced the
// result.
func (r DealResult) MonthlyPayment() decimal.Decimal {
	switch {
	case r.Finance != nil:
		return r.Finance.MonthlyPayment
	case r.Lease != nil:
		return r.Lease.MonthlyPayment
	}
	return decimal.Zero
}

// FinancedAmount returns the principal being financed: amount financed for an
// installment deal, adjusted capitalized cost for a lease.
func (r DealResult) FinancedAmount() decimal.Decimal {
	switch {
	case r.Finance != nil:
		return r.Finance.AmountFinanced
	case r.Lease != nil:
		return r.Lease.AdjustedCapitalizedCost
	}
	return decimal.Zero
}
