package calculation

import (
	"testing"

	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func assertCents(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), label)
}

func TestFinanceCompute_StandardDeal(t *testing.T) {
	opt := &domain.DealOption{
		Type:         domain.DealTypeFinance,
		SellingPrice: d("30000"),
		DownPayment:  d("3000"),
		DocFee:       d("150"),
		TitleRegFee:  d("300"),
		TaxRate:      d("7"),
		APR:          d("6.5"),
		TermMonths:   60,
	}

	result := NewFinanceCalculator().Compute(opt)

	assertCents(t, "30000.00", result.TaxableBase, "taxable base")
	assertCents(t, "2100.00", result.TaxAmount, "tax amount")
	assertCents(t, "29550.00", result.AmountFinanced, "amount financed")
	assertCents(t, "578.18", result.MonthlyPayment, "monthly payment")
	assertCents(t, "34690.80", result.TotalOfPayments, "total of payments")
	assertCents(t, "5140.80", result.TotalInterest, "total interest")
}

func TestFinanceCompute_ZeroAPR(t *testing.T) {
	opt := &domain.DealOption{
		Type:         domain.DealTypeFinance,
		SellingPrice: d("18000"),
		DownPayment:  d("2000"),
		DocFee:       d("100"),
		TitleRegFee:  d("200"),
		TaxRate:      d("5"),
		APR:          d("0"),
		TermMonths:   48,
	}

	result := NewFinanceCalculator().Compute(opt)

	assertCents(t, "17200.00", result.AmountFinanced, "amount financed")
	// No amortization singularity: payment is principal / term exactly.
	assertCents(t, "358.33", result.MonthlyPayment, "monthly payment")
	assertCents(t, "17199.84", result.TotalOfPayments, "total of payments")
	assertCents(t, "-0.16", result.TotalInterest, "rounding residue on interest")
}

func TestFinanceCompute_UpsideDownTrade(t *testing.T) {
	// Negative trade equity rolls into the financed balance; rebates reduce
	// it but not the taxable base.
	opt := &domain.DealOption{
		Type:         domain.DealTypeFinance,
		SellingPrice: d("25000"),
		TradeValue:   d("5000"),
		TradePayoff:  d("7000"),
		Rebates:      d("1000"),
		DocFee:       d("299"),
		TitleRegFee:  d("150"),
		TaxRate:      d("6"),
		APR:          d("7.9"),
		TermMonths:   72,
	}

	result := NewFinanceCalculator().Compute(opt)

	assertCents(t, "20000.00", result.TaxableBase, "taxable base nets trade value only")
	assertCents(t, "1200.00", result.TaxAmount, "tax amount")
	assertCents(t, "27649.00", result.AmountFinanced, "amount financed includes rolled-in payoff")
	assertCents(t, "483.43", result.MonthlyPayment, "monthly payment")
	assertCents(t, "7157.96", result.TotalInterest, "total interest")
}

func TestFinanceCompute_DownPaymentExceedsPrice(t *testing.T) {
	opt := &domain.DealOption{
		Type:         domain.DealTypeFinance,
		SellingPrice: d("10000"),
		DownPayment:  d("15000"),
		TermMonths:   36,
	}

	result := NewFinanceCalculator().Compute(opt)

	assert.True(t, result.AmountFinanced.IsZero(), "amount financed clamps to zero")
	assert.True(t, result.MonthlyPayment.IsZero())
	assert.False(t, result.TotalInterest.IsNegative())
}

func TestFinanceCompute_NonPositiveTerm(t *testing.T) {
	opt := &domain.DealOption{
		Type:         domain.DealTypeFinance,
		SellingPrice: d("20000"),
		APR:          d("5"),
		TermMonths:   0,
	}

	result := NewFinanceCalculator().Compute(opt)

	assert.True(t, result.MonthlyPayment.IsZero(), "no payment without a positive term")
	assert.True(t, result.TotalOfPayments.IsZero())
	assertCents(t, "20000.00", result.AmountFinanced, "amount financed still derived")
}

func TestFinanceCompute_AmortizationIdentity(t *testing.T) {
	calc := NewFinanceCalculator()

	cases := []struct {
		name string
		opt  domain.DealOption
	}{
		{"short high rate", domain.DealOption{SellingPrice: d("12500"), TaxRate: d("8.25"), APR: d("14.9"), TermMonths: 24}},
		{"long low rate", domain.DealOption{SellingPrice: d("48000"), DownPayment: d("4000"), TaxRate: d("6.35"), APR: d("2.9"), TermMonths: 84}},
		{"mid market", domain.DealOption{SellingPrice: d("31995"), DownPayment: d("1500"), Rebates: d("750"), DocFee: d("499"), TaxRate: d("7.25"), APR: d("6.49"), TermMonths: 60}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.opt.Type = domain.DealTypeFinance
			result := calc.Compute(&tc.opt)
			require.False(t, result.AmountFinanced.IsNegative())

			term := decimal.NewFromInt(int64(tc.opt.TermMonths))
			// Tolerance of one cent per period: payment is rounded before the
			// totals are formed.
			tolerance := d("0.01").Mul(term)

			sum := result.MonthlyPayment.Mul(term)
			assert.True(t, sum.Sub(result.TotalOfPayments).Abs().LessThanOrEqual(tolerance),
				"payment*term %s vs total of payments %s", sum, result.TotalOfPayments)

			interest := result.TotalOfPayments.Sub(result.AmountFinanced)
			assert.True(t, interest.Sub(result.TotalInterest).Abs().LessThanOrEqual(tolerance),
				"derived interest %s vs total interest %s", interest, result.TotalInterest)
		})
	}
}

func TestFinanceCompute_FullPricePolicy(t *testing.T) {
	opt := &domain.DealOption{
		Type:         domain.DealTypeFinance,
		SellingPrice: d("30000"),
		TradeValue:   d("10000"),
		TaxRate:      d("7"),
		TermMonths:   60,
	}

	netCalc := NewFinanceCalculator()
	fullCalc := &FinanceCalculator{Tax: FullPricePolicy{}}

	net := netCalc.Compute(opt)
	full := fullCalc.Compute(opt)

	assertCents(t, "20000.00", net.TaxableBase, "net-of-trade base")
	assertCents(t, "30000.00", full.TaxableBase, "full-price base ignores the trade")
	assertCents(t, "1400.00", net.TaxAmount, "net-of-trade tax")
	assertCents(t, "2100.00", full.TaxAmount, "full-price tax")
}

func TestTaxPolicy_NegativeBaseClamps(t *testing.T) {
	opt := &domain.DealOption{SellingPrice: d("5000"), TradeValue: d("9000")}
	assert.True(t, NetOfTradePolicy{}.TaxableBase(opt).IsZero(),
		"trade worth more than the car yields a zero taxable base")
}
