package breakeven

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotworks/dealcalc/internal/calculation"
	"github.com/lotworks/dealcalc/internal/domain"
)

func leaseOption() *domain.DealOption {
	return &domain.DealOption{
		Type:           domain.DealTypeLease,
		Label:          "Option B",
		SellingPrice:   d("35000"),
		MSRP:           d("35000"),
		DownPayment:    d("2000"),
		AcquisitionFee: d("595"),
		DocFee:         d("150"),
		TaxRate:        d("7"),
		MoneyFactor:    d("0.00125"),
		ResidualPct:    d("58"),
		LeaseTerm:      36,
	}
}

func TestCompareCumulative_NoFlip(t *testing.T) {
	engine := calculation.NewEngine()

	// Finance carries both more cash at month one and the steeper slope, so
	// the lease stays cheaper for the whole horizon.
	cross, err := CompareCumulative(engine, financeOption(), leaseOption())
	require.NoError(t, err)

	assert.Equal(t, 0, cross.Month)
	assert.Equal(t, "Option B", cross.CheaperEarly)
	assert.Equal(t, "Option B", cross.CheaperLate)
	// 60 month horizon: finance 3000 + 60x578.18, lease flat after month 36.
	assert.Equal(t, "37690.80", cross.FirstTotal.StringFixed(2))
	assert.Equal(t, "19583.40", cross.SecondTotal.StringFixed(2))
}

func TestCompareCumulative_Flip(t *testing.T) {
	engine := calculation.NewEngine()

	// Zero down, zero APR, 24 month note: 19200 financed at exactly 800/mo.
	// Cheapest at signing, but the 471.90 lease payment overtakes it.
	finance := &domain.DealOption{
		Type:         domain.DealTypeFinance,
		Label:        "Short note",
		SellingPrice: d("18000"),
		DocFee:       d("100"),
		TitleRegFee:  d("200"),
		TaxRate:      d("5"),
		APR:          d("0"),
		TermMonths:   24,
	}

	cross, err := CompareCumulative(engine, finance, leaseOption())
	require.NoError(t, err)

	assert.Equal(t, "Short note", cross.CheaperEarly)
	assert.Equal(t, "Option B", cross.CheaperLate)
	// 800m first exceeds 3066.90 + 471.90(m-1) at month 8.
	assert.Equal(t, 8, cross.Month)
}

func TestCompareCumulative_NonPositiveTerms(t *testing.T) {
	engine := calculation.NewEngine()

	a := financeOption()
	a.TermMonths = 0
	b := leaseOption()
	b.LeaseTerm = 0

	_, err := CompareCumulative(engine, a, b)
	require.Error(t, err)
}
