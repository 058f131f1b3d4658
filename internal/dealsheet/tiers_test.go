package dealsheet

import (
	"testing"

	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedOptions() []domain.DealOption {
	return []domain.DealOption{
		{
			ID:           "fin-1",
			Label:        "Option A",
			Type:         domain.DealTypeFinance,
			SellingPrice: d("30000"),
			APR:          d("9.9"),
			MoneyFactor:  d("0.003"),
			TermMonths:   60,
		},
		{
			ID:           "lease-1",
			Label:        "Option B",
			Type:         domain.DealTypeLease,
			SellingPrice: d("30000"),
			APR:          d("9.9"),
			MoneyFactor:  d("0.003"),
			LeaseTerm:    36,
		},
	}
}

func TestApplyTierTypeRespecting(t *testing.T) {
	options := mixedOptions()
	applied := ApplyTier(options, testTier())

	require.Len(t, applied, 2)

	fin, lease := applied[0], applied[1]
	assert.True(t, fin.APR.Equal(d("6.5")), "tier APR lands on finance options")
	assert.True(t, fin.MoneyFactor.Equal(d("0.003")), "finance money factor untouched")
	assert.True(t, lease.MoneyFactor.Equal(d("0.00125")), "tier money factor lands on lease options")
	assert.True(t, lease.APR.Equal(d("9.9")), "lease APR untouched")
	assert.Equal(t, "Tier 1", fin.CreditTier)
	assert.Equal(t, "Tier 1", lease.CreditTier)
}

func TestApplyTierLeavesOtherFieldsAlone(t *testing.T) {
	options := mixedOptions()
	applied := ApplyTier(options, testTier())

	for i := range applied {
		assert.Equal(t, options[i].ID, applied[i].ID)
		assert.Equal(t, options[i].Label, applied[i].Label)
		assert.True(t, applied[i].SellingPrice.Equal(options[i].SellingPrice))
		assert.Equal(t, options[i].TermMonths, applied[i].TermMonths)
		assert.Equal(t, options[i].LeaseTerm, applied[i].LeaseTerm)
	}
}

func TestApplyTierDoesNotMutateInput(t *testing.T) {
	options := mixedOptions()
	_ = ApplyTier(options, testTier())

	assert.True(t, options[0].APR.Equal(d("9.9")), "input slice is untouched")
	assert.True(t, options[1].MoneyFactor.Equal(d("0.003")))
	assert.Empty(t, options[0].CreditTier)
}

func TestApplyTierPartialRates(t *testing.T) {
	apr := d("5.25")
	financeOnly := domain.CreditTier{Name: "Finance Special", APR: &apr}

	applied := ApplyTier(mixedOptions(), financeOnly)

	assert.True(t, applied[0].APR.Equal(d("5.25")))
	assert.True(t, applied[1].MoneyFactor.Equal(d("0.003")),
		"a tier without a money factor leaves lease rates untouched, not zeroed")
	assert.Equal(t, "Finance Special", applied[1].CreditTier,
		"the tier name is still stamped on every option")
}
