package dealsheet

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

func testDefaults() domain.DealDefaults {
	return domain.DealDefaults{
		DocFee:               d("150"),
		TitleRegFee:          d("300"),
		DefaultTaxRate:       d("7"),
		DefaultFinanceTerm:   60,
		DefaultLeaseTerm:     36,
		DefaultAnnualMileage: 12000,
		AcquisitionFee:       d("595"),
		DispositionFee:       d("395"),
		ExcessMileageCharge:  d("0.25"),
	}
}

func testTier() domain.CreditTier {
	apr := d("6.5")
	mf := d("0.00125")
	return domain.CreditTier{Name: "Tier 1", APR: &apr, MoneyFactor: &mf}
}

func TestNewSeedsFromDefaultsAndTier(t *testing.T) {
	tier := testTier()
	set := New(testDefaults(), &tier)

	require.Equal(t, 1, set.Len())
	opt := set.Options[0]

	assert.NotEmpty(t, opt.ID)
	assert.Equal(t, "Option A", opt.Label)
	assert.Equal(t, domain.DealTypeFinance, opt.Type)
	assert.True(t, opt.DocFee.Equal(d("150")))
	assert.True(t, opt.TitleRegFee.Equal(d("300")))
	assert.True(t, opt.TaxRate.Equal(d("7")))
	assert.Equal(t, 60, opt.TermMonths)
	assert.Equal(t, 36, opt.LeaseTerm)
	assert.Equal(t, 12000, opt.AnnualMileage)
	assert.True(t, opt.AcquisitionFee.Equal(d("595")))
	assert.True(t, opt.DispositionFee.Equal(d("395")))
	assert.True(t, opt.APR.Equal(d("6.5")), "tier APR seeded")
	assert.True(t, opt.MoneyFactor.Equal(d("0.00125")), "tier money factor seeded")
	assert.Equal(t, "Tier 1", opt.CreditTier)
}

func TestNewWithoutTier(t *testing.T) {
	set := New(testDefaults(), nil)
	opt := set.Options[0]
	assert.True(t, opt.APR.IsZero())
	assert.True(t, opt.MoneyFactor.IsZero())
	assert.Empty(t, opt.CreditTier)
}

func TestWithAddedBounds(t *testing.T) {
	set := New(testDefaults(), nil)

	// Five consecutive adds from one option: the fifth is a no-op.
	for i := 0; i < 5; i++ {
		set = set.WithAdded()
	}
	require.Equal(t, MaxOptions, set.Len())

	labels := make([]string, 0, set.Len())
	for _, opt := range set.Options {
		labels = append(labels, opt.Label)
	}
	assert.Equal(t, []string{"Option A", "Option B", "Option C", "Option D"}, labels)
}

func TestWithRemovedBounds(t *testing.T) {
	set := New(testDefaults(), nil).WithAdded().WithAdded().WithAdded()
	require.Equal(t, 4, set.Len())

	// Five consecutive removes from four options: the floor holds at one.
	for i := 0; i < 5; i++ {
		set = set.WithRemoved(0)
	}
	assert.Equal(t, MinOptions, set.Len())
}

func TestWithRemovedKeepsIdsAndLabels(t *testing.T) {
	set := New(testDefaults(), nil).WithAdded().WithAdded()
	idC := set.Options[2].ID

	set = set.WithRemoved(1)

	require.Equal(t, 2, set.Len())
	assert.Equal(t, "Option A", set.Options[0].Label)
	assert.Equal(t, "Option C", set.Options[1].Label, "removal never renumbers survivors")
	assert.Equal(t, idC, set.Options[1].ID)
}

func TestWithRemovedOutOfRange(t *testing.T) {
	set := New(testDefaults(), nil).WithAdded()
	assert.Equal(t, 2, set.WithRemoved(7).Len())
	assert.Equal(t, 2, set.WithRemoved(-1).Len())
}

func TestWithDuplicatedIndependence(t *testing.T) {
	set := New(testDefaults(), nil)
	set.Options[0].SellingPrice = d("30000")

	set = set.WithDuplicated(0)
	require.Equal(t, 2, set.Len())

	orig, dup := set.Options[0], set.Options[1]
	assert.NotEqual(t, orig.ID, dup.ID, "duplicate gets a fresh id")
	assert.Equal(t, "Option B", dup.Label)
	assert.True(t, dup.SellingPrice.Equal(d("30000")))

	// Mutating the duplicate leaves the original untouched.
	set = set.WithOption(1, func() domain.DealOption {
		edited := dup
		edited.SellingPrice = d("28500")
		return edited
	}())
	assert.True(t, set.Options[0].SellingPrice.Equal(d("30000")))
	assert.True(t, set.Options[1].SellingPrice.Equal(d("28500")))
}

func TestWithDuplicatedAtCeiling(t *testing.T) {
	set := New(testDefaults(), nil).WithAdded().WithAdded().WithAdded()
	require.Equal(t, 4, set.Len())
	assert.Equal(t, 4, set.WithDuplicated(0).Len(), "duplicate past the cap is a no-op")
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	set := New(testDefaults(), nil)
	before := set.Len()

	_ = set.WithAdded()
	_ = set.WithDuplicated(0)
	_ = set.WithTier(testTier())

	assert.Equal(t, before, set.Len())
	assert.Empty(t, set.Options[0].CreditTier, "tier application returns a new set")
}

func TestFromSheet(t *testing.T) {
	tier := testTier()
	sheet := &domain.DealSheet{
		Defaults:    testDefaults(),
		CreditTiers: []domain.CreditTier{tier},
		Options: []domain.DealOption{
			{ID: "opt-1", Label: "Option A", Type: domain.DealTypeFinance},
			{ID: "opt-2", Label: "Option B", Type: domain.DealTypeLease},
		},
	}

	set := FromSheet(sheet)
	require.Equal(t, 2, set.Len())
	require.NotNil(t, set.ActiveTier)
	assert.Equal(t, "Tier 1", set.ActiveTier.Name)

	// The set owns its slice: sheet edits do not leak in.
	sheet.Options[0].Label = "changed"
	assert.Equal(t, "Option A", set.Options[0].Label)
}
