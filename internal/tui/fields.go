package tui

import (
	"fmt"
	"strconv"

	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// fieldDef describes one editable option field: how to read it for display
// and how to write a parsed value back. Rate fields clear the option's credit
// tier on manual override.
type fieldDef struct {
	name        string
	leaseOnly   bool
	financeOnly bool
	get         func(*domain.DealOption) string
	set         func(*domain.DealOption, string) error
}

func decimalField(get func(*domain.DealOption) *decimal.Decimal) (func(*domain.DealOption) string, func(*domain.DealOption, string) error) {
	return func(o *domain.DealOption) string {
			return get(o).String()
		}, func(o *domain.DealOption, raw string) error {
			v, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("not a number: %s", raw)
			}
			if v.IsNegative() {
				return fmt.Errorf("cannot be negative")
			}
			*get(o) = v
			return nil
		}
}

func intField(get func(*domain.DealOption) *int, requirePositive bool) (func(*domain.DealOption) string, func(*domain.DealOption, string) error) {
	return func(o *domain.DealOption) string {
			return strconv.Itoa(*get(o))
		}, func(o *domain.DealOption, raw string) error {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("not a whole number: %s", raw)
			}
			if requirePositive && v <= 0 {
				return fmt.Errorf("must be positive")
			}
			if v < 0 {
				return fmt.Errorf("cannot be negative")
			}
			*get(o) = v
			return nil
		}
}

// editableFields lists every field the sheet editor exposes, in display
// order. Fields of the inactive deal type stay listed but dimmed, since their
// values are retained across type switches.
func editableFields() []fieldDef {
	fields := []fieldDef{}

	addDecimal := func(name string, get func(*domain.DealOption) *decimal.Decimal) {
		g, s := decimalField(get)
		fields = append(fields, fieldDef{name: name, get: g, set: s})
	}

	addDecimal("Selling price", func(o *domain.DealOption) *decimal.Decimal { return &o.SellingPrice })
	addDecimal("MSRP", func(o *domain.DealOption) *decimal.Decimal { return &o.MSRP })
	addDecimal("Down payment", func(o *domain.DealOption) *decimal.Decimal { return &o.DownPayment })
	addDecimal("Rebates", func(o *domain.DealOption) *decimal.Decimal { return &o.Rebates })
	addDecimal("Trade value", func(o *domain.DealOption) *decimal.Decimal { return &o.TradeValue })
	addDecimal("Trade payoff", func(o *domain.DealOption) *decimal.Decimal { return &o.TradePayoff })
	addDecimal("Doc fee", func(o *domain.DealOption) *decimal.Decimal { return &o.DocFee })
	addDecimal("Title/reg fee", func(o *domain.DealOption) *decimal.Decimal { return &o.TitleRegFee })
	addDecimal("Other fees", func(o *domain.DealOption) *decimal.Decimal { return &o.OtherFees })
	addDecimal("Tax rate %", func(o *domain.DealOption) *decimal.Decimal { return &o.TaxRate })

	// Finance group; manual APR edits detach the option from its tier.
	aprGet, aprSet := decimalField(func(o *domain.DealOption) *decimal.Decimal { return &o.APR })
	fields = append(fields, fieldDef{
		name:        "APR %",
		financeOnly: true,
		get:         aprGet,
		set: func(o *domain.DealOption, raw string) error {
			if err := aprSet(o, raw); err != nil {
				return err
			}
			o.CreditTier = ""
			return nil
		},
	})
	termGet, termSet := intField(func(o *domain.DealOption) *int { return &o.TermMonths }, true)
	fields = append(fields, fieldDef{name: "Term (months)", financeOnly: true, get: termGet, set: termSet})

	// Lease group; manual money factor edits detach the tier as well.
	mfGet, mfSet := decimalField(func(o *domain.DealOption) *decimal.Decimal { return &o.MoneyFactor })
	fields = append(fields, fieldDef{
		name:      "Money factor",
		leaseOnly: true,
		get:       mfGet,
		set: func(o *domain.DealOption, raw string) error {
			if err := mfSet(o, raw); err != nil {
				return err
			}
			o.CreditTier = ""
			return nil
		},
	})

	addLeaseDecimal := func(name string, get func(*domain.DealOption) *decimal.Decimal) {
		g, s := decimalField(get)
		fields = append(fields, fieldDef{name: name, leaseOnly: true, get: g, set: s})
	}
	addLeaseDecimal("Residual % of MSRP", func(o *domain.DealOption) *decimal.Decimal { return &o.ResidualPct })

	leaseTermGet, leaseTermSet := intField(func(o *domain.DealOption) *int { return &o.LeaseTerm }, true)
	fields = append(fields, fieldDef{name: "Lease term (months)", leaseOnly: true, get: leaseTermGet, set: leaseTermSet})

	mileageGet, mileageSet := intField(func(o *domain.DealOption) *int { return &o.AnnualMileage }, false)
	fields = append(fields, fieldDef{name: "Annual mileage", leaseOnly: true, get: mileageGet, set: mileageSet})

	addLeaseDecimal("Acquisition fee", func(o *domain.DealOption) *decimal.Decimal { return &o.AcquisitionFee })
	addLeaseDecimal("Security deposit", func(o *domain.DealOption) *decimal.Decimal { return &o.SecurityDeposit })

	return fields
}

// activeFor reports whether the field belongs to the option's active group.
func (f fieldDef) activeFor(opt *domain.DealOption) bool {
	if f.financeOnly {
		return opt.Type == domain.DealTypeFinance
	}
	if f.leaseOnly {
		return opt.Type == domain.DealTypeLease
	}
	return true
}
