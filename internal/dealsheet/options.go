package dealsheet

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lotworks/dealcalc/internal/domain"
)

// An option set holds between MinOptions and MaxOptions comparison columns.
const (
	MinOptions = 1
	MaxOptions = 4
)

// OptionSet is a bounded, ordered collection of deal options. It is a value
// type: every operation returns a new set and leaves the receiver untouched.
// Operations past the size bounds return the set unchanged instead of
// failing; the bounded list backs a UI where a disabled button, not an error,
// is the right surface for "can't add a fifth column".
type OptionSet struct {
	Defaults   domain.DealDefaults
	ActiveTier *domain.CreditTier
	Options    []domain.DealOption
}

// New creates a set with a single option seeded from the dealership defaults
// and, when one is configured, the first credit tier.
func New(defaults domain.DealDefaults, tier *domain.CreditTier) OptionSet {
	return OptionSet{
		Defaults:   defaults,
		ActiveTier: tier,
		Options:    []domain.DealOption{Blank(uuid.NewString(), positionLabel(0), defaults, tier)},
	}
}

// FromSheet wraps the options of a loaded deal sheet, using its first credit
// tier as the active one.
func FromSheet(sheet *domain.DealSheet) OptionSet {
	var tier *domain.CreditTier
	if len(sheet.CreditTiers) > 0 {
		tier = &sheet.CreditTiers[0]
	}
	return OptionSet{
		Defaults:   sheet.Defaults,
		ActiveTier: tier,
		Options:    append([]domain.DealOption(nil), sheet.Options...),
	}
}

// Blank seeds a new finance option from dealership-wide defaults and an
// optional active tier.
func Blank(id, label string, defaults domain.DealDefaults, tier *domain.CreditTier) domain.DealOption {
	opt := domain.DealOption{
		ID:    id,
		Label: label,
		Type:  domain.DealTypeFinance,

		DocFee:      defaults.DocFee,
		TitleRegFee: defaults.TitleRegFee,
		TaxRate:     defaults.DefaultTaxRate,

		TermMonths: defaults.DefaultFinanceTerm,

		LeaseTerm:           defaults.DefaultLeaseTerm,
		AnnualMileage:       defaults.DefaultAnnualMileage,
		AcquisitionFee:      defaults.AcquisitionFee,
		DispositionFee:      defaults.DispositionFee,
		ExcessMileageCharge: defaults.ExcessMileageCharge,
	}
	if tier != nil {
		if tier.APR != nil {
			opt.APR = *tier.APR
		}
		if tier.MoneyFactor != nil {
			opt.MoneyFactor = *tier.MoneyFactor
		}
		opt.CreditTier = tier.Name
	}
	return opt
}

// Len returns the number of options in the set.
func (s OptionSet) Len() int {
	return len(s.Options)
}

// WithAdded appends a blank option labeled by position. At the ceiling the
// set is returned unchanged.
func (s OptionSet) WithAdded() OptionSet {
	if len(s.Options) >= MaxOptions {
		return s
	}
	opt := Blank(uuid.NewString(), positionLabel(len(s.Options)), s.Defaults, s.ActiveTier)
	return s.withOptions(append(s.copyOptions(), opt))
}

// WithDuplicated deep-copies the option at index with a fresh id and
// next-letter label and appends it. At the ceiling, or for an out-of-range
// index, the set is returned unchanged.
func (s OptionSet) WithDuplicated(index int) OptionSet {
	if len(s.Options) >= MaxOptions || index < 0 || index >= len(s.Options) {
		return s
	}
	dup := *s.Options[index].DeepCopy()
	dup.ID = uuid.NewString()
	dup.Label = positionLabel(len(s.Options))
	return s.withOptions(append(s.copyOptions(), dup))
}

// WithRemoved drops the option at index. The last option cannot be removed;
// at the floor, or for an out-of-range index, the set is returned unchanged.
// Remaining options keep their ids and labels.
func (s OptionSet) WithRemoved(index int) OptionSet {
	if len(s.Options) <= MinOptions || index < 0 || index >= len(s.Options) {
		return s
	}
	options := make([]domain.DealOption, 0, len(s.Options)-1)
	options = append(options, s.Options[:index]...)
	options = append(options, s.Options[index+1:]...)
	return s.withOptions(options)
}

// WithTier applies a credit tier across the whole set and records it as the
// active tier for subsequently added options.
func (s OptionSet) WithTier(tier domain.CreditTier) OptionSet {
	next := s.withOptions(ApplyTier(s.Options, tier))
	next.ActiveTier = &tier
	return next
}

// WithOption replaces the option at index, typically after a field edit. An
// out-of-range index returns the set unchanged.
func (s OptionSet) WithOption(index int, opt domain.DealOption) OptionSet {
	if index < 0 || index >= len(s.Options) {
		return s
	}
	options := s.copyOptions()
	options[index] = opt
	return s.withOptions(options)
}

func (s OptionSet) withOptions(options []domain.DealOption) OptionSet {
	return OptionSet{Defaults: s.Defaults, ActiveTier: s.ActiveTier, Options: options}
}

func (s OptionSet) copyOptions() []domain.DealOption {
	return append([]domain.DealOption(nil), s.Options...)
}

// positionLabel names an option by its position: "Option A" through
// "Option D".
func positionLabel(index int) string {
	return fmt.Sprintf("Option %c", 'A'+rune(index))
}
