package dealsheet

import (
	"github.com/lotworks/dealcalc/internal/domain"
)

// ApplyTier stamps a credit tier's rates across every option in one logical
// batch: APR on finance options, money factor on lease options, the tier name
// on all. The input slice is never mutated, so a partially applied tier is
// not observable by any caller holding the old slice.
//
// A tier that defines only one rate leaves the other option type's rate
// untouched; it is not zeroed.
func ApplyTier(options []domain.DealOption, tier domain.CreditTier) []domain.DealOption {
	out := make([]domain.DealOption, len(options))
	for i := range options {
		opt := *options[i].DeepCopy()
		switch opt.Type {
		case domain.DealTypeFinance:
			if tier.APR != nil {
				opt.APR = *tier.APR
			}
		case domain.DealTypeLease:
			if tier.MoneyFactor != nil {
				opt.MoneyFactor = *tier.MoneyFactor
			}
		}
		opt.CreditTier = tier.Name
		out[i] = opt
	}
	return out
}
