package calculation

import (
	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxPolicy determines the base on which sales tax is assessed for an
// installment sale. Real dealership tax rules vary by state (some exempt
// rebates, some tax the trade-in, some capitalize lease tax), so the policy
// is swappable without touching the amortization core.
type TaxPolicy interface {
	// Name returns a short identifier for the policy (e.g. "net_of_trade").
	Name() string

	// TaxableBase returns the amount sales tax is computed on, never negative.
	TaxableBase(opt *domain.DealOption) decimal.Decimal
}

// NetOfTradePolicy taxes the selling price net of trade-in value. Payoff and
// rebates do not affect the base. This is the most common US convention and
// the engine default.
type NetOfTradePolicy struct{}

func (NetOfTradePolicy) Name() string { return "net_of_trade" }

func (NetOfTradePolicy) TaxableBase(opt *domain.DealOption) decimal.Decimal {
	return domain.ClampZero(opt.SellingPrice.Sub(opt.TradeValue))
}

// FullPricePolicy taxes the full selling price with no trade-in credit, as a
// handful of states require.
type FullPricePolicy struct{}

func (FullPricePolicy) Name() string { return "full_price" }

func (FullPricePolicy) TaxableBase(opt *domain.DealOption) decimal.Decimal {
	return domain.ClampZero(opt.SellingPrice)
}

// DefaultTaxPolicy returns the policy used when none is configured.
func DefaultTaxPolicy() TaxPolicy {
	return NetOfTradePolicy{}
}
