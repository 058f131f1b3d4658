package domain

import (
	"github.com/shopspring/decimal"
)

// DealType selects which calculator applies to a deal option.
type DealType string

const (
	DealTypeFinance DealType = "finance"
	DealTypeLease   DealType = "lease"
)

// VehicleSnapshot is a denormalized copy of vehicle fields taken when the
// vehicle was attached to an option. It is frozen: later edits to the vehicle
// record never flow back into a deal sheet.
type VehicleSnapshot struct {
	VIN         string `yaml:"vin,omitempty" json:"vin,omitempty"`
	StockNumber string `yaml:"stock_number,omitempty" json:"stock_number,omitempty"`
	Year        int    `yaml:"year,omitempty" json:"year,omitempty"`
	Make        string `yaml:"make,omitempty" json:"make,omitempty"`
	Model       string `yaml:"model,omitempty" json:"model,omitempty"`
	Trim        string `yaml:"trim,omitempty" json:"trim,omitempty"`
	Mileage     int    `yaml:"mileage,omitempty" json:"mileage,omitempty"`
}

// DealOption is one comparison column on a deal sheet: every input either
// calculator needs. Both the finance-only and lease-only groups are always
// retained, so switching Type back and forth is non-destructive; Type decides
// which group is semantically active.
type DealOption struct {
	ID    string   `yaml:"id" json:"id"`
	Label string   `yaml:"label" json:"label"`
	Type  DealType `yaml:"type" json:"type"`

	VehicleID       string           `yaml:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`
	VehicleSnapshot *VehicleSnapshot `yaml:"vehicle_snapshot,omitempty" json:"vehicle_snapshot,omitempty"`

	// Pricing inputs
	SellingPrice decimal.Decimal `yaml:"selling_price" json:"selling_price"`
	MSRP         decimal.Decimal `yaml:"msrp" json:"msrp"`
	DownPayment  decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	Rebates      decimal.Decimal `yaml:"rebates" json:"rebates"`
	TradeValue   decimal.Decimal `yaml:"trade_value" json:"trade_value"`
	TradePayoff  decimal.Decimal `yaml:"trade_payoff" json:"trade_payoff"`

	// Fee inputs
	DocFee         decimal.Decimal `yaml:"doc_fee" json:"doc_fee"`
	TitleRegFee    decimal.Decimal `yaml:"title_reg_fee" json:"title_reg_fee"`
	OtherFees      decimal.Decimal `yaml:"other_fees" json:"other_fees"`
	OtherFeesLabel string          `yaml:"other_fees_label,omitempty" json:"other_fees_label,omitempty"`
	TaxRate        decimal.Decimal `yaml:"tax_rate" json:"tax_rate"` // percent, e.g. 7.25 means 7.25%

	// Finance-only inputs
	APR        decimal.Decimal `yaml:"apr" json:"apr"` // percent
	TermMonths int             `yaml:"term_months" json:"term_months"`

	// Lease-only inputs
	MoneyFactor     decimal.Decimal `yaml:"money_factor" json:"money_factor"`
	ResidualPct     decimal.Decimal `yaml:"residual_pct" json:"residual_pct"` // percent of MSRP
	LeaseTerm       int             `yaml:"lease_term" json:"lease_term"`
	AnnualMileage   int             `yaml:"annual_mileage" json:"annual_mileage"`
	AcquisitionFee  decimal.Decimal `yaml:"acquisition_fee" json:"acquisition_fee"`
	SecurityDeposit decimal.Decimal `yaml:"security_deposit" json:"security_deposit"`
	// Charged at lease end, surfaced as informational text only; never part of
	// the monthly payment or due-at-signing totals.
	ExcessMileageCharge decimal.Decimal `yaml:"excess_mileage_charge" json:"excess_mileage_charge"` // dollars per mile
	DispositionFee      decimal.Decimal `yaml:"disposition_fee" json:"disposition_fee"`

	// Name of the last-applied credit tier, empty once a rate has been
	// manually overridden.
	CreditTier string `yaml:"credit_tier,omitempty" json:"credit_tier,omitempty"`
}

// TradeEquity is trade-in value minus any payoff still owed on the trade.
// Negative when the trade is upside-down.
func (o *DealOption) TradeEquity() decimal.Decimal {
	return o.TradeValue.Sub(o.TradePayoff)
}

// Term returns the active term in months for the option's deal type.
func (o *DealOption) Term() int {
	if o.Type == DealTypeLease {
		return o.LeaseTerm
	}
	return o.TermMonths
}

// DeepCopy returns an independent copy of the option. decimal.Decimal values
// are immutable, so only pointer fields need explicit copying.
func (o *DealOption) DeepCopy() *DealOption {
	c := *o
	if o.VehicleSnapshot != nil {
		snap := *o.VehicleSnapshot
		c.VehicleSnapshot = &snap
	}
	return &c
}

// CreditTier is a dealership-defined named rate pair. A tier may define only
// one of the two rates; a nil rate leaves the corresponding option field
// untouched when the tier is applied.
type CreditTier struct {
	Name        string           `yaml:"name" json:"name"`
	APR         *decimal.Decimal `yaml:"apr,omitempty" json:"apr,omitempty"` // percent
	MoneyFactor *decimal.Decimal `yaml:"money_factor,omitempty" json:"money_factor,omitempty"`
}

// DealDefaults are dealership-wide seed values for new options, supplied by
// the settings provider.
type DealDefaults struct {
	DocFee               decimal.Decimal `yaml:"doc_fee" json:"doc_fee"`
	TitleRegFee          decimal.Decimal `yaml:"title_reg_fee" json:"title_reg_fee"`
	DefaultTaxRate       decimal.Decimal `yaml:"default_tax_rate" json:"default_tax_rate"`
	DefaultFinanceTerm   int             `yaml:"default_finance_term" json:"default_finance_term"`
	DefaultLeaseTerm     int             `yaml:"default_lease_term" json:"default_lease_term"`
	DefaultAnnualMileage int             `yaml:"default_annual_mileage" json:"default_annual_mileage"`
	AcquisitionFee       decimal.Decimal `yaml:"acquisition_fee" json:"acquisition_fee"`
	DispositionFee       decimal.Decimal `yaml:"disposition_fee" json:"disposition_fee"`
	ExcessMileageCharge  decimal.Decimal `yaml:"excess_mileage_charge" json:"excess_mileage_charge"`
}

// DealSheet is the complete input document: dealership defaults, the
// configured credit tiers, and 1-4 options to compare. Only options are
// durable; results are always recomputed from them.
type DealSheet struct {
	Name        string       `yaml:"name,omitempty" json:"name,omitempty"`
	Defaults    DealDefaults `yaml:"defaults" json:"defaults"`
	CreditTiers []CreditTier `yaml:"credit_tiers,omitempty" json:"credit_tiers,omitempty"`
	Options     []DealOption `yaml:"options" json:"options"`
}
