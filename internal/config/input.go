package config

import (
	"fmt"
	"os"

	"github.com/lotworks/dealcalc/internal/dealsheet"
	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of deal sheet files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a deal sheet from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.DealSheet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var sheet domain.DealSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateSheet(&sheet); err != nil {
		return nil, fmt.Errorf("deal sheet validation failed: %w", err)
	}

	return &sheet, nil
}

// ValidateSheet validates a loaded deal sheet. Validation is the boundary
// guard the pure calculators rely on: past this point every option carries a
// positive term for its active deal type.
func (ip *InputParser) ValidateSheet(sheet *domain.DealSheet) error {
	if err := ip.validateDefaults(&sheet.Defaults); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	tierNames := make(map[string]bool, len(sheet.CreditTiers))
	for i, tier := range sheet.CreditTiers {
		if err := ip.validateTier(&tier); err != nil {
			return fmt.Errorf("credit tier %d validation failed: %w", i, err)
		}
		if tierNames[tier.Name] {
			return fmt.Errorf("duplicate credit tier name: %s", tier.Name)
		}
		tierNames[tier.Name] = true
	}

	if len(sheet.Options) < dealsheet.MinOptions || len(sheet.Options) > dealsheet.MaxOptions {
		return fmt.Errorf("deal sheet must hold between %d and %d options, got %d",
			dealsheet.MinOptions, dealsheet.MaxOptions, len(sheet.Options))
	}

	ids := make(map[string]bool, len(sheet.Options))
	labels := make(map[string]bool, len(sheet.Options))
	for i, opt := range sheet.Options {
		if err := ip.validateOption(&opt, tierNames); err != nil {
			return fmt.Errorf("option %d (%s) validation failed: %w", i, opt.Label, err)
		}
		if ids[opt.ID] {
			return fmt.Errorf("duplicate option id: %s", opt.ID)
		}
		if labels[opt.Label] {
			return fmt.Errorf("duplicate option label: %s", opt.Label)
		}
		ids[opt.ID] = true
		labels[opt.Label] = true
	}

	return nil
}

// validateDefaults validates dealership-wide defaults.
func (ip *InputParser) validateDefaults(defaults *domain.DealDefaults) error {
	if defaults.DocFee.IsNegative() {
		return fmt.Errorf("doc fee cannot be negative")
	}
	if defaults.TitleRegFee.IsNegative() {
		return fmt.Errorf("title/reg fee cannot be negative")
	}
	if defaults.DefaultTaxRate.IsNegative() || defaults.DefaultTaxRate.GreaterThan(decimal.NewFromInt(30)) {
		return fmt.Errorf("default tax rate must be between 0%% and 30%%")
	}
	if defaults.DefaultFinanceTerm <= 0 {
		return fmt.Errorf("default finance term must be positive")
	}
	if defaults.DefaultLeaseTerm <= 0 {
		return fmt.Errorf("default lease term must be positive")
	}
	if defaults.DefaultAnnualMileage < 0 {
		return fmt.Errorf("default annual mileage cannot be negative")
	}
	if defaults.AcquisitionFee.IsNegative() {
		return fmt.Errorf("acquisition fee cannot be negative")
	}
	if defaults.DispositionFee.IsNegative() {
		return fmt.Errorf("disposition fee cannot be negative")
	}
	if defaults.ExcessMileageCharge.IsNegative() {
		return fmt.Errorf("excess mileage charge cannot be negative")
	}
	return nil
}

// validateTier validates a single credit tier.
func (ip *InputParser) validateTier(tier *domain.CreditTier) error {
	if tier.Name == "" {
		return fmt.Errorf("name is required")
	}
	if tier.APR == nil && tier.MoneyFactor == nil {
		return fmt.Errorf("at least one of apr and money_factor is required")
	}
	if tier.APR != nil && tier.APR.IsNegative() {
		return fmt.Errorf("apr cannot be negative")
	}
	if tier.MoneyFactor != nil && tier.MoneyFactor.IsNegative() {
		return fmt.Errorf("money factor cannot be negative")
	}
	return nil
}

// validateOption validates a single deal option.
func (ip *InputParser) validateOption(opt *domain.DealOption, tierNames map[string]bool) error {
	if opt.ID == "" {
		return fmt.Errorf("id is required")
	}
	if opt.Label == "" {
		return fmt.Errorf("label is required")
	}

	switch opt.Type {
	case domain.DealTypeFinance:
		if opt.TermMonths <= 0 {
			return fmt.Errorf("term_months must be positive")
		}
		if opt.APR.IsNegative() {
			return fmt.Errorf("apr cannot be negative")
		}
	case domain.DealTypeLease:
		if opt.LeaseTerm <= 0 {
			return fmt.Errorf("lease_term must be positive")
		}
		if opt.MoneyFactor.IsNegative() {
			return fmt.Errorf("money factor cannot be negative")
		}
		if opt.ResidualPct.IsNegative() || opt.ResidualPct.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("residual_pct must be between 0 and 100")
		}
	default:
		return fmt.Errorf("type must be %q or %q, got %q", domain.DealTypeFinance, domain.DealTypeLease, opt.Type)
	}

	// Trade value and payoff are independently non-negative; their difference
	// may be negative.
	nonNegative := []struct {
		name  string
		value decimal.Decimal
	}{
		{"selling_price", opt.SellingPrice},
		{"msrp", opt.MSRP},
		{"down_payment", opt.DownPayment},
		{"rebates", opt.Rebates},
		{"trade_value", opt.TradeValue},
		{"trade_payoff", opt.TradePayoff},
		{"doc_fee", opt.DocFee},
		{"title_reg_fee", opt.TitleRegFee},
		{"other_fees", opt.OtherFees},
		{"acquisition_fee", opt.AcquisitionFee},
		{"security_deposit", opt.SecurityDeposit},
		{"excess_mileage_charge", opt.ExcessMileageCharge},
		{"disposition_fee", opt.DispositionFee},
	}
	for _, field := range nonNegative {
		if field.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", field.name)
		}
	}

	if opt.TaxRate.IsNegative() || opt.TaxRate.GreaterThan(decimal.NewFromInt(30)) {
		return fmt.Errorf("tax_rate must be between 0%% and 30%%")
	}
	if opt.AnnualMileage < 0 {
		return fmt.Errorf("annual_mileage cannot be negative")
	}

	if opt.CreditTier != "" && !tierNames[opt.CreditTier] {
		return fmt.Errorf("credit_tier references unknown tier: %s", opt.CreditTier)
	}

	return nil
}
