package calculation

import (
	"fmt"

	"github.com/lotworks/dealcalc/internal/domain"
)

// Engine dispatches each deal option to the calculator matching its type.
// The UI calls this after every field edit and re-renders the result; there
// is no shared state, so concurrent calls are safe.
type Engine struct {
	Finance *FinanceCalculator
	Lease   *LeaseCalculator
}

// NewEngine creates an engine with default calculators.
func NewEngine() *Engine {
	return &Engine{
		Finance: NewFinanceCalculator(),
		Lease:   NewLeaseCalculator(),
	}
}

// Compute runs the calculator selected by opt.Type.
func (e *Engine) Compute(opt *domain.DealOption) (domain.DealResult, error) {
	switch opt.Type {
	case domain.DealTypeFinance:
		r := e.Finance.Compute(opt)
		return domain.DealResult{Type: domain.DealTypeFinance, Finance: &r}, nil
	case domain.DealTypeLease:
		r := e.Lease.Compute(opt)
		return domain.DealResult{Type: domain.DealTypeLease, Lease: &r}, nil
	default:
		return domain.DealResult{}, fmt.Errorf("option %s: unknown deal type %q", opt.ID, opt.Type)
	}
}
