package breakeven

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lotworks/dealcalc/internal/calculation"
	"github.com/lotworks/dealcalc/internal/domain"
)

// Solver bisects one deal input until the computed monthly payment lands on
// a target. Monthly payment is monotone in both supported parameters, which
// makes plain bisection sufficient: it rises with selling price and falls
// with down payment.
type Solver struct {
	Engine  *calculation.Engine
	Options SolverOptions
}

// NewSolver creates a solver with the given options.
func NewSolver(engine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{Engine: engine, Options: options}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// SolveForPayment finds the value of param that brings opt's monthly payment
// within tolerance of target. The input option is never modified.
func (s *Solver) SolveForPayment(opt *domain.DealOption, param Parameter, target decimal.Decimal) (*Result, error) {
	if target.IsNegative() {
		return nil, &Error{Operation: "solve", Message: "target payment cannot be negative"}
	}

	var lo, hi decimal.Decimal
	var increasing bool
	switch param {
	case AdjustDownPayment:
		// Enough cash down always drives the payment to zero.
		lo = decimal.Zero
		hi = opt.SellingPrice.Mul(decimal.NewFromInt(2))
		increasing = false
	case AdjustSellingPrice:
		lo = decimal.Zero
		hi = opt.SellingPrice.Mul(decimal.NewFromInt(4))
		increasing = true
	default:
		return nil, &Error{Operation: "solve", Message: fmt.Sprintf("unsupported parameter: %s", param)}
	}

	payLo, err := s.paymentAt(opt, param, lo)
	if err != nil {
		return nil, err
	}
	payHi, err := s.paymentAt(opt, param, hi)
	if err != nil {
		return nil, err
	}

	min, max := payLo, payHi
	if min.GreaterThan(max) {
		min, max = max, min
	}
	if target.LessThan(min) || target.GreaterThan(max) {
		return &Result{
			Parameter:     param,
			TargetPayment: target,
			ConvergenceInfo: fmt.Sprintf("target %s outside reachable payment range [%s, %s]",
				target.StringFixed(2), min.StringFixed(2), max.StringFixed(2)),
		}, nil
	}

	result := &Result{Parameter: param, TargetPayment: target}
	for result.Iterations < s.Options.MaxIterations {
		result.Iterations++
		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		payment, err := s.paymentAt(opt, param, mid)
		if err != nil {
			return nil, err
		}

		result.Value = domain.RoundCents(mid)
		result.AchievedPayment = payment
		if payment.Sub(target).Abs().LessThanOrEqual(s.Options.Tolerance) {
			result.Success = true
			result.ConvergenceInfo = fmt.Sprintf("converged after %d iterations", result.Iterations)
			return result, nil
		}

		tooHigh := payment.GreaterThan(target)
		if tooHigh == increasing {
			hi = mid
		} else {
			lo = mid
		}
	}

	result.ConvergenceInfo = fmt.Sprintf("no convergence within %d iterations", s.Options.MaxIterations)
	return result, nil
}

func (s *Solver) paymentAt(opt *domain.DealOption, param Parameter, value decimal.Decimal) (decimal.Decimal, error) {
	probe := opt.DeepCopy()
	switch param {
	case AdjustDownPayment:
		probe.DownPayment = value
	case AdjustSellingPrice:
		probe.SellingPrice = value
	}
	result, err := s.Engine.Compute(probe)
	if err != nil {
		return decimal.Zero, err
	}
	return result.MonthlyPayment(), nil
}
