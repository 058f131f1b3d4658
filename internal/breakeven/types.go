package breakeven

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Parameter identifies which deal input the solver is allowed to move.
type Parameter string

const (
	AdjustDownPayment  Parameter = "down_payment"
	AdjustSellingPrice Parameter = "selling_price"
)

// SolverOptions bound the bisection loop.
type SolverOptions struct {
	MaxIterations int
	// Tolerance is in dollars of monthly payment.
	Tolerance decimal.Decimal
}

// DefaultSolverOptions returns solver settings suitable for desking: a
// payment within one cent of target, found well inside 64 halvings.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 64,
		Tolerance:     decimal.NewFromFloat(0.01),
	}
}

// Result describes one solver run.
type Result struct {
	Success         bool            `json:"success"`
	Iterations      int             `json:"iterations"`
	Parameter       Parameter       `json:"parameter"`
	Value           decimal.Decimal `json:"value"`
	AchievedPayment decimal.Decimal `json:"achieved_payment"`
	TargetPayment   decimal.Decimal `json:"target_payment"`
	ConvergenceInfo string          `json:"convergence_info,omitempty"`
}

// Crossover reports the month at which one option's cumulative outlay
// overtakes the other's. Month is 0 when the cheaper option never changes
// inside the compared horizon.
type Crossover struct {
	FirstLabel   string          `json:"first_label"`
	SecondLabel  string          `json:"second_label"`
	Month        int             `json:"month"`
	FirstTotal   decimal.Decimal `json:"first_total"`
	SecondTotal  decimal.Decimal `json:"second_total"`
	CheaperEarly string          `json:"cheaper_early"`
	CheaperLate  string          `json:"cheaper_late"`
}

// Error carries the failing operation alongside the message.
type Error struct {
	Operation string
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("breakeven %s: %s", e.Operation, e.Message)
}
