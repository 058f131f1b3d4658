package breakeven

import (
	"github.com/shopspring/decimal"

	"github.com/lotworks/dealcalc/internal/calculation"
	"github.com/lotworks/dealcalc/internal/domain"
)

// CompareCumulative walks two options month by month and reports where the
// cheaper one changes. Outlay at month m is the upfront cash plus every
// payment due through m; end-of-term charges such as the disposition fee are
// excluded, matching the comparison totals.
func CompareCumulative(engine *calculation.Engine, first, second *domain.DealOption) (*Crossover, error) {
	firstResult, err := engine.Compute(first)
	if err != nil {
		return nil, err
	}
	secondResult, err := engine.Compute(second)
	if err != nil {
		return nil, err
	}

	horizon := first.Term()
	if second.Term() > horizon {
		horizon = second.Term()
	}
	if horizon <= 0 {
		return nil, &Error{Operation: "crossover", Message: "both options have non-positive terms"}
	}

	cross := &Crossover{
		FirstLabel:  first.Label,
		SecondLabel: second.Label,
	}

	firstAhead := cumulativeAt(first, firstResult, 1).LessThan(cumulativeAt(second, secondResult, 1))
	cross.CheaperEarly = cross.SecondLabel
	if firstAhead {
		cross.CheaperEarly = cross.FirstLabel
	}
	cross.CheaperLate = cross.CheaperEarly

	for m := 2; m <= horizon; m++ {
		nowFirstAhead := cumulativeAt(first, firstResult, m).LessThan(cumulativeAt(second, secondResult, m))
		if nowFirstAhead != firstAhead {
			cross.Month = m
			cross.CheaperLate = cross.FirstLabel
			if !nowFirstAhead {
				cross.CheaperLate = cross.SecondLabel
			}
			break
		}
	}

	cross.FirstTotal = cumulativeAt(first, firstResult, horizon)
	cross.SecondTotal = cumulativeAt(second, secondResult, horizon)
	return cross, nil
}

func cumulativeAt(opt *domain.DealOption, result domain.DealResult, month int) decimal.Decimal {
	paid := month
	if term := opt.Term(); paid > term {
		paid = term
	}
	payment := result.MonthlyPayment()

	switch {
	case result.Finance != nil:
		return domain.RoundCents(opt.DownPayment.Add(payment.Mul(decimal.NewFromInt(int64(paid)))))
	case result.Lease != nil:
		// First payment is collected at signing inside DueAtSigning.
		return domain.RoundCents(result.Lease.DueAtSigning.Add(payment.Mul(decimal.NewFromInt(int64(paid - 1)))))
	default:
		return decimal.Zero
	}
}
