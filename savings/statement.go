package savings

import (
	"github.com/warp/compound-engine/generic"
)

// Statement is the day-by-day ledger behind a Compound result.
type Statement struct {
	Principal generic.Amount
	APY       generic.Rate
	DailyRate generic.Rate
	Period    generic.Period
	Entries   []generic.AccrualEvent
}

// NewStatement validates the inputs exactly like Compound and records every
// daily credit.
func NewStatement(principal generic.Amount, apy generic.Rate, start, end generic.Date) (*Statement, error) {
	period, err := generic.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	daily, err := DailyRateFromAPY(apy)
	if err != nil {
		return nil, err
	}

	schedule := &DailyBalance{Principal: principal, DailyRate: daily}
	return &Statement{
		Principal: principal,
		APY:       apy,
		DailyRate: daily,
		Period:    period,
		Entries:   schedule.GenerateAccruals(period.Start, period.End),
	}, nil
}

// Final is the balance after the last credit; it equals Compound's result.
func (s *Statement) Final() generic.Amount {
	if len(s.Entries) == 0 {
		return s.Principal
	}
	return s.Entries[len(s.Entries)-1].Balance
}

// Interest is the sum of all credits.
func (s *Statement) Interest() generic.Amount { return generic.Total(s.Entries) }
