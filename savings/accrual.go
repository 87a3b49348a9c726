package savings

import (
	"github.com/warp/compound-engine/generic"
)

// =============================================================================
// DAILY BALANCE SCHEDULE
// =============================================================================

// DailyBalance implements generic.AccrualSchedule for the daily balance
// method: Principal is funded at the start and earns DailyRate on its running
// balance once per calendar day.
type DailyBalance struct {
	Principal generic.Amount
	DailyRate generic.Rate
}

var _ generic.AccrualSchedule = (*DailyBalance)(nil)

// GenerateAccruals returns one credit per day in (from, to]. Nothing is
// generated when to is not after from.
func (db *DailyBalance) GenerateAccruals(from, to generic.Date) []generic.AccrualEvent {
	n := from.DaysUntil(to)
	if n <= 0 {
		return nil
	}

	events := make([]generic.AccrualEvent, 0, n)
	balance := db.Principal.Value
	for day := 1; day <= n; day++ {
		c := credit(balance, db.DailyRate.Value)
		balance = balance.Add(c)
		events = append(events, generic.AccrualEvent{
			At:      from.AddDays(day),
			Amount:  generic.Amount{Value: c},
			Balance: generic.Amount{Value: balance},
			Reason:  "daily interest",
		})
	}
	return events
}
