package generic

// =============================================================================
// ACCRUAL SCHEDULE - Interface for how a balance grows
// =============================================================================

// AccrualSchedule generates the credits a balance receives over a span.
// Implementations define the business logic (daily balance method, etc.)
type AccrualSchedule interface {
	// GenerateAccruals returns one event per credit in (from, to]. The
	// balance is taken to be funded at from.
	GenerateAccruals(from, to Date) []AccrualEvent
}

// AccrualEvent represents a single credit and the balance right after it.
type AccrualEvent struct {
	At      Date
	Amount  Amount
	Balance Amount
	Reason  string
}

// Total sums the credited amounts.
func Total(events []AccrualEvent) Amount {
	var total Amount
	for _, e := range events {
		total = total.Add(e.Amount)
	}
	return total
}
