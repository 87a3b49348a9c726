package generic

// =============================================================================
// PERIOD - The span a balance is compounded over
// =============================================================================

// Period is the closed span [Start, End] of a deposit. Interest is credited
// once for every day after Start up to and including End, so a period that
// starts and ends on the same day earns nothing.
//
// Examples:
//   - One year:  2021-02-03 .. 2022-02-03 (365 credits)
//   - Same day:  2021-02-03 .. 2021-02-03 (0 credits)
type Period struct {
	Start Date
	End   Date
}

// NewPeriod validates the dates and their ordering.
func NewPeriod(start, end Date) (Period, error) {
	if start.IsZero() {
		return Period{}, &ArgumentError{Param: "start", Reason: "must be a calendar date"}
	}
	if end.IsZero() {
		return Period{}, &ArgumentError{Param: "end", Reason: "must be a calendar date"}
	}
	if end.Before(start) {
		return Period{}, &OrderingError{Start: start, End: end}
	}
	return Period{Start: start, End: end}, nil
}

// PeriodFor returns the period from start to the maturity reached by off.
func PeriodFor(start Date, off Offset) (Period, error) {
	end, err := Maturity(start, off)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(start, end)
}

// Elapsed is the number of calendar days from Start to End.
func (p Period) Elapsed() int { return p.End.Ordinal() - p.Start.Ordinal() }

// Contains returns true if the date is within the period [Start, End]
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
