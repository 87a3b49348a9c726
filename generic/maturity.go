package generic

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// =============================================================================
// OFFSET - How far a maturity date lies from its start date
// =============================================================================

// Offset is a non-negative calendar distance. Months and years are applied
// first, landing on a real day of the target month; days are added last as
// plain ordinal arithmetic.
type Offset struct {
	Days   int
	Months int
	Years  int
}

// Validate rejects negative fields, naming the first offending one.
func (o Offset) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"days", o.Days},
		{"months", o.Months},
		{"years", o.Years},
	} {
		if f.value < 0 {
			return &ArgumentError{Param: f.name, Value: f.value, Reason: "must be a non-negative integer"}
		}
	}
	return nil
}

func (o Offset) IsZero() bool { return o == Offset{} }

func (o Offset) String() string {
	return fmt.Sprintf("%dy%dm%dd", o.Years, o.Months, o.Days)
}

// =============================================================================
// MATURITY
// =============================================================================

// maxDayRollback bounds the search for a real day in the target month. A
// 31st lands at worst on the 28th of a non-leap February.
const maxDayRollback = 3

// MaxYear is the last year a maturity date may fall in; dates stay
// representable as YYYY-MM-DD.
const MaxYear = 9999

// maxOffsetDays is the distance from 0001-01-01 to 9999-12-31. No offset
// field can exceed it and still land on or before MaxYear.
const maxOffsetDays = 3652058

// Maturity returns start moved forward by off.
//
// The year and month are shifted first. If start's day does not exist in the
// target month, the day is stepped back until it does and every step is
// carried forward as an extra day, so overflow rolls into the following month
// instead of clamping:
//
//	2021-01-31 + 1 month = 2021-02-28 + 3 days = 2021-03-03
//	2020-01-31 + 1 month = 2020-02-29 + 2 days = 2020-03-02
//
// The carried days and off.Days are then added via ordinal arithmetic.
func Maturity(start Date, off Offset) (Date, error) {
	if start.IsZero() {
		return Date{}, &ArgumentError{Param: "start", Reason: "must be a calendar date"}
	}
	if err := off.Validate(); err != nil {
		return Date{}, err
	}
	if off.Days > maxOffsetDays || off.Months/12 > MaxYear || off.Years > MaxYear {
		return Date{}, pastMaxYear(off)
	}

	years := off.Years + off.Months/12
	month := int(start.Month()) + off.Months%12
	if month > 12 {
		month -= 12
		years++
	}
	year := start.Year() + years
	if year > MaxYear {
		return Date{}, pastMaxYear(off)
	}

	carry := off.Days
	day := start.Day()
	landed := civil.Date{Year: year, Month: time.Month(month), Day: day}
	for rollback := 0; !landed.IsValid(); rollback++ {
		if rollback == maxDayRollback {
			return Date{}, fmt.Errorf("no calendar day near %04d-%02d-%02d: %w", year, month, start.Day(), ErrInvalidState)
		}
		day--
		carry++
		landed.Day = day
	}

	end := Date{d: landed}.AddDays(carry)
	if end.Year() > MaxYear {
		return Date{}, pastMaxYear(off)
	}
	return end, nil
}

func pastMaxYear(off Offset) error {
	return &ArgumentError{Param: "offset", Value: off, Reason: fmt.Sprintf("reaches past year %d", MaxYear)}
}

// AddMonths is Maturity with a month offset. n must be non-negative.
func (d Date) AddMonths(n int) (Date, error) { return Maturity(d, Offset{Months: n}) }

// AddYears is Maturity with a year offset. n must be non-negative.
func (d Date) AddYears(n int) (Date, error) { return Maturity(d, Offset{Years: n}) }
