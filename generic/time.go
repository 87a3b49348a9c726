package generic

import (
	"time"

	"cloud.google.com/go/civil"
)

// =============================================================================
// DATE - Calendar day without time of day or location
// =============================================================================

// Date is a valid Gregorian calendar day. The zero Date means "unset" and is
// rejected by every operation that needs a date.
type Date struct {
	d civil.Date
}

// epoch is ordinal day 1.
var epoch = civil.Date{Year: 1, Month: time.January, Day: 1}

// Constructors
func NewDate(year int, month time.Month, day int) (Date, error) {
	cd := civil.Date{Year: year, Month: month, Day: day}
	if !cd.IsValid() {
		return Date{}, &ArgumentError{Param: "date", Value: cd, Reason: "not a calendar day"}
	}
	return Date{d: cd}, nil
}

// MustDate is NewDate for literals known to be valid. It panics otherwise.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (Date, error) {
	cd, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, &ArgumentError{Param: "date", Value: s, Reason: "want YYYY-MM-DD"}
	}
	return Date{d: cd}, nil
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date { return Date{d: civil.DateOf(t)} }

func Today() Date { return DateOf(time.Now()) }

// FromOrdinal is the inverse of Date.Ordinal.
func FromOrdinal(n int) (Date, error) {
	if n < 1 {
		return Date{}, &ArgumentError{Param: "ordinal", Value: n, Reason: "must be at least 1"}
	}
	return Date{d: epoch.AddDays(n - 1)}, nil
}

// Comparison
func (d Date) Before(other Date) bool { return d.d.Before(other.d) }
func (d Date) After(other Date) bool { return d.d.After(other.d) }
func (d Date) Equal(other Date) bool { return d.d == other.d }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool { return !d.Before(other) }

// Compare returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case d.After(other):
		return 1
	default:
		return 0
	}
}

// Ordinal counts days from 0001-01-01, which is day 1.
func (d Date) Ordinal() int { return d.d.DaysSince(epoch) + 1 }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{d: d.d.AddDays(n)} }

// DaysUntil returns the whole calendar days from d to other; negative if
// other is earlier.
func (d Date) DaysUntil(other Date) int { return other.d.DaysSince(d.d) }

// Properties
func (d Date) Year() int { return d.d.Year }
func (d Date) Month() time.Month { return d.d.Month }
func (d Date) Day() int { return d.d.Day }
func (d Date) IsZero() bool { return d.d == civil.Date{} }
func (d Date) IsLeapYear() bool { return IsLeapYear(d.d.Year) }
func (d Date) DaysInMonth() int { return DaysInMonth(d.d.Year, d.d.Month) }
func (d Date) Civil() civil.Date { return d.d }
func (d Date) String() string { return d.d.String() }

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) { return d.d.MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// CALENDAR UTILITIES
// =============================================================================

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func DaysBetween(from, to Date) int { return from.DaysUntil(to) }
