/*
errors.go - Centralized error types for the calculation core

PURPOSE:
  All error types in one place for consistency and discoverability.
  Every failure in the core falls into one of two kinds:

    InvalidArgument - a parameter has the wrong shape or a negative value
                      where a non-negative one is required
    InvalidState    - a required ordering is violated (end before start)

  Errors are returned before any computation starts. The core never logs
  or swallows them; callers decide how to present them.

USAGE:
  Callers branch on the kind with errors.Is():

    if errors.Is(err, generic.ErrInvalidState) {
        // end date precedes start date
    }

  or pull out the details with errors.As():

    var argErr *generic.ArgumentError
    if errors.As(err, &argErr) {
        fmt.Println(argErr.Param)
    }

SEE ALSO:
  - maturity.go: Offset validation
  - period.go: Ordering validation
  - api/handlers.go: Maps error kinds to HTTP status codes
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidArgument is returned when a parameter cannot be used as given:
	// an unset date, an unparseable number, a negative offset.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when a logically required ordering is
	// violated, e.g. a maturity date before the start date.
	ErrInvalidState = errors.New("invalid state")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ArgumentError names the offending parameter and why it was rejected.
type ArgumentError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// OrderingError reports an end date that precedes its start date.
type OrderingError struct {
	Start Date
	End   Date
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("end date %s precedes start date %s", e.End, e.Start)
}

func (e *OrderingError) Unwrap() error {
	return ErrInvalidState
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }
func IsInvalidState(err error) bool { return errors.Is(err, ErrInvalidState) }

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return IsInvalidArgument(err) || IsInvalidState(err)
}
