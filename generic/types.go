/*
Package generic provides the calendar and money primitives of the calculator.

PURPOSE:
  This package contains the domain-agnostic value types and rules that the
  savings package composes: calendar dates with ordinal arithmetic, maturity
  offsets, periods, monetary amounts and rates. Nothing here knows about
  APY or compounding.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A monetary quantity in the single account currency
  - Rate: An annual yield or a derived periodic rate, as a decimal fraction

DESIGN PRINCIPLES:
  1. Immutability: Every type is a value; operations return new values
  2. Precision: Uses decimal.Decimal so cent-rounded ledgers add up exactly
  3. Validation at the edge: Constructors and parsers reject bad input with
     ErrInvalidArgument before any arithmetic runs

USAGE:
  principal, err := generic.ParseAmount("1000")
  apy := generic.NewRate(0.02)
  start := generic.MustDate(2021, time.February, 3)
  end, err := generic.Maturity(start, generic.Offset{Years: 1})

SEE ALSO:
  - time.go: Date and ordinal arithmetic
  - maturity.go: Offset and Maturity
  - errors.go: Error taxonomy
*/
package generic

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// =============================================================================
// AMOUNT - Money in the account currency
// =============================================================================

type Amount struct {
	Value decimal.Decimal
}

func NewAmount(value float64) Amount { return Amount{Value: decimal.NewFromFloat(value)} }

func NewAmountFromInt(value int64) Amount { return Amount{Value: decimal.NewFromInt(value)} }

// ParseAmount parses a decimal string such as "1000" or "1019.15".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, &ArgumentError{Param: "amount", Value: s, Reason: "not a number"}
	}
	return Amount{Value: d}, nil
}

func (a Amount) Add(b Amount) Amount { return Amount{Value: a.Value.Add(b.Value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{Value: a.Value.Sub(b.Value)} }
func (a Amount) IsNegative() bool { return a.Value.IsNegative() }
func (a Amount) IsZero() bool { return a.Value.IsZero() }
func (a Amount) IsPositive() bool { return a.Value.IsPositive() }
func (a Amount) GreaterThan(b Amount) bool { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool { return a.Value.LessThan(b.Value) }
func (a Amount) Equal(b Amount) bool { return a.Value.Equal(b.Value) }
func (a Amount) Float64() float64 { return a.Value.InexactFloat64() }

// Cents rounds to two decimal places, half to even.
func (a Amount) Cents() Amount { return Amount{Value: a.Value.RoundBank(2)} }

// String formats with exactly two decimal places.
func (a Amount) String() string { return a.Value.StringFixed(2) }

// =============================================================================
// RATE - Yield as a decimal fraction (0.02 is 2%)
// =============================================================================

type Rate struct {
	Value decimal.Decimal
}

func NewRate(value float64) Rate { return Rate{Value: decimal.NewFromFloat(value)} }

// ParseRate parses a decimal string such as "0.02".
func ParseRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, &ArgumentError{Param: "rate", Value: s, Reason: "not a number"}
	}
	return Rate{Value: d}, nil
}

func (r Rate) IsZero() bool { return r.Value.IsZero() }
func (r Rate) IsNegative() bool { return r.Value.IsNegative() }
func (r Rate) GreaterThan(o Rate) bool { return r.Value.GreaterThan(o.Value) }
func (r Rate) Equal(o Rate) bool { return r.Value.Equal(o.Value) }
func (r Rate) Float64() float64 { return r.Value.InexactFloat64() }
func (r Rate) String() string { return r.Value.String() }

// Percent formats the rate as a percentage with two decimals, e.g. "2.00%".
func (r Rate) Percent() string { return r.Value.Mul(hundred).StringFixed(2) + "%" }

// FromPercent reads r as a whole-number percentage (2 means 2%).
func (r Rate) FromPercent() Rate { return Rate{Value: r.Value.Div(hundred)} }
