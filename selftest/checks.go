package selftest

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/warp/compound-engine/generic"
	"github.com/warp/compound-engine/savings"
)

var referenceDay = generic.MustDate(2021, time.February, 3)

// Checks returns the default check list.
func Checks() []Check {
	return []Check{
		{"rate: daily rate compounds back to the APY", checkRateInversion},
		{"maturity: day offsets are ordinal distances", checkDayRoundTrip},
		{"maturity: 12 months equal 1 year", checkMonthYearForms},
		{"maturity: month-end rolls into the next month", checkMonthEndRollover},
		{"maturity: leap day advanced by whole years", checkLeapDayYears},
		{"maturity: negative offsets are rejected", checkNegativeOffsets},
		{"compound: zero elapsed days keeps the principal", checkZeroDuration},
		{"compound: end before start is rejected", checkOrdering},
		{"compound: one year at 2% and 20% APY", checkOneYear},
		{"compound: one day credits one rounded increment", checkSingleDay},
	}
}

func checkRateInversion() error {
	for _, apy := range []float64{0.01, 0.015, 0.0175, 0.02, 0.0225, 0.025, 0.0275, 0.03} {
		daily, err := savings.DailyRateFromAPY(generic.NewRate(apy))
		if err != nil {
			return err
		}
		if got := math.Pow(1+daily.Float64(), savings.DaysInYear); math.Abs(got-(1+apy)) > 1e-9 {
			return fmt.Errorf("apy %v compounds to %v", apy, got-1)
		}
	}
	return nil
}

func checkDayRoundTrip() error {
	for d := 0; d < savings.DaysInYear*3; d++ {
		got, err := generic.Maturity(referenceDay, generic.Offset{Days: d})
		if err != nil {
			return err
		}
		if dist := got.Ordinal() - referenceDay.Ordinal(); dist != d {
			return fmt.Errorf("days=%d landed %d days out", d, dist)
		}
	}
	return nil
}

func checkMonthYearForms() error {
	for k := 1; k <= 3; k++ {
		byMonths, err := generic.Maturity(referenceDay, generic.Offset{Months: 12 * k})
		if err != nil {
			return err
		}
		byYears, err := generic.Maturity(referenceDay, generic.Offset{Years: k})
		if err != nil {
			return err
		}
		if err := expectDate(byMonths, byYears); err != nil {
			return fmt.Errorf("k=%d: %w", k, err)
		}
	}
	return nil
}

func checkMonthEndRollover() error {
	for _, tc := range []struct {
		start generic.Date
		want  generic.Date
	}{
		{generic.MustDate(2020, time.January, 29), generic.MustDate(2020, time.February, 29)},
		{generic.MustDate(2020, time.January, 30), generic.MustDate(2020, time.March, 1)},
		{generic.MustDate(2021, time.January, 31), generic.MustDate(2021, time.March, 3)},
	} {
		got, err := generic.Maturity(tc.start, generic.Offset{Months: 1})
		if err != nil {
			return err
		}
		if err := expectDate(got, tc.want); err != nil {
			return fmt.Errorf("%s + 1 month: %w", tc.start, err)
		}
	}
	return nil
}

func checkLeapDayYears() error {
	leapDay := generic.MustDate(2020, time.February, 29)
	for years, want := range map[int]generic.Date{
		1: generic.MustDate(2021, time.March, 1),
		4: generic.MustDate(2024, time.February, 29),
	} {
		got, err := generic.Maturity(leapDay, generic.Offset{Years: years})
		if err != nil {
			return err
		}
		if err := expectDate(got, want); err != nil {
			return fmt.Errorf("+%d years: %w", years, err)
		}
	}
	return nil
}

func checkNegativeOffsets() error {
	for _, off := range []generic.Offset{{Days: -1}, {Months: -1}, {Years: -1}} {
		if _, err := generic.Maturity(referenceDay, off); !generic.IsInvalidArgument(err) {
			return fmt.Errorf("offset %s: want invalid argument, got %v", off, err)
		}
	}
	return nil
}

func checkZeroDuration() error {
	principal := generic.NewAmount(1000)
	got, err := savings.Compound(principal, generic.NewRate(0.2), referenceDay, referenceDay)
	if err != nil {
		return err
	}
	return expectAmount(got, principal)
}

func checkOrdering() error {
	_, err := savings.Compound(generic.NewAmount(1000), generic.NewRate(0.2), referenceDay.AddDays(1), referenceDay)
	if !errors.Is(err, generic.ErrInvalidState) {
		return fmt.Errorf("want invalid state, got %v", err)
	}
	return nil
}

func checkOneYear() error {
	maturity := generic.MustDate(2022, time.February, 3)
	for apy, want := range map[float64]string{0.02: "1019.15", 0.2: "1199.99"} {
		got, err := savings.Compound(generic.NewAmount(1000), generic.NewRate(apy), referenceDay, maturity)
		if err != nil {
			return err
		}
		if got.String() != want {
			return fmt.Errorf("apy %v: got %s, want %s", apy, got, want)
		}
	}
	return nil
}

func checkSingleDay() error {
	principal := generic.NewAmount(1000)
	apy := generic.NewRate(0.0275)
	daily, err := savings.DailyRateFromAPY(apy)
	if err != nil {
		return err
	}
	got, err := savings.Compound(principal, apy, referenceDay, referenceDay.AddDays(1))
	if err != nil {
		return err
	}
	want := generic.Amount{Value: principal.Value.Add(principal.Value.Mul(daily.Value).RoundBank(2))}
	return expectAmount(got, want)
}

func expectDate(got, want generic.Date) error {
	if !got.Equal(want) {
		return fmt.Errorf("got %s, want %s", got, want)
	}
	return nil
}

func expectAmount(got, want generic.Amount) error {
	if !got.Equal(want) {
		return fmt.Errorf("got %s, want %s", got, want)
	}
	return nil
}
