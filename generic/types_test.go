package generic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/compound-engine/generic"
)

func TestParseAmount(t *testing.T) {
	a, err := generic.ParseAmount("1019.15")
	require.NoError(t, err)
	assert.Equal(t, "1019.15", a.String())

	a, err = generic.ParseAmount("1000")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", a.String())

	for _, bad := range []string{"", "abc", "1,000", "$5"} {
		_, err := generic.ParseAmount(bad)
		assert.True(t, generic.IsInvalidArgument(err), "input %q", bad)
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	a := generic.NewAmount(1000)
	b := generic.NewAmount(19.15)

	assert.Equal(t, "1019.15", a.Add(b).String())
	assert.Equal(t, "980.85", a.Sub(b).String())
	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, b.Sub(a).IsNegative())
	assert.True(t, a.IsPositive())
	assert.True(t, generic.NewAmountFromInt(1000).Equal(a))
	assert.InDelta(t, 1019.15, a.Add(b).Float64(), 1e-9)
}

func TestAmount_CentsRoundsHalfToEven(t *testing.T) {
	for in, want := range map[string]string{
		"0.125":  "0.12",
		"0.135":  "0.14",
		"0.1251": "0.13",
		"2.004":  "2.00",
	} {
		a, err := generic.ParseAmount(in)
		require.NoError(t, err)
		assert.Equal(t, want, a.Cents().Value.StringFixed(2), "input %s", in)
	}
}

func TestRate_Percent(t *testing.T) {
	assert.Equal(t, "2.00%", generic.NewRate(0.02).Percent())
	assert.Equal(t, "1.75%", generic.NewRate(0.0175).Percent())
	assert.Equal(t, "20.00%", generic.NewRate(0.2).Percent())

	r, err := generic.ParseRate("2")
	require.NoError(t, err)
	assert.True(t, r.FromPercent().Equal(generic.NewRate(0.02)))

	_, err = generic.ParseRate("two")
	assert.True(t, generic.IsInvalidArgument(err))
}

func TestErrorHelpers(t *testing.T) {
	argErr := &generic.ArgumentError{Param: "days", Value: -1, Reason: "must be a non-negative integer"}
	assert.Equal(t, "invalid days -1: must be a non-negative integer", argErr.Error())
	assert.Equal(t, "invalid start: must be a calendar date",
		(&generic.ArgumentError{Param: "start", Reason: "must be a calendar date"}).Error())

	wrapped := errors.Join(errors.New("context"), argErr)
	assert.True(t, generic.IsInvalidArgument(wrapped))
	assert.True(t, generic.IsClientError(wrapped))
	assert.False(t, generic.IsInvalidState(wrapped))

	assert.True(t, generic.IsClientError(&generic.OrderingError{}))
	assert.False(t, generic.IsClientError(errors.New("boom")))
}
