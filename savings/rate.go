/*
rate.go - APY to daily periodic rate conversion

PURPOSE:
  Converts an annual percentage yield into the daily rate that, credited
  once a day for DaysInYear days, reproduces the APY:

    daily = (1 + apy)^(1/365) - 1      so that   (1 + daily)^365 = 1 + apy

  The day count is always actual/365. A leap year simply gets one more
  credit at the same daily rate.

INPUT CONVENTION:
  APYs are decimal fractions (0.02 is 2%). Human input often says "2" for
  2%, so NormalizeAPY treats anything above a threshold as a whole-number
  percentage. Yields above 25% are rare enough that 0.25 is the default.

EXAMPLE:
  daily, err := savings.DailyRateFromAPY(generic.NewRate(0.02))
  // daily ≈ 0.0000542552

SEE ALSO:
  - compound.go: Applies the daily rate
  - cmd/compound/cmd/root.go: Applies NormalizeAPY to CLI input
*/
package savings

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/warp/compound-engine/generic"
)

// DaysInYear is the number of daily credits that make up one APY.
const DaysInYear = 365

// DefaultPercentThreshold separates fraction input from percentage input.
var DefaultPercentThreshold = generic.NewRate(0.25)

// DailyRateFromAPY returns the daily rate that compounds to apy in DaysInYear
// days. Negative yields are accepted; below -1 there is no real daily rate.
func DailyRateFromAPY(apy generic.Rate) (generic.Rate, error) {
	f := apy.Float64()
	if f < -1 {
		return generic.Rate{}, &generic.ArgumentError{Param: "apy", Value: apy, Reason: "must not be below -1"}
	}
	daily := math.Pow(1+f, 1/float64(DaysInYear)) - 1
	if math.IsNaN(daily) || math.IsInf(daily, 0) {
		return generic.Rate{}, &generic.ArgumentError{Param: "apy", Value: apy, Reason: "has no finite daily rate"}
	}
	return generic.Rate{Value: decimal.NewFromFloat(daily)}, nil
}

// NormalizeAPY reads raw as a percentage when it exceeds threshold and as a
// decimal fraction otherwise.
func NormalizeAPY(raw, threshold generic.Rate) generic.Rate {
	if raw.GreaterThan(threshold) {
		return raw.FromPercent()
	}
	return raw
}
