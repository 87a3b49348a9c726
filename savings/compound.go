package savings

import (
	"github.com/shopspring/decimal"
	"github.com/warp/compound-engine/generic"
)

// =============================================================================
// COMPOUNDING ENGINE - Daily balance method
// =============================================================================

// Compound returns principal compounded daily at apy from start to end.
//
// Each elapsed calendar day credits round(balance * daily, 2) to the balance.
// Only the credit is rounded; the running balance is never rounded itself, so
// the result is what a ledger of cent-denominated daily credits adds up to.
// Zero elapsed days or a zero APY return the principal unchanged.
func Compound(principal generic.Amount, apy generic.Rate, start, end generic.Date) (generic.Amount, error) {
	period, err := generic.NewPeriod(start, end)
	if err != nil {
		return generic.Amount{}, err
	}
	daily, err := DailyRateFromAPY(apy)
	if err != nil {
		return generic.Amount{}, err
	}

	balance := principal.Value
	for i := 0; i < period.Elapsed(); i++ {
		balance = balance.Add(credit(balance, daily.Value))
	}
	return generic.Amount{Value: balance}, nil
}

// credit is one day's interest on balance, rounded to the cent.
func credit(balance, daily decimal.Decimal) decimal.Decimal {
	return balance.Mul(daily).RoundBank(2)
}
