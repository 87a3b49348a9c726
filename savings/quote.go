package savings

import (
	"fmt"

	"github.com/warp/compound-engine/generic"
)

// =============================================================================
// QUOTE - Maturity then compounding, in one call
// =============================================================================

// Quote is the outcome of depositing Principal at APY on Start until Maturity.
type Quote struct {
	Principal generic.Amount
	APY       generic.Rate
	Start     generic.Date
	Maturity  generic.Date
	Result    generic.Amount
}

// ValidatePrincipal rejects deposits that are not strictly positive.
func ValidatePrincipal(principal generic.Amount) error {
	if !principal.IsPositive() {
		return &generic.ArgumentError{Param: "principal", Value: principal, Reason: "must be greater than zero"}
	}
	return nil
}

// DefaultMaxDays is the default horizon limit for callers that compound on
// behalf of others: one hundred years of daily credits.
const DefaultMaxDays = 36525

// ValidateHorizon rejects an end more than maxDays after start. An end before
// start is left for NewPeriod to report. maxDays <= 0 disables the check.
func ValidateHorizon(start, end generic.Date, maxDays int) error {
	if maxDays > 0 && start.DaysUntil(end) > maxDays {
		return &generic.ArgumentError{Param: "end", Value: end, Reason: fmt.Sprintf("is more than %d days after the start date", maxDays)}
	}
	return nil
}

// NewQuote derives the maturity date from off and compounds up to it.
func NewQuote(principal generic.Amount, apy generic.Rate, start generic.Date, off generic.Offset) (Quote, error) {
	maturity, err := generic.Maturity(start, off)
	if err != nil {
		return Quote{}, err
	}
	return QuoteUntil(principal, apy, start, maturity)
}

// QuoteUntil compounds up to an explicit maturity date.
func QuoteUntil(principal generic.Amount, apy generic.Rate, start, maturity generic.Date) (Quote, error) {
	result, err := Compound(principal, apy, start, maturity)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		Principal: principal,
		APY:       apy,
		Start:     start,
		Maturity:  maturity,
		Result:    result,
	}, nil
}

func (q Quote) Interest() generic.Amount { return q.Result.Sub(q.Principal) }

// String renders the one-line summary, e.g.
// "$1000.00 @ 2.00% APY = $1019.15 on 2022-02-03 ($19.15 in interest)".
func (q Quote) String() string {
	return fmt.Sprintf("$%s @ %s APY = $%s on %s ($%s in interest)",
		q.Principal, q.APY.Percent(), q.Result, q.Maturity, q.Interest())
}
