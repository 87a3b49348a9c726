/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Dates travel as
  YYYY-MM-DD strings and money as fixed two-decimal strings, so clients
  never see float rounding.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.
  Principal and APY accept either a JSON number or a numeric string.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"
	"github.com/warp/compound-engine/generic"
	"github.com/warp/compound-engine/savings"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// MaturityRequest asks for start + offsets. Start defaults to today.
type MaturityRequest struct {
	Start  string `json:"start,omitempty"`
	Days   int    `json:"days"`
	Months int    `json:"months"`
	Years  int    `json:"years"`
}

func (r MaturityRequest) offset() generic.Offset {
	return generic.Offset{Days: r.Days, Months: r.Months, Years: r.Years}
}

// CompoundRequest asks for a quote. When End is set it wins over the offsets.
type CompoundRequest struct {
	Principal decimal.Decimal `json:"principal"`
	APY       decimal.Decimal `json:"apy"`
	Start     string          `json:"start,omitempty"`
	End       string          `json:"end,omitempty"`
	Days      int             `json:"days"`
	Months    int             `json:"months"`
	Years     int             `json:"years"`
}

// StatementRequest asks for the daily ledger between two dates.
type StatementRequest struct {
	Principal decimal.Decimal `json:"principal"`
	APY       decimal.Decimal `json:"apy"`
	Start     string          `json:"start,omitempty"`
	End       string          `json:"end"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// DailyRateDTO is the rate conversion result.
type DailyRateDTO struct {
	APY        string `json:"apy"`
	APYPercent string `json:"apy_percent"`
	DailyRate  string `json:"daily_rate"`
}

// MaturityDTO is the maturity calculation result.
type MaturityDTO struct {
	Start       string `json:"start"`
	Maturity    string `json:"maturity"`
	ElapsedDays int    `json:"elapsed_days"`
}

// QuoteDTO is a compounding result.
type QuoteDTO struct {
	Principal   string `json:"principal"`
	APY         string `json:"apy"`
	APYPercent  string `json:"apy_percent"`
	Start       string `json:"start"`
	Maturity    string `json:"maturity"`
	ElapsedDays int    `json:"elapsed_days"`
	Result      string `json:"result"`
	Interest    string `json:"interest"`
	Summary     string `json:"summary"`
}

// EntryDTO is one daily credit.
type EntryDTO struct {
	Date    string `json:"date"`
	Credit  string `json:"credit"`
	Balance string `json:"balance"`
}

// StatementDTO is the day-by-day ledger.
type StatementDTO struct {
	Principal string     `json:"principal"`
	APY       string     `json:"apy"`
	DailyRate string     `json:"daily_rate"`
	Start     string     `json:"start"`
	End       string     `json:"end"`
	Final     string     `json:"final"`
	Interest  string     `json:"interest"`
	Entries   []EntryDTO `json:"entries"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toQuoteDTO(q savings.Quote) QuoteDTO {
	return QuoteDTO{
		Principal:   q.Principal.String(),
		APY:         q.APY.String(),
		APYPercent:  q.APY.Percent(),
		Start:       q.Start.String(),
		Maturity:    q.Maturity.String(),
		ElapsedDays: q.Start.DaysUntil(q.Maturity),
		Result:      q.Result.String(),
		Interest:    q.Interest().String(),
		Summary:     q.String(),
	}
}

func toStatementDTO(s *savings.Statement) StatementDTO {
	entries := make([]EntryDTO, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = EntryDTO{
			Date:    e.At.String(),
			Credit:  e.Amount.String(),
			Balance: e.Balance.String(),
		}
	}
	return StatementDTO{
		Principal: s.Principal.String(),
		APY:       s.APY.String(),
		DailyRate: s.DailyRate.String(),
		Start:     s.Period.Start.String(),
		End:       s.Period.End.String(),
		Final:     s.Final().String(),
		Interest:  s.Interest().String(),
		Entries:   entries,
	}
}
