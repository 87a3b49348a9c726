/*
handlers.go - HTTP API handlers for the savings calculator

PURPOSE:
  Exposes the rate converter, maturity calculator and compounding engine
  via REST API. Handles HTTP request/response, JSON serialization, and
  delegates to the savings and generic packages.

ENDPOINTS:
  GET    /api/health                 {"status":"ok"}
  GET    /api/rates/daily?apy=0.02   Daily rate for an APY
  POST   /api/maturity               Maturity date from start + offsets
  POST   /api/compound               Quote for a deposit
  POST   /api/statement              Daily ledger for a deposit

REQUEST FLOW:
  1. Parse HTTP request
  2. Normalize the APY (values above the percent threshold are percentages)
  3. Call domain logic
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, invalid argument, span longer than MaxDays
  - 422: Invalid state (end date before start date)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/warp/compound-engine/generic"
	"github.com/warp/compound-engine/savings"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Logger           *slog.Logger
	PercentThreshold generic.Rate

	// MaxDays caps the days between start and end that one request may
	// compound. Zero disables the cap.
	MaxDays int

	// Today supplies the default start date. Tests pin it.
	Today func() generic.Date
}

// NewHandler creates a handler using the host clock.
func NewHandler(logger *slog.Logger, threshold generic.Rate, maxDays int) *Handler {
	return &Handler{
		Logger:           logger,
		PercentThreshold: threshold,
		MaxDays:          maxDays,
		Today:            generic.Today,
	}
}

// =============================================================================
// ENDPOINTS
// =============================================================================

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DailyRate converts the apy query parameter into a daily rate.
func (h *Handler) DailyRate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("apy")
	if raw == "" {
		h.fail(w, r, &generic.ArgumentError{Param: "apy", Reason: "query parameter is required"})
		return
	}
	parsed, err := generic.ParseRate(raw)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apy := savings.NormalizeAPY(parsed, h.PercentThreshold)
	daily, err := savings.DailyRateFromAPY(apy)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DailyRateDTO{
		APY:        apy.String(),
		APYPercent: apy.Percent(),
		DailyRate:  daily.String(),
	})
}

// Maturity computes start + offsets.
func (h *Handler) Maturity(w http.ResponseWriter, r *http.Request) {
	var req MaturityRequest
	if !decode(w, r, &req) {
		return
	}

	start, err := h.startDate(req.Start)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	maturity, err := generic.Maturity(start, req.offset())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MaturityDTO{
		Start:       start.String(),
		Maturity:    maturity.String(),
		ElapsedDays: start.DaysUntil(maturity),
	})
}

// Compound quotes a deposit, either until End or until start + offsets.
func (h *Handler) Compound(w http.ResponseWriter, r *http.Request) {
	var req CompoundRequest
	if !decode(w, r, &req) {
		return
	}

	principal, apy, err := h.terms(req.Principal, req.APY)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	start, err := h.startDate(req.Start)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var end generic.Date
	if req.End != "" {
		end, err = generic.ParseDate(req.End)
	} else {
		end, err = generic.Maturity(start, generic.Offset{Days: req.Days, Months: req.Months, Years: req.Years})
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := savings.ValidateHorizon(start, end, h.MaxDays); err != nil {
		h.fail(w, r, err)
		return
	}

	quote, err := savings.QuoteUntil(principal, apy, start, end)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuoteDTO(quote))
}

// Statement returns every daily credit between start and end.
func (h *Handler) Statement(w http.ResponseWriter, r *http.Request) {
	var req StatementRequest
	if !decode(w, r, &req) {
		return
	}

	principal, apy, err := h.terms(req.Principal, req.APY)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	start, err := h.startDate(req.Start)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if req.End == "" {
		h.fail(w, r, &generic.ArgumentError{Param: "end", Reason: "is required"})
		return
	}
	end, err := generic.ParseDate(req.End)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := savings.ValidateHorizon(start, end, h.MaxDays); err != nil {
		h.fail(w, r, err)
		return
	}

	stmt, err := savings.NewStatement(principal, apy, start, end)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatementDTO(stmt))
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) startDate(s string) (generic.Date, error) {
	if s == "" {
		return h.Today(), nil
	}
	return generic.ParseDate(s)
}

func (h *Handler) terms(principal, apy decimal.Decimal) (generic.Amount, generic.Rate, error) {
	p := generic.Amount{Value: principal}
	if err := savings.ValidatePrincipal(p); err != nil {
		return generic.Amount{}, generic.Rate{}, err
	}
	return p, savings.NormalizeAPY(generic.Rate{Value: apy}, h.PercentThreshold), nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON", err)
		return false
	}
	return true
}

// fail maps domain errors to status codes. Only unexpected errors are logged.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case generic.IsInvalidArgument(err):
		writeError(w, http.StatusBadRequest, "Invalid argument", err)
	case generic.IsInvalidState(err):
		writeError(w, http.StatusUnprocessableEntity, "Invalid state", err)
	default:
		h.Logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
