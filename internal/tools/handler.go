package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"go.uber.org/zap"

	"github.com/credibundl/cardstack/pkg/catalog"
	"github.com/credibundl/cardstack/pkg/models"
)

// EMIRequest is the body for POST /api/v1/tools/emi.
type EMIRequest struct {
	Principal  float64 `json:"principal"`
	Months     int     `json:"months"`
	AnnualRate float64 `json:"annual_rate"`
}

// BalanceTransferRequest is the body for POST /api/v1/tools/balance-transfer.
type BalanceTransferRequest struct {
	Balance     float64 `json:"balance"`
	OldRate     float64 `json:"old_rate"`
	NewRate     float64 `json:"new_rate"`
	TransferFee float64 `json:"transfer_fee"`
}

// BalanceTransferResponse mirrors BalanceTransferResult but encodes a
// never-recovered fee as a null break-even instead of +Inf, which JSON
// cannot represent.
type BalanceTransferResponse struct {
	OldMonthlyInterest float64  `json:"old_monthly_interest"`
	NewMonthlyInterest float64  `json:"new_monthly_interest"`
	MonthlySavings     float64  `json:"monthly_savings"`
	BreakEvenMonths    *float64 `json:"break_even_months"`
	AnnualSavings      float64  `json:"annual_savings"`
}

// FeeWaiverRequest is the body for POST /api/v1/tools/fee-waiver.
type FeeWaiverRequest struct {
	Tier        CardTier `json:"tier"`
	AnnualSpend float64  `json:"annual_spend"`
}

// EligibilityResponse pairs the score with the site's verdict copy.
type EligibilityResponse struct {
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`
}

// CreditScoreResponse pairs the simulated score with its rating band.
type CreditScoreResponse struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"`
}

// RewardsRequest is the body for POST /api/v1/tools/rewards.
type RewardsRequest struct {
	CardIDs []string                         `json:"card_ids"`
	Spend   map[models.SpendCategory]float64 `json:"spend"`
}

// RewardsResponse is the response for POST /api/v1/tools/rewards.
type RewardsResponse struct {
	TotalSpend float64            `json:"total_spend"`
	Results    []RewardsBreakdown `json:"results"`
}

// Handler serves the financial calculator API.
type Handler struct {
	cat    *catalog.Catalog
	logger *zap.Logger
}

// NewHandler creates a new calculator handler. The catalog is used by the
// rewards comparison; the other calculators are pure.
func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{cat: cat, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/tools/emi", h.handleEMI)
	mux.HandleFunc("POST /api/v1/tools/balance-transfer", h.handleBalanceTransfer)
	mux.HandleFunc("POST /api/v1/tools/fee-waiver", h.handleFeeWaiver)
	mux.HandleFunc("POST /api/v1/tools/eligibility", h.handleEligibility)
	mux.HandleFunc("POST /api/v1/tools/credit-score", h.handleCreditScore)
	mux.HandleFunc("POST /api/v1/tools/rewards", h.handleRewards)
}

func (h *Handler) handleEMI(w http.ResponseWriter, r *http.Request) {
	var req EMIRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Principal <= 0 {
		writeError(w, http.StatusBadRequest, "principal must be positive")
		return
	}
	if req.Months <= 0 {
		writeError(w, http.StatusBadRequest, "months must be positive")
		return
	}
	if req.AnnualRate < 0 {
		writeError(w, http.StatusBadRequest, "annual_rate must not be negative")
		return
	}

	writeJSON(w, http.StatusOK, ComputeEMI(req.Principal, req.Months, req.AnnualRate))
}

func (h *Handler) handleBalanceTransfer(w http.ResponseWriter, r *http.Request) {
	var req BalanceTransferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Balance <= 0 {
		writeError(w, http.StatusBadRequest, "balance must be positive")
		return
	}
	if req.OldRate < 0 || req.NewRate < 0 || req.TransferFee < 0 {
		writeError(w, http.StatusBadRequest, "rates and transfer_fee must not be negative")
		return
	}

	res := ComputeBalanceTransfer(req.Balance, req.OldRate, req.NewRate, req.TransferFee)

	resp := BalanceTransferResponse{
		OldMonthlyInterest: res.OldMonthlyInterest,
		NewMonthlyInterest: res.NewMonthlyInterest,
		MonthlySavings:     res.MonthlySavings,
		AnnualSavings:      res.AnnualSavings,
	}
	if !math.IsInf(res.BreakEvenMonths, 0) && !math.IsNaN(res.BreakEvenMonths) {
		resp.BreakEvenMonths = &res.BreakEvenMonths
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleFeeWaiver(w http.ResponseWriter, r *http.Request) {
	var req FeeWaiverRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.AnnualSpend < 0 {
		writeError(w, http.StatusBadRequest, "annual_spend must not be negative")
		return
	}

	res, ok := ComputeFeeWaiver(req.Tier, req.AnnualSpend)
	if !ok {
		writeError(w, http.StatusBadRequest,
			"tier must be one of basic, standard, premium, superPremium")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleEligibility(w http.ResponseWriter, r *http.Request) {
	var profile EligibilityProfile
	if !decodeBody(w, r, &profile) {
		return
	}

	if profile.Age < 0 || profile.AnnualIncome < 0 || profile.CreditScore < 0 || profile.ExistingCards < 0 {
		writeError(w, http.StatusBadRequest, "profile values must not be negative")
		return
	}

	score := ComputeEligibilityScore(profile)
	writeJSON(w, http.StatusOK, EligibilityResponse{
		Score:   score,
		Verdict: eligibilityVerdict(score),
	})
}

func (h *Handler) handleCreditScore(w http.ResponseWriter, r *http.Request) {
	var factors CreditFactors
	if !decodeBody(w, r, &factors) {
		return
	}

	if factors.OnTimePaymentPct < 0 || factors.OnTimePaymentPct > 100 {
		writeError(w, http.StatusBadRequest, "on_time_payment_pct must be between 0 and 100")
		return
	}
	if factors.UtilizationPct < 0 || factors.UtilizationPct > 100 {
		writeError(w, http.StatusBadRequest, "utilization_pct must be between 0 and 100")
		return
	}
	if factors.HistoryAgeYears < 0 || factors.NewInquiries < 0 {
		writeError(w, http.StatusBadRequest, "history and inquiries must not be negative")
		return
	}

	score := SimulateCreditScore(factors)
	writeJSON(w, http.StatusOK, CreditScoreResponse{
		Score:  score,
		Rating: creditScoreRating(score),
	})
}

func (h *Handler) handleRewards(w http.ResponseWriter, r *http.Request) {
	var req RewardsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.CardIDs) == 0 {
		writeError(w, http.StatusBadRequest, "card_ids must not be empty")
		return
	}
	for _, v := range req.Spend {
		if v < 0 {
			writeError(w, http.StatusBadRequest, "spend values must not be negative")
			return
		}
	}

	selected := make([]models.Card, 0, len(req.CardIDs))
	for _, id := range req.CardIDs {
		card, ok := h.cat.ByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("card %q not found", id))
			return
		}
		selected = append(selected, card)
	}

	total, results := ComputeRewards(selected, req.Spend)
	writeJSON(w, http.StatusOK, RewardsResponse{TotalSpend: total, Results: results})
}

// eligibilityVerdict maps a score to the site's approval copy.
func eligibilityVerdict(score int) string {
	switch {
	case score >= 80:
		return "Excellent! You have a high chance of approval."
	case score >= 60:
		return "Good! You have a reasonable chance of approval."
	case score >= 40:
		return "Fair. Consider improving your profile before applying."
	default:
		return "Low eligibility. Focus on improving your credit profile first."
	}
}

// creditScoreRating maps a simulated score to its band label.
func creditScoreRating(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 650:
		return "Good"
	case score >= 550:
		return "Fair"
	default:
		return "Poor"
	}
}

// -- helpers --

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://credibundl.com/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
