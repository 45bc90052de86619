// Package tools implements the financial calculators: savings projection,
// EMI, balance transfer, fee waiver, eligibility scoring, and credit-score
// simulation. All functions are pure and total over their input domain.
package tools

import (
	"math"

	"github.com/credibundl/cardstack/pkg/models"
)

// Savings is the derived projection for one card at a given monthly spend.
type Savings struct {
	CardID              string  `json:"card_id"`
	MonthlyCashback     float64 `json:"monthly_cashback"`
	AnnualCashback      float64 `json:"annual_cashback"`
	IsFeeWaived         bool    `json:"is_fee_waived"`
	NetAnnualSavings    float64 `json:"net_annual_savings"`
	EffectiveRewardRate float64 `json:"effective_reward_rate"`
}

// ComputeSavings projects cashback and net savings for a card at the given
// monthly spend. The effective rate is defined as 0 when monthlySpend is 0
// rather than propagating a division by zero.
func ComputeSavings(card models.Card, monthlySpend float64) Savings {
	monthlyCashback := monthlySpend * card.RewardRate / 100
	annualCashback := monthlyCashback * 12
	annualSpend := monthlySpend * 12
	isFeeWaived := annualSpend >= card.AnnualFeeWaiverSpend

	net := annualCashback
	if !isFeeWaived {
		net -= card.AnnualFee
	}

	effective := 0.0
	if annualSpend != 0 {
		effective = net / annualSpend * 100
	}

	return Savings{
		CardID:              card.ID,
		MonthlyCashback:     monthlyCashback,
		AnnualCashback:      annualCashback,
		IsFeeWaived:         isFeeWaived,
		NetAnnualSavings:    net,
		EffectiveRewardRate: effective,
	}
}

// EMIResult holds an amortization schedule summary.
type EMIResult struct {
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}

// ComputeEMI returns the equal monthly installment for a principal amortized
// over months at the given annual rate. A zero rate degenerates to simple
// division, the standard amortization identity.
func ComputeEMI(principal float64, months int, annualRatePercent float64) EMIResult {
	if months <= 0 {
		return EMIResult{}
	}

	monthlyRate := annualRatePercent / 12 / 100

	var emi float64
	if monthlyRate == 0 {
		emi = principal / float64(months)
	} else {
		factor := math.Pow(1+monthlyRate, float64(months))
		emi = principal * monthlyRate * factor / (factor - 1)
	}

	total := emi * float64(months)
	return EMIResult{
		EMI:           emi,
		TotalPayment:  total,
		TotalInterest: total - principal,
	}
}

// BalanceTransferResult summarizes moving a balance to a lower-rate card.
//
// BreakEvenMonths is the authoritative figure: the number of months of
// interest savings needed to recover the one-time transfer fee.
// MonthlySavings keeps the site's historical convention of netting the flat
// fee against a single month's savings, so it understates steady-state
// savings; see AnnualSavings for the fee-adjusted yearly figure.
type BalanceTransferResult struct {
	OldMonthlyInterest float64 `json:"old_monthly_interest"`
	NewMonthlyInterest float64 `json:"new_monthly_interest"`
	MonthlySavings     float64 `json:"monthly_savings"`
	BreakEvenMonths    float64 `json:"break_even_months"`
	AnnualSavings      float64 `json:"annual_savings"`
}

// ComputeBalanceTransfer analyzes transferring balance from an old rate to a
// new rate for a flat one-time fee. When the new rate saves nothing,
// BreakEvenMonths is +Inf (or NaN for a zero fee as well).
func ComputeBalanceTransfer(balance, oldRatePercent, newRatePercent, transferFee float64) BalanceTransferResult {
	oldInterest := balance * oldRatePercent / 100
	newInterest := balance * newRatePercent / 100
	interestSavings := oldInterest - newInterest

	monthlySavings := interestSavings - transferFee
	annualSavings := interestSavings*12 - transferFee

	return BalanceTransferResult{
		OldMonthlyInterest: oldInterest,
		NewMonthlyInterest: newInterest,
		MonthlySavings:     monthlySavings,
		BreakEvenMonths:    transferFee / interestSavings,
		AnnualSavings:      annualSavings,
	}
}

// CardTier identifies a fee/waiver bracket in the fee-waiver calculator.
type CardTier string

const (
	TierBasic        CardTier = "basic"
	TierStandard     CardTier = "standard"
	TierPremium      CardTier = "premium"
	TierSuperPremium CardTier = "superPremium"
)

// tierTable holds the fixed fee and waiver threshold per card tier.
var tierTable = map[CardTier]struct {
	AnnualFee       float64
	WaiverThreshold float64
}{
	TierBasic:        {AnnualFee: 500, WaiverThreshold: 50000},
	TierStandard:     {AnnualFee: 1000, WaiverThreshold: 100000},
	TierPremium:      {AnnualFee: 2500, WaiverThreshold: 150000},
	TierSuperPremium: {AnnualFee: 5000, WaiverThreshold: 300000},
}

// FeeWaiverResult reports whether an annual spend clears a tier's waiver
// threshold, and the shortfall if it does not.
type FeeWaiverResult struct {
	Tier            CardTier `json:"tier"`
	AnnualFee       float64  `json:"annual_fee"`
	WaiverThreshold float64  `json:"waiver_threshold"`
	IsWaived        bool     `json:"is_waived"`
	Shortfall       float64  `json:"shortfall"`
	Savings         float64  `json:"savings"`
}

// ComputeFeeWaiver checks an annual spend against the tier's waiver
// threshold. Unknown tiers return ok=false.
func ComputeFeeWaiver(tier CardTier, annualSpend float64) (FeeWaiverResult, bool) {
	t, ok := tierTable[tier]
	if !ok {
		return FeeWaiverResult{}, false
	}

	r := FeeWaiverResult{
		Tier:            tier,
		AnnualFee:       t.AnnualFee,
		WaiverThreshold: t.WaiverThreshold,
		IsWaived:        annualSpend >= t.WaiverThreshold,
	}
	if r.IsWaived {
		r.Savings = t.AnnualFee
	} else {
		r.Shortfall = t.WaiverThreshold - annualSpend
	}
	return r, true
}

// EligibilityProfile is the applicant self-report for the eligibility check.
type EligibilityProfile struct {
	Age           int     `json:"age"`
	AnnualIncome  float64 `json:"annual_income"`
	Employment    string  `json:"employment"` // salaried, self-employed, other
	CreditScore   int     `json:"credit_score"`
	ExistingCards int     `json:"existing_cards"`
}

// ComputeEligibilityScore applies the fixed bracket point table to a profile
// and clamps the result to [0,100]. The brackets are a marketing heuristic,
// not an underwriting model.
func ComputeEligibilityScore(p EligibilityProfile) int {
	score := 0

	// Age factor
	switch {
	case p.Age >= 21 && p.Age <= 65:
		score += 25
	case p.Age >= 18 && p.Age < 21:
		score += 15
	}

	// Income factor
	switch {
	case p.AnnualIncome >= 500000:
		score += 30
	case p.AnnualIncome >= 300000:
		score += 25
	case p.AnnualIncome >= 150000:
		score += 20
	case p.AnnualIncome >= 50000:
		score += 15
	}

	// Employment factor
	switch p.Employment {
	case "salaried":
		score += 20
	case "self-employed":
		score += 15
	default:
		score += 10
	}

	// Credit score factor
	switch {
	case p.CreditScore >= 750:
		score += 25
	case p.CreditScore >= 650:
		score += 20
	case p.CreditScore >= 550:
		score += 15
	}

	// Existing cards factor
	switch {
	case p.ExistingCards == 0:
		score += 10
	case p.ExistingCards <= 2:
		score += 5
	default:
		score -= 5
	}

	return clampInt(score, 0, 100)
}

// CreditFactors are the inputs to the credit-score simulator.
type CreditFactors struct {
	OnTimePaymentPct float64 `json:"on_time_payment_pct"`
	UtilizationPct   float64 `json:"utilization_pct"`
	HistoryAgeYears  float64 `json:"history_age_years"`
	NewInquiries     int     `json:"new_inquiries"`
	CreditMix        string  `json:"credit_mix"` // excellent, good, or poor
}

// creditScoreBaseline is the starting point for the simulation.
const creditScoreBaseline = 700

// SimulateCreditScore applies the fixed per-factor adjustment table to the
// baseline and clamps to [300,900].
func SimulateCreditScore(f CreditFactors) int {
	score := creditScoreBaseline

	// Payment history
	switch {
	case f.OnTimePaymentPct >= 99:
		score += 40
	case f.OnTimePaymentPct >= 95:
		score += 20
	default:
		score -= 30
	}

	// Utilization
	switch {
	case f.UtilizationPct <= 10:
		score += 30
	case f.UtilizationPct <= 30:
		score += 10
	default:
		score -= 20
	}

	// History age
	switch {
	case f.HistoryAgeYears >= 5:
		score += 20
	case f.HistoryAgeYears >= 2:
		score += 10
	default:
		score -= 10
	}

	// New inquiries
	switch {
	case f.NewInquiries <= 2:
		score += 10
	case f.NewInquiries <= 5:
		score -= 10
	default:
		score -= 20
	}

	// Credit mix
	if f.CreditMix == "good" || f.CreditMix == "excellent" {
		score += 10
	} else {
		score -= 10
	}

	return clampInt(score, 300, 900)
}

// RewardsBreakdown is the per-card outcome of the category rewards
// comparison.
type RewardsBreakdown struct {
	CardID        string  `json:"card_id"`
	CardName      string  `json:"card_name"`
	TotalRewards  float64 `json:"total_rewards"`
	AnnualFee     float64 `json:"annual_fee"`
	AnnualSavings float64 `json:"annual_savings"`
	ROI           float64 `json:"roi"`
}

// ComputeRewards totals category-specific rewards for each card over a
// monthly spend broken down by category, nets out the annual fee, and
// expresses the result as a return on total spend.
func ComputeRewards(cardsIn []models.Card, spend map[models.SpendCategory]float64) (float64, []RewardsBreakdown) {
	var totalSpend float64
	for _, v := range spend {
		totalSpend += v
	}

	results := make([]RewardsBreakdown, 0, len(cardsIn))
	for _, card := range cardsIn {
		var rewards float64
		for cat, amount := range spend {
			rewards += amount * card.RewardRateFor(cat) / 100
		}
		savings := rewards - card.AnnualFee

		roi := 0.0
		if totalSpend > 0 {
			roi = savings / totalSpend * 100
		}

		results = append(results, RewardsBreakdown{
			CardID:        card.ID,
			CardName:      card.Name,
			TotalRewards:  rewards,
			AnnualFee:     card.AnnualFee,
			AnnualSavings: savings,
			ROI:           roi,
		})
	}
	return totalSpend, results
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
