package cards

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/credibundl/cardstack/pkg/models"
)

// csvHeaders returns the CSV column headers for the card guide export.
func csvHeaders() []string {
	return []string{
		"Card Name", "Bank", "Card Type", "Reward Type", "Reward Rate (%)",
		"Annual Fee (₹)", "Fee Waiver Spend (₹)", "UPI Rewards", "Lounge Access",
		"Best Spend Category", "Rating", "Review Count", "Welcome Bonus",
		"Milestone Rewards", "Airport Lounge", "Concierge", "Insurance",
		"Min Income (₹)", "Age Range", "Employment Type",
		"Fuel Rewards (%)", "Groceries Rewards (%)", "Dining Rewards (%)",
		"Travel Rewards (%)", "Online Rewards (%)", "Other Rewards (%)",
		"Features", "Pros", "Cons", "Apply Link", "Last Updated",
	}
}

// cardToCSVRow converts a card to a CSV row (matching csvHeaders order).
// applyLink is resolved by the caller so link overrides are honored.
func cardToCSVRow(c models.Card, applyLink string) []string {
	return []string{
		c.Name,
		c.Bank,
		string(c.CardType),
		string(c.RewardType),
		formatFloat(c.RewardRate),
		formatFloat(c.AnnualFee),
		formatFloat(c.AnnualFeeWaiverSpend),
		yesNo(c.UPIRewards),
		yesNo(c.LoungeAccess),
		c.BestSpendCategory,
		formatFloat(c.Rating),
		strconv.Itoa(c.ReviewCount),
		c.Benefits.WelcomeBonus,
		c.Benefits.MilestoneRewards,
		c.Benefits.AirportLounge,
		available(c.Benefits.Concierge),
		strings.Join(c.Benefits.Insurance, ", "),
		formatFloat(c.Eligibility.MinIncome),
		fmt.Sprintf("%d-%d years", c.Eligibility.MinAge, c.Eligibility.MaxAge),
		strings.Join(c.Eligibility.EmploymentType, ", "),
		formatFloat(c.RewardRateFor(models.SpendFuel)),
		formatFloat(c.RewardRateFor(models.SpendGroceries)),
		formatFloat(c.RewardRateFor(models.SpendDining)),
		formatFloat(c.RewardRateFor(models.SpendTravel)),
		formatFloat(c.RewardRateFor(models.SpendOnline)),
		formatFloat(c.RewardRateFor(models.SpendOther)),
		strings.Join(c.Features, "; "),
		strings.Join(c.Pros, "; "),
		strings.Join(c.Cons, "; "),
		applyLink,
		c.LastUpdated,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func available(b bool) string {
	if b {
		return "Available"
	}
	return "Not Available"
}
