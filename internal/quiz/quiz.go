// Package quiz implements the questionnaire-driven card recommendation:
// cascading AND filters mapped from the four quiz answers, ranked by rating.
package quiz

import (
	"strings"

	"github.com/credibundl/cardstack/internal/cards"
	"github.com/credibundl/cardstack/pkg/models"
)

// maxRecommendations caps the result to the top cards by rating.
const maxRecommendations = 2

// Answers holds the questionnaire responses. Empty or "all"/"no" values
// apply no filter for that question.
type Answers struct {
	Spend  string `json:"spend"`  // online, travel, fuel, dining, upi, all
	Fee    string `json:"fee"`    // yes = lifetime free only
	Lounge string `json:"lounge"` // yes = lounge access required
	Forex  string `json:"forex"`  // yes = zero forex markup required
}

// Recommend narrows the card list by each answered question in turn, ranks
// the survivors by rating descending, and returns at most the top 2. An
// empty result is a valid outcome, not an error.
func Recommend(answers Answers, cardList []models.Card) []models.Card {
	filtered := make([]models.Card, 0, len(cardList))
	for _, card := range cardList {
		if matches(card, answers) {
			filtered = append(filtered, card)
		}
	}

	cards.Sort(filtered, cards.SortByRating, cards.SortDesc)

	if len(filtered) > maxRecommendations {
		filtered = filtered[:maxRecommendations]
	}
	return filtered
}

func matches(card models.Card, a Answers) bool {
	if !matchesSpend(card, a.Spend) {
		return false
	}
	if a.Fee == "yes" && card.AnnualFee != 0 {
		return false
	}
	if a.Lounge == "yes" && !card.LoungeAccess {
		return false
	}
	if a.Forex == "yes" && !matchesForex(card) {
		return false
	}
	return true
}

// matchesSpend maps the spend answer to a card predicate. "all" and empty
// answers match everything.
func matchesSpend(card models.Card, spend string) bool {
	best := strings.ToLower(card.BestSpendCategory)
	switch spend {
	case "online":
		return strings.Contains(best, "online")
	case "travel":
		return strings.Contains(best, "travel")
	case "fuel":
		return strings.Contains(best, "fuel")
	case "dining":
		return strings.Contains(best, "dining") || strings.Contains(best, "entertainment")
	case "upi":
		return card.UPIRewards
	default:
		return true
	}
}

// matchesForex accepts forex-type cards and cards positioned for
// international spending.
func matchesForex(card models.Card) bool {
	if strings.Contains(strings.ToLower(string(card.CardType)), "forex") {
		return true
	}
	return strings.Contains(strings.ToLower(card.BestSpendCategory), "international")
}
