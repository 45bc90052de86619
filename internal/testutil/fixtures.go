package testutil

import (
	"github.com/credibundl/cardstack/pkg/models"
)

// NewCard returns a Card with sensible defaults, suitable for test fixtures.
// Override individual fields via options or after creation as needed.
func NewCard(opts ...func(*models.Card)) models.Card {
	c := models.Card{
		ID:                   "test-card",
		Name:                 "Test Rewards Card",
		Bank:                 "Test Bank",
		Slug:                 "test-rewards-card",
		Description:          "A card used only in tests.",
		CardType:             models.CardTypeRewards,
		RewardType:           models.RewardTypePoints,
		BestSpendCategory:    "All Purchases",
		RewardRate:           2,
		AnnualFee:            500,
		AnnualFeeWaiverSpend: 50000,
		Rewards: map[models.SpendCategory]float64{
			models.SpendFuel:      2,
			models.SpendGroceries: 2,
			models.SpendDining:    2,
			models.SpendTravel:    2,
			models.SpendOnline:    2,
			models.SpendOther:     2,
		},
		Category:    []string{"Cashback"},
		Rating:      4.0,
		ReviewCount: 100,
		LastUpdated: "2024-01-01",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithID sets the card id and slug together.
func WithID(id string) func(*models.Card) {
	return func(c *models.Card) {
		c.ID = id
		c.Slug = id
	}
}

// WithName sets the card name.
func WithName(name string) func(*models.Card) {
	return func(c *models.Card) { c.Name = name }
}

// WithRating sets the card rating.
func WithRating(r float64) func(*models.Card) {
	return func(c *models.Card) { c.Rating = r }
}

// WithRewardRate sets the headline reward rate.
func WithRewardRate(r float64) func(*models.Card) {
	return func(c *models.Card) { c.RewardRate = r }
}

// WithAnnualFee sets the annual fee and, for zero fees, clears the waiver
// threshold the way lifetime-free catalog records do.
func WithAnnualFee(fee float64) func(*models.Card) {
	return func(c *models.Card) {
		c.AnnualFee = fee
		if fee == 0 {
			c.AnnualFeeWaiverSpend = 0
		}
	}
}

// WithCategory sets the card's category tags.
func WithCategory(cats ...string) func(*models.Card) {
	return func(c *models.Card) { c.Category = cats }
}

// WithBestSpend sets the card's best spend category label.
func WithBestSpend(label string) func(*models.Card) {
	return func(c *models.Card) { c.BestSpendCategory = label }
}

// WithLounge marks the card as having lounge access.
func WithLounge() func(*models.Card) {
	return func(c *models.Card) { c.LoungeAccess = true }
}

// WithUPI marks the card as earning UPI rewards.
func WithUPI() func(*models.Card) {
	return func(c *models.Card) { c.UPIRewards = true }
}
