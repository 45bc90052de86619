package models

// CardType categorizes a credit card by its primary positioning.
type CardType string

const (
	CardTypeCashback     CardType = "Cashback"
	CardTypeRewards      CardType = "Rewards"
	CardTypeTravel       CardType = "Travel"
	CardTypeFuel         CardType = "Fuel"
	CardTypeBusiness     CardType = "Business"
	CardTypeLuxury       CardType = "Luxury"
	CardTypeForex        CardType = "Forex"
	CardTypeLoungeAccess CardType = "Lounge Access"
)

// RewardType describes the currency a card earns in.
type RewardType string

const (
	RewardTypeCashback       RewardType = "Cashback"
	RewardTypePoints         RewardType = "Reward Points"
	RewardTypeMiles          RewardType = "Miles"
	RewardTypeCoBranded      RewardType = "Co-branded Points"
	RewardTypeCashbackPoints RewardType = "Cashback + Points"
	RewardTypeHotelPoints    RewardType = "Hotel Points"
)

// SpendCategory is a spend bucket that cards earn category-specific rates on.
type SpendCategory string

const (
	SpendFuel      SpendCategory = "fuel"
	SpendGroceries SpendCategory = "groceries"
	SpendDining    SpendCategory = "dining"
	SpendTravel    SpendCategory = "travel"
	SpendOnline    SpendCategory = "online"
	SpendOther     SpendCategory = "other"
)

// SpendCategories lists all spend buckets in display order.
var SpendCategories = []SpendCategory{
	SpendFuel, SpendGroceries, SpendDining, SpendTravel, SpendOnline, SpendOther,
}

// Eligibility holds a card's minimum applicant requirements.
type Eligibility struct {
	MinIncome      float64  `json:"min_income" yaml:"min_income"`
	MinAge         int      `json:"min_age" yaml:"min_age"`
	MaxAge         int      `json:"max_age" yaml:"max_age"`
	EmploymentType []string `json:"employment_type" yaml:"employment_type"`
}

// Benefits holds a card's non-rate perks.
type Benefits struct {
	WelcomeBonus     string   `json:"welcome_bonus" yaml:"welcome_bonus"`
	MilestoneRewards string   `json:"milestone_rewards" yaml:"milestone_rewards"`
	AirportLounge    string   `json:"airport_lounge" yaml:"airport_lounge"`
	Concierge        bool     `json:"concierge" yaml:"concierge"`
	Insurance        []string `json:"insurance,omitempty" yaml:"insurance"`
}

// Card is one catalog entry describing a credit card product.
// Records are immutable after catalog load; every consumer gets a copy.
type Card struct {
	ID                   string                    `json:"id" yaml:"id"`
	Name                 string                    `json:"name" yaml:"name"`
	Bank                 string                    `json:"bank" yaml:"bank"`
	Slug                 string                    `json:"slug" yaml:"slug"`
	Description          string                    `json:"description" yaml:"description"`
	CardType             CardType                  `json:"card_type" yaml:"card_type"`
	RewardType           RewardType                `json:"reward_type" yaml:"reward_type"`
	BestSpendCategory    string                    `json:"best_spend_category" yaml:"best_spend_category"`
	RewardRate           float64                   `json:"reward_rate" yaml:"reward_rate"`
	UPIRewards           bool                      `json:"upi_rewards" yaml:"upi_rewards"`
	RupaySupport         *bool                     `json:"rupay_support,omitempty" yaml:"rupay_support"`
	LoungeAccess         bool                      `json:"lounge_access" yaml:"lounge_access"`
	AnnualFee            float64                   `json:"annual_fee" yaml:"annual_fee"`
	AnnualFeeWaiverSpend float64                   `json:"annual_fee_waiver_spend" yaml:"annual_fee_waiver_spend"`
	ApplyLink            string                    `json:"apply_link,omitempty" yaml:"apply_link"`
	Features             []string                  `json:"features,omitempty" yaml:"features"`
	Pros                 []string                  `json:"pros,omitempty" yaml:"pros"`
	Cons                 []string                  `json:"cons,omitempty" yaml:"cons"`
	Eligibility          Eligibility               `json:"eligibility" yaml:"eligibility"`
	Rewards              map[SpendCategory]float64 `json:"rewards" yaml:"rewards"`
	Benefits             Benefits                  `json:"benefits" yaml:"benefits"`
	Category             []string                  `json:"category" yaml:"category"`
	Tags                 []string                  `json:"tags,omitempty" yaml:"tags"`
	Rating               float64                   `json:"rating" yaml:"rating"`
	ReviewCount          int                       `json:"review_count" yaml:"review_count"`
	LastUpdated          string                    `json:"last_updated" yaml:"last_updated"`
}

// RewardRateFor returns the card's rate for a spend bucket, or 0 when the
// card defines no rate for it.
func (c Card) RewardRateFor(cat SpendCategory) float64 {
	return c.Rewards[cat]
}

// IsLifetimeFree reports whether the card charges no annual fee.
func (c Card) IsLifetimeFree() bool {
	return c.AnnualFee == 0
}
