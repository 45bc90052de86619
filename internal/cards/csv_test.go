package cards

import (
	"testing"

	"github.com/credibundl/cardstack/pkg/models"
)

func TestCardToCSVRow(t *testing.T) {
	card := models.Card{
		ID:                   "sample-card",
		Name:                 "Sample Card",
		Bank:                 "Sample Bank",
		CardType:             models.CardTypeCashback,
		RewardType:           models.RewardTypeCashback,
		RewardRate:           5,
		AnnualFee:            999,
		AnnualFeeWaiverSpend: 200000,
		UPIRewards:           true,
		LoungeAccess:         false,
		BestSpendCategory:    "Online Shopping",
		Rating:               4.5,
		ReviewCount:          120,
		Benefits: models.Benefits{
			WelcomeBonus:  "1000 points",
			AirportLounge: "None",
			Concierge:     true,
			Insurance:     []string{"Air accident cover", "Purchase protection"},
		},
		Eligibility: models.Eligibility{
			MinIncome:      300000,
			MinAge:         21,
			MaxAge:         60,
			EmploymentType: []string{"Salaried", "Self-employed"},
		},
		Rewards: map[models.SpendCategory]float64{
			models.SpendOnline: 5,
			models.SpendFuel:   1,
		},
		Features:    []string{"5% online", "No forex markup"},
		LastUpdated: "2026-08-01",
	}

	row := cardToCSVRow(card, "https://apply.example.com/sample")
	headers := csvHeaders()

	if len(row) != len(headers) {
		t.Fatalf("row has %d columns, want %d", len(row), len(headers))
	}

	want := map[int]string{
		0:  "Sample Card",
		4:  "5",
		7:  "Yes",
		8:  "No",
		15: "Available",
		16: "Air accident cover, Purchase protection",
		18: "21-60 years",
		20: "1", // fuel
		24: "5", // online
		25: "0", // other, no configured rate
		29: "https://apply.example.com/sample",
	}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("%s column = %q, want %q", headers[i], row[i], w)
		}
	}
}
