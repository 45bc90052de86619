package quiz

import (
	"testing"

	"github.com/credibundl/cardstack/internal/testutil"
	"github.com/credibundl/cardstack/pkg/models"
)

func quizCatalog() []models.Card {
	freeFuel := testutil.NewCard(testutil.WithID("free-fuel"),
		testutil.WithBestSpend("Fuel"), testutil.WithAnnualFee(0), testutil.WithRating(3.9))
	paidFuel := testutil.NewCard(testutil.WithID("paid-fuel"),
		testutil.WithBestSpend("Fuel"), testutil.WithAnnualFee(500), testutil.WithRating(4.2))
	travel := testutil.NewCard(testutil.WithID("travel"),
		testutil.WithBestSpend("Travel & Hotels"), testutil.WithLounge(), testutil.WithRating(4.6))
	forex := testutil.NewCard(testutil.WithID("forex"),
		testutil.WithBestSpend("International Travel"), testutil.WithLounge(),
		testutil.WithAnnualFee(0), testutil.WithRating(4.4))
	forex.CardType = models.CardTypeForex
	upi := testutil.NewCard(testutil.WithID("upi"),
		testutil.WithBestSpend("UPI Transactions"), testutil.WithUPI(), testutil.WithRating(3.8))

	return []models.Card{freeFuel, paidFuel, travel, forex, upi}
}

func TestRecommend_CascadeNarrows(t *testing.T) {
	// Fuel spender who insists on no annual fee: only the free fuel card
	// survives the cascade.
	got := Recommend(Answers{Spend: "fuel", Fee: "yes", Lounge: "no", Forex: "no"}, quizCatalog())

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != "free-fuel" {
		t.Errorf("recommended %s, want free-fuel", got[0].ID)
	}
}

func TestRecommend_TopTwoByRating(t *testing.T) {
	got := Recommend(Answers{Spend: "all"}, quizCatalog())

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "travel" || got[1].ID != "forex" {
		t.Errorf("got %s,%s; want travel,forex (rating desc)", got[0].ID, got[1].ID)
	}
}

func TestRecommend_EmptyResultIsValid(t *testing.T) {
	// No lounge-access fuel card exists.
	got := Recommend(Answers{Spend: "fuel", Lounge: "yes"}, quizCatalog())
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestRecommend_SpendMappings(t *testing.T) {
	tests := []struct {
		spend  string
		wantID string
	}{
		{"travel", "travel"},
		{"fuel", "paid-fuel"}, // higher rated of the two fuel cards
		{"upi", "upi"},
	}

	for _, tt := range tests {
		t.Run(tt.spend, func(t *testing.T) {
			got := Recommend(Answers{Spend: tt.spend}, quizCatalog())
			if len(got) == 0 {
				t.Fatal("expected at least one recommendation")
			}
			if got[0].ID != tt.wantID {
				t.Errorf("top pick = %s, want %s", got[0].ID, tt.wantID)
			}
		})
	}
}

func TestRecommend_ForexFilter(t *testing.T) {
	got := Recommend(Answers{Forex: "yes"}, quizCatalog())
	for _, card := range got {
		if card.ID != "forex" {
			t.Errorf("unexpected card %s in forex-only result", card.ID)
		}
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestRecommend_UnansweredQuestionsFilterNothing(t *testing.T) {
	got := Recommend(Answers{}, quizCatalog())
	if len(got) != 2 {
		t.Errorf("len = %d, want the capped top 2", len(got))
	}
}
