package cards

import (
	"testing"

	"github.com/credibundl/cardstack/internal/testutil"
	"github.com/credibundl/cardstack/pkg/models"
)

func sampleCards() []models.Card {
	return []models.Card{
		testutil.NewCard(testutil.WithID("alpha"), testutil.WithName("Alpha Card"),
			testutil.WithRating(4.5), testutil.WithRewardRate(5), testutil.WithAnnualFee(999)),
		testutil.NewCard(testutil.WithID("bravo"), testutil.WithName("bravo card"),
			testutil.WithRating(3.9), testutil.WithRewardRate(2), testutil.WithAnnualFee(0)),
		testutil.NewCard(testutil.WithID("charlie"), testutil.WithName("Charlie Card"),
			testutil.WithRating(4.1), testutil.WithRewardRate(3), testutil.WithAnnualFee(500),
			testutil.WithLounge()),
	}
}

func TestMatchesSearch(t *testing.T) {
	card := testutil.NewCard(
		testutil.WithName("SBI Cashback Credit Card"),
		testutil.WithBestSpend("Online Shopping"),
		testutil.WithCategory("Cashback"),
	)
	card.Bank = "State Bank of India"
	card.Tags = []string{"cashback", "online-shopping"}
	card.Description = "5% cashback on online shopping."

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"whitespace query matches", "   ", true},
		{"name substring", "cashback credit", true},
		{"bank substring case-insensitive", "state BANK", true},
		{"best spend category", "online shop", true},
		{"tag match", "online-shopping", true},
		{"category entry", "Cashback", true},
		{"description", "5% cashback", true},
		{"no match", "platinum", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesSearch(card, tt.query); got != tt.want {
				t.Errorf("MatchesSearch(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatches_FiltersComposeWithAND(t *testing.T) {
	card := testutil.NewCard(testutil.WithUPI(), testutil.WithAnnualFee(0))

	if !Matches(card, Filters{UPIRewards: true, NoAnnualFee: true}) {
		t.Error("card satisfying both filters should match")
	}
	if Matches(card, Filters{UPIRewards: true, LoungeAccess: true}) {
		t.Error("card failing one filter must not match")
	}
	if !Matches(card, Filters{}) {
		t.Error("zero-value filters are identity and must match")
	}
}

func TestFilterMonotonicity(t *testing.T) {
	// Adding a filter never grows the result set.
	list := sampleCards()

	count := func(f Filters) int {
		n := 0
		for _, c := range list {
			if Matches(c, f) {
				n++
			}
		}
		return n
	}

	base := Filters{NoAnnualFee: true}
	narrowed := Filters{NoAnnualFee: true, LoungeAccess: true}
	if count(narrowed) > count(base) {
		t.Errorf("narrowed filter returned %d > base %d", count(narrowed), count(base))
	}
}

func TestCategorySlug(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Lifetime Free", "lifetime-free"},
		{"UPI Credit Cards", "upi-credit-cards"},
		{"0% Forex", "0-forex"},
		{"Lounge Access", "lounge-access"},
		{"Cashback", "cashback"},
		{"  Travel  ", "travel"},
	}

	for _, tt := range tests {
		if got := CategorySlug(tt.category); got != tt.want {
			t.Errorf("CategorySlug(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestMatchesCategorySlug_SpecialCases(t *testing.T) {
	forexCard := testutil.NewCard(testutil.WithCategory("0% Forex", "Travel"))
	travelCard := testutil.NewCard(testutil.WithCategory("Travel"))
	bizCard := testutil.NewCard(testutil.WithCategory("Business"))

	if !MatchesCategorySlug(forexCard, "forex") {
		t.Error(`slug "forex" must match category "0% Forex"`)
	}
	if MatchesCategorySlug(travelCard, "forex") {
		t.Error(`slug "forex" must not match a card merely tagged "Travel"`)
	}
	if !MatchesCategorySlug(bizCard, "business") {
		t.Error(`slug "business" must match category "Business"`)
	}
	if !MatchesCategorySlug(travelCard, "travel") {
		t.Error("generic normalization should still apply")
	}
}

func TestSort_Directions(t *testing.T) {
	tests := []struct {
		name string
		key  SortKey
		dir  SortDirection
		want []string // expected card IDs in order
	}{
		{"rating desc", SortByRating, SortDesc, []string{"alpha", "charlie", "bravo"}},
		{"rating asc", SortByRating, SortAsc, []string{"bravo", "charlie", "alpha"}},
		{"reward rate desc", SortByRewardRate, SortDesc, []string{"alpha", "charlie", "bravo"}},
		{"annual fee asc", SortByAnnualFee, SortAsc, []string{"bravo", "charlie", "alpha"}},
		{"name asc is case-insensitive", SortByName, SortAsc, []string{"alpha", "bravo", "charlie"}},
		{"name desc", SortByName, SortDesc, []string{"charlie", "bravo", "alpha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := sampleCards()
			Sort(list, tt.key, tt.dir)
			for i, id := range tt.want {
				if list[i].ID != id {
					t.Errorf("position %d = %s, want %s", i, list[i].ID, id)
				}
			}
		})
	}
}

func TestSort_Idempotent(t *testing.T) {
	list := sampleCards()
	Sort(list, SortByRating, SortDesc)
	first := make([]string, len(list))
	for i, c := range list {
		first[i] = c.ID
	}

	Sort(list, SortByRating, SortDesc)
	for i, c := range list {
		if c.ID != first[i] {
			t.Fatalf("second sort changed order at %d: %s != %s", i, c.ID, first[i])
		}
	}
}

func TestSort_DescIsInverseOfAsc(t *testing.T) {
	// Holds whenever the key has no ties; reward rates here are distinct.
	asc := sampleCards()
	desc := sampleCards()
	Sort(asc, SortByRewardRate, SortAsc)
	Sort(desc, SortByRewardRate, SortDesc)

	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Errorf("asc[%d]=%s does not mirror desc", i, asc[i].ID)
		}
	}
}

func TestSort_StableOnTies(t *testing.T) {
	a := testutil.NewCard(testutil.WithID("a"), testutil.WithRating(4.0))
	b := testutil.NewCard(testutil.WithID("b"), testutil.WithRating(4.0))
	c := testutil.NewCard(testutil.WithID("c"), testutil.WithRating(4.0))
	list := []models.Card{a, b, c}

	Sort(list, SortByRating, SortDesc)
	for i, id := range []string{"a", "b", "c"} {
		if list[i].ID != id {
			t.Errorf("tie order changed: position %d = %s, want %s", i, list[i].ID, id)
		}
	}
}
