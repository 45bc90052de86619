// Package cards implements the filtering, ranking, and comparison engine
// behind the card listing, category pages, and comparison table.
package cards

import (
	"sort"
	"strings"

	"github.com/credibundl/cardstack/pkg/catalog"
	"github.com/credibundl/cardstack/pkg/models"
)

// SortKey selects the attribute a card list is ordered by.
type SortKey string

const (
	SortByRating     SortKey = "rating"
	SortByRewardRate SortKey = "rewardRate"
	SortByAnnualFee  SortKey = "annualFee"
	SortByName       SortKey = "name"
)

// SortDirection is "asc" or "desc".
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Filters describes the active listing criteria. Zero values are identity
// filters: an unset criterion matches every card.
type Filters struct {
	Search       string // case-insensitive substring match
	UPIRewards   bool   // only cards earning rewards on UPI
	LoungeAccess bool   // only cards with lounge access
	NoAnnualFee  bool   // only lifetime-free cards
	CategorySlug string // restrict to a category page's slug
}

// Engine filters and ranks the immutable card catalog.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine creates an engine backed by the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Catalog exposes the backing catalog for apply-link lookups.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// List returns the cards matching all active filters, sorted by the given
// key and direction. An empty key falls back to name ascending, the default
// dataset order.
func (e *Engine) List(f Filters, key SortKey, dir SortDirection) []models.Card {
	result := make([]models.Card, 0, e.cat.Len())
	for _, card := range e.cat.Cards() {
		if Matches(card, f) {
			result = append(result, card)
		}
	}
	if key == "" {
		key = SortByName
	}
	if dir == "" {
		dir = SortAsc
	}
	Sort(result, key, dir)
	return result
}

// Matches reports whether a card satisfies every active filter. Filters
// compose with logical AND.
func Matches(card models.Card, f Filters) bool {
	if !MatchesSearch(card, f.Search) {
		return false
	}
	if f.UPIRewards && !card.UPIRewards {
		return false
	}
	if f.LoungeAccess && !card.LoungeAccess {
		return false
	}
	if f.NoAnnualFee && card.AnnualFee != 0 {
		return false
	}
	if f.CategorySlug != "" && !MatchesCategorySlug(card, f.CategorySlug) {
		return false
	}
	return true
}

// MatchesSearch reports whether any searchable card field contains the query
// as a case-insensitive substring. An empty query matches every card.
func MatchesSearch(card models.Card, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(card.Name), query) ||
		strings.Contains(strings.ToLower(card.Bank), query) ||
		strings.Contains(strings.ToLower(string(card.CardType)), query) ||
		strings.Contains(strings.ToLower(card.BestSpendCategory), query) ||
		strings.Contains(strings.ToLower(card.Description), query) {
		return true
	}
	for _, cat := range card.Category {
		if strings.Contains(strings.ToLower(cat), query) {
			return true
		}
	}
	for _, tag := range card.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// slugExceptions maps irregular category slugs to the category literal they
// match. Only these two categories have slugs the generic normalization
// cannot produce; the irregularity is inherited from the site's URL scheme.
var slugExceptions = map[string]string{
	"forex":    "0% Forex",
	"business": "Business",
}

// CategorySlug normalizes a category label into its URL slug: lowercase,
// spaces and '%' become '-', runs of '-' collapse, edges are trimmed.
func CategorySlug(category string) string {
	var b strings.Builder
	b.Grow(len(category))
	for _, r := range strings.ToLower(category) {
		if r == ' ' || r == '%' {
			b.WriteRune('-')
		} else {
			b.WriteRune(r)
		}
	}
	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// MatchesCategorySlug reports whether the card belongs to the category the
// slug names, honoring the forex/business exceptions.
func MatchesCategorySlug(card models.Card, slug string) bool {
	exception := slugExceptions[slug]
	for _, cat := range card.Category {
		if exception != "" && cat == exception {
			return true
		}
		if CategorySlug(cat) == slug {
			return true
		}
	}
	return false
}

// CategoryName resolves a slug back to the category label carried by the
// first matching card, mirroring how category pages title themselves.
func (e *Engine) CategoryName(slug string) string {
	exception := slugExceptions[slug]
	for _, card := range e.cat.Cards() {
		for _, cat := range card.Category {
			if exception != "" && cat == exception {
				return cat
			}
			if CategorySlug(cat) == slug {
				return cat
			}
		}
	}
	return ""
}

// Sort orders cards in place by the given key and direction. The sort is
// stable, so ties keep their prior relative order; no secondary key is
// applied. Desc is the exact inverse of asc.
func Sort(cards []models.Card, key SortKey, dir SortDirection) {
	less := comparator(key)
	if dir == SortDesc {
		asc := less
		less = func(a, b models.Card) bool { return asc(b, a) }
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return less(cards[i], cards[j])
	})
}

func comparator(key SortKey) func(a, b models.Card) bool {
	switch key {
	case SortByRating:
		return func(a, b models.Card) bool { return a.Rating < b.Rating }
	case SortByRewardRate:
		return func(a, b models.Card) bool { return a.RewardRate < b.RewardRate }
	case SortByAnnualFee:
		return func(a, b models.Card) bool { return a.AnnualFee < b.AnnualFee }
	default:
		return func(a, b models.Card) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}
