// Package catalog provides lazy-loaded access to the embedded credit-card
// catalog and the apply-link map that accompanies it.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/credibundl/cardstack/pkg/models"
)

//go:embed cards.yaml
var cardsRawData []byte

//go:embed applylinks.yaml
var applyLinksRawData []byte

// NoApplyLink is returned for cards with no entry in the apply-link map.
const NoApplyLink = "#"

// cardsFile is the top-level structure of the embedded cards YAML.
type cardsFile struct {
	Cards []models.Card `yaml:"cards"`
}

// applyLinksFile is the top-level structure of the embedded apply-links YAML.
// Links live in a separate file so link updates never touch card records.
type applyLinksFile struct {
	Links map[string]string `yaml:"links"`
}

// Catalog provides read-only access to the embedded card data.
// The data is parsed once at load and never mutated afterwards.
type Catalog struct {
	cards map[string]int // id -> index into list
	slugs map[string]int // slug -> index into list
	list  []models.Card
	links map[string]string
}

// Load parses the embedded catalog and validates its invariants.
func Load() (*Catalog, error) {
	var cf cardsFile
	if err := yaml.Unmarshal(cardsRawData, &cf); err != nil {
		return nil, fmt.Errorf("catalog: parse cards yaml: %w", err)
	}

	var lf applyLinksFile
	if err := yaml.Unmarshal(applyLinksRawData, &lf); err != nil {
		return nil, fmt.Errorf("catalog: parse apply-links yaml: %w", err)
	}

	c := &Catalog{
		cards: make(map[string]int, len(cf.Cards)),
		slugs: make(map[string]int, len(cf.Cards)),
		list:  cf.Cards,
		links: lf.Links,
	}

	for i := range c.list {
		if err := validateCard(c.list[i]); err != nil {
			return nil, fmt.Errorf("catalog: card %q: %w", c.list[i].ID, err)
		}
		if _, dup := c.cards[c.list[i].ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate card id %q", c.list[i].ID)
		}
		if _, dup := c.slugs[c.list[i].Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate card slug %q", c.list[i].Slug)
		}
		c.cards[c.list[i].ID] = i
		c.slugs[c.list[i].Slug] = i
	}

	return c, nil
}

// Cards returns a copy of all catalog entries.
func (c *Catalog) Cards() []models.Card {
	cp := make([]models.Card, len(c.list))
	copy(cp, c.list)
	return cp
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	return len(c.list)
}

// ByID returns the card with the given id.
func (c *Catalog) ByID(id string) (models.Card, bool) {
	i, ok := c.cards[id]
	if !ok {
		return models.Card{}, false
	}
	return c.list[i], true
}

// BySlug returns the card with the given URL slug.
func (c *Catalog) BySlug(slug string) (models.Card, bool) {
	i, ok := c.slugs[slug]
	if !ok {
		return models.Card{}, false
	}
	return c.list[i], true
}

// ApplyLink returns the mapped application URL for a card id. Cards without
// a mapping fall back to the record's own link, then to NoApplyLink.
func (c *Catalog) ApplyLink(cardID string) string {
	if link, ok := c.links[cardID]; ok && link != "" {
		return link
	}
	if i, ok := c.cards[cardID]; ok && c.list[i].ApplyLink != "" {
		return c.list[i].ApplyLink
	}
	return NoApplyLink
}

// validateCard enforces the catalog record invariants.
func validateCard(card models.Card) error {
	switch {
	case card.ID == "":
		return fmt.Errorf("missing id")
	case card.Slug == "":
		return fmt.Errorf("missing slug")
	case card.Name == "":
		return fmt.Errorf("missing name")
	case card.Rating < 0 || card.Rating > 5:
		return fmt.Errorf("rating %.2f outside [0,5]", card.Rating)
	case card.RewardRate < 0:
		return fmt.Errorf("negative reward rate")
	case card.AnnualFee < 0:
		return fmt.Errorf("negative annual fee")
	case card.AnnualFeeWaiverSpend < 0:
		return fmt.Errorf("negative fee waiver threshold")
	case card.ReviewCount < 0:
		return fmt.Errorf("negative review count")
	case len(card.Category) == 0:
		return fmt.Errorf("empty category list")
	}
	for cat, rate := range card.Rewards {
		if rate < 0 {
			return fmt.Errorf("negative %s reward rate", cat)
		}
	}
	return nil
}
