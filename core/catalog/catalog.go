package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCard is returned when a card id is not present in the catalog.
var ErrUnknownCard = errors.New("unknown card")

// Catalog is the read-only card reference table.
type Catalog struct {
	byID   map[string]Card
	bySlug map[string][]string
	ids    []string
}

// Counts groups the catalog size by set, faction and rarity.
type Counts struct {
	Total     int            `json:"total"`
	BySet     map[string]int `json:"by_set"`
	ByFaction map[string]int `json:"by_faction"`
	ByRarity  map[string]int `json:"by_rarity"`
}

// New indexes cards by id and name slug. When an id appears more than once the
// first variant wins, so callers should pass cards in a stable order.
func New(cards []Card) *Catalog {
	c := &Catalog{
		byID:   make(map[string]Card, len(cards)),
		bySlug: make(map[string][]string),
	}
	for _, card := range cards {
		if card.ID == "" {
			continue
		}
		if _, exists := c.byID[card.ID]; exists {
			continue
		}
		c.byID[card.ID] = card
		c.ids = append(c.ids, card.ID)
		slug := Slugify(card.Name)
		c.bySlug[slug] = append(c.bySlug[slug], card.ID)
	}
	sort.Strings(c.ids)
	return c
}

// Len returns the number of distinct cards.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// IDs returns all card ids in ascending order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Lookup returns the card with the given id.
func (c *Catalog) Lookup(id string) (Card, bool) {
	if c == nil {
		return Card{}, false
	}
	card, ok := c.byID[id]
	return card, ok
}

// IsUnique reports whether id is a unique print in the catalog.
func (c *Catalog) IsUnique(id string) bool {
	card, ok := c.Lookup(id)
	return ok && card.IsUnique()
}

// Resolve is Lookup with an ErrUnknownCard error for missing ids.
func (c *Catalog) Resolve(id string) (Card, error) {
	card, ok := c.Lookup(id)
	if !ok {
		return Card{}, fmt.Errorf("%s: %w", id, ErrUnknownCard)
	}
	return card, nil
}

// FindByName returns the cards whose slugged name equals the slugged query.
// Without an exact match it falls back to slugs containing the query.
func (c *Catalog) FindByName(name string) []Card {
	if c == nil {
		return nil
	}
	query := Slugify(name)
	if query == "" {
		return nil
	}

	ids := c.bySlug[query]
	if len(ids) == 0 {
		for slug, matched := range c.bySlug {
			if strings.Contains(slug, query) {
				ids = append(ids, matched...)
			}
		}
	}

	out := make([]Card, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.byID[id])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Counts summarizes the catalog contents.
func (c *Catalog) Counts() Counts {
	counts := Counts{
		BySet:     make(map[string]int),
		ByFaction: make(map[string]int),
		ByRarity:  make(map[string]int),
	}
	if c == nil {
		return counts
	}
	for _, card := range c.byID {
		counts.Total++
		counts.BySet[bucket(card.SetID)]++
		counts.ByFaction[bucket(card.Faction)]++
		counts.ByRarity[bucket(string(card.Rarity))]++
	}
	return counts
}

func bucket(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
