package stats

import (
	"sort"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/reconcile"
)

// Line is a card id and how many copies of it to count.
type Line struct {
	CardID   string `json:"card_id"`
	Quantity int    `json:"quantity"`
}

// Summary buckets card totals by cost, rarity, faction and type.
type Summary struct {
	Total     int            `json:"total"`
	ByCost    map[int]int    `json:"by_cost"`
	ByRarity  map[string]int `json:"by_rarity"`
	ByFaction map[string]int `json:"by_faction"`
	ByType    map[string]int `json:"by_type"`
	// Unresolved counts copies whose id is not in the catalog.
	Unresolved    int      `json:"unresolved"`
	UnresolvedIDs []string `json:"unresolved_ids,omitempty"`
	AverageCost   float64  `json:"average_cost"`
	MaxCost       int      `json:"max_cost"`
}

func newSummary() Summary {
	return Summary{
		ByCost:    make(map[int]int),
		ByRarity:  make(map[string]int),
		ByFaction: make(map[string]int),
		ByType:    make(map[string]int),
	}
}

// Summarize totals lines against the catalog. Lines with a non-positive
// quantity are ignored.
func Summarize(cat *catalog.Catalog, lines []Line) Summary {
	s := newSummary()
	costSum, costed := 0, 0
	unresolved := make(map[string]struct{})

	for _, line := range lines {
		qty := line.Quantity
		if qty <= 0 {
			continue
		}
		card, ok := cat.Lookup(line.CardID)
		if !ok {
			s.Unresolved += qty
			unresolved[line.CardID] = struct{}{}
			continue
		}

		s.Total += qty
		s.ByCost[card.Cost] += qty
		s.ByRarity[label(string(card.Rarity))] += qty
		s.ByFaction[label(card.Faction)] += qty
		s.ByType[label(card.Type)] += qty

		// Heroes start in play and have no hand cost.
		if !card.IsHero() {
			costSum += card.Cost * qty
			costed += qty
			if card.Cost > s.MaxCost {
				s.MaxCost = card.Cost
			}
		}
	}

	if costed > 0 {
		s.AverageCost = float64(costSum) / float64(costed)
	}
	for id := range unresolved {
		s.UnresolvedIDs = append(s.UnresolvedIDs, id)
	}
	sort.Strings(s.UnresolvedIDs)
	return s
}

// FromIndex turns an ownership index into lines, one per owned card id.
// Foil copies are already part of Count and do not change buckets.
func FromIndex(idx reconcile.OwnershipIndex) []Line {
	lines := make([]Line, 0, len(idx))
	for _, id := range idx.IDs() {
		lines = append(lines, Line{CardID: id, Quantity: idx.Count(id)})
	}
	return lines
}

// Collection summarizes an ownership index plus one copy of every unique the
// registry marks as owned. Unique ids in the index are ignored.
func Collection(cat *catalog.Catalog, idx reconcile.OwnershipIndex, reg *reconcile.Registry) Summary {
	idx, _ = idx.WithoutUniques("", func(id string) bool {
		return cat.IsUnique(id) || reg.Known(id)
	})
	lines := FromIndex(idx)
	for _, id := range reg.OwnedIDs() {
		lines = append(lines, Line{CardID: id, Quantity: 1})
	}
	return Summarize(cat, lines)
}

func label(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
