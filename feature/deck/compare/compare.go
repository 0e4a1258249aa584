package compare

import (
	"altered-knowledge/core/catalog"
	"altered-knowledge/core/reconcile"
	"altered-knowledge/feature/deck/models"
)

func copies(d *models.Deck) map[string]int {
	out := make(map[string]int)
	if d == nil {
		return out
	}
	rows, _ := d.Normalize()
	for _, r := range rows {
		out[r.CardID] = r.Copies
	}
	return out
}

// Compare diffs two decks. Every card id in either deck appears once with
// both copy counts; an id missing from one side counts as zero copies there.
// Entries are sorted by card id.
func Compare(mine, other *models.Deck, cat *catalog.Catalog) models.Diff {
	a, b := copies(mine), copies(other)

	diff := models.Diff{Entries: []models.DiffEntry{}}
	if mine != nil {
		diff.Mine = mine.Name
	}
	if other != nil {
		diff.Other = other.Name
	}

	for _, id := range reconcile.Union(a, b) {
		entry := models.DiffEntry{CardID: id, Mine: a[id], Other: b[id], Delta: a[id] - b[id]}
		if card, ok := cat.Lookup(id); ok {
			entry.Name = card.Name
		}
		diff.Entries = append(diff.Entries, entry)
	}
	return diff
}

// Suggest proposes cards the other deck runs more copies of. A card is
// suggested as owned when the player has every missing copy, and as nearly
// owned when they have at least one. Unique cards are only suggested when
// owned.
func Suggest(diff models.Diff, idx reconcile.OwnershipIndex, reg *reconcile.Registry, cat *catalog.Catalog) []models.Suggestion {
	out := []models.Suggestion{}
	for _, e := range diff.Entries {
		if e.Delta >= 0 {
			continue
		}
		missing := -e.Delta
		card, known := cat.Lookup(e.CardID)

		s := models.Suggestion{CardID: e.CardID, Name: e.Name, Missing: missing}
		if known && card.IsUnique() {
			if !reg.Owned(e.CardID) {
				continue
			}
			s.Owned = 1
			s.Status = models.SuggestOwned
			out = append(out, s)
			continue
		}

		// Copies already in my deck are not free to add again.
		s.Owned = idx.Count(e.CardID) - e.Mine
		switch {
		case s.Owned >= missing:
			s.Status = models.SuggestOwned
		case s.Owned > 0:
			s.Status = models.SuggestNearlyOwned
		default:
			continue
		}
		out = append(out, s)
	}
	return out
}
