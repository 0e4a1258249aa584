package reconcile

import (
	"strings"

	"altered-knowledge/core/utils"
)

var (
	cardIDKeys = []string{"card_id", "id", "reference"}
	countKeys  = []string{"count", "qty", "quantity"}
	rarityKeys = []string{"rarity", "Rarität"}
)

// Aggregate merges ownership shards into one index. Rows for the same card id
// are summed across and within shards; foil rows count toward both Count and
// FoilCount. Rows without an id or with a non-numeric or non-positive count
// are dropped and reported as MalformedRecord annotations.
//
// The result does not depend on shard order.
func Aggregate(shards ...Shard) (OwnershipIndex, []Annotation) {
	idx := make(OwnershipIndex)
	var notes []Annotation

	for _, shard := range shards {
		for row, rec := range shard.Records {
			id, count, foil, reason := readRecord(rec)
			if reason != "" {
				notes = append(notes, Annotation{
					Kind:   KindMalformedRecord,
					Shard:  shard.Name,
					Row:    row,
					CardID: id,
					Reason: reason,
				})
				continue
			}

			entry := idx[id]
			entry.CardID = id
			entry.Count += count
			if foil {
				entry.FoilCount += count
			}
			idx[id] = entry
		}
	}
	return idx, notes
}

func readRecord(rec map[string]any) (id string, count int, foil bool, reason string) {
	rawID, _ := utils.FirstOf(rec, cardIDKeys...)
	id = utils.ToString(rawID)
	if id == "" {
		return "", 0, false, "missing card_id"
	}

	rawCount, ok := utils.FirstOf(rec, countKeys...)
	if !ok {
		return id, 0, false, "missing count"
	}
	count, ok = utils.ToInt(rawCount)
	if !ok {
		return id, 0, false, "non-numeric count"
	}
	if count <= 0 {
		return id, 0, false, "non-positive count"
	}

	return id, count, isFoil(rec), ""
}

func isFoil(rec map[string]any) bool {
	if utils.ToBool(rec["foil"]) {
		return true
	}
	rarity, _ := utils.FirstOf(rec, rarityKeys...)
	return strings.EqualFold(utils.ToString(rarity), "foil")
}

// Merge returns a new index holding the summed entries of a and b.
func Merge(a, b OwnershipIndex) OwnershipIndex {
	out := make(OwnershipIndex, len(a)+len(b))
	for _, src := range []OwnershipIndex{a, b} {
		for id, e := range src {
			cur := out[id]
			cur.CardID = id
			cur.Count += e.Count
			cur.FoilCount += e.FoilCount
			out[id] = cur
		}
	}
	return out
}
