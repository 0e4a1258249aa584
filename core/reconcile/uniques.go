package reconcile

import (
	"fmt"

	"altered-knowledge/core/utils"
)

// UniqueCard is an ownership record for a unique card. Unique cards have no
// count: a player owns one or does not.
type UniqueCard struct {
	CardID     string  `json:"card_id"`
	Owner      *string `json:"owner"`
	Collection bool    `json:"collection"`
}

// OwnedBy reports whether the card belongs to player. The owner comparison is
// case-sensitive; collection cards belong to everyone.
func (u UniqueCard) OwnedBy(player string) bool {
	if u.Collection {
		return true
	}
	return u.Owner != nil && *u.Owner == player
}

// ParseUniqueShard decodes a uniques file into records.
func ParseUniqueShard(name string, data []byte) ([]UniqueCard, []Annotation, error) {
	shard, err := ParseShard(name, data)
	if err != nil {
		return nil, nil, err
	}

	var (
		cards []UniqueCard
		notes []Annotation
	)
	for row, rec := range shard.Records {
		rawID, _ := utils.FirstOf(rec, cardIDKeys...)
		id := utils.ToString(rawID)
		if id == "" {
			notes = append(notes, Annotation{Kind: KindMalformedRecord, Shard: name, Row: row, Reason: "missing card_id"})
			continue
		}
		card := UniqueCard{CardID: id, Collection: utils.ToBool(rec["collection"])}
		if owner := utils.ToString(rec["owner"]); owner != "" {
			card.Owner = &owner
		}
		cards = append(cards, card)
	}
	return cards, notes, nil
}

// Registry answers unique ownership for one player. A nil Registry owns nothing.
type Registry struct {
	player string
	known  map[string]struct{}
	owned  map[string]struct{}
}

// NewRegistry resolves unique records for player.
func NewRegistry(player string, cards []UniqueCard) *Registry {
	r := &Registry{
		player: player,
		known:  make(map[string]struct{}, len(cards)),
		owned:  make(map[string]struct{}),
	}
	for _, c := range cards {
		r.known[c.CardID] = struct{}{}
		if c.OwnedBy(player) {
			r.owned[c.CardID] = struct{}{}
		}
	}
	return r
}

// Player returns the identity the registry was resolved for.
func (r *Registry) Player() string {
	if r == nil {
		return ""
	}
	return r.player
}

// Owned reports whether the player owns the unique card id.
func (r *Registry) Owned(id string) bool {
	if r == nil {
		return false
	}
	_, ok := r.owned[id]
	return ok
}

// Known reports whether any unique record mentions id.
func (r *Registry) Known(id string) bool {
	if r == nil {
		return false
	}
	_, ok := r.known[id]
	return ok
}

// OwnedIDs returns the owned unique card ids in ascending order.
func (r *Registry) OwnedIDs() []string {
	if r == nil {
		return nil
	}
	return Union(r.owned)
}

func (r *Registry) String() string {
	if r == nil {
		return "uniques(none)"
	}
	return fmt.Sprintf("uniques(%s: %d/%d owned)", r.player, len(r.owned), len(r.known))
}
