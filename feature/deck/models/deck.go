package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"altered-knowledge/core/stats"
	"altered-knowledge/core/utils"
)

// OwnerMine tags a deck that belongs to the active player.
const OwnerMine = "mine"

// Row is one decklist line.
type Row struct {
	CardID string `json:"card_id"`
	Copies int    `json:"copies"`
}

// Deck is a decklist plus its metadata.
type Deck struct {
	Name    string `json:"deck_name"`
	Owner   string `json:"owner"`
	HeroID  string `json:"hero_id,omitempty"`
	Faction string `json:"faction,omitempty"`
	Rows    []Row  `json:"cards"`
}

// IsMine reports whether the deck belongs to the active player.
func (d *Deck) IsMine() bool {
	return d.Owner == "" || d.Owner == OwnerMine
}

// RowError is a decklist line that cannot take part in validation.
type RowError struct {
	Index  int    `json:"index"`
	CardID string `json:"card_id,omitempty"`
	Copies int    `json:"copies"`
	Reason string `json:"reason"`
}

// Normalize merges duplicate rows, keeping the position of the first
// occurrence, and splits off rows with a missing id or non-positive copies.
func (d *Deck) Normalize() ([]Row, []RowError) {
	var (
		rows    []Row
		invalid []RowError
		pos     = make(map[string]int)
	)
	for i, r := range d.Rows {
		switch {
		case r.CardID == "":
			invalid = append(invalid, RowError{Index: i, Copies: r.Copies, Reason: "missing card_id"})
			continue
		case r.Copies <= 0:
			invalid = append(invalid, RowError{Index: i, CardID: r.CardID, Copies: r.Copies, Reason: "non-positive copies"})
			continue
		}
		if at, ok := pos[r.CardID]; ok {
			rows[at].Copies += r.Copies
			continue
		}
		pos[r.CardID] = len(rows)
		rows = append(rows, r)
	}
	return rows, invalid
}

// Lines returns the merged valid rows as stats lines.
func (d *Deck) Lines() []stats.Line {
	rows, _ := d.Normalize()
	lines := make([]stats.Line, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, stats.Line{CardID: r.CardID, Quantity: r.Copies})
	}
	return lines
}

// ParseDeck decodes a deck document. Card rows accept copies, qty or count
// and card_id, id or reference. Rows whose copies are not whole numbers are
// kept with zero copies so validation reports them as malformed.
func ParseDeck(data []byte) (*Deck, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}
	return FromMap(raw)
}

// FromMap builds a Deck from an already decoded JSON object.
func FromMap(raw map[string]any) (*Deck, error) {
	name, _ := utils.FirstOf(raw, "deck_name", "name")
	hero, _ := utils.FirstOf(raw, "hero_id", "hero")
	deck := &Deck{
		Name:    utils.ToString(name),
		Owner:   utils.ToString(raw["owner"]),
		HeroID:  utils.ToString(hero),
		Faction: utils.ToString(raw["faction"]),
	}

	rawRows, ok := utils.FirstOf(raw, "cards", "rows")
	if !ok {
		return deck, nil
	}
	items, ok := rawRows.([]any)
	if !ok {
		return nil, fmt.Errorf("failed to decode deck: cards must be a list, got %T", rawRows)
	}

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			deck.Rows = append(deck.Rows, Row{})
			continue
		}
		id, _ := utils.FirstOf(obj, "card_id", "id", "reference")
		rawCopies, _ := utils.FirstOf(obj, "copies", "qty", "count")
		copies, _ := utils.ToInt(rawCopies)
		deck.Rows = append(deck.Rows, Row{CardID: utils.ToString(id), Copies: copies})
	}
	return deck, nil
}
