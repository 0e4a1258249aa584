package models

import "altered-knowledge/core/reconcile"

// DiffEntry is one card id in a deck comparison.
type DiffEntry struct {
	CardID string `json:"card_id"`
	Name   string `json:"name,omitempty"`
	Mine   int    `json:"mine"`
	Other  int    `json:"other"`
	// Delta is Mine minus Other.
	Delta int `json:"delta"`
}

// Diff compares two decks entry by entry, sorted by card id.
type Diff struct {
	Mine    string      `json:"mine"`
	Other   string      `json:"other"`
	Entries []DiffEntry `json:"entries"`
}

// SuggestionStatus grades how close the player is to playing a missing card.
type SuggestionStatus string

const (
	SuggestOwned       SuggestionStatus = "owned"
	SuggestNearlyOwned SuggestionStatus = "nearly_owned"
)

// Suggestion proposes adding copies the reference deck runs more of.
type Suggestion struct {
	CardID  string           `json:"card_id"`
	Name    string           `json:"name,omitempty"`
	Missing int              `json:"missing"`
	Owned   int              `json:"owned"`
	Status  SuggestionStatus `json:"status"`
}

// Comparison bundles a diff with its suggestions.
type Comparison struct {
	Diff        Diff                   `json:"diff"`
	Suggestions []Suggestion           `json:"suggestions"`
	Annotations []reconcile.Annotation `json:"annotations"`
}
