package models

import (
	"testing"

	"altered-knowledge/core/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeck(t *testing.T) {
	deck, err := ParseDeck([]byte(`{
		"deck_name": "Sierra Tempo",
		"owner": "mine",
		"hero_id": "H",
		"faction": "OR",
		"cards": [
			{"card_id": "A", "copies": 2},
			{"id": "B", "qty": "3"},
			{"reference": "C", "count": 1.5},
			"junk"
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Sierra Tempo", deck.Name)
	assert.True(t, deck.IsMine())
	assert.Equal(t, "H", deck.HeroID)
	assert.Equal(t, []Row{{"A", 2}, {"B", 3}, {"C", 0}, {}}, deck.Rows)
}

func TestParseDeck_Invalid(t *testing.T) {
	_, err := ParseDeck([]byte(`[1,2]`))
	assert.Error(t, err)

	_, err = ParseDeck([]byte(`{"cards": "A"}`))
	assert.Error(t, err)

	deck, err := ParseDeck([]byte(`{"name": "empty", "owner": "Kelon"}`))
	require.NoError(t, err)
	assert.Empty(t, deck.Rows)
	assert.False(t, deck.IsMine())
}

func TestNormalize(t *testing.T) {
	deck := &Deck{Rows: []Row{
		{"B", 1},
		{"A", 2},
		{"", 3},
		{"B", 2},
		{"C", 0},
		{"D", -1},
	}}

	rows, invalid := deck.Normalize()
	assert.Equal(t, []Row{{"B", 3}, {"A", 2}}, rows)
	assert.Equal(t, []RowError{
		{Index: 2, Copies: 3, Reason: "missing card_id"},
		{Index: 4, CardID: "C", Copies: 0, Reason: "non-positive copies"},
		{Index: 5, CardID: "D", Copies: -1, Reason: "non-positive copies"},
	}, invalid)

	assert.Equal(t, []stats.Line{{CardID: "B", Quantity: 3}, {CardID: "A", Quantity: 2}}, deck.Lines())
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeOwned, ParseMode("owned"))
	assert.Equal(t, ModeRules, ParseMode(""))
	assert.Equal(t, ModeRules, ParseMode("anything"))
}
