// Package stats computes cost curves and rarity, faction and type mixes for
// decks and collections.
package stats
