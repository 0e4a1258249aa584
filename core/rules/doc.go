// Package rules loads the deck construction rules of a format.
//
// Thresholds are data, never code: copy limits per rarity, per-name limits
// across printings, deck size bounds, deck-wide rarity totals, faction and
// hero requirements and ban lists all come from a YAML or JSON document,
// usually RULES/constructed.yaml in the knowledge bucket:
//
//	format: constructed
//	deck_size: {min: 40, max: 60}
//	copy_limits: {common: 3, rare: 3, unique: 1}
//	max_same_name: 3
//	rarity_totals: {rare: 15, unique: 3}
//	same_faction_as_hero: true
//	hero: {required: true, copies: 1}
//	banned_types: [token]
package rules
