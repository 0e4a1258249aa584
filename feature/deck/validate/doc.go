// Package validate checks decklists against construction rules and the
// player's ownership.
//
// Every merged row gets two independent verdicts. Ownership says whether the
// player has the card (a positive count in the ownership index, or the unique
// registry for unique cards). Legality says whether the rules allow the row:
// the card must exist in the catalog and respect the per-rarity and per-name
// copy limits, faction restrictions and ban lists. Deck-wide checks cover the
// size bounds, rarity totals and the hero requirement.
//
// Validate is a pure function of its Input.
package validate
