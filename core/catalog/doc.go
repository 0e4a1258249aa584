// Package catalog holds the card reference data: one Card per card id with its
// name, rarity, faction, cost, set and type.
//
// Card files live under CARDS/<LANG>/<SET>/<FACTION>/ in the knowledge bucket.
// The parser tolerates the field spellings found across exports (name or
// cardName, cost or elements.MAIN_COST, nested reference objects) and fills in
// language, set, faction and rarity from the object key when the record omits
// them.
//
// Names are matched through Slugify, which folds accents and punctuation so
// lookups work across languages and typing variants.
package catalog
