// Package compare diffs a deck against a reference deck and suggests the
// cards from the reference the player could add from their collection.
package compare
