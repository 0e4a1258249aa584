// Package session manages the reference data a player's requests share.
//
// Open loads the card catalog, the construction rules and the unique-card
// records from the knowledge bucket in parallel and returns a Session that is
// passed explicitly to the validator, the comparator and the views. Close
// releases it. Ownership shards are deliberately left out: Session.Ownership
// rebuilds the index from COLLECTION/ on every call so edits are visible
// immediately.
//
// Store wraps Open with a per-player TTL cache and singleflight so a burst of
// requests after expiry opens the session once.
package session
