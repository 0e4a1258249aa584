// Package history persists deck validation runs in the validation_runs table
// and serves them per deck.
//
// # HTTP Endpoints
//
//   - GET /history/:deck : Recent validation runs of a deck, newest first.
package history
