// Package deck implements deck validation, statistics and comparison.
//
// Decks are posted as JSON or read from DECKS/<owner>/<name>.json in the
// knowledge bucket. Validation combines the session's catalog, rules and
// unique registry with an ownership index rebuilt for the request; see the
// validate and compare subpackages for the rules themselves.
//
// # HTTP Endpoints
//
//   - POST /decks/validate?mode=owned : Validate a posted deck.
//   - GET /decks/:owner/:name/validate : Validate a stored deck.
//   - POST /decks/stats : Cost curve and card mix.
//   - POST /decks/compare : Diff {mine, other} with suggestions.
//   - GET /decks/:owner/:name/compare/:otherOwner/:otherName : Diff two stored decks.
package deck
