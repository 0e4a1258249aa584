// Package integrity provides knowledge-base health checks.
//
// Unlike the deck and collection features, which tolerate bad input and
// annotate it, this package reports problems directly so they can be fixed at
// the source.
//
// # Checks Provided
//
//   - Structure: The CARDS, COLLECTION, DECKS, RULES and UNIQUES folders exist in the bucket.
//   - Collection: Every collection row has card_id and an integer count in [0, 99].
//     Out-of-range counts are warnings; the rest are errors.
//   - Rules: The rule object loads and passes validation.
//   - Server: The history tables match the ValidationRun model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/collection : Runs collection file check.
//   - GET /integrity/rules : Runs rules check.
//   - GET /integrity/server : Runs server schema check.
package integrity
