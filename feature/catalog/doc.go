// Package catalog exposes card lookups over HTTP.
//
// # HTTP Endpoints
//
//   - GET /cards?name= : Cards whose name matches.
//   - GET /cards/stats : Card totals by set, faction and rarity.
//   - GET /cards/:id : A single card by reference.
package catalog
