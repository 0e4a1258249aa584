// Package collection serves the player's ownership table and collection
// statistics. The ownership index is rebuilt from COLLECTION/ shards on each
// request.
//
// # HTTP Endpoints
//
//   - GET /collection : Ownership table (Name, Rarity, Count, Foil, Set, Category).
//   - GET /collection/stats : Totals by cost, rarity, faction and type.
package collection
