// Package reconcile turns raw ownership shards into one authoritative
// OwnershipIndex and resolves unique-card ownership.
//
// # Aggregation
//
// A shard is a list of {card_id, count, foil?} records, typically one
// COLLECTION/*.json file. Aggregate sums counts per card id across all shards.
// Foil rows, flagged by "foil": true or a "Foil" rarity, add to both Count and
// FoilCount. Rows that cannot be trusted are dropped and reported as
// Annotations of kind MalformedRecord; they never fail the merge. The result
// is independent of shard order, and a card with zero copies is simply absent.
//
// # Uniques
//
// Unique cards carry no count. A UniqueCard is owned by the active player when
// its owner matches exactly or when it is part of the shared collection.
// Registry answers that question for one player and is never mixed into the
// numeric index.
//
// # Loading
//
// Loader lists and downloads shards concurrently through core/storage. A
// missing or unreadable source degrades to an empty shard plus a
// MissingShardSource annotation.
//
//	loader := &reconcile.Loader{Client: client, Bucket: "altered-knowledge", Concurrency: 8, Logger: logger}
//	idx, notes, err := loader.BuildIndex(ctx, "COLLECTION/")
package reconcile
