// Package storage provides an abstraction layer for the knowledge bucket.
//
// It wraps the MinIO Go client behind a small interface so every reader in the
// application (catalog, collection shards, uniques, rules, stored decks) can be
// tested against the in-memory fake in core/storage/mocks. Both AWS S3 and
// self-hosted MinIO instances work.
//
// # Client Interface
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject: Uploads content (used only to create missing folder markers).
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Helpers
//
// Fetch reads a whole object and maps NoSuchKey to ErrNotFound. ListKeys
// returns the sorted keys under a prefix. FetchAll downloads a key list with
// bounded concurrency and records unreadable keys instead of failing.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	keys, err := storage.ListKeys(ctx, client, "altered", "COLLECTION/", ".json")
//	res, err := storage.FetchAll(ctx, client, "altered", keys, 8)
package storage
