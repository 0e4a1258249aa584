// Package config loads the application settings.
//
// Values come from environment variables, optionally seeded from a .env file,
// with defaults taken from the `default` struct tags of each section. Nested
// keys map to upper-case variables joined by underscores, so data.player is
// read from DATA_PLAYER.
//
// # Sections
//
//   - Server: HTTP port, API key and body limit
//   - Storage: S3/MinIO endpoint, credentials and bucket
//   - Log: level and format
//   - Database: driver (mysql or sqlite) and connection details
//   - Data: player identity, bucket prefixes, rules object, fetch concurrency
//   - History: whether validation runs are persisted
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Data.Player)
package config
