// Package database manages the optional SQL connection used to persist
// validation history.
//
// Connect supports two drivers through GORM:
//   - mysql: a shared server (DSN built from host, port, user, password, name)
//   - sqlite: a local file named by Config.Name
//
// The connection is optional. When it fails the application keeps serving
// validation and collection queries and only the history feature is disabled.
//
// GetTableColumns inspects a live table so the integrity feature can compare
// it with the GORM model that writes to it.
package database
