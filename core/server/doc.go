// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/start.go) builds the fiber app from
// this Config: listen address, API key for the auth middleware, and the
// request body limit applied to uploaded decklists.
package server
