// Package utils provides tolerant conversions for the loosely typed JSON files
// that make up the card knowledge base (card counts as numbers or strings,
// boolean flags as "1"/"true", alternate field spellings).
package utils
