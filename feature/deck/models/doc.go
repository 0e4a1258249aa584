// Package models defines the deck, validation report and comparison types
// shared by the deck validator, the comparator and their transports.
package models
