package session

import "time"

// Config holds the knowledge-base layout and the active player identity.
type Config struct {
	// Player is the identity whose collection and uniques are reconciled.
	Player string `mapstructure:"player" default:"me"`
	// CardsPrefix is where card reference files live.
	CardsPrefix string `mapstructure:"cards_prefix" default:"CARDS/"`
	// CollectionPrefix is where ownership shards live.
	CollectionPrefix string `mapstructure:"collection_prefix" default:"COLLECTION/"`
	// UniquesPrefix is where unique-card ownership files live.
	UniquesPrefix string `mapstructure:"uniques_prefix" default:"UNIQUES/cards/"`
	// DecksPrefix holds stored decks as <prefix><owner>/<name>.json.
	DecksPrefix string `mapstructure:"decks_prefix" default:"DECKS/"`
	// RulesObject is the construction-rule document.
	RulesObject string `mapstructure:"rules_object" default:"RULES/constructed.yaml"`
	// Concurrency bounds parallel object downloads.
	Concurrency int `mapstructure:"concurrency" default:"8"`
	// CacheTTLSeconds keeps opened sessions for reuse. Zero opens one per request.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// CacheTTL returns the session cache lifetime.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
