package rules

import (
	"errors"
	"fmt"
	"strings"

	"altered-knowledge/core/catalog"

	"gopkg.in/yaml.v3"
)

var (
	// ErrRuleConfigMissing is returned when no construction rules are available.
	ErrRuleConfigMissing = errors.New("rule configuration missing")
	// ErrInvalidRules is returned for rule files that parse but make no sense.
	ErrInvalidRules = errors.New("invalid rule configuration")
)

// Range is an inclusive bound. Zero means unbounded.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// HeroRule describes the hero requirement of a format.
type HeroRule struct {
	Required bool `yaml:"required" json:"required"`
	Copies   int  `yaml:"copies" json:"copies"`
}

// Rules is the construction-rule configuration of one format.
type Rules struct {
	Format   string `yaml:"format" json:"format"`
	DeckSize Range  `yaml:"deck_size" json:"deck_size"`
	// CopyLimits caps the copies of a single card id, keyed by rarity.
	CopyLimits       map[string]int `yaml:"copy_limits" json:"copy_limits"`
	DefaultCopyLimit int            `yaml:"default_copy_limit" json:"default_copy_limit"`
	// MaxSameName caps copies across all printings sharing a name.
	MaxSameName int `yaml:"max_same_name" json:"max_same_name"`
	// RarityTotals caps the deck-wide number of cards per rarity.
	RarityTotals      map[string]int `yaml:"rarity_totals" json:"rarity_totals"`
	AllowedFactions   []string       `yaml:"allowed_factions" json:"allowed_factions"`
	SameFactionAsHero bool           `yaml:"same_faction_as_hero" json:"same_faction_as_hero"`
	Hero              HeroRule       `yaml:"hero" json:"hero"`
	BannedTypes       []string       `yaml:"banned_types" json:"banned_types"`
	BannedCards       []string       `yaml:"banned_cards" json:"banned_cards"`
}

// Parse decodes a YAML or JSON rule document and normalizes rarity, faction
// and type spellings.
func Parse(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	r.normalize()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Rules) normalize() {
	r.CopyLimits = normalizeRarityKeys(r.CopyLimits)
	r.RarityTotals = normalizeRarityKeys(r.RarityTotals)
	for i, f := range r.AllowedFactions {
		r.AllowedFactions[i] = catalog.NormalizeFaction(f)
	}
	for i, t := range r.BannedTypes {
		r.BannedTypes[i] = catalog.NormalizeType(t)
	}
	if r.Hero.Required && r.Hero.Copies == 0 {
		r.Hero.Copies = 1
	}
}

func normalizeRarityKeys(in map[string]int) map[string]int {
	if len(in) == 0 {
		return in
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(catalog.NormalizeRarity(k))] = v
	}
	return out
}

// Validate checks that the thresholds are consistent.
func (r *Rules) Validate() error {
	if len(r.CopyLimits) == 0 && r.DefaultCopyLimit == 0 {
		return fmt.Errorf("%w: no copy limits configured", ErrInvalidRules)
	}
	if r.DeckSize.Min < 0 || r.DeckSize.Max < 0 {
		return fmt.Errorf("%w: negative deck size", ErrInvalidRules)
	}
	if r.DeckSize.Max > 0 && r.DeckSize.Min > r.DeckSize.Max {
		return fmt.Errorf("%w: deck_size.min %d exceeds max %d", ErrInvalidRules, r.DeckSize.Min, r.DeckSize.Max)
	}
	for rarity, limit := range r.CopyLimits {
		if limit < 0 {
			return fmt.Errorf("%w: negative copy limit for %s", ErrInvalidRules, rarity)
		}
	}
	if r.Hero.Copies < 0 {
		return fmt.Errorf("%w: negative hero copies", ErrInvalidRules)
	}
	return nil
}

// CopyLimit returns the per-row copy cap for a rarity. The second value is
// false when the format does not limit that rarity.
func (r *Rules) CopyLimit(rarity catalog.Rarity) (int, bool) {
	if limit, ok := r.CopyLimits[string(rarity)]; ok {
		return limit, true
	}
	if r.DefaultCopyLimit > 0 {
		return r.DefaultCopyLimit, true
	}
	return 0, false
}

// FactionAllowed reports whether cards of faction may be played at all.
// An empty allow-list permits every faction.
func (r *Rules) FactionAllowed(faction string) bool {
	if len(r.AllowedFactions) == 0 {
		return true
	}
	return contains(r.AllowedFactions, catalog.NormalizeFaction(faction))
}

// TypeBanned reports whether the card type is excluded from decks.
func (r *Rules) TypeBanned(cardType string) bool {
	return cardType != "" && contains(r.BannedTypes, catalog.NormalizeType(cardType))
}

// CardBanned reports whether the card id is on the ban list.
func (r *Rules) CardBanned(id string) bool {
	return contains(r.BannedCards, id)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
