package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rarity is the printed rarity class of a card.
type Rarity string

const (
	RarityCommon Rarity = "Common"
	RarityRare   Rarity = "Rare"
	RarityUnique Rarity = "Unique"
)

// Card types that construction rules refer to.
const (
	TypeHero      = "hero"
	TypeCharacter = "character"
	TypeSpell     = "spell"
	TypePermanent = "permanent"
	TypeCompanion = "companion"
	TypeToken     = "token"
)

// Card is the immutable reference data for one card print.
type Card struct {
	ID      string `json:"card_id"`
	Name    string `json:"name"`
	Rarity  Rarity `json:"rarity"`
	Faction string `json:"faction"`
	Cost    int    `json:"cost"`
	SetID   string `json:"set_id"`
	Type    string `json:"type,omitempty"`
	Lang    string `json:"lang,omitempty"`
	Unique  bool   `json:"unique"`
	// Path is the knowledge-base object the card was read from.
	Path string `json:"path,omitempty"`
}

// IsUnique reports whether ownership of the card is boolean.
func (c Card) IsUnique() bool {
	return c.Unique || c.Rarity == RarityUnique
}

// IsHero reports whether the card is a hero.
func (c Card) IsHero() bool {
	return c.Type == TypeHero
}

var rarityAliases = map[string]Rarity{
	"C":           RarityCommon,
	"COMMON":      RarityCommon,
	"GEWÖHNLICH":  RarityCommon,
	"GEWOEHNLICH": RarityCommon,
	"R":           RarityRare,
	"RARE":        RarityRare,
	"SELTEN":      RarityRare,
	"U":           RarityUnique,
	"UNIQUE":      RarityUnique,
	"EINZIGARTIG": RarityUnique,
}

// NormalizeRarity maps short codes and German labels onto the canonical rarity.
// Unrecognized values are returned title-cased so they still bucket consistently.
func NormalizeRarity(s string) Rarity {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if r, ok := rarityAliases[strings.ToUpper(s)]; ok {
		return r
	}
	r, size := utf8.DecodeRuneInString(s)
	return Rarity(string(unicode.ToUpper(r)) + strings.ToLower(s[size:]))
}

var typeAliases = map[string]string{
	"hero":               TypeHero,
	"held":               TypeHero,
	"companion":          TypeCompanion,
	"begleiter":          TypeCompanion,
	"character":          TypeCharacter,
	"charakter":          TypeCharacter,
	"spell":              TypeSpell,
	"zauber":             TypeSpell,
	"permanent":          TypePermanent,
	"landmark":           TypePermanent,
	"permanent/landmark": TypePermanent,
	"landmark_permanent": TypePermanent,
	"token":              TypeToken,
	"spielstein":         TypeToken,
}

// NormalizeType maps English and German card type labels onto one spelling.
func NormalizeType(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if t, ok := typeAliases[v]; ok {
		return t
	}
	return v
}

var factionAliases = map[string]string{
	"AXIOM":  "AX",
	"BRAVOS": "BR",
	"LYRA":   "LY",
	"MUNA":   "MU",
	"ORDIS":  "OR",
	"YZMIR":  "YZ",
}

// NormalizeFaction returns the two-letter faction code.
func NormalizeFaction(s string) string {
	v := strings.ToUpper(strings.TrimSpace(s))
	if code, ok := factionAliases[v]; ok {
		return code
	}
	return v
}
