package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"altered-knowledge/core/utils"
)

// ErrInvalidCard is returned for card records that carry no usable id.
var ErrInvalidCard = errors.New("invalid card record")

var filenameRarity = regexp.MustCompile(`_([CRU])(?:\d+)?$`)

var (
	idKeys      = []string{"card_id", "reference", "ref", "id"}
	nameKeys    = []string{"name", "cardName", "title"}
	rarityKeys  = []string{"rarity", "rar"}
	typeKeys    = []string{"type", "cardType", "cardTypeName"}
	factionKeys = []string{"faction", "affinity", "mainFaction"}
	langKeys    = []string{"lang", "language", "locale"}
	setKeys     = []string{"set_id", "set", "setCode", "expansion", "cardSet"}
	costKeys    = []string{"cost", "hand_cost", "handCost"}
)

// pathInfo is what a CARDS/<LANG>/<SET>/<FACTION>/<REF>.json key implies.
type pathInfo struct {
	Lang, Set, Faction, Reference string
	Rarity                        Rarity
}

func inferFromPath(key string) pathInfo {
	var info pathInfo
	if key == "" {
		return info
	}
	parts := strings.Split(strings.Trim(key, "/"), "/")
	if len(parts) >= 5 && parts[0] == "CARDS" {
		info.Lang = parts[1]
		info.Set = parts[2]
		info.Faction = parts[3]
	}
	base := path.Base(key)
	info.Reference = strings.TrimSuffix(base, path.Ext(base))
	if m := filenameRarity.FindStringSubmatch(info.Reference); m != nil {
		info.Rarity = NormalizeRarity(m[1])
	}
	return info
}

// ParseCards decodes a card file. Files hold a single card object, an array of
// them, or an object wrapping the array under "cards". Values missing from the
// record are filled in from the object key. Records that still have no id are
// reported in the returned error list and skipped.
func ParseCards(key string, data []byte) ([]Card, []error, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case map[string]any:
		if nested, ok := v["cards"].([]any); ok {
			items = nested
		} else {
			items = []any{v}
		}
	default:
		return nil, nil, fmt.Errorf("failed to decode %s: unexpected %T", key, raw)
	}

	info := inferFromPath(key)
	single := len(items) == 1

	var (
		cards    []Card
		problems []error
	)
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			problems = append(problems, fmt.Errorf("%s[%d]: %w: not an object", key, i, ErrInvalidCard))
			continue
		}
		card := parseCard(obj)
		card.Path = key
		// Only a one-card file can borrow its identity from the filename.
		if card.ID == "" && single {
			card.ID = info.Reference
		}
		if card.ID == "" {
			problems = append(problems, fmt.Errorf("%s[%d]: %w: missing id", key, i, ErrInvalidCard))
			continue
		}
		if card.Rarity == "" && single {
			card.Rarity = info.Rarity
		}
		if card.Lang == "" {
			card.Lang = info.Lang
		}
		if card.SetID == "" {
			card.SetID = info.Set
		}
		if card.Faction == "" {
			card.Faction = NormalizeFaction(info.Faction)
		}
		if card.Name == "" {
			card.Name = card.ID
		}
		cards = append(cards, card)
	}
	return cards, problems, nil
}

func parseCard(obj map[string]any) Card {
	card := Card{
		ID:      label(obj, idKeys, false),
		Name:    label(obj, nameKeys, true),
		Rarity:  NormalizeRarity(label(obj, rarityKeys, false)),
		Type:    NormalizeType(label(obj, typeKeys, false)),
		Faction: NormalizeFaction(label(obj, factionKeys, false)),
		Lang:    label(obj, langKeys, false),
		SetID:   label(obj, setKeys, false),
		Unique:  utils.ToBool(obj["unique"]),
	}
	card.Cost = cost(obj)
	if card.Rarity == RarityUnique {
		card.Unique = true
	}
	return card
}

// label reads a field that is either a plain value or a nested
// {"reference": ..., "name": ...} object. preferName picks the display name of
// nested objects, otherwise the reference code.
func label(obj map[string]any, keys []string, preferName bool) string {
	v, ok := utils.FirstOf(obj, keys...)
	if !ok {
		return ""
	}
	nested, ok := v.(map[string]any)
	if !ok {
		return utils.ToString(v)
	}
	order := []string{"reference", "code", "name"}
	if preferName {
		order = []string{"name", "en", "de", "reference"}
	}
	for _, k := range order {
		if s := utils.ToString(nested[k]); s != "" {
			return s
		}
	}
	return ""
}

func cost(obj map[string]any) int {
	if v, ok := utils.FirstOf(obj, costKeys...); ok {
		if n, ok := utils.ToInt(v); ok {
			return n
		}
	}
	elements, ok := obj["elements"].(map[string]any)
	if !ok {
		return 0
	}
	raw := strings.Trim(utils.ToString(elements["MAIN_COST"]), "#")
	n, _ := utils.ToInt(raw)
	return n
}
