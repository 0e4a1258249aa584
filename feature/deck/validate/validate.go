package validate

import (
	"errors"
	"fmt"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/reconcile"
	"altered-knowledge/core/rules"
	"altered-knowledge/feature/deck/models"
)

// ErrNoDeck is returned when Validate is called without a deck.
var ErrNoDeck = errors.New("no deck to validate")

// Input is everything a validation run reads. Validate does not modify it.
type Input struct {
	Deck    *models.Deck
	Catalog *catalog.Catalog
	Rules   *rules.Rules
	Index   reconcile.OwnershipIndex
	Uniques *reconcile.Registry
	Mode    models.Mode
}

type resolvedRow struct {
	verdict *models.RowVerdict
	card    catalog.Card
	known   bool
}

// Validate checks a deck against the construction rules and reports the
// ownership of every row. Ownership never changes row legality; in ModeOwned
// rows the player does not own additionally make the deck invalid.
func Validate(in Input) (*models.Report, error) {
	if in.Rules == nil {
		return nil, rules.ErrRuleConfigMissing
	}
	if in.Deck == nil {
		return nil, ErrNoDeck
	}

	rows, malformed := in.Deck.Normalize()
	report := &models.Report{
		Deck:       in.Deck.Name,
		Owner:      in.Deck.Owner,
		Format:     in.Rules.Format,
		Mode:       models.ParseMode(string(in.Mode)),
		Rows:       make([]models.RowVerdict, len(rows)),
		Malformed:  malformed,
		DeckIssues: []models.Issue{},
	}
	if report.Malformed == nil {
		report.Malformed = []models.RowError{}
	}

	resolved := make([]resolvedRow, len(rows))
	for i, row := range rows {
		report.Rows[i] = models.RowVerdict{CardID: row.CardID, Copies: row.Copies, Legal: true, Issues: []models.Issue{}}
		rr := resolvedRow{verdict: &report.Rows[i]}
		rr.card, rr.known = in.Catalog.Lookup(row.CardID)
		resolved[i] = rr
		report.TotalCards += row.Copies
	}

	for _, rr := range resolved {
		checkOwnership(in, rr)
		checkRow(in.Rules, rr)
	}
	checkNames(in.Rules, resolved)
	checkDeck(in, report, resolved)

	report.Verdict = models.Valid
	for _, row := range report.Rows {
		if row.Ownership == models.NotOwned {
			report.NotOwned++
		}
		if !row.Legal {
			report.Verdict = models.Invalid
		}
	}
	if report.Mode == models.ModeOwned && report.NotOwned > 0 {
		report.DeckIssues = append(report.DeckIssues, models.Issue{
			Code:    models.IssueNotOwned,
			Message: fmt.Sprintf("%d card(s) are not in the collection", report.NotOwned),
			Actual:  report.NotOwned,
		})
	}
	if len(report.DeckIssues) > 0 {
		report.Verdict = models.Invalid
	}
	return report, nil
}

func flag(v *models.RowVerdict, issue models.Issue) {
	v.Legal = false
	v.Issues = append(v.Issues, issue)
}

func effectiveRarity(card catalog.Card) catalog.Rarity {
	if card.IsUnique() {
		return catalog.RarityUnique
	}
	return card.Rarity
}

func checkOwnership(in Input, rr resolvedRow) {
	v := rr.verdict
	switch {
	case rr.known && rr.card.IsUnique():
		v.Unique = true
		if in.Uniques.Owned(v.CardID) {
			v.Owned = 1
		}
	case !rr.known && in.Uniques.Owned(v.CardID):
		v.Owned = 1
	default:
		v.Owned = in.Index.Count(v.CardID)
	}
	v.Ownership = models.NotOwned
	if v.Owned > 0 {
		v.Ownership = models.Owned
	}
}

func checkRow(r *rules.Rules, rr resolvedRow) {
	v := rr.verdict
	if !rr.known {
		flag(v, models.Issue{Code: models.IssueUnknownCard, Message: fmt.Sprintf("card %s is not in the catalog", v.CardID)})
		return
	}
	card := rr.card
	v.Name = card.Name
	v.Rarity = string(card.Rarity)

	rarity := effectiveRarity(card)
	if limit, ok := r.CopyLimit(rarity); ok && v.Copies > limit {
		flag(v, models.Issue{
			Code:    models.IssueCopyLimit,
			Message: fmt.Sprintf("%d copies of %s exceed the %s limit of %d", v.Copies, card.Name, rarity, limit),
			Limit:   limit,
			Actual:  v.Copies,
		})
	}
	if r.CardBanned(card.ID) {
		flag(v, models.Issue{Code: models.IssueBannedCard, Message: fmt.Sprintf("%s is banned", card.Name)})
	}
	if r.TypeBanned(card.Type) {
		flag(v, models.Issue{Code: models.IssueBannedType, Message: fmt.Sprintf("%s cards are not allowed", card.Type)})
	}
	if card.Faction != "" && !r.FactionAllowed(card.Faction) {
		flag(v, models.Issue{Code: models.IssueFactionNotAllowed, Message: fmt.Sprintf("faction %s is not allowed", card.Faction)})
	}
}

// checkNames enforces the copy limit across printings that share a name.
func checkNames(r *rules.Rules, resolved []resolvedRow) {
	if r.MaxSameName <= 0 {
		return
	}
	groups := make(map[string][]resolvedRow)
	var order []string
	for _, rr := range resolved {
		if !rr.known || rr.card.IsHero() {
			continue
		}
		slug := catalog.Slugify(rr.card.Name)
		if _, seen := groups[slug]; !seen {
			order = append(order, slug)
		}
		groups[slug] = append(groups[slug], rr)
	}

	for _, slug := range order {
		group := groups[slug]
		total := 0
		for _, rr := range group {
			total += rr.verdict.Copies
		}
		if total <= r.MaxSameName {
			continue
		}
		for _, rr := range group {
			flag(rr.verdict, models.Issue{
				Code:    models.IssueNameCopyLimit,
				Message: fmt.Sprintf("%d copies named %s exceed the limit of %d", total, rr.card.Name, r.MaxSameName),
				Limit:   r.MaxSameName,
				Actual:  total,
			})
		}
	}
}

func checkDeck(in Input, report *models.Report, resolved []resolvedRow) {
	r := in.Rules

	if (r.DeckSize.Min > 0 && report.TotalCards < r.DeckSize.Min) || (r.DeckSize.Max > 0 && report.TotalCards > r.DeckSize.Max) {
		report.DeckIssues = append(report.DeckIssues, models.Issue{
			Code:    models.IssueDeckSize,
			Message: fmt.Sprintf("deck has %d cards, %s", report.TotalCards, sizeBounds(r.DeckSize)),
			Actual:  report.TotalCards,
		})
	}

	totals := make(map[string]int)
	for _, rr := range resolved {
		if rr.known {
			totals[string(effectiveRarity(rr.card))] += rr.verdict.Copies
		}
	}
	for _, rarity := range reconcile.Union(r.RarityTotals) {
		limit := r.RarityTotals[rarity]
		if limit > 0 && totals[rarity] > limit {
			report.DeckIssues = append(report.DeckIssues, models.Issue{
				Code:    models.IssueRarityTotal,
				Message: fmt.Sprintf("deck has %d %s cards, limit is %d", totals[rarity], rarity, limit),
				Limit:   limit,
				Actual:  totals[rarity],
			})
		}
	}

	hero, heroKnown := heroOf(in, report, resolved)

	if r.Hero.Required {
		copies := 0
		for _, rr := range resolved {
			if rr.known && rr.card.IsHero() {
				copies += rr.verdict.Copies
			}
		}
		// A hero named only in the deck metadata counts once.
		if copies == 0 && heroKnown {
			copies = 1
		}
		if copies != r.Hero.Copies {
			report.DeckIssues = append(report.DeckIssues, models.Issue{
				Code:    models.IssueHeroCount,
				Message: fmt.Sprintf("deck needs exactly %d hero, found %d", r.Hero.Copies, copies),
				Limit:   r.Hero.Copies,
				Actual:  copies,
			})
		}
	}

	if !heroKnown || hero.Faction == "" {
		return
	}
	if in.Deck.Faction != "" && catalog.NormalizeFaction(in.Deck.Faction) != hero.Faction {
		report.DeckIssues = append(report.DeckIssues, models.Issue{
			Code:    models.IssueHeroFaction,
			Message: fmt.Sprintf("deck faction %s differs from hero faction %s", in.Deck.Faction, hero.Faction),
		})
	}
	if !r.SameFactionAsHero {
		return
	}
	for _, rr := range resolved {
		if !rr.known || rr.card.Faction == "" || rr.card.Faction == hero.Faction {
			continue
		}
		flag(rr.verdict, models.Issue{
			Code:    models.IssueFactionMismatch,
			Message: fmt.Sprintf("%s is %s, hero is %s", rr.card.Name, rr.card.Faction, hero.Faction),
		})
	}
}

// heroOf finds the deck's hero: the hero_id metadata when it names a hero,
// otherwise the only hero-type row.
func heroOf(in Input, report *models.Report, resolved []resolvedRow) (catalog.Card, bool) {
	if id := in.Deck.HeroID; id != "" {
		card, ok := in.Catalog.Lookup(id)
		switch {
		case !ok:
			report.DeckIssues = append(report.DeckIssues, models.Issue{
				Code:    models.IssueUnknownCard,
				Message: fmt.Sprintf("hero %s is not in the catalog", id),
			})
			return catalog.Card{}, false
		case !card.IsHero():
			report.DeckIssues = append(report.DeckIssues, models.Issue{
				Code:    models.IssueHeroCount,
				Message: fmt.Sprintf("%s is not a hero", card.Name),
			})
			return catalog.Card{}, false
		default:
			return card, true
		}
	}

	var heroes []catalog.Card
	for _, rr := range resolved {
		if rr.known && rr.card.IsHero() {
			heroes = append(heroes, rr.card)
		}
	}
	if len(heroes) == 1 {
		return heroes[0], true
	}
	return catalog.Card{}, false
}

func sizeBounds(b rules.Range) string {
	switch {
	case b.Max <= 0:
		return fmt.Sprintf("at least %d allowed", b.Min)
	case b.Min <= 0:
		return fmt.Sprintf("at most %d allowed", b.Max)
	default:
		return fmt.Sprintf("allowed range is %d-%d", b.Min, b.Max)
	}
}
