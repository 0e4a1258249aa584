package validate

import (
	"testing"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/reconcile"
	"altered-knowledge/core/rules"
	"altered-knowledge/feature/deck/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Card{
		{ID: "A", Name: "Alpha", Rarity: catalog.RarityCommon, Faction: "AX", Cost: 2},
		{ID: "A_R", Name: "Alpha", Rarity: catalog.RarityRare, Faction: "AX", Cost: 2},
		{ID: "B", Name: "Beta", Rarity: catalog.RarityUnique, Faction: "AX", Cost: 3, Unique: true},
		{ID: "C", Name: "Gamma", Rarity: catalog.RarityRare, Faction: "LY", Cost: 4},
		{ID: "H", Name: "Sierra", Rarity: catalog.RarityCommon, Faction: "AX", Type: catalog.TypeHero},
		{ID: "H2", Name: "Nevenka", Rarity: catalog.RarityCommon, Faction: "LY", Type: catalog.TypeHero},
		{ID: "T", Name: "Ordis Recruit", Rarity: catalog.RarityCommon, Faction: "AX", Type: catalog.TypeToken},
	})
}

func copyRules() *rules.Rules {
	return &rules.Rules{CopyLimits: map[string]int{"Common": 3, "Rare": 3, "Unique": 1}}
}

func rowByID(t *testing.T, r *models.Report, id string) models.RowVerdict {
	t.Helper()
	for _, row := range r.Rows {
		if row.CardID == id {
			return row
		}
	}
	t.Fatalf("row %s not in report", id)
	return models.RowVerdict{}
}

func codes(issues []models.Issue) []models.IssueCode {
	out := make([]models.IssueCode, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Code)
	}
	return out
}

func TestValidate_UniqueCopyLimit(t *testing.T) {
	deck := &models.Deck{Name: "d", Rows: []models.Row{{CardID: "A", Copies: 2}, {CardID: "B", Copies: 3}}}
	owner := "me"

	for name, reg := range map[string]*reconcile.Registry{
		"Owned":     reconcile.NewRegistry("me", []reconcile.UniqueCard{{CardID: "B", Owner: &owner}}),
		"Not Owned": nil,
	} {
		t.Run(name, func(t *testing.T) {
			report, err := Validate(Input{Deck: deck, Catalog: testCatalog(), Rules: copyRules(), Uniques: reg})
			require.NoError(t, err)

			b := rowByID(t, report, "B")
			assert.False(t, b.Legal)
			assert.True(t, b.Unique)
			assert.Equal(t, []models.IssueCode{models.IssueCopyLimit}, codes(b.Issues))
			assert.True(t, rowByID(t, report, "A").Legal)
			assert.Equal(t, models.Invalid, report.Verdict)
		})
	}
}

func TestValidate_OwnershipDoesNotAffectLegality(t *testing.T) {
	deck := &models.Deck{Rows: []models.Row{{CardID: "A", Copies: 3}, {CardID: "C", Copies: 1}}}
	in := Input{Deck: deck, Catalog: testCatalog(), Rules: copyRules()}

	unowned, err := Validate(in)
	require.NoError(t, err)

	in.Index = reconcile.OwnershipIndex{"A": {CardID: "A", Count: 1}, "C": {CardID: "C", Count: 4}}
	owned, err := Validate(in)
	require.NoError(t, err)

	for i := range owned.Rows {
		assert.Equal(t, unowned.Rows[i].Legal, owned.Rows[i].Legal)
		assert.Equal(t, unowned.Rows[i].Issues, owned.Rows[i].Issues)
	}
	assert.Equal(t, models.Valid, unowned.Verdict)
	assert.Equal(t, models.Valid, owned.Verdict)
	assert.Equal(t, 2, unowned.NotOwned)
	assert.Equal(t, 0, owned.NotOwned)
	assert.Equal(t, models.Owned, rowByID(t, owned, "A").Ownership)
	assert.Equal(t, 1, rowByID(t, owned, "A").Owned)
}

func TestValidate_OwnedMode(t *testing.T) {
	deck := &models.Deck{Rows: []models.Row{{CardID: "A", Copies: 3}, {CardID: "C", Copies: 1}}}
	in := Input{
		Deck:    deck,
		Catalog: testCatalog(),
		Rules:   copyRules(),
		Index:   reconcile.OwnershipIndex{"A": {CardID: "A", Count: 3}},
		Mode:    models.ModeOwned,
	}

	report, err := Validate(in)
	require.NoError(t, err)
	assert.Equal(t, models.Invalid, report.Verdict)
	assert.Equal(t, []models.IssueCode{models.IssueNotOwned}, codes(report.DeckIssues))
	assert.True(t, rowByID(t, report, "C").Legal)

	in.Index["C"] = reconcile.OwnershipEntry{CardID: "C", Count: 1}
	report, err = Validate(in)
	require.NoError(t, err)
	assert.Equal(t, models.Valid, report.Verdict)
}

func TestValidate_UnknownAndMalformed(t *testing.T) {
	deck := &models.Deck{Rows: []models.Row{
		{CardID: "A", Copies: 1},
		{CardID: "ZZZ", Copies: 1},
		{CardID: "", Copies: 2},
		{CardID: "A", Copies: 1},
		{CardID: "C", Copies: 0},
	}}

	report, err := Validate(Input{Deck: deck, Catalog: testCatalog(), Rules: copyRules()})
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, 2, rowByID(t, report, "A").Copies)
	unknown := rowByID(t, report, "ZZZ")
	assert.False(t, unknown.Legal)
	assert.Equal(t, []models.IssueCode{models.IssueUnknownCard}, codes(unknown.Issues))
	assert.Len(t, report.Malformed, 2)
	assert.Equal(t, 3, report.TotalCards)
	assert.Equal(t, models.Invalid, report.Verdict)
}

func TestValidate_MissingRules(t *testing.T) {
	_, err := Validate(Input{Deck: &models.Deck{}, Catalog: testCatalog()})
	assert.ErrorIs(t, err, rules.ErrRuleConfigMissing)

	_, err = Validate(Input{Catalog: testCatalog(), Rules: copyRules()})
	assert.ErrorIs(t, err, ErrNoDeck)
}

func TestValidate_Constructed(t *testing.T) {
	r, err := rules.Parse([]byte(`
deck_size: {min: 5, max: 8}
copy_limits: {common: 3, rare: 3, unique: 1}
max_same_name: 3
rarity_totals: {rare: 2, unique: 1}
same_faction_as_hero: true
hero: {required: true}
banned_types: [token]
`))
	require.NoError(t, err)

	t.Run("Legal", func(t *testing.T) {
		deck := &models.Deck{HeroID: "H", Faction: "AX", Rows: []models.Row{
			{CardID: "H", Copies: 1},
			{CardID: "A", Copies: 2},
			{CardID: "A_R", Copies: 1},
			{CardID: "B", Copies: 1},
		}}
		report, err := Validate(Input{Deck: deck, Catalog: testCatalog(), Rules: r})
		require.NoError(t, err)
		assert.Equal(t, models.Valid, report.Verdict, report.DeckIssues)
		assert.Zero(t, report.IssueCount())
	})

	t.Run("Every Violation", func(t *testing.T) {
		deck := &models.Deck{HeroID: "H", Faction: "LY", Rows: []models.Row{
			{CardID: "A", Copies: 3},
			{CardID: "A_R", Copies: 2},
			{CardID: "C", Copies: 1},
			{CardID: "T", Copies: 1},
			{CardID: "B", Copies: 2},
		}}
		report, err := Validate(Input{Deck: deck, Catalog: testCatalog(), Rules: r})
		require.NoError(t, err)

		assert.Equal(t, models.Invalid, report.Verdict)
		assert.ElementsMatch(t, []models.IssueCode{
			models.IssueDeckSize,
			models.IssueRarityTotal,
			models.IssueRarityTotal,
			models.IssueHeroFaction,
		}, codes(report.DeckIssues))
		assert.Equal(t, []models.IssueCode{models.IssueNameCopyLimit}, codes(rowByID(t, report, "A").Issues))
		assert.Equal(t, []models.IssueCode{models.IssueFactionMismatch}, codes(rowByID(t, report, "C").Issues))
		assert.Equal(t, []models.IssueCode{models.IssueBannedType}, codes(rowByID(t, report, "T").Issues))
		assert.Equal(t, []models.IssueCode{models.IssueCopyLimit}, codes(rowByID(t, report, "B").Issues))
	})

	t.Run("Hero Count", func(t *testing.T) {
		deck := &models.Deck{Rows: []models.Row{
			{CardID: "H", Copies: 1},
			{CardID: "H2", Copies: 1},
			{CardID: "A", Copies: 2},
		}}
		report, err := Validate(Input{Deck: deck, Catalog: testCatalog(), Rules: r})
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.IssueCode{models.IssueHeroCount, models.IssueDeckSize}, codes(report.DeckIssues))
	})

	t.Run("Hero From Metadata", func(t *testing.T) {
		deck := &models.Deck{HeroID: "H2", Rows: []models.Row{
			{CardID: "C", Copies: 3},
			{CardID: "A", Copies: 2},
		}}
		report, err := Validate(Input{Deck: deck, Catalog: testCatalog(), Rules: r})
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.IssueCode{models.IssueRarityTotal}, codes(report.DeckIssues))
		assert.Equal(t, []models.IssueCode{models.IssueFactionMismatch}, codes(rowByID(t, report, "A").Issues))
	})

	t.Run("Unknown Hero", func(t *testing.T) {
		deck := &models.Deck{HeroID: "NOPE", Rows: []models.Row{{CardID: "A", Copies: 3}, {CardID: "A_R", Copies: 0}}}
		report, err := Validate(Input{Deck: deck, Catalog: testCatalog(), Rules: r})
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.IssueCode{models.IssueUnknownCard, models.IssueHeroCount, models.IssueDeckSize}, codes(report.DeckIssues))
	})
}

func TestValidate_DeckSizeMessage(t *testing.T) {
	deck := &models.Deck{Rows: []models.Row{{CardID: "A", Copies: 2}}}

	tests := []struct {
		name string
		size rules.Range
		want string
	}{
		{"Unbounded Max", rules.Range{Min: 40}, "deck has 2 cards, at least 40 allowed"},
		{"Unbounded Min", rules.Range{Max: 1}, "deck has 2 cards, at most 1 allowed"},
		{"Range", rules.Range{Min: 40, Max: 60}, "deck has 2 cards, allowed range is 40-60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := copyRules()
			r.DeckSize = tt.size
			report, err := Validate(Input{Deck: deck, Catalog: testCatalog(), Rules: r})
			require.NoError(t, err)
			require.Len(t, report.DeckIssues, 1)
			assert.Equal(t, models.IssueDeckSize, report.DeckIssues[0].Code)
			assert.Equal(t, tt.want, report.DeckIssues[0].Message)
		})
	}
}

func TestValidate_ZeroCountMatchesAbsent(t *testing.T) {
	deck := &models.Deck{Rows: []models.Row{{CardID: "A", Copies: 2}, {CardID: "C", Copies: 1}}}

	for _, mode := range []models.Mode{models.ModeRules, models.ModeOwned} {
		t.Run(string(mode), func(t *testing.T) {
			absent, err := Validate(Input{
				Deck: deck, Catalog: testCatalog(), Rules: copyRules(), Mode: mode,
				Index: reconcile.OwnershipIndex{"C": {CardID: "C", Count: 1}},
			})
			require.NoError(t, err)
			zero, err := Validate(Input{
				Deck: deck, Catalog: testCatalog(), Rules: copyRules(), Mode: mode,
				Index: reconcile.OwnershipIndex{"A": {CardID: "A", Count: 0}, "C": {CardID: "C", Count: 1}},
			})
			require.NoError(t, err)

			assert.Equal(t, absent.Rows, zero.Rows)
			assert.Equal(t, absent.Verdict, zero.Verdict)
			assert.Equal(t, absent.NotOwned, zero.NotOwned)
			assert.Equal(t, absent.DeckIssues, zero.DeckIssues)
			assert.Equal(t, models.NotOwned, rowByID(t, zero, "A").Ownership)
			assert.Equal(t, 0, rowByID(t, zero, "A").Owned)
			assert.Equal(t, 1, zero.NotOwned)
		})
	}
}
