package stats_test

import (
	"testing"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/reconcile"
	"altered-knowledge/core/stats"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Card{
		{ID: "A", Name: "Alpha", Rarity: catalog.RarityCommon, Faction: "AX", Cost: 2, Type: catalog.TypeCharacter},
		{ID: "B", Name: "Beta", Rarity: catalog.RarityRare, Faction: "AX", Cost: 5, Type: catalog.TypeSpell},
		{ID: "H", Name: "Hero", Rarity: catalog.RarityCommon, Faction: "AX", Type: catalog.TypeHero},
		{ID: "U", Name: "Unique", Rarity: catalog.RarityUnique, Faction: "LY", Cost: 4, Unique: true},
	})
}

func TestSummarize_CostCurve(t *testing.T) {
	s := stats.Summarize(testCatalog(), []stats.Line{{CardID: "A", Quantity: 3}, {CardID: "B", Quantity: 1}})

	assert.Equal(t, map[int]int{2: 3, 5: 1}, s.ByCost)
	assert.Equal(t, 4, s.Total)
	assert.InDelta(t, 2.75, s.AverageCost, 0.0001)
	assert.Equal(t, 5, s.MaxCost)
}

func TestSummarize_Buckets(t *testing.T) {
	s := stats.Summarize(testCatalog(), []stats.Line{
		{CardID: "H", Quantity: 1},
		{CardID: "A", Quantity: 2},
		{CardID: "U", Quantity: 1},
		{CardID: "X", Quantity: 2},
		{CardID: "X", Quantity: 1},
		{CardID: "B", Quantity: 0},
	})

	want := stats.Summary{
		Total:         4,
		ByCost:        map[int]int{0: 1, 2: 2, 4: 1},
		ByRarity:      map[string]int{"Common": 3, "Unique": 1},
		ByFaction:     map[string]int{"AX": 3, "LY": 1},
		ByType:        map[string]int{"hero": 1, "character": 2, "unknown": 1},
		Unresolved:    3,
		UnresolvedIDs: []string{"X"},
		AverageCost:   8.0 / 3.0,
		MaxCost:       4,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection(t *testing.T) {
	idx := reconcile.OwnershipIndex{
		"A": {CardID: "A", Count: 4, FoilCount: 2},
		"Z": {CardID: "Z", Count: 1},
	}
	owner := "me"
	reg := reconcile.NewRegistry("me", []reconcile.UniqueCard{{CardID: "U", Owner: &owner}})

	s := stats.Collection(testCatalog(), idx, reg)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, map[string]int{"Common": 4, "Unique": 1}, s.ByRarity, "foil copies keep their rarity bucket")
	assert.Equal(t, 1, s.Unresolved)

	idx["U"] = reconcile.OwnershipEntry{CardID: "U", Count: 2}
	s = stats.Collection(testCatalog(), idx, reg)
	assert.Equal(t, 5, s.Total, "uniques in the index are not counted twice")
	assert.Equal(t, 1, s.ByRarity["Unique"])

	empty := stats.Collection(testCatalog(), nil, nil)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.AverageCost)
}
