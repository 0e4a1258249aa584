package collection

import (
	"sort"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/reconcile"
)

// Categories of the ownership table.
const (
	CategoryRegular = "Regular"
	CategoryUnique  = "Unique"
)

// Row is one line of the ownership table.
type Row struct {
	CardID    string `json:"card_id"`
	Name      string `json:"name"`
	Rarity    string `json:"rarity"`
	Count     int    `json:"count"`
	FoilCount int    `json:"foil"`
	Set       string `json:"set"`
	Faction   string `json:"faction"`
	Category  string `json:"category"`
}

// Table is the combined ownership view of a player.
type Table struct {
	Player      string                 `json:"player"`
	Rows        []Row                  `json:"rows"`
	Regular     int                    `json:"regular"`
	Unique      int                    `json:"unique"`
	Annotations []reconcile.Annotation `json:"annotations"`
}

// BuildTable joins the ownership index and owned uniques with the catalog.
// Uniques are listed under their own category with a count of one and are
// never merged into the numeric rows; unique ids found in idx are skipped.
// Rows are sorted by name, then id.
func BuildTable(cat *catalog.Catalog, idx reconcile.OwnershipIndex, reg *reconcile.Registry) Table {
	t := Table{Player: reg.Player(), Rows: []Row{}, Annotations: []reconcile.Annotation{}}

	idx, _ = idx.WithoutUniques("", func(id string) bool {
		return cat.IsUnique(id) || reg.Known(id)
	})

	for _, id := range idx.IDs() {
		e := idx[id]
		row := describe(cat, id, CategoryRegular)
		row.Count = e.Count
		row.FoilCount = e.FoilCount
		t.Rows = append(t.Rows, row)
		t.Regular += e.Count
	}
	for _, id := range reg.OwnedIDs() {
		row := describe(cat, id, CategoryUnique)
		row.Count = 1
		t.Rows = append(t.Rows, row)
		t.Unique++
	}

	sort.SliceStable(t.Rows, func(i, j int) bool {
		if t.Rows[i].Name != t.Rows[j].Name {
			return t.Rows[i].Name < t.Rows[j].Name
		}
		return t.Rows[i].CardID < t.Rows[j].CardID
	})
	return t
}

func describe(cat *catalog.Catalog, id, category string) Row {
	row := Row{CardID: id, Name: id, Category: category}
	if card, ok := cat.Lookup(id); ok {
		row.Name = card.Name
		row.Rarity = string(card.Rarity)
		row.Set = card.SetID
		row.Faction = card.Faction
	}
	return row
}
