package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/reconcile"
	"altered-knowledge/core/stats"
	"altered-knowledge/feature/collection"
	"altered-knowledge/feature/deck/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var jsonFlag bool

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	validStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	invalidStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
)

// emit writes v as indented JSON when --json is set and reports whether it did.
func emit(w io.Writer, v any) (bool, error) {
	if !jsonFlag {
		return false, nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return true, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return true, err
}

func grid(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		String()
}

func verdictLabel(v models.Verdict) string {
	if v == models.Valid {
		return validStyle.Render(string(v))
	}
	return invalidStyle.Render(string(v))
}

func issueText(issues []models.Issue) string {
	parts := make([]string, 0, len(issues))
	for _, is := range issues {
		parts = append(parts, is.Message)
	}
	return strings.Join(parts, "; ")
}

func renderReport(w io.Writer, r *models.Report) {
	fmt.Fprintf(w, "%s %s (%s, mode %s)\n", titleStyle.Render("Deck"), r.Deck, r.Owner, r.Mode)

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		legal := "yes"
		if !row.Legal {
			legal = "no"
		}
		rows = append(rows, []string{
			row.CardID, row.Name, row.Rarity,
			strconv.Itoa(row.Copies), strconv.Itoa(row.Owned), string(row.Ownership),
			legal, issueText(row.Issues),
		})
	}
	fmt.Fprintln(w, grid([]string{"Card", "Name", "Rarity", "Copies", "Owned", "Ownership", "Legal", "Issues"}, rows))

	for _, m := range r.Malformed {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("row %d skipped: %s", m.Index, m.Reason)))
	}
	for _, is := range r.DeckIssues {
		fmt.Fprintf(w, "%s %s\n", invalidStyle.Render(string(is.Code)), is.Message)
	}
	renderAnnotations(w, r.Annotations)
	fmt.Fprintf(w, "Total: %d  Not owned: %d  Verdict: %s\n", r.TotalCards, r.NotOwned, verdictLabel(r.Verdict))
}

func renderSummary(w io.Writer, title string, s stats.Summary) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintf(w, "Total: %d  Average cost: %.2f  Max cost: %d\n", s.Total, s.AverageCost, s.MaxCost)

	costs := make([]int, 0, len(s.ByCost))
	for c := range s.ByCost {
		costs = append(costs, c)
	}
	sort.Ints(costs)
	var curve [][]string
	for _, c := range costs {
		curve = append(curve, []string{strconv.Itoa(c), strconv.Itoa(s.ByCost[c])})
	}
	if len(curve) > 0 {
		fmt.Fprintln(w, grid([]string{"Cost", "Cards"}, curve))
	}

	fmt.Fprintln(w, grid([]string{"Rarity", "Cards"}, counted(s.ByRarity)))
	fmt.Fprintln(w, grid([]string{"Faction", "Cards"}, counted(s.ByFaction)))
	if s.Unresolved > 0 {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d copies not in catalog: %s", s.Unresolved, strings.Join(s.UnresolvedIDs, ", "))))
	}
}

func counted(m map[string]int) [][]string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, strconv.Itoa(m[k])})
	}
	return rows
}

func renderComparison(w io.Writer, c *models.Comparison) {
	fmt.Fprintf(w, "%s %s vs %s\n", titleStyle.Render("Compare"), c.Diff.Mine, c.Diff.Other)
	defer renderAnnotations(w, c.Annotations)

	rows := make([][]string, 0, len(c.Diff.Entries))
	for _, e := range c.Diff.Entries {
		rows = append(rows, []string{e.CardID, e.Name, strconv.Itoa(e.Mine), strconv.Itoa(e.Other), fmt.Sprintf("%+d", e.Delta)})
	}
	fmt.Fprintln(w, grid([]string{"Card", "Name", "Mine", "Other", "Delta"}, rows))

	if len(c.Suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, titleStyle.Render("Suggestions"))
	sugg := make([][]string, 0, len(c.Suggestions))
	for _, s := range c.Suggestions {
		sugg = append(sugg, []string{s.CardID, s.Name, strconv.Itoa(s.Missing), strconv.Itoa(s.Owned), string(s.Status)})
	}
	fmt.Fprintln(w, grid([]string{"Card", "Name", "Missing", "Owned", "Status"}, sugg))
}

func renderCollection(w io.Writer, t *collection.Table) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("Collection"), t.Player)

	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, []string{r.CardID, r.Name, r.Rarity, strconv.Itoa(r.Count), strconv.Itoa(r.FoilCount), r.Faction, r.Category})
	}
	fmt.Fprintln(w, grid([]string{"Card", "Name", "Rarity", "Count", "Foil", "Faction", "Category"}, rows))
	fmt.Fprintf(w, "Regular: %d  Unique: %d\n", t.Regular, t.Unique)

	renderAnnotations(w, t.Annotations)
}

func renderAnnotations(w io.Writer, notes []reconcile.Annotation) {
	for _, a := range notes {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%s %s: %s", a.Kind, a.Shard, a.Reason)))
	}
}

func renderCards(w io.Writer, cards []catalog.Card) {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{c.ID, c.Name, string(c.Rarity), c.Faction, strconv.Itoa(c.Cost), c.SetID, c.Type})
	}
	fmt.Fprintln(w, grid([]string{"Card", "Name", "Rarity", "Faction", "Cost", "Set", "Type"}, rows))
}

func renderCounts(w io.Writer, c catalog.Counts) {
	fmt.Fprintf(w, "%s %d cards\n", titleStyle.Render("Catalog"), c.Total)
	fmt.Fprintln(w, grid([]string{"Set", "Cards"}, counted(c.BySet)))
	fmt.Fprintln(w, grid([]string{"Faction", "Cards"}, counted(c.ByFaction)))
	fmt.Fprintln(w, grid([]string{"Rarity", "Cards"}, counted(c.ByRarity)))
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print results as JSON")
}
