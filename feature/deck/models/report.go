package models

import (
	"time"

	"altered-knowledge/core/reconcile"
)

// Ownership is the ownership axis of a row verdict.
type Ownership string

const (
	Owned    Ownership = "Owned"
	NotOwned Ownership = "NotOwned"
)

// Verdict is the deck-level outcome.
type Verdict string

const (
	Valid   Verdict = "Valid"
	Invalid Verdict = "Invalid"
)

// Mode selects whether ownership affects the deck verdict.
type Mode string

const (
	// ModeRules judges legality only; ownership is reported alongside.
	ModeRules Mode = "rules"
	// ModeOwned additionally invalidates decks with cards the player lacks.
	ModeOwned Mode = "owned"
)

// ParseMode maps a query value onto a Mode, defaulting to ModeRules.
func ParseMode(s string) Mode {
	if Mode(s) == ModeOwned {
		return ModeOwned
	}
	return ModeRules
}

// IssueCode identifies a rule violation or data problem.
type IssueCode string

const (
	IssueUnknownCard       IssueCode = "UnknownCard"
	IssueMalformedRow      IssueCode = "MalformedRow"
	IssueCopyLimit         IssueCode = "CopyLimit"
	IssueNameCopyLimit     IssueCode = "NameCopyLimit"
	IssueFactionNotAllowed IssueCode = "FactionNotAllowed"
	IssueFactionMismatch   IssueCode = "FactionMismatch"
	IssueBannedType        IssueCode = "BannedType"
	IssueBannedCard        IssueCode = "BannedCard"
	IssueDeckSize          IssueCode = "DeckSize"
	IssueRarityTotal       IssueCode = "RarityTotal"
	IssueHeroCount         IssueCode = "HeroCount"
	IssueHeroFaction       IssueCode = "HeroFaction"
	IssueNotOwned          IssueCode = "NotOwned"
)

// Issue is one finding with the numbers behind it.
type Issue struct {
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
	Limit   int       `json:"limit,omitempty"`
	Actual  int       `json:"actual,omitempty"`
}

// RowVerdict reports a merged deck row on both axes.
type RowVerdict struct {
	CardID    string    `json:"card_id"`
	Name      string    `json:"name,omitempty"`
	Rarity    string    `json:"rarity,omitempty"`
	Copies    int       `json:"copies"`
	Owned     int       `json:"owned"`
	Ownership Ownership `json:"ownership"`
	Unique    bool      `json:"unique"`
	Legal     bool      `json:"legal"`
	Issues    []Issue   `json:"issues"`
}

// Report is the outcome of validating one deck.
type Report struct {
	Deck        string                 `json:"deck"`
	Owner       string                 `json:"owner"`
	Format      string                 `json:"format,omitempty"`
	Mode        Mode                   `json:"mode"`
	Verdict     Verdict                `json:"verdict"`
	TotalCards  int                    `json:"total_cards"`
	NotOwned    int                    `json:"not_owned"`
	Rows        []RowVerdict           `json:"rows"`
	Malformed   []RowError             `json:"malformed"`
	DeckIssues  []Issue                `json:"deck_issues"`
	// Annotations lists knowledge-base problems behind the ownership figures.
	Annotations []reconcile.Annotation `json:"annotations"`
	CheckedAt   time.Time              `json:"checked_at"`
}

// IssueCount returns the number of row and deck issues.
func (r *Report) IssueCount() int {
	n := len(r.DeckIssues)
	for _, row := range r.Rows {
		n += len(row.Issues)
	}
	return n
}
