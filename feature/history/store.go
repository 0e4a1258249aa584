package history

import (
	"context"
	"encoding/json"
	"fmt"

	"altered-knowledge/feature/deck/models"

	"gorm.io/gorm"
)

// Store persists validation runs.
type Store struct {
	db    *gorm.DB
	limit int
}

// NewStore creates a Store. limit caps List results; zero means 50.
func NewStore(db *gorm.DB, limit int) *Store {
	if limit <= 0 {
		limit = 50
	}
	return &Store{db: db, limit: limit}
}

// Migrate creates or updates the validation_runs table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&ValidationRun{}); err != nil {
		return fmt.Errorf("failed to migrate validation runs: %w", err)
	}
	return nil
}

// Record stores a validation report for player.
func (s *Store) Record(ctx context.Context, player string, report *models.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	run := ValidationRun{
		Player:     player,
		Owner:      report.Owner,
		Deck:       report.Deck,
		Format:     report.Format,
		Mode:       string(report.Mode),
		Verdict:    string(report.Verdict),
		TotalCards: report.TotalCards,
		NotOwned:   report.NotOwned,
		Issues:     report.IssueCount(),
		Report:     string(body),
	}
	if !report.CheckedAt.IsZero() {
		run.CreatedAt = report.CheckedAt
	}

	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to record validation of %s: %w", report.Deck, err)
	}
	return nil
}

// Filter selects validation runs. Empty fields match everything.
type Filter struct {
	Player string
	Owner  string
	Deck   string
}

// List returns the most recent runs matching f, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]ValidationRun, error) {
	query := s.db.WithContext(ctx)
	if f.Player != "" {
		query = query.Where("player = ?", f.Player)
	}
	if f.Owner != "" {
		query = query.Where("owner = ?", f.Owner)
	}
	if f.Deck != "" {
		query = query.Where("deck = ?", f.Deck)
	}

	var runs []ValidationRun
	err := query.
		Order("created_at desc, id desc").
		Limit(s.limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs of %s: %w", f.Deck, err)
	}
	return runs, nil
}

// Decode returns the full report stored with a run.
func (r ValidationRun) Decode() (*models.Report, error) {
	var report models.Report
	if err := json.Unmarshal([]byte(r.Report), &report); err != nil {
		return nil, fmt.Errorf("failed to decode run %d: %w", r.ID, err)
	}
	return &report, nil
}
