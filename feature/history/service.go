package history

import (
	"context"

	"go.uber.org/zap"
)

// Service exposes stored validation runs.
type Service struct {
	store  *Store
	player string
	logger *zap.Logger
}

// NewService creates a new history service. Runs default to those recorded
// for player.
func NewService(store *Store, player string, logger *zap.Logger) *Service {
	return &Service{store: store, player: player, logger: logger}
}

// Runs returns the recent validation runs matching f. An empty f.Player means
// the configured player.
func (s *Service) Runs(ctx context.Context, f Filter) ([]ValidationRun, error) {
	if f.Player == "" {
		f.Player = s.player
	}
	return s.store.List(ctx, f)
}
