package catalog

import (
	"context"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/session"

	"go.uber.org/zap"
)

// Service answers card lookups from the session catalog.
type Service struct {
	sessions *session.Store
	player   string
	logger   *zap.Logger
}

// NewService creates a new catalog service.
func NewService(sessions *session.Store, player string, logger *zap.Logger) *Service {
	return &Service{sessions: sessions, player: player, logger: logger}
}

func (s *Service) catalog(ctx context.Context) (*catalog.Catalog, error) {
	sess, err := s.sessions.Get(ctx, s.player)
	if err != nil {
		return nil, err
	}
	return sess.Catalog, nil
}

// Card returns the card with the given reference id.
func (s *Service) Card(ctx context.Context, id string) (catalog.Card, error) {
	cat, err := s.catalog(ctx)
	if err != nil {
		return catalog.Card{}, err
	}
	return cat.Resolve(id)
}

// Search returns the cards matching a name.
func (s *Service) Search(ctx context.Context, name string) ([]catalog.Card, error) {
	cat, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return cat.FindByName(name), nil
}

// Counts returns the catalog size by set, faction and rarity.
func (s *Service) Counts(ctx context.Context) (catalog.Counts, error) {
	cat, err := s.catalog(ctx)
	if err != nil {
		return catalog.Counts{}, err
	}
	return cat.Counts(), nil
}
