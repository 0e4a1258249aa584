package collection

import (
	"context"

	"altered-knowledge/core/session"
	"altered-knowledge/core/stats"

	"go.uber.org/zap"
)

// Service builds ownership views for the configured player.
type Service struct {
	sessions *session.Store
	player   string
	logger   *zap.Logger
}

// NewService creates a new collection service.
func NewService(sessions *session.Store, player string, logger *zap.Logger) *Service {
	return &Service{sessions: sessions, player: player, logger: logger}
}

// Table returns the ownership table with the annotations of the rebuild.
func (s *Service) Table(ctx context.Context) (*Table, error) {
	sess, err := s.sessions.Get(ctx, s.player)
	if err != nil {
		return nil, err
	}
	idx, notes, err := sess.Ownership(ctx)
	if err != nil {
		return nil, err
	}

	t := BuildTable(sess.Catalog, idx, sess.Registry())
	t.Annotations = append(t.Annotations, notes...)
	t.Annotations = append(t.Annotations, sess.Annotations...)
	return &t, nil
}

// Stats summarizes the collection, counting each owned unique once.
func (s *Service) Stats(ctx context.Context) (*stats.Summary, error) {
	sess, err := s.sessions.Get(ctx, s.player)
	if err != nil {
		return nil, err
	}
	idx, _, err := sess.Ownership(ctx)
	if err != nil {
		return nil, err
	}
	summary := stats.Collection(sess.Catalog, idx, sess.Registry())
	return &summary, nil
}
