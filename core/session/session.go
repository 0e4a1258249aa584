package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/reconcile"
	"altered-knowledge/core/rules"
	"altered-knowledge/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by a Session used after Close.
var ErrClosed = errors.New("session closed")

// Session is the reference data shared by the requests of one player: the card
// catalog, the construction rules and the unique-card records. Ownership
// shards are not part of it and are rebuilt on every query.
type Session struct {
	Player  string
	Catalog *catalog.Catalog
	Rules   *rules.Rules
	// RulesErr is kept instead of failing Open so that ownership views keep
	// working while the rule document is missing.
	RulesErr error
	Uniques  []reconcile.UniqueCard
	// Annotations collects the unique-card records that were skipped.
	Annotations     []reconcile.Annotation
	CatalogProblems []error
	Opened          time.Time

	cfg    Config
	loader *reconcile.Loader

	mu     sync.RWMutex
	closed bool
}

// Open loads the catalog, rules and uniques concurrently.
func Open(ctx context.Context, client storage.Client, bucket string, cfg Config, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		Player: cfg.Player,
		cfg:    cfg,
		loader: &reconcile.Loader{
			Client:      client,
			Bucket:      bucket,
			Concurrency: cfg.Concurrency,
			Logger:      logger,
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := catalog.Load(gctx, client, bucket, cfg.CardsPrefix, cfg.Concurrency, logger)
		if err != nil {
			return err
		}
		s.Catalog = res.Catalog
		s.CatalogProblems = res.Problems
		return nil
	})

	g.Go(func() error {
		r, err := rules.Load(gctx, client, bucket, cfg.RulesObject)
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			logger.Warn("Construction rules unavailable", zap.String("object", cfg.RulesObject), zap.Error(err))
			s.RulesErr = err
			return nil
		}
		s.Rules = r
		return nil
	})

	g.Go(func() error {
		cards, notes, err := s.loader.LoadUniques(gctx, cfg.UniquesPrefix)
		if err != nil {
			return err
		}
		s.Uniques = cards
		s.Annotations = notes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to open session for %s: %w", cfg.Player, err)
	}

	s.Opened = time.Now()
	logger.Info("Session opened",
		zap.String("player", s.Player),
		zap.Int("cards", s.Catalog.Len()),
		zap.Int("uniques", len(s.Uniques)),
		zap.Bool("rules", s.Rules != nil))
	return s, nil
}

// Config returns the layout the session was opened with.
func (s *Session) Config() Config {
	return s.cfg
}

// Registry resolves unique ownership for the session player.
func (s *Session) Registry() *reconcile.Registry {
	return s.RegistryFor(s.Player)
}

// RegistryFor resolves unique ownership for any player.
func (s *Session) RegistryFor(player string) *reconcile.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil
	}
	return reconcile.NewRegistry(player, s.Uniques)
}

// RequireRules returns the construction rules or the reason they are missing.
func (s *Session) RequireRules() (*rules.Rules, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	if s.Rules == nil {
		if s.RulesErr != nil {
			return nil, s.RulesErr
		}
		return nil, rules.ErrRuleConfigMissing
	}
	return s.Rules, nil
}

// Ownership rebuilds the player's ownership index from the collection shards.
// Unique cards found in the shards are dropped and annotated.
func (s *Session) Ownership(ctx context.Context) (reconcile.OwnershipIndex, []reconcile.Annotation, error) {
	s.mu.RLock()
	closed := s.closed
	cat := s.Catalog
	s.mu.RUnlock()
	if closed {
		return nil, nil, ErrClosed
	}

	idx, notes, err := s.loader.BuildIndex(ctx, s.cfg.CollectionPrefix)
	if err != nil {
		return nil, nil, err
	}
	reg := s.Registry()
	idx, dropped := idx.WithoutUniques(s.cfg.CollectionPrefix, func(id string) bool {
		return cat.IsUnique(id) || reg.Known(id)
	})
	return idx, append(notes, dropped...), nil
}

// Close releases the reference data. Further calls fail with ErrClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.Catalog = nil
	s.Rules = nil
	s.Uniques = nil
	s.Annotations = nil
	s.CatalogProblems = nil
	return nil
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
