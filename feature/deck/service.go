package deck

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"altered-knowledge/core/reconcile"
	"altered-knowledge/core/session"
	"altered-knowledge/core/stats"
	"altered-knowledge/core/storage"
	"altered-knowledge/feature/deck/compare"
	"altered-knowledge/feature/deck/models"
	"altered-knowledge/feature/deck/validate"

	"go.uber.org/zap"
)

var (
	// ErrDeckNotFound is returned when a stored deck does not exist.
	ErrDeckNotFound = errors.New("deck not found")
	// ErrInvalidDeckRef is returned for owner or deck names that are not plain names.
	ErrInvalidDeckRef = errors.New("invalid deck reference")
)

// Recorder persists validation reports.
type Recorder interface {
	Record(ctx context.Context, player string, report *models.Report) error
}

// Service validates, summarizes and compares decks for the configured player.
type Service struct {
	sessions    *session.Store
	client      storage.Client
	bucket      string
	player      string
	decksPrefix string
	logger      *zap.Logger
	recorder    Recorder
	now         func() time.Time
}

// NewService creates a new deck service for data.Player. Stored decks are read
// below data.DecksPrefix. recorder may be nil.
func NewService(sessions *session.Store, client storage.Client, bucket string, data session.Config, logger *zap.Logger, recorder Recorder) *Service {
	return &Service{
		sessions:    sessions,
		client:      client,
		bucket:      bucket,
		player:      data.Player,
		decksPrefix: data.DecksPrefix,
		logger:      logger,
		recorder:    recorder,
		now:         time.Now,
	}
}

// Validate checks a deck against the rules and the player's collection.
func (s *Service) Validate(ctx context.Context, deck *models.Deck, mode models.Mode) (*models.Report, error) {
	sess, err := s.sessions.Get(ctx, s.player)
	if err != nil {
		return nil, err
	}
	r, err := sess.RequireRules()
	if err != nil {
		return nil, err
	}
	idx, notes, err := sess.Ownership(ctx)
	if err != nil {
		return nil, err
	}

	report, err := validate.Validate(validate.Input{
		Deck:    deck,
		Catalog: sess.Catalog,
		Rules:   r,
		Index:   idx,
		Uniques: sess.Registry(),
		Mode:    mode,
	})
	if err != nil {
		return nil, err
	}
	report.Annotations = annotations(sess, notes)
	report.CheckedAt = s.now().UTC()

	s.logger.Info("Deck validated",
		zap.String("deck", report.Deck),
		zap.String("verdict", string(report.Verdict)),
		zap.Int("issues", report.IssueCount()),
		zap.Int("not_owned", report.NotOwned),
		zap.Int("annotations", len(report.Annotations)))

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, s.player, report); err != nil {
			s.logger.Warn("Failed to record validation run", zap.String("deck", report.Deck), zap.Error(err))
		}
	}
	return report, nil
}

// ValidateStored validates a deck from the knowledge bucket.
func (s *Service) ValidateStored(ctx context.Context, owner, name string, mode models.Mode) (*models.Report, error) {
	deck, err := s.LoadDeck(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	return s.Validate(ctx, deck, mode)
}

// Stats summarizes the cost curve and card mix of a deck.
func (s *Service) Stats(ctx context.Context, deck *models.Deck) (stats.Summary, error) {
	sess, err := s.sessions.Get(ctx, s.player)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(sess.Catalog, deck.Lines()), nil
}

// Compare diffs two decks and suggests cards the player already owns.
func (s *Service) Compare(ctx context.Context, mine, other *models.Deck) (*models.Comparison, error) {
	sess, err := s.sessions.Get(ctx, s.player)
	if err != nil {
		return nil, err
	}
	idx, notes, err := sess.Ownership(ctx)
	if err != nil {
		return nil, err
	}

	diff := compare.Compare(mine, other, sess.Catalog)
	return &models.Comparison{
		Diff:        diff,
		Suggestions: compare.Suggest(diff, idx, sess.Registry(), sess.Catalog),
		Annotations: annotations(sess, notes),
	}, nil
}

// CompareStored compares two decks from the knowledge bucket.
func (s *Service) CompareStored(ctx context.Context, owner, name, otherOwner, otherName string) (*models.Comparison, error) {
	mine, err := s.LoadDeck(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	other, err := s.LoadDeck(ctx, otherOwner, otherName)
	if err != nil {
		return nil, err
	}
	return s.Compare(ctx, mine, other)
}

// LoadDeck reads DECKS/<owner>/<name>.json.
func (s *Service) LoadDeck(ctx context.Context, owner, name string) (*models.Deck, error) {
	if !plainName(owner) || !plainName(name) {
		return nil, fmt.Errorf("%s/%s: %w", owner, name, ErrInvalidDeckRef)
	}

	key := s.decksPrefix + owner + "/" + strings.TrimSuffix(name, ".json") + ".json"

	data, err := storage.Fetch(ctx, s.client, s.bucket, key)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", key, ErrDeckNotFound)
		}
		return nil, err
	}

	deck, err := models.ParseDeck(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	if deck.Owner == "" {
		deck.Owner = owner
	}
	if deck.Name == "" {
		deck.Name = strings.TrimSuffix(name, ".json")
	}
	return deck, nil
}

// annotations lists the skipped unique records first, then the collection
// problems of the current rebuild.
func annotations(sess *session.Session, notes []reconcile.Annotation) []reconcile.Annotation {
	out := make([]reconcile.Annotation, 0, len(sess.Annotations)+len(notes))
	out = append(out, sess.Annotations...)
	return append(out, notes...)
}

func plainName(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}
