package integrity

import (
	"context"
	"errors"

	"altered-knowledge/core/session"
	"altered-knowledge/core/storage"
	"altered-knowledge/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by CheckServer when no database is configured.
var ErrNoDatabase = errors.New("no database configured")

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
	data   session.Config
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, data session.Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
		data:   data,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckCollection validates the rows of every collection file.
func (s *Service) CheckCollection(ctx context.Context) (*checks.CollectionReport, error) {
	return checks.CheckCollection(ctx, s.client, s.bucket, s.data.CollectionPrefix, s.data.Concurrency)
}

// CheckRules loads the configured rule object.
func (s *Service) CheckRules(ctx context.Context) (*checks.RulesReport, error) {
	return checks.CheckRules(ctx, s.client, s.bucket, s.data.RulesObject)
}

// CheckServer compares the history schema with the database.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckServerIntegrity(s.db)
}
