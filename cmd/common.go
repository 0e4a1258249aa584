package cmd

import (
	"context"
	"fmt"

	"altered-knowledge/core/config"
	"altered-knowledge/core/database"
	"altered-knowledge/core/logger"
	"altered-knowledge/core/session"
	"altered-knowledge/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment is what every command needs before it can touch the bucket.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	store  *session.Store
}

func setup() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if playerFlag != "" {
		cfg.Data.Player = playerFlag
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &environment{cfg: cfg, logger: logg, client: client}, nil
}

// sessions returns the command's session store. A command opens at most one
// session per player and releases it in close.
func (e *environment) sessions() *session.Store {
	if e.store == nil {
		e.store = session.NewStore(-1, openSession(e.client, e.cfg.Storage.Bucket, e.cfg.Data, e.logger))
	}
	return e.store
}

func (e *environment) close() {
	if e.store != nil {
		e.store.Close()
	}
	_ = e.logger.Sync()
}

// connectDB connects when possible; the database is optional everywhere.
func (e *environment) connectDB() *gorm.DB {
	db, err := database.Connect(e.cfg.Database)
	if err != nil {
		e.logger.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	return db
}

func openSession(client storage.Client, bucket string, data session.Config, logg *zap.Logger) session.OpenFunc {
	return func(ctx context.Context, player string) (*session.Session, error) {
		cfg := data
		cfg.Player = player
		return session.Open(ctx, client, bucket, cfg, logg.With(zap.String("player", player)))
	}
}
