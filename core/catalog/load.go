package catalog

import (
	"context"
	"fmt"

	"altered-knowledge/core/storage"

	"go.uber.org/zap"
)

// LoadResult is a freshly loaded catalog plus the files it had to skip.
type LoadResult struct {
	Catalog  *Catalog
	Files    int
	Problems []error
}

// Load reads every card file under prefix and builds a Catalog.
// Unreadable or undecodable files are logged and skipped.
func Load(ctx context.Context, client storage.Client, bucket, prefix string, concurrency int, logger *zap.Logger) (*LoadResult, error) {
	keys, err := storage.ListKeys(ctx, client, bucket, prefix, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	fetched, err := storage.FetchAll(ctx, client, bucket, keys, concurrency)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{Files: len(keys)}
	for key, ferr := range fetched.Failed {
		logger.Warn("Skipping unreadable card file", zap.String("path", key), zap.Error(ferr))
		result.Problems = append(result.Problems, ferr)
	}

	var cards []Card
	for _, obj := range fetched.Objects {
		parsed, problems, perr := ParseCards(obj.Key, obj.Data)
		if perr != nil {
			logger.Warn("Skipping invalid card file", zap.String("path", obj.Key), zap.Error(perr))
			result.Problems = append(result.Problems, perr)
			continue
		}
		for _, p := range problems {
			logger.Warn("Skipping invalid card record", zap.String("path", obj.Key), zap.Error(p))
		}
		result.Problems = append(result.Problems, problems...)
		cards = append(cards, parsed...)
	}

	result.Catalog = New(cards)
	logger.Info("Card catalog loaded",
		zap.Int("files", result.Files),
		zap.Int("cards", result.Catalog.Len()),
		zap.Int("problems", len(result.Problems)))
	return result, nil
}
