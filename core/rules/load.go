package rules

import (
	"context"
	"fmt"
	"os"

	"altered-knowledge/core/storage"
)

// Load fetches and parses the rule document stored at key.
// A missing object yields ErrRuleConfigMissing.
func Load(ctx context.Context, client storage.Client, bucket, key string) (*Rules, error) {
	data, err := storage.Fetch(ctx, client, bucket, key)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", key, ErrRuleConfigMissing)
		}
		return nil, err
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return r, nil
}

// LoadFile parses a rule document from the local filesystem.
func LoadFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrRuleConfigMissing)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
