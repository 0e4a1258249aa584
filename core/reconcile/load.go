package reconcile

import (
	"context"
	"fmt"

	"altered-knowledge/core/storage"

	"go.uber.org/zap"
)

// Loader reads shards from the knowledge bucket.
type Loader struct {
	Client      storage.Client
	Bucket      string
	Concurrency int
	Logger      *zap.Logger
}

// LoadShards fetches and decodes every JSON shard under prefix. Listing or
// fetch failures produce MissingShardSource annotations and an empty shard
// set rather than an error; only context cancellation is returned.
func (l *Loader) LoadShards(ctx context.Context, prefix string) ([]Shard, []Annotation, error) {
	objects, notes, err := l.fetch(ctx, prefix)
	if err != nil {
		return nil, nil, err
	}

	shards := make([]Shard, 0, len(objects))
	for _, obj := range objects {
		shard, perr := ParseShard(obj.Key, obj.Data)
		if perr != nil {
			notes = append(notes, Annotation{Kind: KindMalformedRecord, Shard: obj.Key, Row: -1, Reason: perr.Error()})
			continue
		}
		shards = append(shards, shard)
	}
	return shards, notes, nil
}

// BuildIndex loads the shards under prefix and aggregates them.
func (l *Loader) BuildIndex(ctx context.Context, prefix string) (OwnershipIndex, []Annotation, error) {
	shards, notes, err := l.LoadShards(ctx, prefix)
	if err != nil {
		return nil, nil, err
	}
	idx, dropped := Aggregate(shards...)
	notes = append(notes, dropped...)
	l.log(notes)
	l.logger().Debug("Ownership index built",
		zap.String("prefix", prefix),
		zap.Int("shards", len(shards)),
		zap.Int("cards", len(idx)),
		zap.Int("annotations", len(notes)))
	return idx, notes, nil
}

// LoadUniques reads every unique-card file under prefix.
func (l *Loader) LoadUniques(ctx context.Context, prefix string) ([]UniqueCard, []Annotation, error) {
	objects, notes, err := l.fetch(ctx, prefix)
	if err != nil {
		return nil, nil, err
	}

	var cards []UniqueCard
	for _, obj := range objects {
		parsed, dropped, perr := ParseUniqueShard(obj.Key, obj.Data)
		if perr != nil {
			notes = append(notes, Annotation{Kind: KindMalformedRecord, Shard: obj.Key, Row: -1, Reason: perr.Error()})
			continue
		}
		notes = append(notes, dropped...)
		cards = append(cards, parsed...)
	}
	l.log(notes)
	return cards, notes, nil
}

func (l *Loader) fetch(ctx context.Context, prefix string) ([]storage.Object, []Annotation, error) {
	keys, err := storage.ListKeys(ctx, l.Client, l.Bucket, prefix, ".json")
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, []Annotation{{Kind: KindMissingShardSource, Shard: prefix, Row: -1, Reason: err.Error()}}, nil
	}
	if len(keys) == 0 {
		return nil, []Annotation{{Kind: KindMissingShardSource, Shard: prefix, Row: -1, Reason: "no shards found"}}, nil
	}

	result, err := storage.FetchAll(ctx, l.Client, l.Bucket, keys, l.Concurrency)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch shards under %s: %w", prefix, err)
	}

	var notes []Annotation
	for _, key := range keys {
		if ferr, failed := result.Failed[key]; failed {
			notes = append(notes, Annotation{Kind: KindMissingShardSource, Shard: key, Row: -1, Reason: ferr.Error()})
		}
	}
	return result.Objects, notes, nil
}

func (l *Loader) log(notes []Annotation) {
	logger := l.logger()
	for _, n := range notes {
		logger.Warn("Skipping shard data",
			zap.String("kind", string(n.Kind)),
			zap.String("shard", n.Shard),
			zap.Int("row", n.Row),
			zap.String("card_id", n.CardID),
			zap.String("reason", n.Reason))
	}
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
