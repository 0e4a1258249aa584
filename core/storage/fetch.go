package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned by Fetch when the object does not exist.
var ErrNotFound = errors.New("object not found")

// Fetch downloads a whole object. A missing key yields ErrNotFound so callers
// can treat absent knowledge-base files as "no data".
func Fetch(ctx context.Context, client Client, bucket, path string) ([]byte, error) {
	reader, err := client.GetObject(ctx, bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, classify(path, err)
	}
	defer reader.Close()

	// minio reports NoSuchKey on first read, not on GetObject.
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, classify(path, err)
	}
	return data, nil
}

func classify(path string, err error) error {
	if IsNotFound(err) {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return fmt.Errorf("failed to fetch %s: %w", path, err)
}

// IsNotFound reports whether err describes a missing object or bucket key.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

// ListKeys returns the sorted object keys under prefix that end with extension.
// An empty extension matches every key. Directory placeholders are skipped.
func ListKeys(ctx context.Context, client Client, bucket, prefix, extension string) ([]string, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	var keys []string
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		if extension != "" && !strings.HasSuffix(strings.ToLower(obj.Key), extension) {
			continue
		}
		keys = append(keys, obj.Key)
	}

	sort.Strings(keys)
	return keys, nil
}

// Object is a downloaded object body.
type Object struct {
	Key  string
	Data []byte
}

// FetchResult holds the objects FetchAll could read and the keys it could not.
type FetchResult struct {
	Objects []Object
	// Failed maps each unreadable key to the reason it was skipped.
	Failed map[string]error
}

// FetchAll downloads keys concurrently with at most limit requests in flight.
// Unreadable objects are recorded in Failed instead of aborting the batch;
// only context cancellation is returned as an error. Objects are sorted by key
// so the result does not depend on completion order.
func FetchAll(ctx context.Context, client Client, bucket string, keys []string, limit int) (*FetchResult, error) {
	if limit <= 0 {
		limit = 8
	}

	var (
		mu     sync.Mutex
		result = &FetchResult{Failed: make(map[string]error)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, key := range keys {
		g.Go(func() error {
			data, err := Fetch(gctx, client, bucket, key)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				result.Failed[key] = err
				return nil
			}
			result.Objects = append(result.Objects, Object{Key: key, Data: data})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result.Objects, func(i, j int) bool {
		return result.Objects[i].Key < result.Objects[j].Key
	})
	return result, nil
}
