package reconcile

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrMalformedRecord marks a shard row that was dropped from aggregation.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMissingShardSource marks a shard or shard listing that could not be read.
	ErrMissingShardSource = errors.New("missing shard source")
)

// OwnershipEntry is the aggregated ownership of one card id.
type OwnershipEntry struct {
	CardID string `json:"card_id"`
	// Count includes foil copies.
	Count     int `json:"count"`
	FoilCount int `json:"foil_count"`
}

// OwnershipIndex maps card id to its aggregated entry. Only ids with a
// positive count are present.
type OwnershipIndex map[string]OwnershipEntry

// Count returns the owned copies of id, zero when absent.
func (idx OwnershipIndex) Count(id string) int {
	return idx[id].Count
}

// Owned reports whether at least one copy of id is owned.
func (idx OwnershipIndex) Owned(id string) bool {
	return idx.Count(id) > 0
}

// IDs returns the owned card ids in ascending order.
func (idx OwnershipIndex) IDs() []string {
	return Union(idx)
}

// Total returns the number of owned copies over all ids.
func (idx OwnershipIndex) Total() int {
	total := 0
	for _, e := range idx {
		total += e.Count
	}
	return total
}

// WithoutUniques returns idx minus the ids isUnique reports, with one
// MalformedRecord annotation per dropped id. Unique ownership is boolean and
// comes from the Registry only.
func (idx OwnershipIndex) WithoutUniques(source string, isUnique func(id string) bool) (OwnershipIndex, []Annotation) {
	out := make(OwnershipIndex, len(idx))
	var notes []Annotation
	for _, id := range idx.IDs() {
		if isUnique(id) {
			notes = append(notes, Annotation{
				Kind:   KindMalformedRecord,
				Shard:  source,
				Row:    -1,
				CardID: id,
				Reason: fmt.Sprintf("unique card %s listed with a numeric count", id),
			})
			continue
		}
		out[id] = idx[id]
	}
	return out, notes
}

// AnnotationKind classifies a non-fatal data problem.
type AnnotationKind string

const (
	KindMalformedRecord    AnnotationKind = "MalformedRecord"
	KindMissingShardSource AnnotationKind = "MissingShardSource"
)

// Annotation describes a record or source that was skipped while building
// an index. Annotations never abort a merge.
type Annotation struct {
	Kind   AnnotationKind `json:"kind"`
	Shard  string         `json:"shard"`
	Row    int            `json:"row"`
	CardID string         `json:"card_id,omitempty"`
	Reason string         `json:"reason"`
}

// Err returns the annotation as an error wrapping its sentinel.
func (a Annotation) Err() error {
	sentinel := ErrMalformedRecord
	if a.Kind == KindMissingShardSource {
		sentinel = ErrMissingShardSource
	}
	if a.Row < 0 {
		return fmt.Errorf("%s: %w: %s", a.Shard, sentinel, a.Reason)
	}
	return fmt.Errorf("%s[%d]: %w: %s", a.Shard, a.Row, sentinel, a.Reason)
}

// Union returns the sorted set of keys present in any of the maps.
func Union[V any](maps ...map[string]V) []string {
	seen := make(map[string]struct{})
	for _, m := range maps {
		for key := range m {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
