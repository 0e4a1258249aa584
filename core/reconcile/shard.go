package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Shard is one raw ownership source, usually a single collection file.
type Shard struct {
	Name    string
	Records []map[string]any
}

// ParseShard decodes a shard body. A JSON array, a single object or an object
// wrapping the array under "cards" are accepted. Non-object array elements are
// kept as empty records so they surface as malformed rows with their index.
func ParseShard(name string, data []byte) (Shard, error) {
	shard := Shard{Name: name}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return shard, fmt.Errorf("failed to decode shard %s: %w", name, err)
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case map[string]any:
		if nested, ok := v["cards"].([]any); ok {
			items = nested
		} else {
			items = []any{v}
		}
	default:
		return shard, fmt.Errorf("failed to decode shard %s: unexpected %T", name, raw)
	}

	shard.Records = make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			obj = map[string]any{}
		}
		shard.Records = append(shard.Records, obj)
	}
	return shard, nil
}
