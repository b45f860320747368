package loaders

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/dview/pkg/types"
)

// recordsToDataset flattens nested values and builds a dataset
func recordsToDataset(records []map[string]any) *types.Dataset {
	for _, rec := range records {
		for k, v := range rec {
			rec[k] = flatten(v)
		}
	}
	return types.NewDatasetFromRecords(records)
}

// flatten renders maps and slices as compact JSON so they fit in one cell
func flatten(v any) any {
	switch v.(type) {
	case map[string]any, []any, map[any]any:
		b, err := json.Marshal(normalize(v))
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	default:
		return v
	}
}

// normalize converts map[any]any, which encoding/json rejects
func normalize(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[fmt.Sprintf("%v", k)] = normalize(inner)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = normalize(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = normalize(inner)
		}
		return out
	default:
		return v
	}
}

// asRecords converts a decoded list into records, rejecting non-objects
func asRecords(items []any) ([]map[string]any, error) {
	records := make([]map[string]any, 0, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("item %d is %T, expected an object", i, item)
		}
		records = append(records, rec)
	}
	return records, nil
}
