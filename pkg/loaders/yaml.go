package loaders

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/types"
)

// loadYAML reads a sequence of mappings. When the document is a mapping,
// the "table" param names the key holding the sequence.
func loadYAML(_ context.Context, src types.Source) (*types.Dataset, error) {
	data, err := readSource(src.Path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceParse, "invalid YAML in %s", src.Path)
	}

	items, err := selectTable(doc, src.Param("table", ""))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceParse, "unexpected YAML in %s", src.Path)
	}

	records, err := asRecords(items)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceParse, "unexpected YAML in %s", src.Path)
	}
	return recordsToDataset(records), nil
}

// selectTable finds the list of rows in a decoded document. An empty
// document yields no rows.
func selectTable(doc any, table string) ([]any, error) {
	switch val := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		if table != "" {
			return nil, fmt.Errorf("table %q requested but the document is a list", table)
		}
		return val, nil
	case map[string]any:
		if len(val) == 0 {
			return nil, nil
		}
		if table != "" {
			items, ok := val[table].([]any)
			if !ok {
				return nil, fmt.Errorf("key %q does not hold a list", table)
			}
			return items, nil
		}
		return firstList(val)
	default:
		return nil, fmt.Errorf("document is %T, expected a list or mapping", doc)
	}
}
