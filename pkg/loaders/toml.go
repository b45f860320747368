package loaders

import (
	"context"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/types"
)

// loadTOML reads an array of tables. The "table" param names it; by
// default the first key (alphabetically) holding an array is used.
func loadTOML(_ context.Context, src types.Source) (*types.Dataset, error) {
	data, err := readSource(src.Path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceParse, "invalid TOML in %s", src.Path)
	}

	items, err := selectTable(doc, src.Param("table", ""))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceParse, "unexpected TOML in %s", src.Path)
	}

	records, err := asRecords(items)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceParse, "unexpected TOML in %s", src.Path)
	}
	return recordsToDataset(records), nil
}

// firstList returns the list under the alphabetically first key holding one
func firstList(doc map[string]any) ([]any, error) {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if items, ok := doc[k].([]any); ok {
			return items, nil
		}
	}
	return nil, fmt.Errorf("no list found among keys %v", keys)
}
