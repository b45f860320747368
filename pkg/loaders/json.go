package loaders

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/types"
)

// loadJSON reads either a top-level array of objects or a stream of
// objects (one document per line, or simply concatenated).
func loadJSON(ctx context.Context, src types.Source) (*types.Dataset, error) {
	data, err := readSource(src.Path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var records []map[string]any
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []any
		if err := dec.Decode(&items); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSourceParse, "invalid JSON in %s", src.Path)
		}
		if records, err = asRecords(items); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSourceParse, "unexpected JSON in %s", src.Path)
		}
		return recordsToDataset(records), nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var rec map[string]any
		err := dec.Decode(&rec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSourceParse, "invalid JSON in %s", src.Path)
		}
		records = append(records, rec)
	}

	return recordsToDataset(records), nil
}
