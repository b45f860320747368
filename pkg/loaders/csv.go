package loaders

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/types"
)

// ctxCheckEvery is how many rows are read between cancellation checks
const ctxCheckEvery = 1000

// delimitedLoader reads delimited text. The "delimiter" param overrides
// defaultDelimiter; "header=false" numbers the columns instead of using
// the first row.
func delimitedLoader(defaultDelimiter string) types.LoadFunc {
	return func(ctx context.Context, src types.Source) (*types.Dataset, error) {
		delimiter := src.Param("delimiter", defaultDelimiter)
		comma, size := utf8.DecodeRuneInString(delimiter)
		if size == 0 || size != len(delimiter) {
			return nil, errors.Newf(errors.ErrInvalidInput, "delimiter must be a single character, got %q", delimiter)
		}

		header, err := strconv.ParseBool(src.Param("header", "true"))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "header must be true or false")
		}

		rc, err := openSource(src.Path)
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		r := csv.NewReader(rc)
		r.Comma = comma
		r.TrimLeadingSpace = true
		r.FieldsPerRecord = -1

		var columns []string
		var rows [][]string
		for {
			if len(rows)%ctxCheckEvery == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}

			record, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrSourceParse, "error reading %s", src.Path)
			}

			if columns == nil {
				if header {
					columns = record
					continue
				}
				columns = numberedColumns(len(record))
			}
			rows = append(rows, record)
		}

		return types.NewDataset(columns, rows), nil
	}
}

func numberedColumns(n int) []string {
	columns := make([]string, n)
	for i := range columns {
		columns[i] = strconv.Itoa(i)
	}
	return columns
}
