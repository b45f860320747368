package types

import (
	"fmt"
	"sort"
	"time"
)

// Dataset is an in-memory table of string cells
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// NewDataset creates a dataset, padding or truncating rows to the column count
func NewDataset(columns []string, rows [][]string) *Dataset {
	ds := &Dataset{Columns: columns, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		ds.Rows = append(ds.Rows, fitRow(row, len(columns)))
	}
	return ds
}

// NewDatasetFromRecords builds a dataset from a list of records.
// Columns are the sorted union of all record keys; missing values are empty.
func NewDatasetFromRecords(records []map[string]any) *Dataset {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for k := range seen {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := rec[col]; ok {
				row[i] = FormatCell(v)
			}
		}
		rows = append(rows, row)
	}

	return &Dataset{Columns: columns, Rows: rows}
}

// FormatCell renders a decoded value as a cell string
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Head returns a dataset with at most n rows sharing the same columns.
// n <= 0 means no limit.
func (d *Dataset) Head(n int) *Dataset {
	if n <= 0 || n >= d.Len() {
		return d
	}
	return &Dataset{Columns: d.Columns, Rows: d.Rows[:n]}
}

// Column returns the values of the named column
func (d *Dataset) Column(name string) ([]string, bool) {
	idx := -1
	for i, c := range d.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	values := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[idx]
	}
	return values, true
}

func fitRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

// Instance is a dataset registered by a show call
type Instance struct {
	// ID is the sequential data ID assigned by the instance store
	ID        string
	Name      string
	Loader    string
	Source    Source
	Dataset   *Dataset
	CreatedAt time.Time
}
