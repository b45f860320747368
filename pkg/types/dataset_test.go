package types_test

import (
	"testing"
	"time"

	"github.com/arthur-debert/dview/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset_FitsRows(t *testing.T) {
	ds := types.NewDataset([]string{"a", "b"}, [][]string{
		{"1", "2"},
		{"3"},
		{"4", "5", "6"},
	})

	require.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"1", "2"}, ds.Rows[0])
	assert.Equal(t, []string{"3", ""}, ds.Rows[1])
	assert.Equal(t, []string{"4", "5"}, ds.Rows[2])
}

func TestNewDatasetFromRecords(t *testing.T) {
	ds := types.NewDatasetFromRecords([]map[string]any{
		{"name": "ada", "age": float64(36)},
		{"name": "grace", "lang": "cobol", "score": 9.5},
		{"active": true},
	})

	assert.Equal(t, []string{"active", "age", "lang", "name", "score"}, ds.Columns)
	assert.Equal(t, []string{"", "36", "", "ada", ""}, ds.Rows[0])
	assert.Equal(t, []string{"", "", "cobol", "grace", "9.5"}, ds.Rows[1])
	assert.Equal(t, []string{"true", "", "", "", ""}, ds.Rows[2])
}

func TestNewDatasetFromRecords_Empty(t *testing.T) {
	ds := types.NewDatasetFromRecords(nil)
	assert.Empty(t, ds.Columns)
	assert.Equal(t, 0, ds.Len())
}

func TestFormatCell(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{float64(3), "3"},
		{1.25, "1.25"},
		{int64(7), "7"},
		{false, "false"},
		{ts, "2024-03-01T12:00:00Z"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, types.FormatCell(tt.in))
	}
}

func TestHead(t *testing.T) {
	ds := types.NewDataset([]string{"n"}, [][]string{{"1"}, {"2"}, {"3"}})

	assert.Equal(t, 2, ds.Head(2).Len())
	assert.Equal(t, 3, ds.Head(10).Len())
	assert.Equal(t, 3, ds.Head(-1).Len())
	assert.Equal(t, 3, ds.Head(0).Len(), "zero means no limit")
}

func TestColumn(t *testing.T) {
	ds := types.NewDataset([]string{"a", "b"}, [][]string{{"1", "x"}, {"2", "y"}})

	values, ok := ds.Column("b")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, values)

	_, ok = ds.Column("missing")
	assert.False(t, ok)
}

func TestNilDatasetLen(t *testing.T) {
	var ds *types.Dataset
	assert.Equal(t, 0, ds.Len())
}
