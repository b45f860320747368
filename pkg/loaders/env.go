package loaders

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/dview/pkg/types"
)

// loadEnv lists the process environment, optionally filtered by the
// "prefix" param. It reads no file.
func loadEnv(_ context.Context, src types.Source) (*types.Dataset, error) {
	prefix := src.Param("prefix", "")

	var rows [][]string
	for _, kv := range os.Environ() {
		name, value, _ := strings.Cut(kv, "=")
		if name == "" || !strings.HasPrefix(name, prefix) {
			continue
		}
		rows = append(rows, []string{name, value})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	return types.NewDataset([]string{"name", "value"}, rows), nil
}
