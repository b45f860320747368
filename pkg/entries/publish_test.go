package entries_test

import (
	"sync"
	"testing"

	"github.com/arthur-debert/dview/pkg/entries"
	"github.com/arthur-debert/dview/pkg/testutil"
	"github.com/arthur-debert/dview/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Publish is process-wide, so everything about it is checked in one test.
func TestPublish(t *testing.T) {
	_, ok := entries.Published()
	require.False(t, ok, "nothing should be published before Publish")

	first := entries.Build(map[string]types.LoaderDescriptor{
		"a": {Name: "a", Show: showA},
		"b": {Name: "b", Show: showB},
	})
	second := entries.Build(map[string]types.LoaderDescriptor{
		"csv": {Name: "csv", Show: showCSV},
	})

	assert.True(t, entries.Publish(first))
	assert.False(t, entries.Publish(second), "second publish must be ignored")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := entries.Published()
			assert.True(t, ok)
			assert.Equal(t, []string{"entry_a", "entry_b"}, got.Names())
		}()
	}
	wg.Wait()

	got, _ := entries.Published()
	testutil.AssertSameFunc(t, showA, got["entry_a"])
}
