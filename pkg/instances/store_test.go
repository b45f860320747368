package instances

import (
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *types.Dataset {
	return types.NewDataset([]string{"a"}, [][]string{{"1"}, {"2"}})
}

func TestShow_AssignsSequentialIDs(t *testing.T) {
	s := NewStore(0)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	first, err := s.Show(sample(), ShowOptions{Loader: "csv", Source: types.Source{Path: "/tmp/sales.csv"}})
	require.NoError(t, err)
	second, err := s.Show(sample(), ShowOptions{Name: "custom", Loader: "json"})
	require.NoError(t, err)
	third, err := s.Show(sample(), ShowOptions{})
	require.NoError(t, err)

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "sales", first.Name)
	assert.Equal(t, "csv", first.Loader)
	assert.Equal(t, fixed, first.CreatedAt)

	assert.Equal(t, "2", second.ID)
	assert.Equal(t, "custom", second.Name)

	assert.Equal(t, "instance_3", third.Name)
	assert.Equal(t, 3, s.Count())
}

func TestShow_NilDataset(t *testing.T) {
	_, err := NewStore(0).Show(nil, ShowOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestGet(t *testing.T) {
	s := NewStore(0)
	inst, _ := s.Show(sample(), ShowOptions{Name: "x"})

	got, err := s.Get(inst.ID)
	require.NoError(t, err)
	assert.Same(t, inst, got)

	_, err = s.Get("99")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstanceNotFound))
	assert.Equal(t, "99", errors.GetErrorDetails(err)["id"])
}

func TestList_NumericOrder(t *testing.T) {
	s := NewStore(0)
	for i := 0; i < 12; i++ {
		_, err := s.Show(sample(), ShowOptions{})
		require.NoError(t, err)
	}

	list := s.List()
	require.Len(t, list, 12)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "2", list[1].ID)
	assert.Equal(t, "10", list[9].ID)
	assert.Equal(t, "12", list[11].ID)
}

func TestShow_EvictsOldest(t *testing.T) {
	s := NewStore(2)
	for i := 0; i < 4; i++ {
		_, err := s.Show(sample(), ShowOptions{})
		require.NoError(t, err)
	}

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "3", list[0].ID)
	assert.Equal(t, "4", list[1].ID)
}

func TestCleanup(t *testing.T) {
	s := NewStore(0)
	inst, _ := s.Show(sample(), ShowOptions{})

	require.NoError(t, s.Cleanup(inst.ID))
	assert.Equal(t, 0, s.Count())
	assert.True(t, errors.IsErrorCode(s.Cleanup(inst.ID), errors.ErrInstanceNotFound))

	// IDs are never reused
	next, _ := s.Show(sample(), ShowOptions{})
	assert.Equal(t, "2", next.ID)
}

func TestShow_Concurrent(t *testing.T) {
	s := NewStore(0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Show(sample(), ShowOptions{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list := s.List()
	require.Len(t, list, 20)
	assert.Equal(t, "20", list[19].ID)
}
