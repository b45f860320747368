// Package instances keeps the datasets opened by show calls. Each show
// registers a new instance under the next sequential data ID.
package instances

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/logging"
	"github.com/arthur-debert/dview/pkg/registry"
	"github.com/arthur-debert/dview/pkg/types"
)

// ShowOptions describes the instance being created
type ShowOptions struct {
	Name   string
	Loader string
	Source types.Source
}

// Store is a thread-safe collection of instances
type Store struct {
	mu     sync.Mutex
	items  registry.Registry[*types.Instance]
	nextID int
	max    int
	now    func() time.Time
}

// NewStore creates a store keeping at most max instances; 0 means unlimited
func NewStore(max int) *Store {
	return &Store{
		items:  registry.New[*types.Instance](),
		nextID: 1,
		max:    max,
		now:    time.Now,
	}
}

// Show registers ds as a new instance and returns it.
// When the store is full the oldest instance is dropped.
func (s *Store) Show(ds *types.Dataset, opts ShowOptions) (*types.Instance, error) {
	if ds == nil {
		return nil, errors.New(errors.ErrInvalidInput, "cannot show a nil dataset")
	}

	logger := logging.GetLogger("instances")

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextID)
	name := opts.Name
	if name == "" {
		name = opts.Source.DisplayName()
	}
	if name == "" {
		name = "instance_" + id
	}

	inst := &types.Instance{
		ID:        id,
		Name:      name,
		Loader:    opts.Loader,
		Source:    opts.Source,
		Dataset:   ds,
		CreatedAt: s.now(),
	}
	if err := s.items.Register(id, inst); err != nil {
		return nil, err
	}
	s.nextID++

	if s.max > 0 {
		for _, old := range s.sortedIDs() {
			if s.items.Count() <= s.max {
				break
			}
			_ = s.items.Remove(old)
			logger.Debug().Str("id", old).Msg("Evicted instance")
		}
	}

	logger.Info().
		Str("id", id).
		Str("name", name).
		Str("loader", opts.Loader).
		Int("rows", ds.Len()).
		Msg("Registered instance")

	return inst, nil
}

// Get returns the instance with the given data ID
func (s *Store) Get(id string) (*types.Instance, error) {
	inst, err := s.items.Get(id)
	if err != nil {
		return nil, errors.Newf(errors.ErrInstanceNotFound, "no instance with id %s", id).WithDetail("id", id)
	}
	return inst, nil
}

// List returns all instances ordered by data ID
func (s *Store) List() []*types.Instance {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.sortedIDs()
	out := make([]*types.Instance, 0, len(ids))
	for _, id := range ids {
		out = append(out, registry.MustGet(s.items, id))
	}
	return out
}

// Cleanup removes an instance
func (s *Store) Cleanup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.items.Remove(id); err != nil {
		return errors.Newf(errors.ErrInstanceNotFound, "no instance with id %s", id).WithDetail("id", id)
	}
	return nil
}

// Count returns the number of instances held
func (s *Store) Count() int {
	return s.items.Count()
}

// sortedIDs returns IDs in numeric order; callers hold s.mu
func (s *Store) sortedIDs() []string {
	ids := s.items.List()
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})
	return ids
}
