package entries

import (
	"sort"

	"github.com/arthur-debert/dview/pkg/logging"
	"github.com/arthur-debert/dview/pkg/types"
)

// Prefix is prepended to a loader name to form its entry symbol
const Prefix = "entry_"

// Entries maps entry symbols to show capabilities
type Entries map[string]types.ShowFunc

// Symbol returns the entry symbol for a loader name
func Symbol(name string) string {
	return Prefix + name
}

// Build derives the entry namespace from a loader catalog.
// Only loaders with a show capability produce an entry. A descriptor
// without one, or with an empty name, is skipped; Build never fails.
func Build(loaders map[string]types.LoaderDescriptor) Entries {
	logger := logging.GetLogger("entries")

	out := make(Entries, len(loaders))
	for name, loader := range loaders {
		if name == "" {
			logger.Debug().Msg("Skipping loader with empty name")
			continue
		}
		if loader.Show == nil {
			logger.Trace().Str("loader", name).Msg("Loader has no show capability")
			continue
		}
		out[Symbol(name)] = loader.Show
	}

	logger.Debug().
		Int("loaders", len(loaders)).
		Int("entries", len(out)).
		Msg("Built entry namespace")

	return out
}

// Get returns the capability bound to symbol
func (e Entries) Get(symbol string) (types.ShowFunc, bool) {
	fn, ok := e[symbol]
	return fn, ok
}

// Lookup returns the capability for a loader name
func (e Entries) Lookup(loaderName string) (types.ShowFunc, bool) {
	return e.Get(Symbol(loaderName))
}

// Names returns the entry symbols in sorted order
func (e Entries) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries
func (e Entries) Len() int {
	return len(e)
}
