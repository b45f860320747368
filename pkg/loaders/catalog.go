package loaders

import (
	"context"

	"github.com/iancoleman/strcase"

	"github.com/arthur-debert/dview/pkg/config"
	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/instances"
	"github.com/arthur-debert/dview/pkg/logging"
	"github.com/arthur-debert/dview/pkg/registry"
	"github.com/arthur-debert/dview/pkg/types"
)

// Definition describes a loader before it is added to a catalog
type Definition struct {
	// Name is normalised to snake_case
	Name        string
	Description string
	Load        types.LoadFunc
	// Showable loaders get a show capability unless config disables it
	Showable bool
}

// Builtins returns the loaders shipped with dview
func Builtins() []Definition {
	return []Definition{
		{Name: "csv", Description: csvDoc, Load: delimitedLoader(","), Showable: true},
		{Name: "tsv", Description: tsvDoc, Load: delimitedLoader("\t"), Showable: true},
		{Name: "json", Description: jsonDoc, Load: loadJSON, Showable: true},
		{Name: "yaml", Description: yamlDoc, Load: loadYAML, Showable: true},
		{Name: "toml", Description: tomlDoc, Load: loadTOML, Showable: true},
		{Name: "xml", Description: xmlDoc, Load: loadXML, Showable: true},
		{Name: "AccessLog", Description: accessLogDoc, Load: loadAccessLog, Showable: true},
		{Name: "env", Description: envDoc, Load: loadEnv},
	}
}

// Catalog is the read-only set of loader descriptors
type Catalog struct {
	loaders registry.Registry[types.LoaderDescriptor]
}

// NewCatalog builds a catalog from defs, or from Builtins when none are
// given. Show capabilities register their datasets in store.
func NewCatalog(cfg *config.Config, store *instances.Store, defs ...Definition) (*Catalog, error) {
	logger := logging.GetLogger("loaders")
	if len(defs) == 0 {
		defs = Builtins()
	}

	reg := registry.New[types.LoaderDescriptor]()
	for _, def := range defs {
		name := strcase.ToSnake(def.Name)
		if name == "" {
			return nil, errors.New(errors.ErrInvalidInput, "loader name cannot be empty")
		}
		if def.Load == nil {
			return nil, errors.Newf(errors.ErrInvalidInput, "loader %s has no load function", name)
		}

		lc := cfg.Loader(name)
		load := withDefaults(def.Load, lc.Params())
		desc := types.LoaderDescriptor{
			Name:        name,
			Description: def.Description,
			Load:        load,
		}
		if def.Showable && lc.ShowEnabled() && store != nil {
			desc.Show = newShow(name, load, store)
		}

		if err := reg.Register(name, desc); err != nil {
			return nil, err
		}
		logger.Debug().
			Str("loader", name).
			Bool("show", desc.HasShow()).
			Msg("Registered loader")
	}
	reg.Freeze()

	return &Catalog{loaders: reg}, nil
}

// Descriptors returns the loaders keyed by name
func (c *Catalog) Descriptors() map[string]types.LoaderDescriptor {
	return c.loaders.Snapshot()
}

// Get returns the named loader
func (c *Catalog) Get(name string) (types.LoaderDescriptor, error) {
	desc, err := c.loaders.Get(name)
	if err != nil {
		return types.LoaderDescriptor{}, errors.Newf(errors.ErrLoaderNotFound, "unknown loader %q", name).
			WithDetail("available", c.Names())
	}
	return desc, nil
}

// Names returns the loader names in sorted order
func (c *Catalog) Names() []string {
	return c.loaders.List()
}

// newShow binds a loader to the instance store
func newShow(name string, load types.LoadFunc, store *instances.Store) types.ShowFunc {
	return func(ctx context.Context, src types.Source) (*types.Instance, error) {
		ds, err := load(ctx, src)
		if err != nil {
			return nil, err
		}
		return store.Show(ds, instances.ShowOptions{Loader: name, Source: src})
	}
}

// withDefaults fills source params missing from the call with configured ones
func withDefaults(load types.LoadFunc, defaults map[string]string) types.LoadFunc {
	if len(defaults) == 0 {
		return load
	}
	return func(ctx context.Context, src types.Source) (*types.Dataset, error) {
		merged := make(map[string]string, len(defaults)+len(src.Params))
		for k, v := range defaults {
			merged[k] = v
		}
		for k, v := range src.Params {
			merged[k] = v
		}
		src.Params = merged
		return load(ctx, src)
	}
}
