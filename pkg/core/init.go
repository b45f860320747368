package core

import (
	"github.com/arthur-debert/dview/pkg/config"
	"github.com/arthur-debert/dview/pkg/entries"
	"github.com/arthur-debert/dview/pkg/instances"
	"github.com/arthur-debert/dview/pkg/loaders"
	"github.com/arthur-debert/dview/pkg/logging"
)

// App holds everything built at startup. It is passed to consumers
// explicitly; nothing in it changes after Initialize returns, apart from
// the instances held by Store.
type App struct {
	Config  *config.Config
	Store   *instances.Store
	Catalog *loaders.Catalog
	Entries entries.Entries
}

// Initialize sets up the core system:
//  1. loads configuration
//  2. builds the loader catalog around a fresh instance store
//  3. derives the entry namespace and publishes it process-wide
//
// It must complete before any concurrent work starts.
func Initialize(opts config.Options) (*App, error) {
	logger := logging.GetLogger("core.init")
	done := logging.LogOperationStart(logger, "initialize")
	defer done()

	cfg, err := config.LoadConfiguration(opts)
	if err != nil {
		return nil, err
	}

	app, err := NewApp(cfg)
	if err != nil {
		return nil, err
	}

	if !entries.Publish(app.Entries) {
		logger.Debug().Msg("Entry namespace already published, keeping the first one")
	}

	logger.Debug().
		Strs("loaders", app.Catalog.Names()).
		Strs("entries", app.Entries.Names()).
		Msg("Core initialization completed")
	return app, nil
}

// NewApp builds an App from an already loaded configuration without
// touching process-wide state.
func NewApp(cfg *config.Config) (*App, error) {
	store := instances.NewStore(cfg.Instances.Max)

	catalog, err := loaders.NewCatalog(cfg, store)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:  cfg,
		Store:   store,
		Catalog: catalog,
		Entries: entries.Build(catalog.Descriptors()),
	}, nil
}

// MustInitialize calls Initialize and panics on error.
// Useful for main() functions where initialization failure
// should terminate the program.
func MustInitialize(opts config.Options) *App {
	app, err := Initialize(opts)
	if err != nil {
		panic("Core initialization failed: " + err.Error())
	}
	return app
}
