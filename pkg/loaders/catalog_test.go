package loaders_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/dview/pkg/config"
	"github.com/arthur-debert/dview/pkg/entries"
	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/instances"
	"github.com/arthur-debert/dview/pkg/loaders"
	"github.com/arthur-debert/dview/pkg/testutil"
	"github.com/arthur-debert/dview/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfiguration(config.Options{SkipUser: true})
	require.NoError(t, err)
	return cfg
}

func TestNewCatalog_Builtins(t *testing.T) {
	cat, err := loaders.NewCatalog(defaults(t), instances.NewStore(0))
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"access_log", "csv", "env", "json", "toml", "tsv", "xml", "yaml"},
		cat.Names())

	descs := cat.Descriptors()
	for name, d := range descs {
		assert.Equal(t, name, d.Name)
		assert.NotNil(t, d.Load, "loader %s has no load function", name)
		assert.NotEmpty(t, d.Description, "loader %s has no description", name)
	}
	assert.False(t, descs["env"].HasShow(), "env is load-only")
	assert.True(t, descs["csv"].HasShow())
	assert.True(t, descs["access_log"].HasShow())
}

func TestNewCatalog_ConfigDisablesShow(t *testing.T) {
	cfg := defaults(t)
	off := false
	cfg.Loaders["xml"] = config.LoaderConfig{Show: &off}

	cat, err := loaders.NewCatalog(cfg, instances.NewStore(0))
	require.NoError(t, err)

	xml, err := cat.Get("xml")
	require.NoError(t, err)
	assert.False(t, xml.HasShow())
	assert.NotNil(t, xml.Load)

	names := entries.Build(cat.Descriptors()).Names()
	assert.NotContains(t, names, "entry_xml")
	assert.NotContains(t, names, "entry_env")
	assert.Contains(t, names, "entry_csv")
}

func TestNewCatalog_NoStoreMeansNoShow(t *testing.T) {
	cat, err := loaders.NewCatalog(defaults(t), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, entries.Build(cat.Descriptors()).Len())
}

func TestCatalog_GetUnknown(t *testing.T) {
	cat, err := loaders.NewCatalog(defaults(t), instances.NewStore(0))
	require.NoError(t, err)

	_, err = cat.Get("parquet")
	assert.True(t, errors.IsErrorCode(err, errors.ErrLoaderNotFound), "got %v", err)
}

func TestNewCatalog_CustomDefinitions(t *testing.T) {
	noop := func(ctx context.Context, src types.Source) (*types.Dataset, error) {
		return types.NewDataset([]string{"x"}, [][]string{{"1"}}), nil
	}

	t.Run("names are snake_cased", func(t *testing.T) {
		cat, err := loaders.NewCatalog(nil, instances.NewStore(0),
			loaders.Definition{Name: "RDatasets", Load: noop, Showable: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"r_datasets"}, cat.Names())
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := loaders.NewCatalog(nil, nil,
			loaders.Definition{Name: "a", Load: noop},
			loaders.Definition{Name: "A", Load: noop})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)
	})

	t.Run("missing load", func(t *testing.T) {
		_, err := loaders.NewCatalog(nil, nil, loaders.Definition{Name: "a"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := loaders.NewCatalog(nil, nil, loaders.Definition{Load: noop})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	})
}

func TestShowCapability_RegistersInstance(t *testing.T) {
	store := instances.NewStore(0)
	cat, err := loaders.NewCatalog(defaults(t), store)
	require.NoError(t, err)

	path := testutil.WriteFixture(t, t.TempDir(), "sales.csv", "region,total\nnorth,10\nsouth,20\n")

	show, ok := entries.Build(cat.Descriptors()).Lookup("csv")
	require.True(t, ok)

	inst, err := show(context.Background(), types.Source{Path: path})
	require.NoError(t, err)

	assert.Equal(t, "1", inst.ID)
	assert.Equal(t, "sales", inst.Name)
	assert.Equal(t, "csv", inst.Loader)
	assert.Equal(t, 2, inst.Dataset.Len())

	got, err := store.Get("1")
	require.NoError(t, err)
	assert.Same(t, inst, got)
}

func TestShowCapability_LoadErrorCreatesNoInstance(t *testing.T) {
	store := instances.NewStore(0)
	cat, err := loaders.NewCatalog(defaults(t), store)
	require.NoError(t, err)

	show, _ := entries.Build(cat.Descriptors()).Lookup("json")
	_, err = show(context.Background(), types.Source{Path: "/missing.json"})

	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceOpen), "got %v", err)
	assert.Equal(t, 0, store.Count())
}

func TestConfigParamsAreDefaults(t *testing.T) {
	cfg := defaults(t)
	cfg.Loaders["csv"] = config.LoaderConfig{Delimiter: ";"}

	cat, err := loaders.NewCatalog(cfg, nil)
	require.NoError(t, err)
	csv, err := cat.Get("csv")
	require.NoError(t, err)

	dir := t.TempDir()
	semi := testutil.WriteFixture(t, dir, "semi.csv", "a;b\n1;2\n")
	ds, err := csv.Load(context.Background(), types.Source{Path: semi})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns)

	// an explicit param still wins over config
	comma := testutil.WriteFixture(t, dir, "comma.csv", "a,b\n1,2\n")
	ds, err = csv.Load(context.Background(), types.Source{Path: comma, Params: map[string]string{"delimiter": ","}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns)
}

func TestAccessLogUsesConfiguredFormat(t *testing.T) {
	cat, err := loaders.NewCatalog(defaults(t), nil)
	require.NoError(t, err)
	accessLog, err := cat.Get("access_log")
	require.NoError(t, err)

	line := `127.0.0.1 - - [01/Mar/2024:10:00:00 +0000] "GET /index.html HTTP/1.1" 200 512 "-" "curl/8.0"`
	path := testutil.WriteFixture(t, t.TempDir(), "access.log", line+"\n")

	ds, err := accessLog.Load(context.Background(), types.Source{Path: path})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	status, ok := ds.Column("status")
	require.True(t, ok)
	assert.Equal(t, []string{"200"}, status)

	agent, _ := ds.Column("http_user_agent")
	assert.Equal(t, []string{"curl/8.0"}, agent)
}
