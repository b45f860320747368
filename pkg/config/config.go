package config

// Config is the complete dview configuration
type Config struct {
	Preview   Preview                 `koanf:"preview"`
	Instances Instances               `koanf:"instances"`
	Loaders   map[string]LoaderConfig `koanf:"loaders"`
}

// Preview controls how datasets are printed
type Preview struct {
	// Rows is the number of rows shown; 0 shows everything
	Rows int `koanf:"rows"`
}

// Instances controls the instance store
type Instances struct {
	// Max is the number of instances kept; 0 means unlimited
	Max int `koanf:"max"`
}

// LoaderConfig holds per-loader settings
type LoaderConfig struct {
	// Show disables the show capability when explicitly false
	Show *bool `koanf:"show"`

	Delimiter string `koanf:"delimiter"`
	Format    string `koanf:"format"`
	Table     string `koanf:"table"`
	Path      string `koanf:"path"`
}

// ShowEnabled reports whether the show capability is allowed
func (l LoaderConfig) ShowEnabled() bool {
	return l.Show == nil || *l.Show
}

// Params returns the non-empty settings as source parameters
func (l LoaderConfig) Params() map[string]string {
	params := make(map[string]string)
	for key, value := range map[string]string{
		"delimiter": l.Delimiter,
		"format":    l.Format,
		"table":     l.Table,
		"path":      l.Path,
	} {
		if value != "" {
			params[key] = value
		}
	}
	return params
}

// Loader returns the settings for a loader, or the zero value
func (c *Config) Loader(name string) LoaderConfig {
	if c == nil {
		return LoaderConfig{}
	}
	return c.Loaders[name]
}
