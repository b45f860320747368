package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/logging"
)

const (
	// EnvPrefix is the prefix of environment overrides
	EnvPrefix = "DVIEW_"
	// ProjectFile is looked up in the project directory
	ProjectFile = ".dview.toml"
)

// Options controls where configuration is read from
type Options struct {
	// ConfigFile replaces the user config file when set
	ConfigFile string
	// ProjectDir is searched for ProjectFile; empty skips the project layer
	ProjectDir string
	// SkipUser ignores the user config file (used by tests)
	SkipUser bool
}

// LoadConfiguration loads the layered configuration
func LoadConfiguration(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	userFile := opts.ConfigFile
	if userFile == "" && !opts.SkipUser {
		userFile = findUserConfig()
	}
	if userFile != "" {
		if err := loadFile(k, userFile, opts.ConfigFile != ""); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", userFile).Msg("Loaded user config")
	}

	// 3. Project config
	if opts.ProjectDir != "" {
		path := filepath.Join(opts.ProjectDir, ProjectFile)
		if err := loadFile(k, path, false); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// UserConfigDir is the directory holding the user config file
func UserConfigDir() string {
	return filepath.Join(xdg.ConfigHome, logging.AppName)
}

func findUserConfig() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(UserConfigDir(), name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFile merges a config file into k. Missing files are skipped
// unless required.
func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path)
	}

	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Preview.Rows < 0 {
		return errors.Newf(errors.ErrInvalidInput, "preview.rows must be >= 0, got %d", cfg.Preview.Rows)
	}
	if cfg.Instances.Max < 0 {
		return errors.Newf(errors.ErrInvalidInput, "instances.max must be >= 0, got %d", cfg.Instances.Max)
	}
	return nil
}
