package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/distro/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. DISTRO_RELEASES_URL.
const EnvPrefix = "DISTRO_"

// ConfigFileName is the user config file name inside the XDG config dir.
const ConfigFileName = "config.toml"

// Templates holds template root settings
type Templates struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// Releases holds release lookup settings
type Releases struct {
	URL     string        `koanf:"url" toml:"url"`
	Timeout time.Duration `koanf:"timeout" toml:"timeout"`
}

// Defaults holds fallbacks for options not given on the command line
type Defaults struct {
	CoreVersion string `koanf:"core_version" toml:"core_version"`
	GitURL      string `koanf:"git_url" toml:"git_url"`
}

// VCS holds repository initialization settings
type VCS struct {
	Binary        string `koanf:"binary" toml:"binary"`
	Remote        string `koanf:"remote" toml:"remote"`
	CommitMessage string `koanf:"commit_message" toml:"commit_message"`
	AuthorName    string `koanf:"author_name" toml:"author_name"`
	AuthorEmail   string `koanf:"author_email" toml:"author_email"`
}

// Config is the main configuration structure
type Config struct {
	Templates Templates `koanf:"templates" toml:"templates"`
	Releases  Releases  `koanf:"releases" toml:"releases"`
	Defaults  Defaults  `koanf:"defaults" toml:"defaults"`
	VCS       VCS       `koanf:"vcs" toml:"vcs"`
}

// Default returns the configuration built from the embedded defaults only.
// It panics if the embedded file is unusable.
func Default() *Config {
	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		panic(err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

// UserConfigPath returns the default location of the user config file
func UserConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, logging.AppName, ConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, logging.AppName, ConfigFileName)
}

// Load builds the configuration from the embedded defaults, the user file
// and the environment. An explicit path must exist; the default user file
// is optional.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = UserConfigPath()
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
		path = ""
	}

	return load(path)
}

func load(userFile string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := loadDefaults(k); err != nil {
		return nil, err
	}

	// 2. User config file
	if userFile != "" {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userFile).
				WithDetail("path", userFile)
		}
		if unknown := UnknownKeys(userFile); len(unknown) > 0 {
			logger.Warn().Str("path", userFile).Strs("keys", unknown).Msg("Ignoring unknown configuration keys")
		}
		logger.Debug().Str("path", userFile).Msg("Loaded user configuration")
	}

	// 3. Environment, DISTRO_RELEASES_URL -> releases.url
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	return unmarshal(k)
}

func loadDefaults(k *koanf.Koanf) error {
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
