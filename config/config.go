// Package config loads the selftrack configuration.
//
// Values are looked up, by increasing priority, in the defaults, an optional
// selftrack.yaml file, a .env file, SELFTRACK_* environment variables and
// the overrides given by the command line.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/selftrack/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables, e.g. SELFTRACK_BACKEND.
const EnvPrefix = "SELFTRACK"

// Keys of the configuration.
const (
	KeyBackend    = "backend"
	KeyDataDir    = "data_dir"
	KeySQLitePath = "sqlite_path"
	KeyRedisURL   = "redis_url"
	KeyAPIKey     = "api_key"
	KeyModel      = "model"
	KeyVerbose    = "verbose"
)

type Config struct {
	Backend    string `mapstructure:"backend"`
	DataDir    string `mapstructure:"data_dir"`
	SQLitePath string `mapstructure:"sqlite_path"`
	RedisURL   string `mapstructure:"redis_url"`
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	Verbose    bool   `mapstructure:"verbose"`
}

// DataDir returns the default folder for selftrack's data.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "selftrack")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".selftrack"
	}
	return filepath.Join(home, ".local", "share", "selftrack")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, string(storage.File))
	v.SetDefault(KeyDataDir, DataDir())
	v.SetDefault(KeySQLitePath, "")
	v.SetDefault(KeyRedisURL, "")
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyModel, "gemini-3-flash-preview")
	v.SetDefault(KeyVerbose, false)
}

// Options of Load.
type Options struct {
	// ConfigFile is an explicit configuration file. Otherwise selftrack.yaml
	// is searched in the working directory and in the user's config folder.
	ConfigFile string
	// DotEnv is the .env file to load, if it exists. Defaults to ".env".
	DotEnv string
	// Overrides have the highest priority, typically set from command line flags.
	Overrides map[string]any
}

// Load reads the configuration.
func Load(opts Options) (*Config, error) {
	dotenv := opts.DotEnv
	if dotenv == "" {
		dotenv = ".env"
	}
	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load %s: %w", dotenv, err)
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("selftrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "selftrack"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || opts.ConfigFile != "" {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// The Gemini key is also accepted under its usual names.
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"} {
		if cfg.APIKey != "" {
			break
		}
		cfg.APIKey = os.Getenv(name)
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(cfg.DataDir, "selftrack.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	b, err := storage.ParseBackend(c.Backend)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if b == storage.Redis && c.RedisURL == "" {
		return fmt.Errorf("config: %s is required with the redis backend", KeyRedisURL)
	}
	if b == storage.File && c.DataDir == "" {
		return fmt.Errorf("config: %s is required with the file backend", KeyDataDir)
	}
	return nil
}

// StorageOptions returns the storage options described by c.
func (c *Config) StorageOptions() storage.Options {
	b, _ := storage.ParseBackend(c.Backend)
	return storage.Options{
		Backend:    b,
		Dir:        c.DataDir,
		SQLitePath: c.SQLitePath,
		RedisURL:   c.RedisURL,
	}
}
