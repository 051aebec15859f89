// Package config loads emailcanon settings from a YAML file, EMAILCANON_*
// environment variables and bound command line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/nephila016/emailcanon/internal/debug"
)

const (
	EnvPrefix  = "EMAILCANON"
	ConfigName = ".emailcanon"
)

type Config struct {
	Debug     int    `mapstructure:"debug"`
	DebugFile string `mapstructure:"debug_file"`
	Quiet     bool   `mapstructure:"quiet"`
	NoColor   bool   `mapstructure:"no_color"`

	// Enables the Yandex and Walla providers.
	ExtendedProviders bool `mapstructure:"extended_providers"`

	Inspect InspectConfig `mapstructure:"inspect"`
	Lists   ListsConfig   `mapstructure:"lists"`
	Bulk    BulkConfig    `mapstructure:"bulk"`
}

type InspectConfig struct {
	Strict       bool `mapstructure:"strict"`
	CheckRole    bool `mapstructure:"check_role"`
	SuggestTypos bool `mapstructure:"suggest_typos"`
}

// ListsConfig names extra domain list files merged over the built-in lists.
type ListsConfig struct {
	Disposable []string `mapstructure:"disposable"`
	Free       []string `mapstructure:"free"`
	// Missing files are skipped instead of failing the load.
	Optional bool `mapstructure:"optional"`
}

type BulkConfig struct {
	Workers    int `mapstructure:"workers"`
	BufferSize int `mapstructure:"buffer_size"`
}

// SetDefaults registers every key so that environment variables are seen
// by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", 0)
	v.SetDefault("debug_file", "")
	v.SetDefault("quiet", false)
	v.SetDefault("no_color", false)
	v.SetDefault("extended_providers", false)

	v.SetDefault("inspect.strict", false)
	v.SetDefault("inspect.check_role", true)
	v.SetDefault("inspect.suggest_typos", true)

	v.SetDefault("lists.disposable", []string{})
	v.SetDefault("lists.free", []string{})
	v.SetDefault("lists.optional", false)

	v.SetDefault("bulk.workers", 4)
	v.SetDefault("bulk.buffer_size", 100)
}

// Load reads configuration into v. An explicit path must exist; otherwise
// $HOME/.emailcanon.yaml and ./.emailcanon.yaml are tried and silently
// skipped when absent.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Debug < 0 || c.Debug > int(debug.LevelFull) {
		return fmt.Errorf("debug level must be between 0 and %d, got %d", debug.LevelFull, c.Debug)
	}
	if c.Bulk.Workers < 1 {
		return fmt.Errorf("bulk.workers must be at least 1, got %d", c.Bulk.Workers)
	}
	if c.Bulk.BufferSize < 0 {
		return fmt.Errorf("bulk.buffer_size cannot be negative, got %d", c.Bulk.BufferSize)
	}
	return nil
}
