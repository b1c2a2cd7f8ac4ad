// Package config loads timelinekit settings. Environment variables override
// the YAML file, which overrides the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TIMELINEKIT_STORE_PATH.
const EnvPrefix = "TIMELINEKIT"

type Config struct {
	Store StoreConfig  `mapstructure:"store" yaml:"store"`
	Log   LoggerConfig `mapstructure:"log" yaml:"log"`
}

type StoreConfig struct {
	Path    string        `mapstructure:"path" yaml:"path"`
	Codec   string        `mapstructure:"codec" yaml:"codec"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Path   string `mapstructure:"path" yaml:"path"`
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("store.path", "timelinekit.db")
	v.SetDefault("store.codec", "cbor")
	v.SetDefault("store.timeout", "1s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.path", "")
}

// NewDefaultConfig returns the configuration made of defaults only.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads file if given, otherwise ./timelinekit.yaml when present, then
// applies environment overrides on top.
func Load(file string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("timelinekit")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	switch strings.ToLower(c.Store.Codec) {
	case "json", "cbor":
	default:
		return fmt.Errorf("store.codec must be json or cbor, got %q", c.Store.Codec)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}
