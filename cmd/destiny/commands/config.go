package commands

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/destinymatrix/matrix"
)

// EnvPrefix prefixes every environment override: DESTINY_VARIANT,
// DESTINY_FORMAT, DESTINY_CACHE_SIZE, DESTINY_LOG_JSON.
const EnvPrefix = "DESTINY"

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Config is the resolved CLI configuration.
// Precedence: flags, then environment, then config file, then defaults.
type Config struct {
	Variant    string    `mapstructure:"variant"`
	Format     string    `mapstructure:"format"`
	CacheSize  int       `mapstructure:"cache_size"`
	Dimensions bool      `mapstructure:"dimensions"`
	Log        LogConfig `mapstructure:"log"`
}

// LogConfig selects the logger encoding and level.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose int  `mapstructure:"verbose"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("variant", matrix.VariantDigitSum.String())
	v.SetDefault("format", FormatJSON)
	v.SetDefault("cache_size", 0)
	v.SetDefault("dimensions", false)
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", 0)
}

// newViper returns a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// readConfigFile merges path, or destiny.yaml from the working directory
// when path is empty. Only an explicitly named file is required to exist.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("destiny")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}

		return errors.Wrapf(err, "failed to read config %s", path)
	}

	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values a command depends on.
func (c *Config) Validate() error {
	if _, err := matrix.ParseVariant(c.Variant); err != nil {
		return err
	}
	switch c.Format {
	case FormatJSON, FormatYAML, FormatTable:
	default:
		return errors.WithHint(
			errors.Newf("unknown output format %q", c.Format),
			"use one of: json, yaml, table",
		)
	}
	if c.CacheSize < 0 {
		return errors.Newf("cache_size must not be negative, got %d", c.CacheSize)
	}

	return nil
}

// VariantValue returns the parsed variant. Validate must have passed.
func (c *Config) VariantValue() matrix.Variant {
	v, _ := matrix.ParseVariant(c.Variant)

	return v
}
