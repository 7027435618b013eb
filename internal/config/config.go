// Package config loads the settings of the nu command line.
//
// Settings are read, by increasing priority, from the defaults, an optional
// YAML file and the NU_ prefixed environment variables, e.g. NU_LOG_LEVEL.
package config

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "NU"

// Config of the nu command line.
type Config struct {
	Log Log `mapstructure:"log"`
	// Vars are the variables available to every pipeline, as JSON documents.
	// Keys are case insensitive and always lowercased: a "Limit" entry
	// is read as $limit. Use --var for names with upper case letters.
	Vars map[string]string `mapstructure:"vars"`
}

// Log configures the logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "disabled"}
	validFormats = []string{"console", "json"}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

// Load reads the configuration. path is the YAML file to read and may be empty.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Log.Level) {
		return errors.Errorf("log.level must be one of %v (got: %q)", validLevels, c.Log.Level)
	}
	if !slices.Contains(validFormats, c.Log.Format) {
		return errors.Errorf("log.format must be one of %v (got: %q)", validFormats, c.Log.Format)
	}

	return nil
}
