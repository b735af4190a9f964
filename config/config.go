// Package config loads CLI configuration from an optional config.yaml.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/treefilter/treefilter/internal/errors"
)

// Config holds all CLI configuration loaded from config.yaml.
type Config struct {
	// Logging configuration
	Logging struct {
		Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
	} `mapstructure:"logging"`

	// Color controls diagnostic coloring: "auto", "always", or "never"
	Color string `mapstructure:"color"`

	// Aliases maps shorthand names to full filter strings, used as '@name'
	Aliases map[string]string `mapstructure:"aliases"`
}

// Load reads configuration from config.yaml.
// Search order (first found wins): user config dir → current directory.
// If no config.yaml exists, defaults are used.
func Load() (*Config, error) {
	// Reset viper to clear any previous configuration
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(userConfigDir, "treefilter"))
	}

	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.WithStackTrace(err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	return cfg, nil
}

// setDefaults registers the default value for every configuration key.
func setDefaults() {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("color", "auto")
	viper.SetDefault("aliases", map[string]string{})
}
