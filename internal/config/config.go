package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Path to the tag library database
	// Default: ~/.local/share/tagger/library.db
	Library string

	// Output format for listing tags: text, table or json
	Output string

	// Log level (debug, info, warn, error)
	LogLevel string

	// Number of files opened concurrently
	Workers int

	// Ask before clearing tags
	ConfirmClear bool
}

// Load reads configuration from file and environment.
// An empty configFile searches the default locations.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// Config file locations (in order of precedence)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(getConfigDir())
		v.AddConfigPath(".")
	}

	v.SetDefault("library", filepath.Join(getDataDir(), "library.db"))
	v.SetDefault("output", "text")
	v.SetDefault("log_level", "warn")
	v.SetDefault("workers", 4)
	v.SetDefault("confirm_clear", true)

	// A missing config file is fine; a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("TAGGER")
	v.AutomaticEnv()

	cfg := &Config{
		Library:      v.GetString("library"),
		Output:       v.GetString("output"),
		LogLevel:     v.GetString("log_level"),
		Workers:      v.GetInt("workers"),
		ConfirmClear: v.GetBool("confirm_clear"),
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "tagger")
}

// getDataDir returns the directory holding the tag library
func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".local", "share", "tagger")
}

// DefaultPath returns the path Save writes to when none is given
func DefaultPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// Save writes configuration to path, or to DefaultPath when path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	v := viper.New()

	v.Set("library", c.Library)
	v.Set("output", c.Output)
	v.Set("log_level", c.LogLevel)
	v.Set("workers", c.Workers)
	v.Set("confirm_clear", c.ConfirmClear)

	return v.WriteConfigAs(path)
}
