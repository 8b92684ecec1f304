package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the fwinfo configuration
type Config struct {
	Journal Journal `yaml:"journal"`
	Catalog Catalog `yaml:"catalog"`
	Output  Output  `yaml:"output"`
	Record  Record  `yaml:"record"`
	Logging Logging `yaml:"logging"`
	Metrics Metrics `yaml:"metrics"`
}

// Journal configures the append-only record journal
type Journal struct {
	Path          string        `yaml:"path"`
	FsyncInterval time.Duration `yaml:"fsync_interval"`
	BufferSize    int           `yaml:"buffer_size"`
}

// Catalog configures the pebble record catalog
type Catalog struct {
	Dir string `yaml:"dir"`
}

// Output selects how summaries are printed
type Output struct {
	Format string `yaml:"format"`
}

// Record holds record encoding defaults
type Record struct {
	BufferSize int `yaml:"buffer_size"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Metrics configures the prometheus textfile export. An empty Textfile
// disables it.
type Metrics struct {
	Textfile string `yaml:"textfile"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Journal: Journal{
			Path:       "./data/records.journal",
			BufferSize: 4096,
		},
		Catalog: Catalog{
			Dir: "./data/catalog",
		},
		Output: Output{
			Format: "yaml",
		},
		Record: Record{
			BufferSize: 1024,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks values that cannot be repaired with a default.
func (c *Config) Validate() error {
	if c.Journal.Path == "" {
		return fmt.Errorf("journal.path must be set")
	}
	if c.Journal.BufferSize < 0 {
		return fmt.Errorf("journal.buffer_size must not be negative: %d", c.Journal.BufferSize)
	}
	if c.Journal.FsyncInterval < 0 {
		return fmt.Errorf("journal.fsync_interval must not be negative: %s", c.Journal.FsyncInterval)
	}
	if c.Catalog.Dir == "" {
		return fmt.Errorf("catalog.dir must be set")
	}
	switch strings.ToLower(c.Output.Format) {
	case "yaml", "json", "msgpack":
	default:
		return fmt.Errorf("output.format %q is not one of yaml, json, msgpack", c.Output.Format)
	}
	if c.Record.BufferSize <= 0 {
		return fmt.Errorf("record.buffer_size must be positive: %d", c.Record.BufferSize)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

// LoadConfig loads configuration from the specified path. Fields missing
// from the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BootstrapConfig writes a default configuration whose journal and catalog
// live under dataDir, when dataDir is set.
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.Journal.Path = filepath.Join(dataDir, "records.journal")
		config.Catalog.Dir = filepath.Join(dataDir, "catalog")
	}

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./fwinfo.yaml"
	}

	// ~/.config/fwinfo/config.yaml on Linux and macOS
	return filepath.Join(homeDir, ".config", "fwinfo", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
