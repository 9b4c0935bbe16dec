package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kerbaras/pible/pkg/data"
	"github.com/kerbaras/pible/pkg/sources"
	"gopkg.in/yaml.v3"
)

// Config holds pible's settings.
type Config struct {
	// Translation used when none is given on the command line.
	Translation string `yaml:"translation"`

	// APIKey is the ESV API credential. Only remote translations need it.
	APIKey string `yaml:"api_key,omitempty"`

	// DataDir holds the KJV dataset, one JSON file per book.
	DataDir string `yaml:"data_dir"`

	// Endpoint of the ESV passage text API.
	Endpoint string `yaml:"endpoint"`

	// Timeout for a single remote request, as a Go duration.
	Timeout string `yaml:"timeout"`

	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

func DefaultConfig() *Config {
	return &Config{
		Translation: string(data.KJV),
		DataDir:     sources.DefaultDataDir(),
		Endpoint:    sources.DefaultESVEndpoint,
		Timeout:     "30s",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultPath is config.yaml under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".pible", "config.yaml")
	}
	return filepath.Join(dir, "pible", "config.yaml")
}

// Load reads a YAML config on top of the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold an API key.
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets the credential come from the environment.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("ESV_API_KEY"); key != "" {
		c.APIKey = key
	}
}

func (c *Config) Validate() error {
	if _, err := data.ParseTranslation(c.Translation); err != nil {
		return err
	}
	if _, err := c.HTTPTimeout(); err != nil {
		return err
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}

// DefaultTranslation parses the configured translation.
func (c *Config) DefaultTranslation() (data.Translation, error) {
	return data.ParseTranslation(c.Translation)
}

// HTTPTimeout parses Timeout. An empty value means no timeout.
func (c *Config) HTTPTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}
