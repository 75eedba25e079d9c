// Package config provides configuration management for devacia-os.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultListenAddr = "127.0.0.1:8000"
	DefaultBackend    = "jsonfile"
	DefaultMaxConns   = 4
	DefaultLogLevel   = "info"
)

// Config is the service configuration, loaded from a YAML file with
// environment variable overrides.
type Config struct {
	// ListenAddr is the HTTP bind address.
	ListenAddr string `yaml:"listen_addr"`
	// APIKey is the shared secret compared against the x-api-key header.
	// This is the sole access control: a single static equality check, not
	// an authentication system.
	APIKey   string  `yaml:"api_key"`
	LogLevel string  `yaml:"log_level"`
	Storage  Storage `yaml:"storage"`
}

// Storage selects and configures the persistence backend.
type Storage struct {
	// Backend is one of jsonfile, sqlite, postgres.
	Backend string `yaml:"backend"`
	// DataDir holds the JSON store files, the SQLite database and generated
	// PDFs. Defaults to ~/.devacia.
	DataDir string `yaml:"data_dir"`
	// PostgresDSN is required when Backend is postgres.
	PostgresDSN string `yaml:"postgres_dsn"`
	// MaxConns caps open database connections for the relational backends.
	MaxConns int `yaml:"max_conns"`
}

// DataDir returns the default data directory (~/.devacia).
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".devacia"
	}
	return filepath.Join(home, ".devacia")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		ListenAddr: DefaultListenAddr,
		LogLevel:   DefaultLogLevel,
		Storage: Storage{
			Backend:  DefaultBackend,
			DataDir:  DataDir(),
			MaxConns: DefaultMaxConns,
		},
	}
}

// Load reads the config file at path (Path() when empty), fills in defaults
// and applies environment overrides. A missing file is not an error; the
// defaults plus environment are used.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// Save writes the config to path (Path() when empty).
func (c *Config) Save(path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// EnsureDataDir creates the data directory if missing.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.Storage.DataDir, 0o755)
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = DefaultBackend
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = DataDir()
	}
	if c.Storage.MaxConns <= 0 {
		c.Storage.MaxConns = DefaultMaxConns
	}
}

// applyEnv applies DEVACIA_* environment overrides on top of file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("DEVACIA_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("DEVACIA_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("DEVACIA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DEVACIA_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("DEVACIA_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("DEVACIA_POSTGRES_DSN"); v != "" {
		c.Storage.PostgresDSN = v
	}
	if v := os.Getenv("DEVACIA_MAX_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Storage.MaxConns = n
		}
	}
}
