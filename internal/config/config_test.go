// Package config provides configuration management for devacia-os.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ConfigSuite is a test suite for config operations.
type ConfigSuite struct {
	suite.Suite
	tempDir     string
	origHomeDir string
}

func (s *ConfigSuite) SetupTest() {
	var err error
	s.tempDir, err = os.MkdirTemp("", "config-test-*")
	s.Require().NoError(err)

	// Save and override HOME
	s.origHomeDir = os.Getenv("HOME")
	os.Setenv("HOME", s.tempDir)
}

func (s *ConfigSuite) TearDownTest() {
	os.Setenv("HOME", s.origHomeDir)
	os.RemoveAll(s.tempDir)

	for _, key := range []string{
		"DEVACIA_LISTEN_ADDR", "DEVACIA_API_KEY", "DEVACIA_LOG_LEVEL",
		"DEVACIA_STORAGE_BACKEND", "DEVACIA_DATA_DIR", "DEVACIA_POSTGRES_DSN",
		"DEVACIA_MAX_CONNS",
	} {
		os.Unsetenv(key)
	}
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

// TestDefault tests default configuration values.
func (s *ConfigSuite) TestDefault() {
	cfg := Default()

	s.Equal(DefaultListenAddr, cfg.ListenAddr)
	s.Equal(DefaultLogLevel, cfg.LogLevel)
	s.Equal(DefaultBackend, cfg.Storage.Backend)
	s.Equal(DefaultMaxConns, cfg.Storage.MaxConns)
	s.Empty(cfg.APIKey)
}

// TestDataDir tests the data directory path.
func (s *ConfigSuite) TestDataDir() {
	dir := DataDir()
	s.Equal(filepath.Join(s.tempDir, ".devacia"), dir)
}

// TestLoad_MissingFile tests that a missing file yields defaults.
func (s *ConfigSuite) TestLoad_MissingFile() {
	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal(Default(), cfg)
}

// TestLoad_SaveRoundTrip tests save-then-load.
func (s *ConfigSuite) TestLoad_SaveRoundTrip() {
	path := filepath.Join(s.tempDir, "config.yaml")

	cfg := Default()
	cfg.APIKey = "devacia_wolf_2025"
	cfg.ListenAddr = "127.0.0.1:9000"
	cfg.Storage.Backend = "sqlite"
	s.Require().NoError(cfg.Save(path))

	loaded, err := Load(path)
	s.Require().NoError(err)
	s.Equal("devacia_wolf_2025", loaded.APIKey)
	s.Equal("127.0.0.1:9000", loaded.ListenAddr)
	s.Equal("sqlite", loaded.Storage.Backend)
}

// TestLoad_PartialFileGetsDefaults tests defaults filling a sparse file.
func (s *ConfigSuite) TestLoad_PartialFileGetsDefaults() {
	path := filepath.Join(s.tempDir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("api_key: secret\n"), 0o600))

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("secret", cfg.APIKey)
	s.Equal(DefaultListenAddr, cfg.ListenAddr)
	s.Equal(DefaultBackend, cfg.Storage.Backend)
}

// TestLoad_EnvOverrides tests that DEVACIA_* env vars beat the file.
func (s *ConfigSuite) TestLoad_EnvOverrides() {
	path := filepath.Join(s.tempDir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("api_key: from-file\n"), 0o600))

	os.Setenv("DEVACIA_API_KEY", "from-env")
	os.Setenv("DEVACIA_STORAGE_BACKEND", "postgres")
	os.Setenv("DEVACIA_MAX_CONNS", "8")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("from-env", cfg.APIKey)
	s.Equal("postgres", cfg.Storage.Backend)
	s.Equal(8, cfg.Storage.MaxConns)
}

// TestLoad_InvalidYAML tests the parse error path.
func (s *ConfigSuite) TestLoad_InvalidYAML() {
	path := filepath.Join(s.tempDir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("api_key: [unclosed\n"), 0o600))

	_, err := Load(path)
	s.Error(err)
}
