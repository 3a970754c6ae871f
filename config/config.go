// Package config loads the application configuration from a TOML file.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	OMDB    OMDBConfig    `toml:"omdb"`
	Storage StorageConfig `toml:"storage"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// OMDBConfig contains the upstream movie API settings.
type OMDBConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Driver string `toml:"driver"` // memory, file or postgres
	Path   string `toml:"path"`   // file driver
	DSN    string `toml:"dsn"`    // postgres driver
}

// Load reads and parses a TOML configuration file from the specified path.
// OMDB_API_KEY in the environment overrides the configured key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(&config)
	return &config, nil
}

// Default returns a Config with sensible defaults loaded from the embedded
// example config.
func Default() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	applyEnv(&config)
	return &config
}

func applyEnv(config *Config) {
	if key := os.Getenv("OMDB_API_KEY"); key != "" {
		config.OMDB.APIKey = key
	}
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
