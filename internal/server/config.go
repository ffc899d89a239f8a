package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/mbaillet/immosim/internal/config"
	"github.com/mbaillet/immosim/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the BFF HTTP server.
type Config struct {
	Address         string               `yaml:"address"`
	RedisAddress    string               `yaml:"redisAddress"`
	CacheTTLSeconds int                  `yaml:"cacheTTLSeconds"`
	Logging         config.LoggingConfig `yaml:"logging"`
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:         constants.DefaultServerAddress,
		CacheTTLSeconds: constants.DefaultLocationCacheTTLSeconds,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if cfg.Address == "" {
		cfg.Address = constants.DefaultServerAddress
	}
	if cfg.CacheTTLSeconds <= 0 {
		cfg.CacheTTLSeconds = constants.DefaultLocationCacheTTLSeconds
	}
	return cfg, nil
}

// CacheTTL returns the location-cache expiry as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
