// Package config loads runtime settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/quadsnake/constants"
)

// ErrInvalid marks a configuration that failed validation
var ErrInvalid = errors.New("invalid config")

// Config holds all runtime settings
type Config struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Seed         uint64        `yaml:"seed"`
	Debug        bool          `yaml:"debug"`
	LogDir       string        `yaml:"log_dir"`

	Remote Remote `yaml:"remote"`
}

// Remote configures the web touch pad
type Remote struct {
	Enabled     bool   `yaml:"enabled"`
	Listen      string `yaml:"listen"`
	AllowRemote bool   `yaml:"allow_remote"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		TickInterval: constants.TickInterval,
		LogDir:       "logs",
		Remote: Remote{
			Listen: "127.0.0.1:8420",
		},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.TickInterval < time.Millisecond {
		return fmt.Errorf("%w: tick_interval %v below 1ms", ErrInvalid, c.TickInterval)
	}
	if c.Debug && c.LogDir == "" {
		return fmt.Errorf("%w: log_dir required when debug is on", ErrInvalid)
	}
	if c.Remote.Enabled {
		if _, _, err := net.SplitHostPort(c.Remote.Listen); err != nil {
			return fmt.Errorf("%w: remote.listen %q: %v", ErrInvalid, c.Remote.Listen, err)
		}
	}
	return nil
}
