// Package config loads the media adapter configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Backend values.
const (
	BackendConsole = "console"
	BackendMPD     = "mpd"
)

// Adapter variant values.
const (
	VariantObject = "object"
	VariantClass  = "class"
)

// MPDConfig holds the MPD connection settings.
type MPDConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
}

// ServerConfig holds the HTTP / Socket.io server settings.
type ServerConfig struct {
	Port               string `yaml:"port"`
	MaxExternalClients int    `yaml:"maxExternalClients"`
}

// Config is the top-level configuration.
type Config struct {
	Backend string       `yaml:"backend"`
	Variant string       `yaml:"variant"`
	MPD     MPDConfig    `yaml:"mpd"`
	Server  ServerConfig `yaml:"server"`
	Debug   bool         `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend: BackendConsole,
		Variant: VariantObject,
		MPD: MPDConfig{
			Host: "localhost",
			Port: 6600,
		},
		Server: ServerConfig{
			Port:               "3001",
			MaxExternalClients: 2,
		},
	}
}

// Load reads path and layers it over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated values and ports.
func (c Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendConsole, BackendMPD:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}

	switch c.Variant {
	case VariantObject, VariantClass:
	default:
		errs = append(errs, fmt.Errorf("unknown adapter variant %q", c.Variant))
	}

	if c.Backend == BackendMPD && c.MPD.Port <= 0 {
		errs = append(errs, fmt.Errorf("invalid mpd port %d", c.MPD.Port))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is empty"))
	}
	if c.Server.MaxExternalClients <= 0 {
		errs = append(errs, fmt.Errorf("invalid maxExternalClients %d", c.Server.MaxExternalClients))
	}

	return errors.Join(errs...)
}
