package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default values used when the configuration file omits a field.
const (
	DefaultTimeoutSeconds = 30
	DefaultRelayURL       = "https://api.allorigins.win/raw"
	DefaultMaxBodyBytes   = 16 << 20
	DefaultAddr           = ":8080"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
			RelayURL:       DefaultRelayURL,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "altadder", "config.toml")
}
