package config

// Config represents the global altadder configuration.
type Config struct {
	// HTTP configuration for source fetches.
	HTTP HTTPConfig `toml:"http"`
	// Server configuration for `altadder serve`.
	Server ServerConfig `toml:"server"`
	// Output configuration for display and logging.
	Output OutputConfig `toml:"output"`
}

// HTTPConfig represents fetch settings shared by the primary and relay attempts.
type HTTPConfig struct {
	// TimeoutSeconds bounds each fetch attempt (0 = no timeout).
	TimeoutSeconds int `toml:"timeout_seconds"`
	// RelayURL is the pass-through endpoint used when the primary fetch fails.
	RelayURL string `toml:"relay_url"`
	// UserAgent overrides the User-Agent header.
	UserAgent string `toml:"user_agent,omitempty"`
	// MaxBodyBytes caps the size of a source document.
	MaxBodyBytes int64 `toml:"max_body_bytes"`
}

// ServerConfig represents web server settings.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`
	// PublicURL is the externally visible page URL used for share links.
	// Empty means derive it from the incoming request.
	PublicURL string `toml:"public_url,omitempty"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `toml:"color"`
}
