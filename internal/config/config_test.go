package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.HTTP.TimeoutSeconds != 30 {
		t.Errorf("Expected TimeoutSeconds=30, got %d", cfg.HTTP.TimeoutSeconds)
	}
	if cfg.HTTP.RelayURL != "https://api.allorigins.win/raw" {
		t.Errorf("Expected default relay URL, got %s", cfg.HTTP.RelayURL)
	}
	if cfg.HTTP.MaxBodyBytes != 16<<20 {
		t.Errorf("Expected MaxBodyBytes=16MiB, got %d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected Addr=:8080, got %s", cfg.Server.Addr)
	}
	if !cfg.Output.Color {
		t.Error("Color output should be enabled by default")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !strings.HasSuffix(path, filepath.Join("altadder", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %s, want altadder/config.toml suffix", path)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
[http]
timeout_seconds = 5
relay_url = "https://relay.example.com/raw"

[server]
addr = "127.0.0.1:9000"
public_url = "https://altadder.example.com/"
`)
		cfg, err := loader.Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.HTTP.TimeoutSeconds != 5 {
			t.Errorf("Expected TimeoutSeconds=5, got %d", cfg.HTTP.TimeoutSeconds)
		}
		if cfg.HTTP.RelayURL != "https://relay.example.com/raw" {
			t.Errorf("Expected custom relay URL, got %s", cfg.HTTP.RelayURL)
		}
		if cfg.Server.Addr != "127.0.0.1:9000" {
			t.Errorf("Expected custom addr, got %s", cfg.Server.Addr)
		}
		// Omitted keys keep defaults
		if cfg.HTTP.MaxBodyBytes != DefaultMaxBodyBytes {
			t.Errorf("Expected default MaxBodyBytes, got %d", cfg.HTTP.MaxBodyBytes)
		}
		if !cfg.Output.Color {
			t.Error("Color should keep its default")
		}
	})

	t.Run("empty strings fall back to defaults", func(t *testing.T) {
		path := writeConfig(t, `
[http]
relay_url = ""

[server]
addr = ""
`)
		cfg, err := loader.Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.HTTP.RelayURL != DefaultRelayURL {
			t.Errorf("Expected default relay URL, got %s", cfg.HTTP.RelayURL)
		}
		if cfg.Server.Addr != DefaultAddr {
			t.Errorf("Expected default addr, got %s", cfg.Server.Addr)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/config.toml")
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Type != ConfigNotFound {
			t.Errorf("Expected ConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid syntax", func(t *testing.T) {
		path := writeConfig(t, "[http\ntimeout_seconds = ")
		_, err := loader.Load(path)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Type != ConfigInvalid {
			t.Errorf("Expected ConfigInvalid, got %v", err)
		}
	})

	t.Run("validation failure reports file", func(t *testing.T) {
		path := writeConfig(t, "[http]\ntimeout_seconds = -1\n")
		_, err := loader.Load(path)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("Expected ConfigError, got %v", err)
		}
		if cfgErr.Type != ConfigValidationFailed || cfgErr.Field != "http.timeout_seconds" {
			t.Errorf("unexpected error: %+v", cfgErr)
		}
		if cfgErr.File != path {
			t.Errorf("File = %s, want %s", cfgErr.File, path)
		}
	})
}

func TestLoadOrDefault(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.HTTP.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Server.PublicURL = "https://altadder.example.com/"
	cfg.Output.Color = false

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.PublicURL != cfg.Server.PublicURL {
		t.Errorf("PublicURL = %s, want %s", loaded.Server.PublicURL, cfg.Server.PublicURL)
	}
	if loaded.Output.Color {
		t.Error("Color should be false after round trip")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{
			name:   "defaults",
			modify: func(c *Config) {},
		},
		{
			name:   "zero timeout disables",
			modify: func(c *Config) { c.HTTP.TimeoutSeconds = 0 },
		},
		{
			name:      "negative timeout",
			modify:    func(c *Config) { c.HTTP.TimeoutSeconds = -5 },
			wantField: "http.timeout_seconds",
		},
		{
			name:      "negative body size",
			modify:    func(c *Config) { c.HTTP.MaxBodyBytes = -1 },
			wantField: "http.max_body_bytes",
		},
		{
			name:      "relay without scheme",
			modify:    func(c *Config) { c.HTTP.RelayURL = "api.allorigins.win/raw" },
			wantField: "http.relay_url",
		},
		{
			name:      "public url with ftp scheme",
			modify:    func(c *Config) { c.Server.PublicURL = "ftp://example.com/" },
			wantField: "server.public_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := Validate(cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	cause := errors.New("permission denied")
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "missing file suggests init",
			err:  NewConfigErrorWithCause(ConfigNotFound, "/home/u/.config/altadder/config.toml", "settings file not found", cause),
			want: "altadder config /home/u/.config/altadder/config.toml: settings file not found: permission denied (run 'altadder config init' to create it)",
		},
		{
			name: "field without file",
			err:  NewConfigErrorWithField(ConfigValidationFailed, "", "http.relay_url", "URL must use http or https: ftp://relay"),
			want: "altadder config: http.relay_url: URL must use http or https: ftp://relay",
		},
		{
			name: "field with file",
			err:  NewConfigErrorWithField(ConfigValidationFailed, "config.toml", "server.public_url", "URL must include a host: https://"),
			want: "altadder config config.toml: server.public_url: URL must include a host: https://",
		},
		{
			name: "unreadable file",
			err:  NewConfigErrorWithCause(ConfigInvalid, "config.toml", "invalid TOML syntax", cause),
			want: "altadder config config.toml: invalid TOML syntax: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false", err)
	}
	if IsNotFound(NewConfigErrorWithField(ConfigValidationFailed, "", "http.timeout_seconds", "timeout cannot be negative")) {
		t.Error("IsNotFound() = true for a validation error")
	}
	if IsNotFound(os.ErrNotExist) {
		t.Error("IsNotFound() = true for a bare os error")
	}
	if got := ConfigErrorType(42).String(); got != "Unknown" {
		t.Errorf("String() = %s", got)
	}
}
