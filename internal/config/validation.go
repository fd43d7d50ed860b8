package config

import (
	"fmt"
	"net/url"
)

// Validate validates the global configuration.
func Validate(config *Config) error {
	if config.HTTP.TimeoutSeconds < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "http.timeout_seconds", "timeout cannot be negative")
	}
	if config.HTTP.MaxBodyBytes < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "http.max_body_bytes", "max body size cannot be negative")
	}
	if err := validateHTTPURL(config.HTTP.RelayURL); err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "http.relay_url", err.Error())
	}
	if config.Server.PublicURL != "" {
		if err := validateHTTPURL(config.Server.PublicURL); err != nil {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "server.public_url", err.Error())
		}
	}
	return nil
}

// validateHTTPURL checks that raw is an absolute http(s) URL.
func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must use http or https: %s", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must include a host: %s", raw)
	}
	return nil
}
