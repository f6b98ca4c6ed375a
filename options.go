// ABOUTME: Configuration options for the Medium feed client
// ABOUTME: Provides functional options pattern for flexible client configuration

package medium

import (
	"medium-feed-client/core/errors"
	"medium-feed-client/core/interfaces"
)

// mediumBaseURL is the production site base all feed URLs are built on
const mediumBaseURL = "https://medium.com"

// mediumCDNBaseURL is the production image CDN base
const mediumCDNBaseURL = "https://cdn-images-1.medium.com"

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets the transport used for outbound requests
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return &errors.ValidationError{Field: "transport", Message: "cannot be nil"}
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithProxyPrefix sets a prefix prepended verbatim to every outbound URL,
// routing requests through an intermediary
func WithProxyPrefix(prefix string) Option {
	return func(c *Config) error {
		if prefix == "" {
			return &errors.ValidationError{Field: "proxyPrefix", Message: "cannot be empty"}
		}
		c.ProxyPrefix = prefix
		return nil
	}
}

// WithBaseURL overrides the Medium site base URL
func WithBaseURL(base string) Option {
	return func(c *Config) error {
		if base == "" {
			return &errors.ValidationError{Field: "baseURL", Message: "cannot be empty"}
		}
		c.BaseURL = base
		return nil
	}
}

// WithCDNBaseURL overrides the image CDN base URL
func WithCDNBaseURL(base string) Option {
	return func(c *Config) error {
		if base == "" {
			return &errors.ValidationError{Field: "cdnBaseURL", Message: "cannot be empty"}
		}
		c.CDNBaseURL = base
		return nil
	}
}

// defaultConfig returns the default client configuration.
// The transport is deliberately left unset: it must be injected
// explicitly, either with WithHTTPClient or WithDefaultDependencies.
func defaultConfig() Config {
	return Config{
		BaseURL:    mediumBaseURL,
		CDNBaseURL: mediumCDNBaseURL,
	}
}
