// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default transport and logger

package medium

import (
	"time"

	"medium-feed-client/core/interfaces"
	httpInfra "medium-feed-client/infrastructure/http/standard"
	loggerInfra "medium-feed-client/infrastructure/logger/logrus"
)

// DefaultHTTPClient creates a default HTTP client with a sensible timeout
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultLogger creates a default logrus-backed logger writing to stderr
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewLogrusLogger()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// WithDefaultDependencies configures the client with default transport and
// logger for any dependency not already set
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		if c.HTTPClient == nil {
			c.HTTPClient = DefaultHTTPClient()
		}
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
