// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with timeout support
// - logger/logrus: Logrus-backed structured logger implementation
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration at construction
// - Testable: Include unit tests against real servers where practical
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://medium.com/feed/@alice")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger()
//	logger.Info("Fetched feed", map[string]interface{}{
//	    "url":   "https://medium.com/feed/@alice",
//	    "items": 10,
//	})
//
package infrastructure
