// Package core contains the business logic for the Medium feed client.
// It is designed to be framework-agnostic and can be used independently
// of the public facade or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Feed, FeedItem, Topic, FeedKind)
// - feed: RSS feed fetching and normalization service
// - topics: Topics directory fetching and normalization service
// - fetch: Response validation shared by the services
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from transport concerns
//
// # Usage Example
//
//	import (
//	    "medium-feed-client/core/feed"
//	    "medium-feed-client/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	feedService := feed.NewFeedService(deps)
//
//	// Fetch a feed
//	result, err := feedService.Fetch(ctx,
//	    "https://medium.com/feed/@alice", domain.FeedKindUser)
//
package core
