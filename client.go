// ABOUTME: Main client for the Medium feed library
// ABOUTME: Builds request URLs and composes fetch, validate, decode and format per operation

package medium

import (
	"context"

	"medium-feed-client/core/domain"
	"medium-feed-client/core/errors"
	"medium-feed-client/core/feed"
	"medium-feed-client/core/interfaces"
	"medium-feed-client/core/topics"
)

// Client is the main entry point for the Medium feed library
type Client struct {
	feedService   *feed.FeedService
	topicsService *topics.TopicsService

	deps   interfaces.Dependencies
	config Config
}

// Config holds the configuration for the client
type Config struct {
	// HTTPClient performs the outbound requests. Required; there is no
	// implicit fallback, use WithDefaultDependencies for the standard one.
	HTTPClient interfaces.HTTPClient

	// Logger receives structured log output. Optional.
	Logger interfaces.Logger

	// ProxyPrefix, when set, is prepended verbatim to every outbound URL
	ProxyPrefix string

	// BaseURL is the Medium site base for feed and topic URLs
	BaseURL string

	// CDNBaseURL is the image CDN base for topic cover images
	CDNBaseURL string
}

// NewClient creates a new Medium feed client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	return &Client{
		feedService: feed.NewFeedService(deps),
		topicsService: topics.NewTopicsService(deps, topics.Config{
			BaseURL:    config.BaseURL,
			CDNBaseURL: config.CDNBaseURL,
		}),
		deps:   deps,
		config: config,
	}, nil
}

// User fetches the feed of stories written by the given user
func (c *Client) User(ctx context.Context, name string) ([]FeedItem, error) {
	if err := requireNonEmpty("name", name); err != nil {
		return nil, err
	}

	return c.fetchFeed(ctx, c.userFeedURL(name), domain.FeedKindUser)
}

// Publication fetches the feed of the given publication
func (c *Client) Publication(ctx context.Context, name string) ([]FeedItem, error) {
	if err := requireNonEmpty("name", name); err != nil {
		return nil, err
	}

	return c.fetchFeed(ctx, c.publicationFeedURL(name, ""), domain.FeedKindPublication)
}

// PublicationTagged fetches the publication's feed restricted to a tag
func (c *Client) PublicationTagged(ctx context.Context, name, tag string) ([]FeedItem, error) {
	if err := requireNonEmpty("name", name); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("tag", tag); err != nil {
		return nil, err
	}

	return c.fetchFeed(ctx, c.publicationFeedURL(name, tag), domain.FeedKindPublication)
}

// Topic fetches the feed of the given curated topic
func (c *Client) Topic(ctx context.Context, name string) ([]FeedItem, error) {
	if err := requireNonEmpty("name", name); err != nil {
		return nil, err
	}

	return c.fetchFeed(ctx, c.topicFeedURL(name), domain.FeedKindTopic)
}

// Tag fetches the feed of stories carrying the given tag
func (c *Client) Tag(ctx context.Context, name string) ([]FeedItem, error) {
	if err := requireNonEmpty("name", name); err != nil {
		return nil, err
	}

	return c.fetchFeed(ctx, c.tagFeedURL(name), domain.FeedKindTag)
}

// Topics fetches Medium's topics directory
func (c *Client) Topics(ctx context.Context) ([]Topic, error) {
	domainTopics, err := c.topicsService.Fetch(ctx, c.topicsURL())
	if err != nil {
		return nil, err
	}

	return domainTopicsToPublic(domainTopics), nil
}

// fetchFeed runs the feed pipeline and converts the items to public types
func (c *Client) fetchFeed(ctx context.Context, url string, kind domain.FeedKind) ([]FeedItem, error) {
	domainFeed, err := c.feedService.Fetch(ctx, url, kind)
	if err != nil {
		return nil, err
	}

	return domainItemsToPublic(domainFeed.Items), nil
}

// requireNonEmpty returns a ValidationError when the value is empty
func requireNonEmpty(field, value string) error {
	if value == "" {
		return &errors.ValidationError{Field: field, Message: "cannot be empty"}
	}
	return nil
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return &errors.ValidationError{Field: "transport", Message: "HTTP client is required"}
	}

	return nil
}
