// ABOUTME: Feed service handles fetching and normalizing Medium RSS feeds
// ABOUTME: Provides the fetch, validate, decode and format pipeline for feed requests

package feed

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"time"

	"medium-feed-client/core/domain"
	"medium-feed-client/core/errors"
	"medium-feed-client/core/fetch"
	"medium-feed-client/core/interfaces"

	"github.com/mmcdole/gofeed"
)

// feedContentType is the content type Medium serves RSS feeds with
const feedContentType = "text/xml"

// FeedService handles feed fetching and normalization
type FeedService struct {
	deps interfaces.Dependencies
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies) *FeedService {
	return &FeedService{
		deps: deps,
	}
}

// Fetch retrieves the feed at the given URL and normalizes its items
func (s *FeedService) Fetch(ctx context.Context, feedURL string, kind domain.FeedKind) (*domain.Feed, error) {
	if feedURL == "" {
		return nil, &errors.ValidationError{Field: "url", Message: "cannot be empty"}
	}

	if !kind.IsValid() {
		return nil, &errors.ValidationError{Field: "kind", Message: "unknown feed kind"}
	}

	if s.deps.HTTPClient == nil {
		return nil, &errors.ValidationError{Field: "transport", Message: "HTTP client not configured"}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, errors.WrapError(err, "failed to fetch feed")
	}

	body, err := fetch.ReadBody(resp, feedURL, feedContentType)
	if err != nil {
		return nil, err
	}

	feed, err := s.parseFeedContent(body, feedURL, kind)
	if err != nil {
		return nil, err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Fetched feed", map[string]interface{}{
			"url":   feedURL,
			"kind":  string(kind),
			"items": len(feed.Items),
		})
	}

	return feed, nil
}

// parseFeedContent parses raw RSS content into a domain feed
func (s *FeedService) parseFeedContent(content []byte, feedURL string, kind domain.FeedKind) (*domain.Feed, error) {
	if len(content) == 0 {
		return nil, &errors.ParseError{Format: "RSS", Err: stderrors.New("empty feed content")}
	}

	parser := gofeed.NewParser()
	parsedFeed, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, &errors.ParseError{Format: "RSS", Err: err}
	}

	feed := &domain.Feed{
		Title:       parsedFeed.Title,
		Description: parsedFeed.Description,
		URL:         feedURL,
		Link:        parsedFeed.Link,
		Kind:        kind,
		Items:       make([]domain.FeedItem, 0, len(parsedFeed.Items)),
	}

	if parsedFeed.Image != nil {
		feed.Image = parsedFeed.Image.URL
	}

	for _, item := range parsedFeed.Items {
		feed.Items = append(feed.Items, convertItemToDomain(item, kind))
	}

	return feed, nil
}

// convertItemToDomain converts a gofeed item to a normalized domain item
func convertItemToDomain(item *gofeed.Item, kind domain.FeedKind) domain.FeedItem {
	feedItem := domain.FeedItem{
		Link:  stripTrackingParams(item.Link),
		GUID:  item.GUID,
		Title: item.Title,
	}

	// Medium serves the story body under content:encoded on user and
	// publication feeds but under description on topic and tag feeds.
	switch kind.ContentSource() {
	case domain.ContentEncoded:
		feedItem.Content = item.Content
	case domain.ContentDescription:
		feedItem.Content = item.Description
	}

	// dc:creator carries the author's display name; the author element
	// upstream conflates name and email, so it is not read here.
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		feedItem.Author = item.DublinCoreExt.Creator[0]
	}

	if item.PublishedParsed != nil {
		feedItem.Date = *item.PublishedParsed
	} else if item.Published != "" {
		feedItem.Date = parseTime(item.Published)
	}

	feedItem.Categories = item.Categories
	if feedItem.Categories == nil {
		feedItem.Categories = []string{}
	}

	feedItem.Thumbnail = extractThumbnail(feedItem.Content)

	return feedItem
}

// stripTrackingParams truncates a link at the first '?' to drop tracking
// query parameters Medium appends to story links
func stripTrackingParams(link string) string {
	if idx := strings.Index(link, "?"); idx >= 0 {
		return link[:idx]
	}
	return link
}

// parseTime attempts to parse time from various formats
func parseTime(timeStr string) time.Time {
	if timeStr == "" {
		return time.Time{}
	}

	formats := []string{
		time.RFC3339,
		time.RFC1123,
		time.RFC1123Z,
		time.RFC822,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}
