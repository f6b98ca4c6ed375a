// ABOUTME: FeedItem domain model represents a normalized Medium feed entry
// ABOUTME: Produced fresh per request, immutable once formatted

package domain

import "time"

// FeedItem represents an individual item/entry in a Medium feed
type FeedItem struct {
	// Date is when the item was published
	Date time.Time

	// Link is the URL to the story, with tracking query parameters stripped
	Link string

	// GUID is the item's globally unique identifier
	GUID string

	// Title is the item's headline
	Title string

	// Author is the creator of the item
	Author string

	// Content is the item's HTML content
	Content string

	// Categories are the tags attached to the item, possibly empty
	Categories []string

	// Thumbnail is the first image URL found in the content, if any
	Thumbnail string
}

// IsValid checks if the feed item has all structurally required fields
func (fi *FeedItem) IsValid() bool {
	if fi.Link == "" {
		return false
	}

	if fi.Date.IsZero() {
		return false
	}

	return true
}
