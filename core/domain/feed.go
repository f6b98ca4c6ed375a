// ABOUTME: Feed domain model represents a fetched Medium feed with its metadata
// ABOUTME: Carries the channel envelope alongside the normalized items

package domain

// Feed represents a fetched Medium feed
type Feed struct {
	// Title is the human-readable title of the feed
	Title string

	// Description provides a brief description of the feed's content
	Description string

	// URL is the feed's source URL (the actual RSS URL)
	URL string

	// Link is the website URL associated with the feed
	Link string

	// Image is the feed image URL
	Image string

	// Kind identifies which feed surface this was fetched from
	Kind FeedKind

	// Items contains the normalized feed entries
	Items []FeedItem
}
