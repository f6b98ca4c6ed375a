// ABOUTME: Topic domain model represents an entry in Medium's topics directory
// ABOUTME: Link and image URLs are derived from the topic slug and image id

package domain

// Topic represents a single entry in Medium's topics directory
type Topic struct {
	// Slug is the topic's URL slug (e.g. "artificial-intelligence")
	Slug string

	// Link is the topic's page URL, derived from the slug
	Link string

	// Name is the topic's display name
	Name string

	// Image is the topic's cover image URL on Medium's CDN
	Image string

	// Description is the topic's short description
	Description string
}
