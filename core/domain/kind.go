// ABOUTME: FeedKind enumerates the four Medium feed surfaces
// ABOUTME: Determines the URL template and which field carries the item content

package domain

// FeedKind identifies which Medium feed surface a request targets
type FeedKind string

const (
	// FeedKindUser is a per-author feed (/feed/@name)
	FeedKindUser FeedKind = "user"

	// FeedKindPublication is a publication feed (/feed/name[/tagged/tag])
	FeedKindPublication FeedKind = "publication"

	// FeedKindTopic is a curated topic feed (/feed/topic/name)
	FeedKindTopic FeedKind = "topic"

	// FeedKindTag is a tag feed (/feed/tag/name)
	FeedKindTag FeedKind = "tag"
)

// ContentSource identifies which RSS field carries the item content
type ContentSource int

const (
	// ContentEncoded reads the content:encoded element
	ContentEncoded ContentSource = iota

	// ContentDescription reads the description element
	ContentDescription
)

// contentSources is a fixed lookup table, not inferred logic: Medium
// serves the story body in content:encoded for user and publication
// feeds but in description for topic and tag feeds.
var contentSources = map[FeedKind]ContentSource{
	FeedKindUser:        ContentEncoded,
	FeedKindPublication: ContentEncoded,
	FeedKindTopic:       ContentDescription,
	FeedKindTag:         ContentDescription,
}

// ContentSource returns which RSS field carries the content for this kind
func (k FeedKind) ContentSource() ContentSource {
	return contentSources[k]
}

// IsValid checks if the kind is one of the four known feed surfaces
func (k FeedKind) IsValid() bool {
	_, ok := contentSources[k]
	return ok
}
