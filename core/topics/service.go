// ABOUTME: Topics service fetches and normalizes Medium's topics directory
// ABOUTME: Strips the JSON-hijacking guard prefix before decoding the payload

package topics

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sort"

	"medium-feed-client/core/domain"
	"medium-feed-client/core/errors"
	"medium-feed-client/core/fetch"
	"medium-feed-client/core/interfaces"
)

const (
	// topicsContentType is the content type Medium serves the topics payload with
	topicsContentType = "application/json"

	// guardPrefixLength is the length of the anti-JSON-hijacking prefix
	// Medium prepends to JSON responses: `])}while(1);</x>`
	guardPrefixLength = 16

	defaultBaseURL    = "https://medium.com"
	defaultCDNBaseURL = "https://cdn-images-1.medium.com"
)

// Config holds the base URLs topic links and images are derived from
type Config struct {
	// BaseURL is the site base used for topic page links
	BaseURL string

	// CDNBaseURL is the image CDN base used for topic cover images
	CDNBaseURL string
}

// TopicsService handles fetching and normalizing the topics directory
type TopicsService struct {
	deps       interfaces.Dependencies
	baseURL    string
	cdnBaseURL string
}

// NewTopicsService creates a new topics service instance.
// Empty config fields fall back to the Medium production URLs.
func NewTopicsService(deps interfaces.Dependencies, cfg Config) *TopicsService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.CDNBaseURL == "" {
		cfg.CDNBaseURL = defaultCDNBaseURL
	}

	return &TopicsService{
		deps:       deps,
		baseURL:    cfg.BaseURL,
		cdnBaseURL: cfg.CDNBaseURL,
	}
}

// topicsPayload mirrors the shape of Medium's topics JSON
type topicsPayload struct {
	Success bool `json:"success"`
	Payload struct {
		References struct {
			Topic map[string]topicRef `json:"Topic"`
		} `json:"references"`
	} `json:"payload"`
}

// topicRef is a single entry in the topic reference map
type topicRef struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       struct {
		ID string `json:"id"`
	} `json:"image"`
}

// Fetch retrieves the topics directory and normalizes its entries
func (s *TopicsService) Fetch(ctx context.Context, topicsURL string) ([]domain.Topic, error) {
	if topicsURL == "" {
		return nil, &errors.ValidationError{Field: "url", Message: "cannot be empty"}
	}

	if s.deps.HTTPClient == nil {
		return nil, &errors.ValidationError{Field: "transport", Message: "HTTP client not configured"}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, topicsURL)
	if err != nil {
		return nil, errors.WrapError(err, "failed to fetch topics")
	}

	body, err := fetch.ReadBody(resp, topicsURL, topicsContentType)
	if err != nil {
		return nil, err
	}

	payload, err := decodePayload(body)
	if err != nil {
		return nil, err
	}

	topics, err := s.formatTopics(payload)
	if err != nil {
		return nil, err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Fetched topics directory", map[string]interface{}{
			"url":    topicsURL,
			"topics": len(topics),
		})
	}

	return topics, nil
}

// decodePayload strips the guard prefix and parses the remainder as JSON.
// A wrong or missing prefix surfaces as a parse failure, not a distinct error.
func decodePayload(body []byte) (*topicsPayload, error) {
	if len(body) < guardPrefixLength {
		return nil, &errors.ParseError{Format: "JSON", Err: stderrors.New("body shorter than guard prefix")}
	}

	var payload topicsPayload
	if err := json.Unmarshal(body[guardPrefixLength:], &payload); err != nil {
		return nil, &errors.ParseError{Format: "JSON", Err: err}
	}

	return &payload, nil
}

// formatTopics maps the decoded payload into domain topics.
//
// Both a false success flag and a missing Topic reference map report the
// same generic error; the upstream contract does not distinguish them.
// Entries are ordered by reference key so output is deterministic, since
// JSON object order is lost in decoding.
func (s *TopicsService) formatTopics(payload *topicsPayload) ([]domain.Topic, error) {
	refs := payload.Payload.References.Topic
	if !payload.Success || refs == nil {
		return nil, &errors.ValidationError{Field: "payload", Message: "invalid topics JSON"}
	}

	keys := make([]string, 0, len(refs))
	for key := range refs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	topics := make([]domain.Topic, 0, len(refs))
	for _, key := range keys {
		ref := refs[key]
		topics = append(topics, domain.Topic{
			Slug:        ref.Slug,
			Link:        s.baseURL + "/topic/" + ref.Slug,
			Name:        ref.Name,
			Image:       s.cdnBaseURL + "/" + ref.Image.ID,
			Description: ref.Description,
		})
	}

	return topics, nil
}
