// ABOUTME: Public types for the Medium feed client API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package medium

import (
	"time"

	"medium-feed-client/core/domain"
)

// FeedItem represents a normalized entry in a Medium feed
type FeedItem struct {
	Date       time.Time `json:"date"`
	Link       string    `json:"link"`
	GUID       string    `json:"guid"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	Content    string    `json:"content,omitempty"`
	Categories []string  `json:"categories"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
}

// Topic represents an entry in Medium's topics directory
type Topic struct {
	Slug        string `json:"slug"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

// domainItemsToPublic converts domain feed items to the public type
func domainItemsToPublic(items []domain.FeedItem) []FeedItem {
	result := make([]FeedItem, len(items))
	for i, item := range items {
		result[i] = FeedItem{
			Date:       item.Date,
			Link:       item.Link,
			GUID:       item.GUID,
			Title:      item.Title,
			Author:     item.Author,
			Content:    item.Content,
			Categories: item.Categories,
			Thumbnail:  item.Thumbnail,
		}
	}
	return result
}

// domainTopicsToPublic converts domain topics to the public type
func domainTopicsToPublic(topics []domain.Topic) []Topic {
	result := make([]Topic, len(topics))
	for i, topic := range topics {
		result[i] = Topic{
			Slug:        topic.Slug,
			Link:        topic.Link,
			Name:        topic.Name,
			Image:       topic.Image,
			Description: topic.Description,
		}
	}
	return result
}
