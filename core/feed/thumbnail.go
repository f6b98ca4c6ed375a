// ABOUTME: Thumbnail extraction from item content HTML
// ABOUTME: Picks the first image the story embeds, if any

package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractThumbnail returns the src of the first img element in the
// content HTML, or an empty string when there is none.
func extractThumbnail(content string) string {
	if content == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	src, _ := doc.Find("img").First().Attr("src")
	return src
}
