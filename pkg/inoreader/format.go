// ABOUTME: Fixed-format text rendering of normalized articles and feeds
// ABOUTME: Pure functions; empty input renders a sentinel line

package inoreader

import (
	"fmt"
	"strings"
)

const (
	// NoArticlesFound is rendered when an article list is empty.
	NoArticlesFound = "No articles found."

	// NoFeedsFound is rendered when a feed list is empty.
	NoFeedsFound = "No feeds found."

	noURLPlaceholder = "No URL available"

	glyphRead   = "✓"
	glyphUnread = "•"
)

// FormatArticles renders articles as numbered multi-line blocks separated by
// blank lines.
func FormatArticles(articles []Article) string {
	if len(articles) == 0 {
		return NoArticlesFound
	}

	lines := make([]string, 0, len(articles)*5)
	for i, article := range articles {
		glyph := glyphUnread
		if article.IsRead {
			glyph = glyphRead
		}
		lines = append(lines, fmt.Sprintf("%d. %s %s", i+1, glyph, article.Title))
		lines = append(lines, "   Feed: "+article.FeedTitle)
		lines = append(lines, "   Date: "+article.PublishedDate)
		if article.URL != "" {
			lines = append(lines, "   Link: "+article.URL)
		} else {
			lines = append(lines, "   Link: "+noURLPlaceholder)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// FormatFeeds renders feeds as numbered blocks. The categories line appears
// only when the feed has categories.
func FormatFeeds(feeds []Feed) string {
	if len(feeds) == 0 {
		return NoFeedsFound
	}

	lines := make([]string, 0, len(feeds)*4)
	for i, feed := range feeds {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, feed.Title))
		if len(feed.Categories) > 0 {
			lines = append(lines, "   Categories: "+strings.Join(feed.Categories, ", "))
		}
		lines = append(lines, "   URL: "+feed.URL)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
