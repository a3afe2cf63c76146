// ABOUTME: Pure normalization of raw API payloads into flat display records
// ABOUTME: Missing fields are defaulted, never fatal; summaries are sanitized

package inoreader

import (
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	summaryMaxLen = 500

	defaultArticleTitle = "No title"
	defaultAuthor       = "Unknown"
	defaultFeedTitle    = "Unknown feed"
	defaultFeedName     = "Untitled"
)

// Best-effort tag stripper, not an HTML parser. Entities are left as-is.
var htmlTagPattern = regexp.MustCompile(`<[^<]+?>`)

// Article is a stream item flattened for display.
type Article struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Published     int64    `json:"published"`
	PublishedDate string   `json:"published_date"`
	Author        string   `json:"author"`
	FeedTitle     string   `json:"feed_title"`
	FeedID        string   `json:"feed_id"`
	Categories    []string `json:"categories"`
	IsRead        bool     `json:"is_read"`
	URL           string   `json:"url"`
	Summary       string   `json:"summary"`
}

// Feed is a subscription flattened for display.
type Feed struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	HTMLURL       string   `json:"htmlUrl"`
	Categories    []string `json:"categories"`
	FirstItemMsec int64    `json:"firstItemMsec"`
}

// NormalizeArticle converts a raw stream item into an Article. Absent
// optional fields become defaults rather than failures.
func NormalizeArticle(item Item) Article {
	article := Article{
		ID:        item.ID,
		Title:     item.Title,
		Published: item.Published,
		Author:    item.Author,
		FeedTitle: item.Origin.Title,
		FeedID:    item.Origin.StreamID,
		Categories: lo.Map(item.Categories, func(cat Category, _ int) string {
			return cat.Label
		}),
		// Read state is carried by the category identifier, never by the
		// label. A category labeled "Read" without the read-state id does
		// not count.
		IsRead: lo.SomeBy(item.Categories, func(cat Category) bool {
			return strings.Contains(cat.ID, "state/com.google/read")
		}),
	}

	if article.Title == "" {
		article.Title = defaultArticleTitle
	}
	if article.Author == "" {
		article.Author = defaultAuthor
	}
	if article.FeedTitle == "" {
		article.FeedTitle = defaultFeedTitle
	}
	if item.Published > 0 {
		article.PublishedDate = time.Unix(item.Published, 0).Format(time.RFC3339)
	}

	for _, alt := range item.Alternate {
		if alt.Type == "text/html" {
			article.URL = alt.Href
			break
		}
	}

	if item.Summary != nil {
		article.Summary = TruncateSummary(StripTags(item.Summary.Content), summaryMaxLen)
	}

	return article
}

// NormalizeFeed converts a raw subscription into a Feed.
func NormalizeFeed(sub Subscription) Feed {
	feed := Feed{
		ID:      sub.ID,
		Title:   sub.Title,
		URL:     sub.URL,
		HTMLURL: sub.HTMLURL,
		Categories: lo.Map(sub.Categories, func(cat Category, _ int) string {
			return cat.Label
		}),
		FirstItemMsec: sub.FirstItemMsec,
	}
	if feed.Title == "" {
		feed.Title = defaultFeedName
	}
	return feed
}

// ItemIDs extracts the non-empty ids from a list of articles.
func ItemIDs(articles []Article) []string {
	return lo.FilterMap(articles, func(a Article, _ int) (string, bool) {
		return a.ID, a.ID != ""
	})
}

// StripTags removes angle-bracket-delimited tags from HTML content. It is a
// sanitizer for one-line summaries, not a parser; entities are not decoded.
func StripTags(content string) string {
	return htmlTagPattern.ReplaceAllString(content, "")
}

// TruncateSummary cuts a summary to at most maxLen characters, marking the
// cut with an ellipsis. Shorter input is returned unchanged.
func TruncateSummary(summary string, maxLen int) string {
	runes := []rune(summary)
	if len(runes) <= maxLen {
		return summary
	}
	return string(runes[:maxLen]) + "..."
}
