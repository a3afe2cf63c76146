package inoreader

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArticle_Basic(t *testing.T) {
	item := Item{
		ID:        "tag:google.com,2005:reader/item/123",
		Title:     "Test Article",
		Published: 1700000000,
		Author:    "Test Author",
		Origin:    Origin{Title: "Test Feed", StreamID: "feed/123"},
		Alternate: []Link{{Type: "text/html", Href: "https://example.com"}},
		Summary:   &ContentBlock{Content: "Test summary"},
	}

	article := NormalizeArticle(item)

	assert.Equal(t, "tag:google.com,2005:reader/item/123", article.ID)
	assert.Equal(t, "Test Article", article.Title)
	assert.Equal(t, "Test Author", article.Author)
	assert.Equal(t, "Test Feed", article.FeedTitle)
	assert.Equal(t, "feed/123", article.FeedID)
	assert.Equal(t, "https://example.com", article.URL)
	assert.Equal(t, "Test summary", article.Summary)
	assert.False(t, article.IsRead)
	assert.Equal(t, time.Unix(1700000000, 0).Format(time.RFC3339), article.PublishedDate)
}

func TestNormalizeArticle_Defaults(t *testing.T) {
	article := NormalizeArticle(Item{})

	assert.Equal(t, "No title", article.Title)
	assert.Equal(t, "Unknown", article.Author)
	assert.Equal(t, "Unknown feed", article.FeedTitle)
	assert.Empty(t, article.PublishedDate)
	assert.Empty(t, article.URL)
	assert.Empty(t, article.Summary)
	assert.Empty(t, article.Categories)
	assert.False(t, article.IsRead)
}

func TestNormalizeArticle_ReadState(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		want       bool
	}{
		{
			name:       "read state id on object category",
			categories: []Category{{ID: "user/-/state/com.google/read", Label: "Read"}},
			want:       true,
		},
		{
			name: "read state id as string category",
			// String categories decode with the value in both fields.
			categories: []Category{{ID: "user/-/state/com.google/read", Label: "user/-/state/com.google/read"}},
			want:       true,
		},
		{
			name:       "label Read without the state id does not count",
			categories: []Category{{ID: "Read", Label: "Read"}},
			want:       false,
		},
		{
			name:       "object category with Read label but unrelated id",
			categories: []Category{{ID: "user/-/label/Read", Label: "Read"}},
			want:       false,
		},
		{
			name:       "no categories",
			categories: nil,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := NormalizeArticle(Item{Categories: tt.categories})
			assert.Equal(t, tt.want, article.IsRead)
		})
	}
}

func TestNormalizeArticle_PicksFirstHTMLAlternate(t *testing.T) {
	item := Item{
		Alternate: []Link{
			{Type: "application/pdf", Href: "https://example.com/a.pdf"},
			{Type: "text/html", Href: "https://example.com/article"},
			{Type: "text/html", Href: "https://example.com/other"},
		},
	}

	article := NormalizeArticle(item)

	assert.Equal(t, "https://example.com/article", article.URL)
}

func TestNormalizeArticle_SummaryStrippedAndTruncated(t *testing.T) {
	long := strings.Repeat("a", 600)
	item := Item{Summary: &ContentBlock{Content: "<p>" + long + "</p>"}}

	article := NormalizeArticle(item)

	require.Len(t, article.Summary, 503)
	assert.True(t, strings.HasSuffix(article.Summary, "..."))
	assert.Equal(t, strings.Repeat("a", 500), article.Summary[:500])

	short := Item{Summary: &ContentBlock{Content: "<b>bold</b> text"}}
	assert.Equal(t, "bold text", NormalizeArticle(short).Summary)
}

func TestNormalizeFeed_Basic(t *testing.T) {
	sub := Subscription{
		ID:            "feed/123",
		Title:         "Test Feed",
		URL:           "https://example.com/feed",
		HTMLURL:       "https://example.com",
		Categories:    []Category{{ID: "user/-/label/Tech", Label: "Tech"}},
		FirstItemMsec: 1700000000,
	}

	feed := NormalizeFeed(sub)

	assert.Equal(t, "feed/123", feed.ID)
	assert.Equal(t, "Test Feed", feed.Title)
	assert.Equal(t, "https://example.com/feed", feed.URL)
	assert.Equal(t, []string{"Tech"}, feed.Categories)
	assert.Equal(t, int64(1700000000), feed.FirstItemMsec)
}

func TestNormalizeFeed_DefaultsTitle(t *testing.T) {
	feed := NormalizeFeed(Subscription{ID: "feed/123"})
	assert.Equal(t, "Untitled", feed.Title)
}

func TestItemIDs_SkipsEmpty(t *testing.T) {
	articles := []Article{{ID: "a"}, {ID: ""}, {ID: "b"}}
	assert.Equal(t, []string{"a", "b"}, ItemIDs(articles))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "hello world", StripTags(`<a href="x">hello</a> <em>world</em>`))
	// Entities are left alone.
	assert.Equal(t, "a &amp; b", StripTags("a &amp; b"))
}

func TestTruncateSummary_RuneBoundary(t *testing.T) {
	s := strings.Repeat("ü", 501)
	got := TruncateSummary(s, 500)
	assert.Equal(t, strings.Repeat("ü", 500)+"...", got)

	assert.Equal(t, "short", TruncateSummary("short", 500))
}

func TestCategory_UnmarshalBothForms(t *testing.T) {
	var item Item
	payload := `{
		"id": "item-1",
		"categories": [
			"user/-/state/com.google/read",
			{"id": "user/-/label/Tech", "label": "Tech"}
		]
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &item))

	require.Len(t, item.Categories, 2)
	assert.Equal(t, "user/-/state/com.google/read", item.Categories[0].ID)
	assert.Equal(t, "user/-/state/com.google/read", item.Categories[0].Label)
	assert.Equal(t, "user/-/label/Tech", item.Categories[1].ID)
	assert.Equal(t, "Tech", item.Categories[1].Label)
}
