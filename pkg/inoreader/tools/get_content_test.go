package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelloeater/Inoreader-MCP/pkg/inoreader"
)

func TestGetContent_NotFound(t *testing.T) {
	gw := &fakeGateway{}
	withFakeGateway(t, gw)

	out := runGetContent(context.Background(), GetContentParams{ArticleID: "item-404"})

	assert.Equal(t, "Article with ID item-404 not found.", out)
	require.Len(t, gw.requestedIDs, 1)
	assert.Equal(t, []string{"item-404"}, gw.requestedIDs[0])
}

func TestGetContent_PrefersFullContentOverSummary(t *testing.T) {
	gw := &fakeGateway{
		itemContentsFn: func(ctx context.Context, ids []string) ([]inoreader.Item, error) {
			return []inoreader.Item{{
				ID:        "item-1",
				Title:     "Deep Dive",
				Author:    "Ada",
				Published: 1700000000,
				Origin:    inoreader.Origin{Title: "Tech Feed", StreamID: "feed/1"},
				Alternate: []inoreader.Link{{Type: "text/html", Href: "https://example.com/deep"}},
				Summary:   &inoreader.ContentBlock{Content: "short teaser"},
				Content:   &inoreader.ContentBlock{Content: "<p>the full body</p>"},
			}}, nil
		},
	}
	withFakeGateway(t, gw)

	out := runGetContent(context.Background(), GetContentParams{ArticleID: "item-1"})

	assert.Contains(t, out, "**Deep Dive**\n")
	assert.Contains(t, out, "Author: Ada\n")
	assert.Contains(t, out, "Feed: Tech Feed\n")
	assert.Contains(t, out, "Link: https://example.com/deep\n")
	assert.Contains(t, out, "Status: Unread\n")
	assert.Contains(t, out, "\n---\n\n<p>the full body</p>")
	assert.NotContains(t, out, "short teaser")
}

func TestGetContent_FallsBackToSummary(t *testing.T) {
	gw := &fakeGateway{
		itemContentsFn: func(ctx context.Context, ids []string) ([]inoreader.Item, error) {
			return []inoreader.Item{{
				ID:      "item-1",
				Title:   "Teaser Only",
				Summary: &inoreader.ContentBlock{Content: "just the teaser"},
			}}, nil
		},
	}
	withFakeGateway(t, gw)

	out := runGetContent(context.Background(), GetContentParams{ArticleID: "item-1"})
	assert.Contains(t, out, "\n---\n\njust the teaser")
}

func TestGetContent_NoContentPlaceholder(t *testing.T) {
	gw := &fakeGateway{
		itemContentsFn: func(ctx context.Context, ids []string) ([]inoreader.Item, error) {
			return []inoreader.Item{{ID: "item-1", Title: "Empty"}}, nil
		},
	}
	withFakeGateway(t, gw)

	out := runGetContent(context.Background(), GetContentParams{ArticleID: "item-1"})
	assert.Contains(t, out, "No content available for this article.")
	assert.Contains(t, out, "Link: No URL available\n")
}

func TestGetContent_ReadStatus(t *testing.T) {
	gw := &fakeGateway{
		itemContentsFn: func(ctx context.Context, ids []string) ([]inoreader.Item, error) {
			return []inoreader.Item{{
				ID:         "item-1",
				Title:      "Already Seen",
				Categories: []inoreader.Category{{ID: "user/-/state/com.google/read", Label: "read"}},
			}}, nil
		},
	}
	withFakeGateway(t, gw)

	out := runGetContent(context.Background(), GetContentParams{ArticleID: "item-1"})
	assert.Contains(t, out, "Status: Read\n")
}

func TestGetContent_FetchError(t *testing.T) {
	gw := &fakeGateway{
		itemContentsFn: func(ctx context.Context, ids []string) ([]inoreader.Item, error) {
			return nil, errors.New("upstream down")
		},
	}
	withFakeGateway(t, gw)

	out := runGetContent(context.Background(), GetContentParams{ArticleID: "item-1"})
	assert.Equal(t, "Error getting article content: upstream down", out)
	assert.Equal(t, 1, gw.closed)
}
