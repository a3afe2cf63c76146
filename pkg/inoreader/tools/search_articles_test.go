package tools

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelloeater/Inoreader-MCP/pkg/inoreader"
)

func TestSearchArticles_EmptyQuery(t *testing.T) {
	// Must fail before any session is opened.
	withGatewayError(t, errors.New("should not be reached"))

	out := runSearchArticles(context.Background(), SearchArticlesParams{Query: "   "})
	assert.Equal(t, "Error searching articles: query must not be empty", out)
}

func TestSearchArticles_DefaultWindowAndLimit(t *testing.T) {
	var gotQuery string
	var gotCount int
	var gotNewerThan int64
	gw := &fakeGateway{
		searchFn: func(ctx context.Context, query string, count int, newerThan int64) ([]inoreader.Item, error) {
			gotQuery, gotCount, gotNewerThan = query, count, newerThan
			return []inoreader.Item{}, nil
		},
	}
	withFakeGateway(t, gw)

	out := runSearchArticles(context.Background(), SearchArticlesParams{Query: "golang"})

	assert.Equal(t, "golang", gotQuery)
	assert.Equal(t, 50, gotCount)
	assert.InDelta(t, time.Now().Add(-7*24*time.Hour).Unix(), gotNewerThan, 2)
	assert.Equal(t, "No articles found matching 'golang'", out)
}

func TestSearchArticles_DisabledWindow(t *testing.T) {
	var gotNewerThan int64 = -1
	gw := &fakeGateway{
		searchFn: func(ctx context.Context, query string, count int, newerThan int64) ([]inoreader.Item, error) {
			gotNewerThan = newerThan
			return []inoreader.Item{}, nil
		},
	}
	withFakeGateway(t, gw)

	runSearchArticles(context.Background(), SearchArticlesParams{Query: "golang", Days: intPtr(0)})
	assert.Zero(t, gotNewerThan)
}

func TestSearchArticles_Header(t *testing.T) {
	gw := &fakeGateway{
		searchFn: func(ctx context.Context, query string, count int, newerThan int64) ([]inoreader.Item, error) {
			return []inoreader.Item{{ID: "item-1", Title: "Go 1.23 released"}}, nil
		},
	}
	withFakeGateway(t, gw)

	out := runSearchArticles(context.Background(), SearchArticlesParams{Query: "golang"})
	require.True(t, strings.HasPrefix(out, "Found 1 articles matching 'golang' from the last 7 days:\n\n"), out)
	assert.Contains(t, out, "Go 1.23 released")
}

func TestSearchArticles_SearchError(t *testing.T) {
	gw := &fakeGateway{
		searchFn: func(ctx context.Context, query string, count int, newerThan int64) ([]inoreader.Item, error) {
			return nil, errors.New("rate limited")
		},
	}
	withFakeGateway(t, gw)

	out := runSearchArticles(context.Background(), SearchArticlesParams{Query: "golang"})
	assert.Equal(t, "Error searching articles: rate limited", out)
	assert.Equal(t, 1, gw.closed)
}
