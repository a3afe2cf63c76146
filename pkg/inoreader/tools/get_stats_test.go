package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelloeater/Inoreader-MCP/pkg/inoreader"
)

func TestGetStats_FiltersAndTotals(t *testing.T) {
	gw := &fakeGateway{
		unreadFn: func(ctx context.Context) ([]inoreader.UnreadCount, error) {
			return []inoreader.UnreadCount{
				{ID: "feed/https://a.example/rss", Count: 3},
				{ID: "feed/https://b.example/rss", Count: 7},
				{ID: "feed/https://c.example/rss", Count: 0},
				// Aggregates are excluded from the per-feed breakdown.
				{ID: "user/-/state/com.google/reading-list", Count: 10},
				{ID: "user/-/label/Tech", Count: 5},
			}, nil
		},
	}
	withFakeGateway(t, gw)

	out := runGetStats(context.Background(), GetStatsParams{})

	assert.Contains(t, out, "**Inoreader Statistics:**\n\n")
	assert.Contains(t, out, "Total unread articles: 10\n")
	assert.Contains(t, out, "Top feeds with unread articles:\n")
	assert.Contains(t, out, "- b.example/rss: 7 unread\n")
	assert.Contains(t, out, "- a.example/rss: 3 unread\n")
	assert.NotContains(t, out, "c.example")
	assert.NotContains(t, out, "reading-list")

	// Ordered by unread count, descending.
	assert.Less(t, strings.Index(out, "b.example"), strings.Index(out, "a.example"))
}

func TestGetStats_TopTenOnly(t *testing.T) {
	gw := &fakeGateway{
		unreadFn: func(ctx context.Context) ([]inoreader.UnreadCount, error) {
			counts := make([]inoreader.UnreadCount, 0, 12)
			for i := 1; i <= 12; i++ {
				counts = append(counts, inoreader.UnreadCount{
					ID:    fmt.Sprintf("feed/https://example.com/%d", i),
					Count: i,
				})
			}
			return counts, nil
		},
	}
	withFakeGateway(t, gw)

	out := runGetStats(context.Background(), GetStatsParams{})

	require.Contains(t, out, "Total unread articles: 78\n")
	assert.Equal(t, 10, strings.Count(out, "unread\n"))
	assert.Contains(t, out, "- example.com/12: 12 unread\n")
	assert.NotContains(t, out, "- example.com/1: 1 unread\n")
	assert.NotContains(t, out, "- example.com/2: 2 unread\n")
}

func TestGetStats_NoUnread(t *testing.T) {
	withFakeGateway(t, &fakeGateway{})

	out := runGetStats(context.Background(), GetStatsParams{})
	assert.Equal(t, "**Inoreader Statistics:**\n\nTotal unread articles: 0\n\n", out)
}

func TestGetStats_Error(t *testing.T) {
	gw := &fakeGateway{
		unreadFn: func(ctx context.Context) ([]inoreader.UnreadCount, error) {
			return nil, errors.New("upstream down")
		},
	}
	withFakeGateway(t, gw)

	out := runGetStats(context.Background(), GetStatsParams{})
	assert.Equal(t, "Error getting stats: upstream down", out)
	assert.Equal(t, 1, gw.closed)
}

func TestDisplayFeedName(t *testing.T) {
	assert.Equal(t, "example.com/rss", displayFeedName("feed/https://example.com/rss"))
	assert.Equal(t, "example.com/rss", displayFeedName("feed/http://example.com/rss"))
	assert.Equal(t, "plain-name", displayFeedName("feed/plain-name"))
	assert.Equal(t, "no-prefix", displayFeedName("no-prefix"))
}
