// ABOUTME: Tool listing recent articles with limit, day-window and feed filters
// ABOUTME: Renders a filter-aware header and a filter-aware empty message

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexlapax/go-llms/pkg/agent/builtins"
	btools "github.com/lexlapax/go-llms/pkg/agent/builtins/tools"
	"github.com/lexlapax/go-llms/pkg/agent/domain"
	atools "github.com/lexlapax/go-llms/pkg/agent/tools"
	sdomain "github.com/lexlapax/go-llms/pkg/schema/domain"
	"github.com/samber/lo"

	"github.com/Jelloeater/Inoreader-MCP/pkg/inoreader"
)

const (
	defaultArticleLimit = 20
	defaultDayWindow    = 7
)

// ListArticlesParams filters the article listing. Days and UnreadOnly are
// pointers so that an explicit zero/false can be told apart from "use the
// default" (7 days, unread only). Days of 0 disables the time window.
type ListArticlesParams struct {
	Limit      int    `json:"limit,omitempty"`
	Days       *int   `json:"days,omitempty"`
	FeedID     string `json:"feed_id,omitempty"`
	UnreadOnly *bool  `json:"unread_only,omitempty"`
}

func runListArticles(ctx context.Context, params ListArticlesParams) string {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultArticleLimit
	}
	days := defaultDayWindow
	if params.Days != nil {
		days = *params.Days
	}
	unreadOnly := true
	if params.UnreadOnly != nil {
		unreadOnly = *params.UnreadOnly
	}

	var newerThan int64
	if days > 0 {
		newerThan = daysToTimestamp(days)
	}

	gw, err := openGateway(ctx)
	if err != nil {
		return fmt.Sprintf("Error listing articles: %v", err)
	}
	defer gw.Close()

	items, err := gw.StreamContents(ctx, inoreader.StreamOptions{
		StreamID:    params.FeedID,
		Count:       limit,
		ExcludeRead: unreadOnly,
		NewerThan:   newerThan,
	})
	if err != nil {
		return fmt.Sprintf("Error listing articles: %v", err)
	}

	articles := lo.Map(items, func(item inoreader.Item, _ int) inoreader.Article {
		return inoreader.NormalizeArticle(item)
	})
	if len(articles) == 0 {
		return noArticlesMessage(unreadOnly, days, params.FeedID)
	}

	var header strings.Builder
	fmt.Fprintf(&header, "Found %d articles", len(articles))
	if unreadOnly {
		header.WriteString(" (unread only)")
	}
	if days > 0 {
		fmt.Fprintf(&header, " from the last %d days", days)
	}
	header.WriteString(":\n\n")

	return header.String() + inoreader.FormatArticles(articles)
}

// noArticlesMessage names the active filters so the caller knows why the
// result is empty.
func noArticlesMessage(unreadOnly bool, days int, feedID string) string {
	var filters []string
	if unreadOnly {
		filters = append(filters, "unread")
	}
	if days > 0 {
		filters = append(filters, fmt.Sprintf("from the last %d days", days))
	}
	if feedID != "" {
		filters = append(filters, "in feed "+feedID)
	}
	if len(filters) == 0 {
		return "No articles found."
	}
	return fmt.Sprintf("No articles found %s.", strings.Join(filters, " "))
}

// ListArticles creates the inoreader_list_articles tool.
func ListArticles() domain.Tool {
	return atools.NewToolBuilder("inoreader_list_articles", "List recent articles with optional filters").
		WithFunction(runListArticles).
		WithParameterSchema(&sdomain.Schema{
			Type: "object",
			Properties: map[string]sdomain.Property{
				"limit": {
					Type:        "integer",
					Description: "Number of articles to return (default: 20)",
				},
				"days": {
					Type:        "integer",
					Description: "Articles from the last N days (default: 7, 0 disables the window)",
				},
				"feed_id": {
					Type:        "string",
					Description: "Optional feed ID to filter articles (as returned by inoreader_list_feeds)",
				},
				"unread_only": {
					Type:        "boolean",
					Description: "Only show unread articles (default: true)",
				},
			},
		}).
		WithUsageInstructions(`Lists recent articles from the reading list or a single feed:
- limit caps the number of returned articles (server-side maximum applies)
- days restricts results to a trailing window; 0 disables the window
- feed_id scopes the listing to one subscription
- unread_only (default) hides articles already marked read

Each article shows a read/unread glyph, title, feed name, date and link.`).
		WithExamples([]domain.ToolExample{
			{
				Name:        "Unread from the last week",
				Description: "Default listing",
				Input:       map[string]interface{}{},
				Output:      "Found 12 articles (unread only) from the last 7 days:\n\n1. • ...",
			},
			{
				Name:        "One feed, everything",
				Description: "All articles of a feed regardless of read state",
				Input: map[string]interface{}{
					"feed_id":     "feed/https://example.com/rss",
					"unread_only": false,
					"days":        30,
				},
			},
		}).
		WithConstraints([]string{
			"Article count is clamped to the configured per-request maximum",
			"Returns formatted text, not structured data",
		}).
		WithCategory("inoreader").
		WithTags([]string{"inoreader", "rss", "articles", "reading-list"}).
		WithBehavior(false, false, false, "medium").
		Build()
}

func init() {
	btools.MustRegisterTool("inoreader_list_articles", ListArticles(), btools.ToolMetadata{
		Metadata: builtins.Metadata{
			Name:        "inoreader_list_articles",
			Category:    "inoreader",
			Tags:        []string{"inoreader", "rss", "articles", "reading-list"},
			Description: "List recent articles with optional limit, day-window, feed and unread filters",
			Version:     "1.0.0",
			Examples: []builtins.Example{
				{
					Name:        "Recent unread",
					Description: "Default filters: 20 unread articles from the last 7 days",
					Code:        `ListArticles().Execute(ctx, ListArticlesParams{})`,
				},
			},
		},
		RequiredPermissions: []string{"network:access"},
		ResourceUsage: btools.ResourceInfo{
			Memory:      "low",
			Network:     true,
			Concurrency: true,
		},
		ErrorGuidance: map[string]string{
			"Error listing articles": "Check Inoreader credentials and network connectivity",
			"No articles found":      "Relax the filters: raise days, drop feed_id, or set unread_only to false",
		},
		IsDeterministic:  false,
		EstimatedLatency: "medium",
	})
}
