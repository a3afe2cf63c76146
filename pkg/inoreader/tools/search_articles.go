// ABOUTME: Tool searching Inoreader articles by keyword within a day window
// ABOUTME: Same clamping rules as listing, scoped to the search stream

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

const defaultSearchLimit = 50

// SearchArticlesParams describe a keyword search. Days behaves as in
// ListArticlesParams.
type SearchArticlesParams struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
	Days  *int   `json:"days,omitempty"`
}

func runSearchArticles(ctx context.Context, params SearchArticlesParams) string {
	if strings.TrimSpace(params.Query) == "" {
		return "Error searching articles: query must not be empty"
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	days := defaultDayWindow
	if params.Days != nil {
		days = *params.Days
	}
	var newerThan int64
	if days > 0 {
		newerThan = daysToTimestamp(days)
	}

	gw, err := openGateway(ctx)
	if err != nil {
		return fmt.Sprintf("Error searching articles: %v", err)
	}
	defer gw.Close()

	items, err := gw.Search(ctx, params.Query, limit, newerThan)
	if err != nil {
		return fmt.Sprintf("Error searching articles: %v", err)
	}

	articles := lo.Map(items, func(item inoreader.Item, _ int) inoreader.Article {
		return inoreader.NormalizeArticle(item)
	})
	if len(articles) == 0 {
		return fmt.Sprintf("No articles found matching '%s'", params.Query)
	}

	var header strings.Builder
	fmt.Fprintf(&header, "Found %d articles matching '%s'", len(articles), params.Query)
	if days > 0 {
		fmt.Fprintf(&header, " from the last %d days", days)
	}
	header.WriteString(":\n\n")

	return header.String() + inoreader.FormatArticles(articles)
}

// SearchArticles creates the inoreader_search_articles tool.
func SearchArticles() domain.Tool {
	return atools.NewToolBuilder("inoreader_search_articles", "Search for articles by keyword").
		WithFunction(runSearchArticles).
		WithParameterSchema(&sdomain.Schema{
			Type: "object",
			Properties: map[string]sdomain.Property{
				"query": {
					Type:        "string",
					Description: "Search query",
				},
				"limit": {
					Type:        "integer",
					Description: "Number of articles to return (default: 50)",
				},
				"days": {
					Type:        "integer",
					Description: "Search within the last N days (default: 7, 0 disables the window)",
				},
			},
			Required: []string{"query"},
		}).
		WithUsageInstructions(`Searches the account's articles by keyword. Results use the same
formatted listing as inoreader_list_articles. The day window defaults to
the last 7 days; pass 0 to search everything.`).
		WithCategory("inoreader").
		WithTags([]string{"inoreader", "rss", "articles", "search"}).
		WithBehavior(false, false, false, "medium").
		Build()
}

func init() {
	btools.MustRegisterTool("inoreader_search_articles", SearchArticles(), btools.ToolMetadata{
		Metadata: builtins.Metadata{
			Name:        "inoreader_search_articles",
			Category:    "inoreader",
			Tags:        []string{"inoreader", "rss", "articles", "search"},
			Description: "Search for articles by keyword within an optional day window",
			Version:     "1.0.0",
			Examples: []builtins.Example{
				{
					Name:        "Keyword search",
					Description: "Find recent articles about Go",
					Code:        `SearchArticles().Execute(ctx, SearchArticlesParams{Query: "golang"})`,
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
			"Error searching articles": "Check Inoreader credentials and network connectivity",
			"No articles found":        "Broaden the query or widen the day window",
		},
		IsDeterministic:  false,
		EstimatedLatency: "medium",
	})
}
