// ABOUTME: Tool fetching the full content of one article by id
// ABOUTME: Prefers structured content over the truncated summary

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

	"github.com/Jelloeater/Inoreader-MCP/pkg/inoreader"
)

// GetContentParams identify the article to fetch.
type GetContentParams struct {
	ArticleID string `json:"article_id"`
}

func runGetContent(ctx context.Context, params GetContentParams) string {
	gw, err := openGateway(ctx)
	if err != nil {
		return fmt.Sprintf("Error getting article content: %v", err)
	}
	defer gw.Close()

	items, err := gw.StreamItemContents(ctx, []string{params.ArticleID})
	if err != nil {
		return fmt.Sprintf("Error getting article content: %v", err)
	}
	if len(items) == 0 {
		return fmt.Sprintf("Article with ID %s not found.", params.ArticleID)
	}

	item := items[0]
	article := inoreader.NormalizeArticle(item)

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", article.Title)
	fmt.Fprintf(&b, "Author: %s\n", article.Author)
	fmt.Fprintf(&b, "Feed: %s\n", article.FeedTitle)
	fmt.Fprintf(&b, "Date: %s\n", article.PublishedDate)
	if article.URL != "" {
		fmt.Fprintf(&b, "Link: %s\n", article.URL)
	} else {
		b.WriteString("Link: No URL available\n")
	}
	if article.IsRead {
		b.WriteString("Status: Read\n")
	} else {
		b.WriteString("Status: Unread\n")
	}

	// Full structured content wins over the 500-character summary.
	switch {
	case item.Content != nil && item.Content.Content != "":
		b.WriteString("\n---\n\n")
		b.WriteString(item.Content.Content)
	case article.Summary != "":
		b.WriteString("\n---\n\n")
		b.WriteString(article.Summary)
	default:
		b.WriteString("\n---\n\nNo content available for this article.")
	}

	return b.String()
}

// GetContent creates the inoreader_get_content tool.
func GetContent() domain.Tool {
	return atools.NewToolBuilder("inoreader_get_content", "Get full content of a specific article").
		WithFunction(runGetContent).
		WithParameterSchema(&sdomain.Schema{
			Type: "object",
			Properties: map[string]sdomain.Property{
				"article_id": {
					Type:        "string",
					Description: "Article ID to get content for",
				},
			},
			Required: []string{"article_id"},
		}).
		WithUsageInstructions(`Fetches one article by id and renders its title, author, feed, date,
link and read status followed by the article body. Article ids come from
inoreader_list_articles or inoreader_search_articles output.`).
		WithCategory("inoreader").
		WithTags([]string{"inoreader", "rss", "articles", "content"}).
		WithBehavior(false, false, false, "medium").
		Build()
}

func init() {
	btools.MustRegisterTool("inoreader_get_content", GetContent(), btools.ToolMetadata{
		Metadata: builtins.Metadata{
			Name:        "inoreader_get_content",
			Category:    "inoreader",
			Tags:        []string{"inoreader", "rss", "articles", "content"},
			Description: "Get the full content of a specific article by id",
			Version:     "1.0.0",
			Examples: []builtins.Example{
				{
					Name:        "Fetch article",
					Description: "Get the body of a listed article",
					Code:        `GetContent().Execute(ctx, GetContentParams{ArticleID: "tag:google.com,2005:reader/item/123"})`,
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
			"not found": "Use an id returned by inoreader_list_articles; ids expire as items age out",
		},
		IsDeterministic:  false,
		EstimatedLatency: "medium",
	})
}
