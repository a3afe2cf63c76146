// ABOUTME: Tool listing all subscribed Inoreader feeds as formatted text
// ABOUTME: Feeds are normalized and sorted case-insensitively by title

package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lexlapax/go-llms/pkg/agent/builtins"
	btools "github.com/lexlapax/go-llms/pkg/agent/builtins/tools"
	"github.com/lexlapax/go-llms/pkg/agent/domain"
	atools "github.com/lexlapax/go-llms/pkg/agent/tools"
	sdomain "github.com/lexlapax/go-llms/pkg/schema/domain"
	"github.com/samber/lo"

	"github.com/Jelloeater/Inoreader-MCP/pkg/inoreader"
)

// ListFeedsParams is empty; the tool takes no arguments.
type ListFeedsParams struct{}

func runListFeeds(ctx context.Context, params ListFeedsParams) string {
	gw, err := openGateway(ctx)
	if err != nil {
		return fmt.Sprintf("Error listing feeds: %v", err)
	}
	defer gw.Close()

	subscriptions, err := gw.SubscriptionList(ctx)
	if err != nil {
		return fmt.Sprintf("Error listing feeds: %v", err)
	}

	feeds := lo.Map(subscriptions, func(sub inoreader.Subscription, _ int) inoreader.Feed {
		return inoreader.NormalizeFeed(sub)
	})
	if len(feeds) == 0 {
		return "No feeds found in your Inoreader account."
	}

	sort.SliceStable(feeds, func(i, j int) bool {
		return strings.ToLower(feeds[i].Title) < strings.ToLower(feeds[j].Title)
	})

	return fmt.Sprintf("Found %d feeds:\n\n%s", len(feeds), inoreader.FormatFeeds(feeds))
}

// ListFeeds creates the inoreader_list_feeds tool.
func ListFeeds() domain.Tool {
	return atools.NewToolBuilder("inoreader_list_feeds", "List all subscribed feeds in Inoreader").
		WithFunction(runListFeeds).
		WithParameterSchema(&sdomain.Schema{
			Type:       "object",
			Properties: map[string]sdomain.Property{},
		}).
		WithUsageInstructions(`Lists every feed the configured Inoreader account is subscribed to,
sorted alphabetically by title. Each entry shows the title, its categories
when present, and the feed URL. Use this first to discover feed ids for
filtering other tools.`).
		WithCategory("inoreader").
		WithTags([]string{"inoreader", "rss", "feed", "subscription"}).
		WithBehavior(false, false, false, "medium").
		Build()
}

func init() {
	btools.MustRegisterTool("inoreader_list_feeds", ListFeeds(), btools.ToolMetadata{
		Metadata: builtins.Metadata{
			Name:        "inoreader_list_feeds",
			Category:    "inoreader",
			Tags:        []string{"inoreader", "rss", "feed", "subscription"},
			Description: "List all subscribed feeds in Inoreader",
			Version:     "1.0.0",
			Examples: []builtins.Example{
				{
					Name:        "List feeds",
					Description: "Show all subscriptions",
					Code:        `ListFeeds().Execute(ctx, ListFeedsParams{})`,
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
			"Error listing feeds": "Check Inoreader credentials and network connectivity",
		},
		IsDeterministic:  false,
		EstimatedLatency: "medium",
	})
}
