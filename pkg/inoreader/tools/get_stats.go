// ABOUTME: Tool summarizing unread counters per feed
// ABOUTME: Totals feed-scoped counts and lists the top ten feeds

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

const statsTopFeeds = 10

// GetStatsParams is empty; the tool takes no arguments.
type GetStatsParams struct{}

func runGetStats(ctx context.Context, params GetStatsParams) string {
	gw, err := openGateway(ctx)
	if err != nil {
		return fmt.Sprintf("Error getting stats: %v", err)
	}
	defer gw.Close()

	counts, err := gw.UnreadCounts(ctx)
	if err != nil {
		return fmt.Sprintf("Error getting stats: %v", err)
	}

	// Only feed-scoped counters with something unread; the endpoint also
	// reports folder and state aggregates.
	feedStats := lo.Filter(counts, func(c inoreader.UnreadCount, _ int) bool {
		return c.Count > 0 && strings.HasPrefix(c.ID, inoreader.FeedIDPrefix)
	})
	total := lo.SumBy(feedStats, func(c inoreader.UnreadCount) int {
		return c.Count
	})

	var b strings.Builder
	b.WriteString("**Inoreader Statistics:**\n\n")
	fmt.Fprintf(&b, "Total unread articles: %d\n\n", total)

	if len(feedStats) > 0 {
		sort.SliceStable(feedStats, func(i, j int) bool {
			return feedStats[i].Count > feedStats[j].Count
		})
		b.WriteString("Top feeds with unread articles:\n")
		for _, stat := range feedStats[:min(statsTopFeeds, len(feedStats))] {
			fmt.Fprintf(&b, "- %s: %d unread\n", displayFeedName(stat.ID), stat.Count)
		}
	}

	return b.String()
}

// displayFeedName strips the feed id prefix and, when the remainder is a
// URL, drops the scheme so only host and path are shown.
func displayFeedName(feedID string) string {
	name := strings.TrimPrefix(feedID, inoreader.FeedIDPrefix)
	if idx := strings.LastIndex(name, "://"); idx >= 0 {
		name = name[idx+len("://"):]
	}
	return name
}

// GetStats creates the inoreader_get_stats tool.
func GetStats() domain.Tool {
	return atools.NewToolBuilder("inoreader_get_stats", "Get statistics about unread articles").
		WithFunction(runGetStats).
		WithParameterSchema(&sdomain.Schema{
			Type:       "object",
			Properties: map[string]sdomain.Property{},
		}).
		WithUsageInstructions(`Reports the total number of unread articles across all feed
subscriptions and the ten feeds with the most unread items, ordered by
count.`).
		WithCategory("inoreader").
		WithTags([]string{"inoreader", "rss", "statistics", "unread"}).
		WithBehavior(false, false, false, "medium").
		Build()
}

func init() {
	btools.MustRegisterTool("inoreader_get_stats", GetStats(), btools.ToolMetadata{
		Metadata: builtins.Metadata{
			Name:        "inoreader_get_stats",
			Category:    "inoreader",
			Tags:        []string{"inoreader", "rss", "statistics", "unread"},
			Description: "Summarize unread counters per feed with a top-ten list",
			Version:     "1.0.0",
			Examples: []builtins.Example{
				{
					Name:        "Unread overview",
					Description: "Totals plus the busiest feeds",
					Code:        `GetStats().Execute(ctx, GetStatsParams{})`,
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
			"Error getting stats": "Check Inoreader credentials and network connectivity",
		},
		IsDeterministic:  false,
		EstimatedLatency: "medium",
	})
}
