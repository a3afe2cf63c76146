// ABOUTME: Tool marking articles read in sequential batches of twenty
// ABOUTME: Tallies batch successes and reports full, partial or zero success

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lexlapax/go-llms/pkg/agent/builtins"
	btools "github.com/lexlapax/go-llms/pkg/agent/builtins/tools"
	"github.com/lexlapax/go-llms/pkg/agent/domain"
	atools "github.com/lexlapax/go-llms/pkg/agent/tools"
	sdomain "github.com/lexlapax/go-llms/pkg/schema/domain"
	"github.com/samber/lo"
)

// markReadBatchSize respects the edit-tag endpoint's id limit per call.
const markReadBatchSize = 20

// MarkAsReadParams carry the ids to mark.
type MarkAsReadParams struct {
	ArticleIDs []string `json:"article_ids"`
}

func runMarkAsRead(ctx context.Context, params MarkAsReadParams) string {
	if len(params.ArticleIDs) == 0 {
		return "No article IDs provided."
	}

	gw, err := openGateway(ctx)
	if err != nil {
		return fmt.Sprintf("Error marking articles as read: %v", err)
	}
	defer gw.Close()

	// Batches run one after another; a failed batch does not abort the
	// rest, it just doesn't count.
	succeeded := 0
	for _, batch := range lo.Chunk(params.ArticleIDs, markReadBatchSize) {
		ok, err := gw.MarkAsRead(ctx, batch)
		if err != nil {
			slog.Warn("mark-as-read batch failed", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			continue
		}
		if ok {
			succeeded += len(batch)
		}
	}

	total := len(params.ArticleIDs)
	switch {
	case succeeded == total:
		return fmt.Sprintf("Successfully marked %d article(s) as read.", succeeded)
	case succeeded > 0:
		return fmt.Sprintf("Marked %d out of %d articles as read.", succeeded, total)
	default:
		return "Failed to mark articles as read."
	}
}

// MarkAsRead creates the inoreader_mark_as_read tool.
func MarkAsRead() domain.Tool {
	return atools.NewToolBuilder("inoreader_mark_as_read", "Mark articles as read").
		WithFunction(runMarkAsRead).
		WithParameterSchema(&sdomain.Schema{
			Type: "object",
			Properties: map[string]sdomain.Property{
				"article_ids": {
					Type:        "array",
					Description: "List of article IDs to mark as read",
					Items: &sdomain.Property{
						Type: "string",
					},
				},
			},
			Required: []string{"article_ids"},
		}).
		WithUsageInstructions(`Marks the given articles as read. Ids are submitted in batches of 20
to respect the endpoint limit; batches are processed strictly one after
another. The reply states how many of the requested articles were marked,
so a partially failing run is visible in the count.`).
		WithExamples([]domain.ToolExample{
			{
				Name:        "Mark a handful",
				Description: "Mark three articles read",
				Input: map[string]interface{}{
					"article_ids": []string{"id-1", "id-2", "id-3"},
				},
				Output: "Successfully marked 3 article(s) as read.",
			},
		}).
		WithConstraints([]string{
			"Batches of 20 ids per upstream call",
			"Partial success is reported as a count, never as an error",
		}).
		WithCategory("inoreader").
		WithTags([]string{"inoreader", "rss", "articles", "state"}).
		WithBehavior(false, true, false, "medium").
		Build()
}

func init() {
	btools.MustRegisterTool("inoreader_mark_as_read", MarkAsRead(), btools.ToolMetadata{
		Metadata: builtins.Metadata{
			Name:        "inoreader_mark_as_read",
			Category:    "inoreader",
			Tags:        []string{"inoreader", "rss", "articles", "state"},
			Description: "Mark articles as read in batches of 20",
			Version:     "1.0.0",
			Examples: []builtins.Example{
				{
					Name:        "Mark read",
					Description: "Mark listed articles as read",
					Code:        `MarkAsRead().Execute(ctx, MarkAsReadParams{ArticleIDs: []string{"id-1", "id-2"}})`,
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
			"Failed to mark articles as read": "Verify the ids are current and the account is writable",
		},
		IsDeterministic:  false,
		IsDestructive:    true,
		EstimatedLatency: "medium",
	})
}
