// ABOUTME: Example demonstrating the Inoreader tools as standalone executions
// ABOUTME: Prints the tool catalog and runs live calls when credentials are set

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lexlapax/go-llms/pkg/agent/builtins/tools"
	agentDomain "github.com/lexlapax/go-llms/pkg/agent/domain"

	_ "github.com/Jelloeater/Inoreader-MCP/pkg/inoreader/tools"
)

// noopEventEmitter discards tool events; the demo has no event sink.
type noopEventEmitter struct{}

func (noopEventEmitter) Emit(eventType agentDomain.EventType, data interface{}) {}
func (noopEventEmitter) EmitProgress(current, total int, message string)        {}
func (noopEventEmitter) EmitMessage(message string)                             {}
func (noopEventEmitter) EmitError(err error)                                    {}
func (noopEventEmitter) EmitCustom(eventName string, data interface{})          {}

// createToolContext creates a minimal ToolContext for standalone tool
// execution. An empty State satisfies StateReader directly.
func createToolContext(ctx context.Context) *agentDomain.ToolContext {
	return &agentDomain.ToolContext{
		Context:   ctx,
		State:     agentDomain.NewState(),
		RunID:     "standalone-execution",
		StartTime: time.Now(),
		Events:    noopEventEmitter{},
		Agent: agentDomain.AgentInfo{
			ID:          "standalone",
			Name:        "standalone-tool-executor",
			Description: "Minimal agent for standalone tool execution",
			Type:        agentDomain.AgentTypeLLM,
			Metadata:    make(map[string]interface{}),
		},
	}
}

func main() {
	ctx := context.Background()
	toolCtx := createToolContext(ctx)

	fmt.Println("=== Available Inoreader Tools ===")
	fmt.Println()
	inoreaderTools := tools.Tools.ListByCategory("inoreader")
	fmt.Printf("Total inoreader tools: %d\n", len(inoreaderTools))
	for _, entry := range inoreaderTools {
		fmt.Printf("• %s: %s\n", entry.Metadata.Name, entry.Metadata.Description)
		fmt.Printf("  Version: %s\n", entry.Metadata.Version)
		fmt.Printf("  Tags: %v\n", entry.Metadata.Tags)
		fmt.Println()
	}

	fmt.Println("=== MCP Definitions ===")
	for _, entry := range inoreaderTools {
		tool := tools.MustGetTool(entry.Metadata.Name)
		def := tool.ToMCPDefinition()
		encoded, err := json.MarshalIndent(def, "  ", "  ")
		if err != nil {
			log.Printf("Warning: failed to encode %s: %v", entry.Metadata.Name, err)
			continue
		}
		fmt.Printf("  %s\n", encoded)
	}
	fmt.Println()

	if os.Getenv("INOREADER_APP_ID") == "" {
		fmt.Println("=== Live Examples Skipped (no credentials) ===")
		fmt.Println("Set INOREADER_APP_ID, INOREADER_APP_KEY, INOREADER_USERNAME and")
		fmt.Println("INOREADER_PASSWORD to run the tools against a real account.")
		return
	}

	listFeeds := tools.MustGetTool("inoreader_list_feeds")
	listArticles := tools.MustGetTool("inoreader_list_articles")
	getStats := tools.MustGetTool("inoreader_get_stats")

	// Example 1: list all subscriptions
	fmt.Println("=== Example 1: List Feeds ===")
	result, err := listFeeds.Execute(toolCtx, map[string]interface{}{})
	if err != nil {
		log.Printf("Warning: list feeds failed: %v", err)
	} else {
		fmt.Println(result)
	}
	fmt.Println()

	// Example 2: recent unread articles, default filters
	fmt.Println("=== Example 2: Recent Unread Articles ===")
	result, err = listArticles.Execute(toolCtx, map[string]interface{}{
		"limit": 5,
	})
	if err != nil {
		log.Printf("Warning: list articles failed: %v", err)
	} else {
		fmt.Println(result)
	}
	fmt.Println()

	// Example 3: unread statistics
	fmt.Println("=== Example 3: Unread Statistics ===")
	result, err = getStats.Execute(toolCtx, map[string]interface{}{})
	if err != nil {
		log.Printf("Warning: get stats failed: %v", err)
	} else {
		fmt.Println(result)
	}
}
