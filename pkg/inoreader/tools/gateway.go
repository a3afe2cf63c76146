// ABOUTME: Gateway seam between the tool façade and the Inoreader client
// ABOUTME: Holds lazy process-wide configuration and the session factory

package tools

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Jelloeater/Inoreader-MCP/pkg/inoreader"
)

// Gateway is the slice of the Inoreader client the tools consume. Tests
// substitute a fake through the openGateway factory.
type Gateway interface {
	SubscriptionList(ctx context.Context) ([]inoreader.Subscription, error)
	StreamContents(ctx context.Context, opts inoreader.StreamOptions) ([]inoreader.Item, error)
	StreamItemContents(ctx context.Context, ids []string) ([]inoreader.Item, error)
	MarkAsRead(ctx context.Context, ids []string) (bool, error)
	Search(ctx context.Context, query string, count int, newerThan int64) ([]inoreader.Item, error)
	UnreadCounts(ctx context.Context) ([]inoreader.UnreadCount, error)
	Close()
}

var (
	cfg     inoreader.Config
	cfgErr  error
	cfgOnce sync.Once
)

// loadConfig reads the process configuration exactly once. Missing
// credentials surface on the first tool call of the process.
func loadConfig() (inoreader.Config, error) {
	cfgOnce.Do(func() {
		cfg, cfgErr = inoreader.LoadConfig()
	})
	return cfg, cfgErr
}

// openGateway opens a fresh authenticated session. Every tool call gets its
// own session; none is reused across calls.
var openGateway = func(ctx context.Context) (Gateway, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return inoreader.Connect(ctx, c, slog.Default())
}

// daysToTimestamp converts a trailing day window into a Unix timestamp
// floor (now minus days).
func daysToTimestamp(days int) int64 {
	return time.Now().Add(-time.Duration(days) * 24 * time.Hour).Unix()
}
