// ABOUTME: Wire types for raw Inoreader API payloads
// ABOUTME: Category accepts both the bare-string and {id,label} JSON forms

package inoreader

import "encoding/json"

// Subscription is a raw feed subscription as returned by subscription/list.
type Subscription struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	HTMLURL       string     `json:"htmlUrl"`
	Categories    []Category `json:"categories"`
	FirstItemMsec int64      `json:"firstitemmsec"`
}

// Item is a raw stream item as returned by the stream endpoints.
type Item struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Published  int64         `json:"published"`
	Author     string        `json:"author"`
	Origin     Origin        `json:"origin"`
	Categories []Category    `json:"categories"`
	Alternate  []Link        `json:"alternate"`
	Summary    *ContentBlock `json:"summary"`
	Content    *ContentBlock `json:"content"`
}

// Origin identifies the feed an item came from.
type Origin struct {
	Title    string `json:"title"`
	StreamID string `json:"streamId"`
}

// Link is an alternate link entry on an item.
type Link struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

// ContentBlock wraps an HTML content payload.
type ContentBlock struct {
	Content string `json:"content"`
}

// Category is a stream tag. The API serializes categories either as a bare
// string or as an {id,label} object; both forms decode into this type. For
// the string form the value doubles as both identifier and label.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// UnmarshalJSON decodes either category representation.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.ID = s
		c.Label = s
		return nil
	}

	var obj struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.ID = obj.ID
	c.Label = obj.Label
	return nil
}

// UnreadCount is one entry of the unread-count endpoint.
type UnreadCount struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// StreamOptions control a StreamContents call.
type StreamOptions struct {
	// StreamID selects the stream to read. Empty means the user's combined
	// reading list.
	StreamID string

	// Count is the requested number of items. It is clamped to the
	// configured MaxArticles.
	Count int

	// ExcludeRead drops items already carrying the read state tag.
	ExcludeRead bool

	// NewerThan, when non-zero, restricts results to items published after
	// the given Unix timestamp. The upstream parameter is named "ot" even
	// though it acts as a newer-than floor.
	NewerThan int64
}
