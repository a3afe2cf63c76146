// ABOUTME: Tagged response union returned by the raw Request call
// ABOUTME: JSON bodies stay as bytes for typed decoding, everything else is text

package inoreader

import (
	"encoding/json"
	"strings"
)

// Response is the result of a successful (HTTP 200) API call. The upstream
// API answers with JSON when asked for it and with plain text otherwise, so
// callers must branch on IsJSON rather than assume a shape.
type Response struct {
	statusCode int
	body       []byte
	isJSON     bool
}

// StatusCode returns the HTTP status of the response.
func (r *Response) StatusCode() int { return r.statusCode }

// IsJSON reports whether the response carried a JSON content type.
func (r *Response) IsJSON() bool { return r.isJSON }

// Text returns the raw response body as a string.
func (r *Response) Text() string { return string(r.body) }

// Decode unmarshals a JSON response body into v. Calling Decode on a
// non-JSON response is a caller bug and decodes the raw text, which fails.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.body, v)
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
