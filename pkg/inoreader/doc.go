// Package inoreader provides an authenticated client for the Inoreader
// reader API along with pure helpers that normalize raw API payloads into
// flat records and render them as display-ready text.
//
// The client owns one authenticated session per instance. Authentication
// happens once in Connect; later calls reuse the session token until the
// client is closed. The only state shared between clients is a small
// TTL-bounded cache of the subscription list.
package inoreader
