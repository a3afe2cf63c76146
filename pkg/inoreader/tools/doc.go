// Package tools exposes the Inoreader API as built-in agent tools.
//
// Each tool opens a fresh authenticated gateway session for the duration of
// one call and renders plain text for the calling agent. Failures never
// propagate as errors; they come back as one-line prefixed messages so a
// tool-calling host always receives text.
//
// Importing this package registers all six tools with the shared builtin
// tool registry.
package tools
