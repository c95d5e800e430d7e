// Package tools provides reusable runtime helpers shared by resource
// builders.
//
// Ownership boundary:
// - command execution helpers
//
// - host/runtime utility primitives
package tools
