// Package cell provides exactly-once initialization containers for shared
// runtime values.
//
// Ownership boundary:
// - lazy construction and publication of process-wide values
//
// - the at-most-one-successful-initialization guarantee under concurrent access
//
// Cells never reach outside the standard library and never log; callers that
// want instrumentation wrap their init functions (see internal/observability).
//
// Variants, from cheapest to most conservative:
// - Eager: constructed up front, reads are plain loads
//
// - Value: sync.Once backed, for initializers that cannot fail
//
// - Cell: double-checked with an atomic publish flag, failed init leaves the
// cell empty so a later call may retry
//
// - Locked: every access under the mutex, for rarely-read values
//
// - Unsync: single goroutine only, documented as unsafe for sharing
package cell
