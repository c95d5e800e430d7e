// Package celld owns the resource daemon runtime.
//
// Ownership boundary:
// - admin HTTP surface over the resource registry
//
// - service lifecycle from config load to signal shutdown
//
// Resource construction policy lives in internal/resources; celld only
// forces and reports it.
package celld
