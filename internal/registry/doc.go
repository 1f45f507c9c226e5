// Package registry maintains the durable, index-addressed sequence of
// board generations and exposes the three operations callers see:
// Create, Get, and Advance.
//
// Indices are dense, 0-based, assigned at append time, and never reused
// or reordered. Entries are appended once and afterwards only replaced in
// place by Advance. Lookups on indices that were never assigned fail with
// INDEX_NOT_FOUND and leave the registry untouched.
//
// The registry assumes the surrounding environment serializes operations
// (one operation per externally-ordered transaction); it implements no
// locking of its own. The backing container and the external clock are
// both injected, so the whole package is exercisable against an in-memory
// backend and a manual clock.
package registry
