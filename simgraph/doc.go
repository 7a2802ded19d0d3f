// Package simgraph defines the immutable vertex-and-edge-labeled graph
// consumed by the dual simulation matcher.
//
// A Graph is an aggregate of a dense vertex array (ids 0..Size()-1),
// one label per vertex, one child-adjacency set per vertex, and an
// optional label per edge. Query graphs and data graphs use the same
// type; their id spaces are unrelated.
//
// All caller-contract checks happen once, inside New: mismatched label
// and adjacency lengths, out-of-range vertex ids and empty edge labels
// all fail fast with a sentinel error before any matching work can
// start. After New returns, a Graph never changes, so any number of
// concurrent matches may read it without locks.
//
// Errors:
//
//	ErrSizeMismatch - label and adjacency arrays differ in length.
//	ErrVertexRange  - a vertex id falls outside [0, Size()).
//	ErrEmptyLabel   - an edge label is the empty string.
package simgraph
