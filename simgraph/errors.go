package simgraph

import "errors"

// Sentinel errors for graph construction. All are returned by New,
// wrapped with positional context; test with errors.Is.
var (
	// ErrSizeMismatch indicates len(labels) != len(children).
	ErrSizeMismatch = errors.New("simgraph: label and adjacency arrays differ in length")

	// ErrVertexRange indicates a vertex id outside [0, Size()).
	ErrVertexRange = errors.New("simgraph: vertex id out of range")

	// ErrEmptyLabel indicates an empty edge label string.
	ErrEmptyLabel = errors.New("simgraph: edge label is empty")
)
