// Package setops provides the set algebra used by the dual simulation
// refiner: hash sets of vertex ids with non-destructive intersection
// and union.
//
// VertexSet wraps gods' hashset, so membership, Intersect and Union run
// in expected O(1)/O(min(|A|,|B|)) time; Values always returns ids in
// ascending order, which keeps every iteration over a set — and hence
// every refinement run — deterministic.
//
// Intersect and Union never mutate their operands; the refiner relies
// on that to keep candidate sets shrinking monotonically.
package setops
