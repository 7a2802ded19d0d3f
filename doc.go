// Package simatch is an in-memory pattern-matching toolkit for vertex-
// and edge-labeled graphs, built around dual graph simulation.
//
// 🚀 What is simatch?
//
//	A small, focused library that answers one question fast: which data
//	vertices can play the role of each query vertex?
//		• simgraph/ — immutable labeled graphs with dense integer ids,
//		  child-adjacency sets, optional edge labels and a label index
//		• setops/   — non-destructive hash-set algebra over vertex ids
//		• dualsim/  — the dual simulation matcher: feasible mates,
//		  fixpoint refinement, tagged match/no-match results
//
// ✨ Why choose simatch?
//
//   - Deterministic – identical inputs and options always produce the
//     identical mapping, across runs and machines
//   - Rock-solid contracts – caller errors fail fast at construction,
//     no-match is a value, never a panic or an overloaded empty array
//   - Pure Go compute – no I/O, no goroutines, no hidden state; run as
//     many matches concurrently as you like against shared graphs
//   - Extensible – hook options (OnPass, OnPrune) expose the refinement
//     loop for instrumentation without touching the algorithm
//
// Quick ASCII example:
//
//	query:  u0 ──likes──▶ u1          data:  v3 ──likes──▶ v1
//
//	dual simulation maps u0 to every data vertex whose label matches and
//	whose children can, recursively, match u0's children.
//
// Dive into dualsim's package documentation for the algorithm and its
// termination argument, and into the example_test.go files for runnable
// walkthroughs.
//
//	go get github.com/katalvlaran/simatch
package simatch
