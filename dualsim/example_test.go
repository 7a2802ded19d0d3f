package dualsim_test

import (
	"fmt"

	"github.com/katalvlaran/simatch/dualsim"
	"github.com/katalvlaran/simatch/simgraph"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMatch
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A small social graph: five people/pages (labels "1" = person,
//	"2" = page) connected by likes/knows/foaf edges, queried for a
//	person who foaf-links a page, likes a person, and so on down a
//	chain of likes.
//
// Use case:
//
//	Role assignment — for every query role, list the concrete graph
//	vertices able to play it.
//
// Complexity: O(passes · Σ|phi[u]| · avg-degree), at most Σ|phi0[u]| changing passes.
func ExampleMatch() {
	data, err := simgraph.New(
		[]string{"2", "1", "2", "1", "1"},
		[][]int{{1, 2}, {2, 3}, {3}, {4}, {}},
		simgraph.WithEdgeLabel(0, 1, "likes"),
		simgraph.WithEdgeLabel(0, 2, "knows"),
		simgraph.WithEdgeLabel(1, 2, "foaf"),
		simgraph.WithEdgeLabel(1, 3, "likes"),
		simgraph.WithEdgeLabel(2, 3, "knows"),
		simgraph.WithEdgeLabel(3, 1, "likes"),
	)
	if err != nil {
		fmt.Println("data graph:", err)

		return
	}

	query, err := simgraph.New(
		[]string{"1", "2", "1", "1"},
		[][]int{{1, 2}, {2}, {3}, {}},
		simgraph.WithEdgeLabel(0, 1, "foaf"),
		simgraph.WithEdgeLabel(0, 2, "likes"),
		simgraph.WithEdgeLabel(1, 2, "knows"),
		simgraph.WithEdgeLabel(2, 3, "likes"),
	)
	if err != nil {
		fmt.Println("query graph:", err)

		return
	}

	res, err := dualsim.Match(query, data)
	if err != nil {
		fmt.Println("match:", err)

		return
	}
	if !res.Matched {
		fmt.Println("no match")

		return
	}
	for u, mates := range res.Phi {
		fmt.Printf("u_%d: %s\n", u, mates)
	}
	// Output:
	// u_0: {1}
	// u_1: {2}
	// u_2: {3}
	// u_3: {4}
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMatch_noMatch
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same query against a data graph whose only candidate edge
//	carries a conflicting label — structurally fine, semantically not.
//
// Use case:
//
//	Distinguishing "unsatisfiable" (a value) from caller errors.
func ExampleMatch_noMatch() {
	data, _ := simgraph.New(
		[]string{"a", "b"},
		[][]int{{1}, {}},
		simgraph.WithEdgeLabel(0, 1, "hates"),
	)
	query, _ := simgraph.New(
		[]string{"a", "b"},
		[][]int{{1}, {}},
		simgraph.WithEdgeLabel(0, 1, "likes"),
	)

	res, err := dualsim.Match(query, data)
	if err != nil {
		fmt.Println("match:", err)

		return
	}
	fmt.Println("matched:", res.Matched)
	// Output:
	// matched: false
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFeasibleMates
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Inspect the unrefined candidates — label equality only — before
//	structure prunes them.
func ExampleFeasibleMates() {
	data, _ := simgraph.New(
		[]string{"2", "1", "2", "1", "1"},
		[][]int{{1, 2}, {2, 3}, {3}, {4}, {}},
	)
	query, _ := simgraph.New(
		[]string{"1", "2", "1", "1"},
		[][]int{{1, 2}, {2}, {3}, {}},
	)

	phi0, err := dualsim.FeasibleMates(query, data)
	if err != nil {
		fmt.Println("feasible mates:", err)

		return
	}
	for u, mates := range phi0 {
		fmt.Printf("u_%d: %s\n", u, mates)
	}
	// Output:
	// u_0: {1 3 4}
	// u_1: {0 2}
	// u_2: {1 3 4}
	// u_3: {1 3 4}
}
