// Package dualsim matches a vertex-and-edge-labeled query graph
// against a data graph by dual graph simulation.
//
// 🚀 What is dual simulation?
//
//	A pattern-matching relaxation of subgraph isomorphism: instead of a
//	one-to-one embedding, it computes a multi-valued mapping φ from each
//	query vertex u to the set of data vertices that can play u's role.
//	A data vertex v qualifies when it carries u's label and, for every
//	child u_c of u, some child v_c of v qualifies for u_c — with edge
//	labels agreeing whenever both sides carry one.  Typical uses:
//	  • Entity / role matching in social and knowledge graphs
//	  • Candidate pruning ahead of exact subgraph search
//	  • Reachability-aware motif screening
//
// ✨ Key features:
//   - feasible-mate initialization by label equality (FeasibleMates)
//   - monotone fixpoint refinement with early no-match short-circuit
//   - edge-label-aware pruning: only an explicit, differing label pair
//     rejects; absence on either side never does
//   - tagged MatchResult — no-match is a value, never an error
//   - hooks (OnPass, OnPrune) and an optional pass budget
//
// ⚙️ Usage:
//
//	q, _ := simgraph.New(qLabels, qChildren, simgraph.WithEdgeLabel(0, 1, "likes"))
//	g, _ := simgraph.New(gLabels, gChildren)
//
//	res, err := dualsim.Match(q, g)
//	if err != nil {
//	  // caller-contract violation (nil graph, bad option)
//	}
//	if !res.Matched {
//	  // no data vertex assignment satisfies the query
//	}
//	for u, mates := range res.Phi {
//	  fmt.Println(u, mates)
//	}
//
// Termination: every candidate set only ever shrinks, so Σ|φ[u]| is a
// non-negative integer that strictly decreases on every changing pass;
// refinement reaches its fixpoint in at most Σ|φ0[u]| changing passes.
//
// Performance: each pass costs O(Σ_{(u,u_c)∈Q} Σ_{v∈φ[u]} |children(v)|)
// expected time with hash-set intersections; memory is O(Σ|φ[u]|).
//
// The algorithm follows Ma et al.'s dual simulation as formulated by
// Saltz/Miller for vertex- and edge-labeled graphs.
package dualsim
