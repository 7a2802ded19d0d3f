package dualsim

import "github.com/katalvlaran/simatch/simgraph"

// FeasibleMates builds the initial candidate array φ0 from label
// equality alone: φ0[u] holds every data vertex of g whose label equals
// query vertex u's.
//
// No structural check happens here — an entry may legitimately come out
// empty, which Refine turns into a no-match. The caller owns the
// returned array and every set in it.
// Returns ErrGraphNil if either graph is nil.
func FeasibleMates(q, g *simgraph.Graph) (CandidateArray, error) {
	if q == nil || g == nil {
		return nil, ErrGraphNil
	}

	phi := make(CandidateArray, q.Size())
	for u := 0; u < q.Size(); u++ {
		phi[u] = g.VerticesWithLabel(q.Label(u))
	}

	return phi, nil
}
