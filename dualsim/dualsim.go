package dualsim

import (
	"fmt"

	"github.com/katalvlaran/simatch/setops"
	"github.com/katalvlaran/simatch/simgraph"
)

// refiner encapsulates one refinement run's state.
type refiner struct {
	q, g *simgraph.Graph
	opts Options
	phi  CandidateArray
}

// Match maps query graph q onto data graph g by dual simulation,
// applying any number of functional Options.
//
// It builds the feasible mates φ0 and refines them to the fixpoint.
// The result is either Matched with the final candidate array or an
// explicit no-match; errors are reserved for caller-contract
// violations (ErrGraphNil, ErrOptionViolation, ErrPassBudget).
func Match(q, g *simgraph.Graph, opts ...Option) (*MatchResult, error) {
	phi, err := FeasibleMates(q, g)
	if err != nil {
		return nil, err
	}

	return Refine(q, g, phi, opts...)
}

// Refine runs the simulation fixpoint on a caller-supplied candidate
// array, refining phi in place; on success the result's Phi aliases it.
//
// phi must hold one non-nil set per query vertex (ErrPhiLength,
// ErrPhiEntryNil otherwise); entries only ever shrink, so passing a
// superset of the true candidates is always safe.
func Refine(q, g *simgraph.Graph, phi CandidateArray, opts ...Option) (*MatchResult, error) {
	if q == nil || g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate the candidate array against the query
	if len(phi) != q.Size() {
		return nil, fmt.Errorf("%w: %d entries for %d query vertices", ErrPhiLength, len(phi), q.Size())
	}
	for u, set := range phi {
		if set == nil {
			return nil, fmt.Errorf("%w: entry %d", ErrPhiEntryNil, u)
		}
	}

	r := &refiner{q: q, g: g, opts: o, phi: phi}
	matched, err := r.run()
	if err != nil {
		return nil, err
	}
	if !matched {
		return &MatchResult{}, nil
	}

	return &MatchResult{Matched: true, Phi: phi}, nil
}

// run drives passes until a full pass changes nothing (fixpoint), a
// candidate set drains (no match), or the pass budget trips.
func (r *refiner) run() (bool, error) {
	// A query vertex with no feasible mates can never be matched; its
	// emptiness would go unnoticed below if no child relation touches it.
	for _, set := range r.phi {
		if set.Empty() {
			return false, nil
		}
	}

	for pass := 1; ; pass++ {
		if r.opts.MaxPasses > 0 && pass > r.opts.MaxPasses {
			return false, fmt.Errorf("%w: %d", ErrPassBudget, r.opts.MaxPasses)
		}

		changed, ok := r.pass()
		r.opts.OnPass(pass, changed)
		if !ok {
			return false, nil
		}
		if !changed {
			return true, nil
		}
	}
}

// pass sweeps every query child relation (u, u_c) once.
// Returns ok=false as soon as any candidate set drains.
func (r *refiner) pass() (changed, ok bool) {
	n := r.q.Size()
	for u := 0; u < n; u++ {
		for _, uc := range r.q.Children(u).Values() {
			ch, alive := r.refineEdge(u, uc)
			changed = changed || ch
			if !alive {
				return changed, false
			}
		}
	}

	return changed, true
}

// refineEdge enforces the child relation (u, u_c) on φ: every retained
// v ∈ φ[u] must have a surviving, edge-label-compatible child in
// φ[u_c], and φ[u_c] shrinks to the union of those children.
//
// Pruning rebuilds φ[u] into a fresh set and swaps it in after the
// candidate loop, rather than removing mid-iteration.
func (r *refiner) refineEdge(u, uc int) (changed, ok bool) {
	qlabel, qok := r.q.EdgeLabel(u, uc)

	retained := setops.New() // survivors of φ[u]
	next := setops.New()     // new candidates for φ[u_c]

	for _, v := range r.phi[u].Values() {
		// children of v that are still candidates for u_c
		local := setops.Intersect(r.g.Children(v), r.phi[uc])
		local = r.filterEdgeLabel(v, local, qlabel, qok)

		if local.Empty() {
			// v has no valid witness for this child relation
			r.opts.OnPrune(u, v)
			changed = true

			continue
		}
		retained.Add(v)
		next.AddAll(local)
	}

	r.phi[u] = retained
	if retained.Empty() || next.Empty() {
		return changed, false
	}
	if next.Len() < r.phi[uc].Len() {
		changed = true
	}
	if r.opts.SelfLoops && uc == u {
		r.phi[uc] = setops.Intersect(r.phi[uc], next)
	} else {
		r.phi[uc] = next
	}

	return changed, true
}

// filterEdgeLabel drops from local any v_c whose edge (v, v_c) carries
// a label different from the query edge's. Only an explicit, differing
// pair rejects; absence on either side passes through.
func (r *refiner) filterEdgeLabel(v int, local *setops.VertexSet, qlabel string, qok bool) *setops.VertexSet {
	if !qok {
		return local
	}

	filtered := setops.New()
	for _, vc := range local.Values() {
		if glabel, gok := r.g.EdgeLabel(v, vc); gok && glabel != qlabel {
			continue
		}
		filtered.Add(vc)
	}

	return filtered
}
