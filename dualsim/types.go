// Package dualsim provides option and result types for the dual graph
// simulation matcher.
package dualsim

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simatch/setops"
)

// Sentinel errors for matcher invocation. All describe caller-contract
// violations; an unsatisfiable input is never an error (see MatchResult).
var (
	// ErrGraphNil is returned if either graph pointer is nil.
	ErrGraphNil = errors.New("dualsim: graph is nil")

	// ErrPhiLength is returned when a candidate array's length differs
	// from the query graph's vertex count.
	ErrPhiLength = errors.New("dualsim: candidate array length differs from query size")

	// ErrPhiEntryNil is returned when a candidate array entry is nil.
	ErrPhiEntryNil = errors.New("dualsim: candidate array entry is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dualsim: invalid option supplied")

	// ErrPassBudget is returned when WithMaxPasses exhausts before the
	// refinement reaches its fixpoint.
	ErrPassBudget = errors.New("dualsim: pass budget exhausted before fixpoint")
)

// CandidateArray maps each query vertex id (the index) to its current
// set of candidate data vertices.
type CandidateArray []*setops.VertexSet

// Clone returns a deep copy: a fresh array of fresh sets.
// Nil entries stay nil.
func (ca CandidateArray) Clone() CandidateArray {
	out := make(CandidateArray, len(ca))
	for u, set := range ca {
		if set != nil {
			out[u] = set.Clone()
		}
	}

	return out
}

// Equal reports whether both arrays hold identical sets entrywise.
func (ca CandidateArray) Equal(other CandidateArray) bool {
	if len(ca) != len(other) {
		return false
	}
	for u, set := range ca {
		if !set.Equal(other[u]) {
			return false
		}
	}

	return true
}

// MatchResult is the outcome of a match: either Matched with the final
// candidate array, or an explicit no-match.
//
// NoMatch carries a dedicated tag rather than an empty Phi, so an
// unsatisfiable query is never confused with a legitimately empty
// query graph (which matches with a zero-length Phi).
type MatchResult struct {
	// Matched is true when every query vertex retained at least one
	// candidate at the fixpoint.
	Matched bool

	// Phi holds the per-query-vertex candidate sets when Matched is
	// true, and is nil otherwise.
	Phi CandidateArray
}

// Option configures refinement via functional arguments.
// An invalid Option (e.g. a negative pass budget) is recorded
// internally and surfaced as ErrOptionViolation when the matcher runs.
type Option func(*Options)

// Options holds parameters and callbacks that customize refinement.
type Options struct {
	// SelfLoops switches the self-loop policy: when a query vertex u is
	// its own child, φ[u] is intersected with the new candidates
	// instead of replaced by them, preserving vertices already valid as
	// their own witnesses. Disabled by default.
	SelfLoops bool

	// MaxPasses, if > 0, bounds the number of outer refinement passes;
	// exhausting it yields ErrPassBudget. 0 disables the bound.
	// Refinement needs at most Σ|φ0[u]| changing passes, so any budget
	// of that size or larger can never trip on valid input.
	MaxPasses int

	// OnPass is called after every outer pass with the 1-based pass
	// number and whether the pass changed any candidate set. It also
	// fires for a pass cut short by a no-match.
	OnPass func(pass int, changed bool)

	// OnPrune is called when data vertex v is dropped from φ[u] for
	// lack of a structural witness among u's children.
	OnPrune func(u, v int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - self-loop policy disabled (plain replacement)
//   - no pass budget
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		SelfLoops: false,
		MaxPasses: 0,
		OnPass:    func(int, bool) {},
		OnPrune:   func(int, int) {},
		err:       nil,
	}
}

// WithSelfLoops enables the self-loop intersection policy.
func WithSelfLoops() Option {
	return func(o *Options) { o.SelfLoops = true }
}

// WithMaxPasses bounds the number of outer refinement passes.
//
//	n > 0:  allow at most n passes, then fail with ErrPassBudget
//	n == 0: explicit no bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxPasses cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxPasses = n
		}
	}
}

// WithOnPass registers a callback to run after every outer pass.
func WithOnPass(fn func(pass int, changed bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// WithOnPrune registers a callback to run on every candidate prune.
func WithOnPrune(fn func(u, v int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}
