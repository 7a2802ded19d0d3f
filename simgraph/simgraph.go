package simgraph

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/simatch/setops"
)

// edgeKey identifies a directed edge src→dst.
type edgeKey struct {
	src, dst int
}

// edgeLabel is a pending WithEdgeLabel request, validated in New.
type edgeLabel struct {
	src, dst int
	label    string
}

// Option configures a Graph under construction.
type Option func(*config)

// config collects option state ahead of validation.
type config struct {
	elabels []edgeLabel
}

// WithEdgeLabel attaches label to the edge src→dst.
//
// Both endpoints must be valid vertex ids and label must be non-empty;
// otherwise New fails with ErrVertexRange or ErrEmptyLabel. A label on
// a pair with no edge is accepted but inert: EdgeLabel reports absent
// there. Labeling the same edge twice keeps the last value.
func WithEdgeLabel(src, dst int, label string) Option {
	return func(c *config) {
		c.elabels = append(c.elabels, edgeLabel{src: src, dst: dst, label: label})
	}
}

// Graph is an immutable vertex-and-edge-labeled directed graph with
// dense int vertex ids.
//
// Graph performs no locking: it never changes after New, so concurrent
// readers need none.
type Graph struct {
	labels   []string
	children []*setops.VertexSet
	elabels  map[edgeKey]string
	byLabel  map[string]*setops.VertexSet
}

// New builds a Graph from one label per vertex and one child-id list
// per vertex, applying any number of Options.
//
// Vertex ids are the array positions: vertex v has label labels[v] and
// children children[v]. Duplicate child ids collapse into the child
// set. New validates the whole caller contract up front and returns
// ErrSizeMismatch, ErrVertexRange or ErrEmptyLabel (wrapped with
// position context) on the first violation.
func New(labels []string, children [][]int, opts ...Option) (*Graph, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(labels)
	if len(children) != n {
		return nil, errors.Wrapf(ErrSizeMismatch, "%d labels vs %d adjacency rows", n, len(children))
	}

	g := &Graph{
		labels:   make([]string, n),
		children: make([]*setops.VertexSet, n),
		elabels:  make(map[edgeKey]string, len(cfg.elabels)),
		byLabel:  make(map[string]*setops.VertexSet),
	}
	copy(g.labels, labels)

	// Adjacency sets, with range checks on every child id.
	for v, kids := range children {
		set := setops.New()
		for _, c := range kids {
			if c < 0 || c >= n {
				return nil, errors.Wrapf(ErrVertexRange, "child %d of vertex %d (size %d)", c, v, n)
			}
			set.Add(c)
		}
		g.children[v] = set
	}

	// Label index: label → set of vertices carrying it.
	for v, l := range g.labels {
		idx, ok := g.byLabel[l]
		if !ok {
			idx = setops.New()
			g.byLabel[l] = idx
		}
		idx.Add(v)
	}

	// Edge labels. A label keyed to a pair without an edge stays inert:
	// EdgeLabel filters through the adjacency on lookup.
	for _, el := range cfg.elabels {
		if el.src < 0 || el.src >= n || el.dst < 0 || el.dst >= n {
			return nil, errors.Wrapf(ErrVertexRange, "edge label on (%d,%d) (size %d)", el.src, el.dst, n)
		}
		if el.label == "" {
			return nil, errors.Wrapf(ErrEmptyLabel, "edge (%d,%d)", el.src, el.dst)
		}
		g.elabels[edgeKey{src: el.src, dst: el.dst}] = el.label
	}

	return g, nil
}

// Size returns the number of vertices.
func (g *Graph) Size() int {
	return len(g.labels)
}

// Label returns the label of vertex v.
// v must be in [0, Size()).
func (g *Graph) Label(v int) string {
	return g.labels[v]
}

// Children returns the child set of vertex v.
// v must be in [0, Size()). The returned set is shared graph state and
// must not be modified.
func (g *Graph) Children(v int) *setops.VertexSet {
	return g.children[v]
}

// HasEdge reports whether the edge src→dst exists.
// Out-of-range ids simply report false.
func (g *Graph) HasEdge(src, dst int) bool {
	if src < 0 || src >= len(g.children) {
		return false
	}

	return g.children[src].Contains(dst)
}

// EdgeLabel returns the label of edge src→dst and whether one is
// present. Unlabeled and non-existent edges both report false.
func (g *Graph) EdgeLabel(src, dst int) (string, bool) {
	if !g.HasEdge(src, dst) {
		return "", false
	}
	l, ok := g.elabels[edgeKey{src: src, dst: dst}]

	return l, ok
}

// VerticesWithLabel returns the set of vertices carrying label, served
// from the index built in New. The caller owns the returned set.
func (g *Graph) VerticesWithLabel(label string) *setops.VertexSet {
	if idx, ok := g.byLabel[label]; ok {
		return idx.Clone()
	}

	return setops.New()
}
