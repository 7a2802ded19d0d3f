package setops

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
)

// VertexSet is a hash set of vertex ids.
//
// The zero value is not usable; construct sets with New or Clone.
// VertexSet is not safe for concurrent mutation, but any number of
// goroutines may read a set that no goroutine mutates.
type VertexSet struct {
	set *hashset.Set
}

// New returns a VertexSet containing the given vertex ids.
func New(vs ...int) *VertexSet {
	s := &VertexSet{set: hashset.New()}
	for _, v := range vs {
		s.set.Add(v)
	}

	return s
}

// Add inserts v into the set. Adding a present id is a no-op.
func (s *VertexSet) Add(v int) {
	s.set.Add(v)
}

// AddAll inserts every id of other into s. other is not modified.
func (s *VertexSet) AddAll(other *VertexSet) {
	s.set.Add(other.set.Values()...)
}

// Contains reports whether v is in the set.
func (s *VertexSet) Contains(v int) bool {
	return s.set.Contains(v)
}

// Len returns the number of ids in the set.
func (s *VertexSet) Len() int {
	return s.set.Size()
}

// Empty reports whether the set has no ids.
func (s *VertexSet) Empty() bool {
	return s.set.Empty()
}

// Clone returns an independent copy of s.
func (s *VertexSet) Clone() *VertexSet {
	c := &VertexSet{set: hashset.New()}
	c.set.Add(s.set.Values()...)

	return c
}

// Values returns the ids in ascending order.
// The returned slice is owned by the caller.
func (s *VertexSet) Values() []int {
	raw := s.set.Values()
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = v.(int)
	}
	sort.Ints(out)

	return out
}

// Equal reports whether s and other contain exactly the same ids.
func (s *VertexSet) Equal(other *VertexSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.set.Values() {
		if !other.set.Contains(v) {
			return false
		}
	}

	return true
}

// Subset reports whether every id of s is contained in other.
func (s *VertexSet) Subset(other *VertexSet) bool {
	if s.Len() > other.Len() {
		return false
	}
	for _, v := range s.set.Values() {
		if !other.set.Contains(v) {
			return false
		}
	}

	return true
}

// String renders the set as "{v1 v2 ...}" in ascending id order.
func (s *VertexSet) String() string {
	vals := s.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "{" + strings.Join(parts, " ") + "}"
}

// Intersect returns a new set holding exactly the ids present in both
// a and b. Neither operand is modified.
func Intersect(a, b *VertexSet) *VertexSet {
	return &VertexSet{set: a.set.Intersection(b.set)}
}

// Union returns a new set holding every id present in a or b.
// Neither operand is modified.
func Union(a, b *VertexSet) *VertexSet {
	return &VertexSet{set: a.set.Union(b.set)}
}
