package permset

import (
	"github.com/sifting/permcore/apperr"
	"github.com/sifting/permcore/intset"
	"github.com/sifting/permcore/permstore"
)

// Product returns {a*b | a in s, b in o}, sorted and deduplicated. The
// result is not verified to be a group; isGroup is always false.
// The smaller operand drives the outer loop to favor cache locality on
// the larger one.
func (s *Set) Product(store *permstore.Store, o *Set) *Set {
	outer, inner, swapped := s, o, false
	if len(outer.ids) > len(inner.ids) {
		outer, inner, swapped = inner, outer, true
	}
	raw := make([]int32, 0, len(outer.ids)*len(inner.ids))
	for _, x := range outer.ids {
		for _, y := range inner.ids {
			a, b := x, y
			if swapped {
				a, b = y, x
			}
			raw = append(raw, int32(store.Multiply(permstore.ID(a), permstore.ID(b))))
		}
	}
	return New(raw, false)
}

// Inverse returns the elementwise-inverted set. If s is a group, the
// result is set-equal to s and the isGroup flag is preserved.
func (s *Set) Inverse(store *permstore.Store) *Set {
	raw := make([]int32, len(s.ids))
	for i, a := range s.ids {
		raw[i] = int32(store.Inverse(permstore.ID(a)))
	}
	return &Set{ids: intset.SortUnique(raw), isGroup: s.isGroup}
}

// Union returns s ∪ o. isGroup is always false: a union of two groups
// need not itself be closed under multiplication.
func (s *Set) Union(o *Set) *Set {
	return &Set{ids: intset.Union(s.ids, o.ids), isGroup: false}
}

// Intersect returns s ∩ o. If both operands are groups, the
// intersection is again a group and isGroup is set true; any other
// combination conservatively clears it.
func (s *Set) Intersect(o *Set) *Set {
	return &Set{ids: intset.Intersect(s.ids, o.ids), isGroup: s.isGroup && o.isGroup}
}

// Difference returns s \ o. isGroup is always false.
func (s *Set) Difference(o *Set) *Set {
	return &Set{ids: intset.Difference(s.ids, o.ids), isGroup: false}
}

// IsAbelian reports whether every pair of elements in s commutes.
// Complexity: O(size^2 * degree).
func (s *Set) IsAbelian(store *permstore.Store) bool {
	for i := 0; i < len(s.ids); i++ {
		a := permstore.ID(s.ids[i])
		for j := i + 1; j < len(s.ids); j++ {
			b := permstore.ID(s.ids[j])
			if store.Multiply(a, b) != store.Multiply(b, a) {
				return false
			}
		}
	}
	return true
}

// Orbit returns the ascending unique orbit of point under the action of
// every element in s, found by a BFS-style closure over direct images
// (the set itself need not be a group; the orbit of a generating set
// coincides with the orbit of the group it generates).
func (s *Set) Orbit(store *permstore.Store, point int32) ([]int32, error) {
	if point < 0 || point >= store.Degree() {
		return nil, apperr.Wrap("permset", "orbit point out of range", apperr.ErrOutOfBounds)
	}
	seen := map[int32]bool{point: true}
	queue := []int32{point}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, a := range s.ids {
			img := store.Get(permstore.ID(a))
			q := img[p]
			if !seen[q] {
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}
	out := make([]int32, len(queue))
	copy(out, queue)
	return intset.SortUnique(out), nil
}

// RightCosetDecomposition partitions s (assumed to be the group G) into
// right cosets of h: walking G in ascending ID order, the first
// unvisited g opens a new coset H*g; every member of that coset is
// marked visited before continuing. Cosets are returned in encounter
// order.
func (s *Set) RightCosetDecomposition(store *permstore.Store, h *Set) []*Set {
	visited := make(map[int32]bool, len(s.ids))
	var cosets []*Set
	for _, g := range s.ids {
		if visited[g] {
			continue
		}
		coset := h.Product(store, &Set{ids: []int32{g}})
		for _, m := range coset.ids {
			visited[m] = true
		}
		cosets = append(cosets, coset)
	}
	return cosets
}
