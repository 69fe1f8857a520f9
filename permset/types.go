package permset

import (
	"github.com/sifting/permcore/intset"
	"github.com/sifting/permcore/permstore"
)

// Set is a sorted, duplicate-free sequence of permstore.ID values, with
// an isGroup flag recording whether the set is known to be a group.
type Set struct {
	ids     []int32
	isGroup bool
}

// New builds a Set from ids. Unless certified, the input is sorted and
// deduplicated (which mutates the backing array the caller passed in,
// per intset.SortUnique's contract).
func New(ids []int32, certified bool) *Set {
	if !certified {
		ids = intset.SortUnique(ids)
	}
	return &Set{ids: ids}
}

// FromIDs is a convenience wrapper for []permstore.ID input.
func FromIDs(ids []permstore.ID, certified bool) *Set {
	raw := make([]int32, len(ids))
	for i, id := range ids {
		raw[i] = int32(id)
	}
	return New(raw, certified)
}

// Identity returns the singleton set containing only the identity,
// flagged as a group.
func Identity() *Set {
	return &Set{ids: []int32{0}, isGroup: true}
}

// Size returns the number of elements in the set.
func (s *Set) Size() int { return len(s.ids) }

// At returns the i-th element in ascending ID order.
func (s *Set) At(i int) permstore.ID { return permstore.ID(s.ids[i]) }

// IDs returns the ascending unique backing sequence. Callers must not
// mutate the returned slice.
func (s *Set) IDs() []int32 { return s.ids }

// IsGroup reports whether the set has been verified to be a group.
func (s *Set) IsGroup() bool { return s.isGroup }

// MarkGroup flags s as a verified group. Callers use this only after
// independently establishing closure (e.g. closure.Close, or a chain's
// order matching s.Size()); it performs no verification itself.
func (s *Set) MarkGroup() { s.isGroup = true }

// Contains reports whether id is a member of the set.
func (s *Set) Contains(id permstore.ID) bool {
	return intset.Contains(s.ids, int32(id))
}

// Equals reports whether s and o contain exactly the same elements.
func (s *Set) Equals(o *Set) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != o.ids[i] {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every element of s is also in o.
func (s *Set) IsSubsetOf(o *Set) bool {
	return len(intset.Difference(s.ids, o.ids)) == 0
}

// IsSupersetOf reports whether every element of o is also in s.
func (s *Set) IsSupersetOf(o *Set) bool {
	return o.IsSubsetOf(s)
}
