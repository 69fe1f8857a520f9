package analysis

import (
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

// NormalClosure computes the smallest normal subgroup of G containing
// S: a BFS queue seeded with S's generators (sifted into a fresh
// chain), where popping an element conjugates it by every generator of
// G and inserts any conjugate not already covered by the chain.
func NormalClosure(store *permstore.Store, gGens, sGens *permset.Set) *schreier.Chain {
	k := schreier.Compute(store, permset.FromIDs(nil, true))

	var queue []int32
	for _, id := range sGens.IDs() {
		pid := permstore.ID(id)
		if !k.Contains(pid) {
			k.SiftAndInsert(pid)
			queue = append(queue, id)
		}
	}
	for head := 0; head < len(queue); head++ {
		n := permstore.ID(queue[head])
		for _, gi := range gGens.IDs() {
			conj := store.Conjugate(permstore.ID(gi), n)
			if !k.Contains(conj) {
				k.SiftAndInsert(conj)
				queue = append(queue, int32(conj))
			}
		}
	}
	return k
}

// CommutatorSubgroup returns [G,G]: the normal closure in G of the
// commutators [g_i,g_j] over ordered pairs of G's generators, identity
// commutators skipped.
func CommutatorSubgroup(store *permstore.Store, gGens *permset.Set) *schreier.Chain {
	ids := gGens.IDs()
	var raw []int32
	for i := range ids {
		for j := range ids {
			if i == j {
				continue
			}
			c := store.Commutator(permstore.ID(ids[i]), permstore.ID(ids[j]))
			if c != store.Identity() {
				raw = append(raw, int32(c))
			}
		}
	}
	return NormalClosure(store, gGens, permset.New(raw, false))
}

// MixedCommutator returns [A,B], the normal closure in G of the
// commutators [a,b] over cross-pairs of A's and B's generators.
func MixedCommutator(store *permstore.Store, gGens, aGens, bGens *permset.Set) *schreier.Chain {
	var raw []int32
	for _, ai := range aGens.IDs() {
		for _, bi := range bGens.IDs() {
			c := store.Commutator(permstore.ID(ai), permstore.ID(bi))
			if c != store.Identity() {
				raw = append(raw, int32(c))
			}
		}
	}
	return NormalClosure(store, gGens, permset.New(raw, false))
}
