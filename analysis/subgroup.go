package analysis

import (
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

// IsSubgroup reports whether every generator of h sifts to identity in
// g's chain, i.e. H <= G.
func IsSubgroup(g *schreier.Chain, h *permset.Set) bool {
	for _, id := range h.IDs() {
		if !g.Contains(permstore.ID(id)) {
			return false
		}
	}
	return true
}

// IsNormal reports whether N is a normal subgroup of G: for every
// generator of G and every generator of N, the conjugate lies in N.
// Returns false on the first counterexample found.
func IsNormal(store *permstore.Store, gGens *permset.Set, n *schreier.Chain, nGens *permset.Set) bool {
	for _, gi := range gGens.IDs() {
		g := permstore.ID(gi)
		for _, ni := range nGens.IDs() {
			conj := store.Conjugate(g, permstore.ID(ni))
			if !n.Contains(conj) {
				return false
			}
		}
	}
	return true
}
