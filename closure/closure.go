package closure

import (
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
)

// Close computes the group generated by gens: starting from
// gens ∪ gens⁻¹ ∪ {identity}, it repeatedly unions in G*gens until the
// set is stationary. The fixed point is closed under multiplication,
// contains the identity and every inverse, and is therefore a group;
// the returned Set is flagged accordingly.
func Close(store *permstore.Store, gens *permset.Set) *permset.Set {
	g := gens.Union(gens.Inverse(store)).Union(permset.Identity())
	for {
		next := g.Union(g.Product(store, gens))
		if next.Size() == g.Size() {
			break
		}
		g = next
	}
	g.MarkGroup()
	return g
}
