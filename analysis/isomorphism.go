package analysis

import (
	"github.com/sifting/permcore"
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

// IsIsomorphic gives a tri-state isomorphism verdict between the
// groups generated by aGens and bGens, using order, abelian-ness and
// derived-series order sequence as invariants. It never returns
// TriYes: matching invariants only fail to disprove isomorphism.
func IsIsomorphic(store *permstore.Store, aGens, bGens *permset.Set, cfg *Config) (permcore.Tristate, error) {
	cfg = resolve(cfg)

	a := schreier.Compute(store, aGens)
	b := schreier.Compute(store, bGens)
	if a.Order().Cmp(b.Order()) != 0 {
		return permcore.TriNo, nil
	}
	if aGens.IsAbelian(store) != bGens.IsAbelian(store) {
		return permcore.TriNo, nil
	}

	aDerived, err := DerivedSeries(store, aGens, cfg)
	if err != nil {
		return permcore.TriUnknown, err
	}
	bDerived, err := DerivedSeries(store, bGens, cfg)
	if err != nil {
		return permcore.TriUnknown, err
	}
	if len(aDerived) != len(bDerived) {
		return permcore.TriNo, nil
	}
	for i := range aDerived {
		if aDerived[i].Order().Cmp(bDerived[i].Order()) != 0 {
			return permcore.TriNo, nil
		}
	}
	return permcore.TriUnknown, nil
}
