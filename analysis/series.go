package analysis

import (
	"math/big"

	"github.com/sifting/permcore/apperr"
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

var one = big.NewInt(1)

// DerivedSeries computes G^(0)=G, G^(n+1)=[G^(n),G^(n)], stopping when
// the order reaches 1 (solvable) or stabilises (perfect residue).
// Returns apperr.ErrOverflow if cfg.DerivedSeriesDepth terms are
// computed without reaching either stopping condition.
func DerivedSeries(store *permstore.Store, gGens *permset.Set, cfg *Config) ([]*schreier.Chain, error) {
	cfg = resolve(cfg)
	series := []*schreier.Chain{schreier.Compute(store, gGens)}
	curGens := gGens
	for i := 0; i < cfg.DerivedSeriesDepth; i++ {
		next := CommutatorSubgroup(store, curGens)
		series = append(series, next)
		if next.Order().Cmp(one) == 0 || next.Order().Cmp(series[len(series)-2].Order()) == 0 {
			return series, nil
		}
		curGens = permset.New(next.AllStrongGenerators(), true)
	}
	return series, apperr.Wrap("analysis", "derived series exceeded DerivedSeriesDepth", apperr.ErrOverflow)
}

// IsSolvable reports whether G's derived series reaches the trivial
// group within the configured depth bound.
func IsSolvable(store *permstore.Store, gGens *permset.Set, cfg *Config) (bool, error) {
	series, err := DerivedSeries(store, gGens, cfg)
	if err != nil {
		return false, err
	}
	return series[len(series)-1].Order().Cmp(one) == 0, nil
}

// LowerCentralSeries computes G_0=G, G_{n+1}=[G_n,G], stopping when the
// order reaches 1 (nilpotent) or stabilises. A term whose order equals
// the previous term's is not appended, so no term is repeated. Returns
// apperr.ErrOverflow if cfg.LowerCentralDepth terms are computed
// without stabilising.
func LowerCentralSeries(store *permstore.Store, gGens *permset.Set, cfg *Config) ([]*schreier.Chain, error) {
	cfg = resolve(cfg)
	series := []*schreier.Chain{schreier.Compute(store, gGens)}
	curGens := gGens
	for i := 0; i < cfg.LowerCentralDepth; i++ {
		next := MixedCommutator(store, gGens, curGens, gGens)
		if next.Order().Cmp(series[len(series)-1].Order()) == 0 {
			return series, nil
		}
		series = append(series, next)
		if next.Order().Cmp(one) == 0 {
			return series, nil
		}
		curGens = permset.New(next.AllStrongGenerators(), true)
	}
	return series, apperr.Wrap("analysis", "lower-central series exceeded LowerCentralDepth", apperr.ErrOverflow)
}

// IsNilpotent reports whether G's lower-central series reaches the
// trivial group. Nilpotent groups are always solvable; this evaluates
// both series rather than assuming the implication.
func IsNilpotent(store *permstore.Store, gGens *permset.Set, cfg *Config) (bool, error) {
	series, err := LowerCentralSeries(store, gGens, cfg)
	if err != nil {
		return false, err
	}
	if series[len(series)-1].Order().Cmp(one) != 0 {
		return false, nil
	}
	return IsSolvable(store, gGens, cfg)
}
