package analysis

import (
	"math/big"

	"github.com/sifting/permcore"
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

// simplicityRandomTrials bounds the number of random elements whose
// normal closure is probed once every generator has been checked and
// none produced a proper nontrivial closure. Not user-configurable:
// it is a heuristic constant, not a resource-exhaustion bound.
const simplicityRandomTrials = 8

// smallPrimeThresholdBits is the bit length beyond which primality is
// left unproven rather than tested; ProbablyPrime is exact well past
// this, but the spec's contract is "native range, or unproven".
const smallPrimeThresholdBits = 62

func isSmallPrime(n *big.Int) permcore.Tristate {
	if n.BitLen() > smallPrimeThresholdBits {
		return permcore.TriUnknown
	}
	if n.Cmp(big.NewInt(2)) < 0 {
		return permcore.TriNo
	}
	if n.ProbablyPrime(30) {
		return permcore.TriYes
	}
	return permcore.TriNo
}

// IsSimple gives a tri-state simplicity verdict for the group
// generated by gGens: TriNo for the trivial group, a non-prime-order
// abelian group, or a non-perfect group, or one whose generators (or a
// bounded number of random elements) produce a proper nontrivial
// normal closure; TriYes for a prime-order abelian group; TriUnknown
// when the order exceeds the primality threshold or no counterexample
// to simplicity was found within the search budget.
func IsSimple(store *permstore.Store, gGens *permset.Set, cfg *Config) (permcore.Tristate, error) {
	cfg = resolve(cfg)
	g := schreier.Compute(store, gGens)
	order := g.Order()

	if order.Cmp(one) == 0 {
		return permcore.TriNo, nil
	}

	if gGens.IsAbelian(store) {
		return isSmallPrime(order), nil
	}

	derived := CommutatorSubgroup(store, gGens)
	if derived.Order().Cmp(order) != 0 {
		return permcore.TriNo, nil
	}

	for _, gi := range gGens.IDs() {
		nc := NormalClosure(store, gGens, permset.FromIDs([]permstore.ID{permstore.ID(gi)}, true))
		if nc.Order().Cmp(one) != 0 && nc.Order().Cmp(order) != 0 {
			return permcore.TriNo, nil
		}
	}

	for i := 0; i < simplicityRandomTrials; i++ {
		elem, err := g.RandomElement(cfg.Rand)
		if err != nil {
			return permcore.TriUnknown, err
		}
		nc := NormalClosure(store, gGens, permset.FromIDs([]permstore.ID{elem}, true))
		if nc.Order().Cmp(one) != 0 && nc.Order().Cmp(order) != 0 {
			return permcore.TriNo, nil
		}
	}
	return permcore.TriUnknown, nil
}
