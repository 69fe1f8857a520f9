package analysis

import (
	"math/big"

	"github.com/sifting/permcore/apperr"
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

// targetPPower returns the largest power of p dividing order: |G|_p.
func targetPPower(order *big.Int, p int64) *big.Int {
	pBig := big.NewInt(p)
	result := big.NewInt(1)
	rem := new(big.Int).Set(order)
	mod := new(big.Int)
	for mod.Mod(rem, pBig).Sign() == 0 {
		result.Mul(result, pBig)
		rem.Div(rem, pBig)
	}
	return result
}

// isPowerOf reports whether n is 1 or a power of p.
func isPowerOf(n *big.Int, p int64) bool {
	pBig := big.NewInt(p)
	rem := new(big.Int).Set(n)
	mod := new(big.Int)
	for rem.Cmp(one) > 0 {
		if mod.Mod(rem, pBig).Sign() != 0 {
			return false
		}
		rem.Div(rem, pBig)
	}
	return true
}

// power computes id^k by repeated squaring.
func power(store *permstore.Store, id permstore.ID, k int64) permstore.ID {
	result := store.Identity()
	base := id
	for k > 0 {
		if k&1 == 1 {
			result = store.Multiply(result, base)
		}
		base = store.Multiply(base, base)
		k >>= 1
	}
	return result
}

// pPart returns the p-part of id: id raised to |id|/|id|_p, an element
// whose order is the largest power of p dividing id's order.
func pPart(store *permstore.Store, id permstore.ID, p int64) permstore.ID {
	ord := store.Order(id)
	ppow := int64(1)
	rem := ord
	for rem%p == 0 {
		ppow *= p
		rem /= p
	}
	return power(store, id, ord/ppow)
}

// SylowSubgroup builds a Sylow p-subgroup of G by random greedy
// extension: repeatedly sample a random element of G, take its p-part,
// and accept it if extending the accumulator stays a p-group. Restarts
// on stagnation; fails with apperr.ErrOverflow if
// cfg.SylowRestartBudget restarts are exhausted without reaching the
// target order |G|_p.
func SylowSubgroup(store *permstore.Store, g *schreier.Chain, p int64, cfg *Config) (*schreier.Chain, error) {
	cfg = resolve(cfg)
	target := targetPPower(g.Order(), p)
	if target.Cmp(one) == 0 {
		return schreier.Compute(store, permset.FromIDs(nil, true)), nil
	}

	for restart := 0; restart < cfg.SylowRestartBudget; restart++ {
		acc := schreier.Compute(store, permset.FromIDs(nil, true))
		for trial := 0; trial < cfg.SylowTrialBudget; trial++ {
			elem, err := g.RandomElement(cfg.Rand)
			if err != nil {
				return nil, err
			}
			h := pPart(store, elem, p)
			if h == store.Identity() || acc.Contains(h) {
				continue
			}
			candGens := append(append([]int32{}, acc.AllStrongGenerators()...), int32(h))
			candidate := schreier.Compute(store, permset.New(candGens, false))
			if !isPowerOf(candidate.Order(), p) {
				continue
			}
			if candidate.Order().Cmp(acc.Order()) > 0 {
				acc = candidate
				if acc.Order().Cmp(target) == 0 {
					return acc, nil
				}
			}
		}
	}
	return nil, apperr.Wrap("analysis", "sylow search exhausted restart budget", apperr.ErrOverflow)
}
