package analysis

import (
	"math/big"

	"github.com/sifting/permcore/apperr"
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

// QuotientMap is the result of Quotient: an injection from coset index
// to a chosen representative in G's store (Reps[0] is always the
// identity), together with the permutation group those cosets carry
// under right multiplication by G's generators, realized in its own
// store over the coset-index domain.
type QuotientMap struct {
	Reps  []permstore.ID
	Store *permstore.Store
	Chain *schreier.Chain
}

// Quotient computes G/N. It fails with apperr.ErrNotDivisor if |N|
// does not divide |G|, and with apperr.ErrOverflow if the resulting
// index [G:N] exceeds cfg.QuotientIndexBound. Cosets are enumerated by
// a BFS that multiplies known representatives by G's generators and
// tests membership of the candidate*rep^-1 residue in N.
func Quotient(store *permstore.Store, gGens *permset.Set, g, n *schreier.Chain, cfg *Config) (*QuotientMap, error) {
	cfg = resolve(cfg)

	gOrder, nOrder := g.Order(), n.Order()
	if nOrder.Sign() == 0 {
		return nil, apperr.Wrap("analysis", "quotient", apperr.ErrNotDivisor)
	}
	rem := new(big.Int).Mod(gOrder, nOrder)
	if rem.Sign() != 0 {
		return nil, apperr.Wrap("analysis", "|N| does not divide |G|", apperr.ErrNotDivisor)
	}
	index := new(big.Int).Div(gOrder, nOrder)
	if index.Cmp(big.NewInt(int64(cfg.QuotientIndexBound))) > 0 {
		return nil, apperr.Wrap("analysis", "quotient index exceeds QuotientIndexBound", apperr.ErrOverflow)
	}

	reps := []permstore.ID{store.Identity()}
	queue := []int{0}
	for head := 0; head < len(queue); head++ {
		rep := reps[queue[head]]
		for _, gi := range gGens.IDs() {
			cand := store.Multiply(permstore.ID(gi), rep)
			if cosetIndexOf(store, n, reps, cand) >= 0 {
				continue
			}
			reps = append(reps, cand)
			queue = append(queue, len(reps)-1)
			if int64(len(reps)) > index.Int64() {
				return nil, apperr.Wrap("analysis", "coset enumeration exceeded computed index", apperr.ErrOverflow)
			}
		}
	}

	qStore := permstore.New(len(reps))
	qIDs := make([]int32, 0, gGens.Size())
	for _, gi := range gGens.IDs() {
		img := make([]int32, len(reps))
		for i, rep := range reps {
			cand := store.Multiply(permstore.ID(gi), rep)
			img[i] = int32(cosetIndexOf(store, n, reps, cand))
		}
		qIDs = append(qIDs, int32(qStore.Register(img)))
	}
	qGens := permset.New(qIDs, false)
	qChain := schreier.Compute(qStore, qGens)

	return &QuotientMap{Reps: reps, Store: qStore, Chain: qChain}, nil
}

// cosetIndexOf returns the index j such that cand*reps[j]^-1 in N, or
// -1 if no representative covers cand yet.
func cosetIndexOf(store *permstore.Store, n *schreier.Chain, reps []permstore.ID, cand permstore.ID) int {
	for j, r := range reps {
		diff := store.Multiply(cand, store.Inverse(r))
		if n.Contains(diff) {
			return j
		}
	}
	return -1
}
