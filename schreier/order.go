package schreier

import (
	"math/big"
	"math/rand"
	"sort"

	"github.com/sifting/permcore/apperr"
	"github.com/sifting/permcore/permstore"
)

// Order returns |G| as the product of transversal sizes across all
// levels (orbit-stabiliser), caching the result until the next
// insertion invalidates it.
func (c *Chain) Order() *big.Int {
	if c.order != nil {
		return new(big.Int).Set(c.order)
	}
	total := big.NewInt(1)
	for _, lv := range c.levels {
		total.Mul(total, big.NewInt(int64(len(lv.transversal))))
	}
	c.order = total
	return new(big.Int).Set(total)
}

// RandomElement draws a uniformly random element of the group defined
// by the chain: it picks one representative u_i uniformly from each
// level's transversal and returns u_0·u_1·…·u_k, which is the sift
// factorisation of exactly one group element, so every element is
// equally likely. rng overrides c.Rand for this call; pass nil to use
// c.Rand. Deterministic for a fixed seed: at each level the orbit
// points are sorted so index selection is reproducible across runs.
func (c *Chain) RandomElement(rng *rand.Rand) (permstore.ID, error) {
	if rng == nil {
		rng = c.Rand
	}
	if rng == nil {
		return 0, apperr.Wrap("schreier", "RandomElement", apperr.ErrInvalidInput)
	}
	g := c.store.Identity()
	for _, lv := range c.levels {
		points := make([]int32, 0, len(lv.transversal))
		for p := range lv.transversal {
			points = append(points, p)
		}
		sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
		pick := points[rng.Intn(len(points))]
		u := lv.transversal[pick]
		g = c.store.Multiply(g, permstore.ID(u))
	}
	return g, nil
}
