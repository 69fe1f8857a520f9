package schreier

import (
	"math/big"
	"math/rand"
	"sort"

	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
)

// level holds one layer of the stabiliser chain: the base point β_i,
// the strong generators S_i (IDs fixing β_0..β_{i-1}), and the
// transversal T_i mapping each point in the orbit of β_i under ⟨S_i⟩
// to a representative that carries β_i to that point.
type level struct {
	point       int32
	strongGens  []int32
	transversal map[int32]int32
}

// Chain is the stabiliser-chain state described in doc.go.
type Chain struct {
	store  *permstore.Store
	levels []*level
	order  *big.Int

	// Rand backs RandomElement; callers wanting reproducible sampling
	// set it explicitly. Compute seeds it deterministically.
	Rand *rand.Rand
}

// Compute builds a chain by inserting every generator in gens, in
// ascending ID order.
func Compute(store *permstore.Store, gens *permset.Set) *Chain {
	c := &Chain{store: store, Rand: rand.New(rand.NewSource(1))}
	for _, id := range gens.IDs() {
		c.SiftAndInsert(permstore.ID(id))
	}
	return c
}

// Base returns the ordered base points chosen so far.
func (c *Chain) Base() []int32 {
	out := make([]int32, len(c.levels))
	for i, lv := range c.levels {
		out[i] = lv.point
	}
	return out
}

// StrongGenerators returns a copy of S_level's ID list.
func (c *Chain) StrongGenerators(level int) []int32 {
	if level < 0 || level >= len(c.levels) {
		return nil
	}
	out := make([]int32, len(c.levels[level].strongGens))
	copy(out, c.levels[level].strongGens)
	return out
}

// Transversal returns a copy of T_level: point -> representative ID.
func (c *Chain) Transversal(level int) map[int32]int32 {
	if level < 0 || level >= len(c.levels) {
		return nil
	}
	out := make(map[int32]int32, len(c.levels[level].transversal))
	for k, v := range c.levels[level].transversal {
		out[k] = v
	}
	return out
}

// AllStrongGenerators returns the union of every level's strong
// generators, sorted and deduplicated. The union generates the same
// group as the chain's original input, and is the standard way to
// re-derive a generating set from a built chain (e.g. to seed a
// further derived-series or lower-central-series step).
func (c *Chain) AllStrongGenerators() []int32 {
	seen := make(map[int32]bool)
	var out []int32
	for _, lv := range c.levels {
		for _, g := range lv.strongGens {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Depth returns the current base length.
func (c *Chain) Depth() int { return len(c.levels) }

// Store returns the permutation store this chain was built against.
func (c *Chain) Store() *permstore.Store { return c.store }
