package schreier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

func TestChainOrderS3(t *testing.T) {
	store := permstore.New(3)
	a := store.Register([]int32{1, 0, 2})
	b := store.Register([]int32{1, 2, 0})
	gens := permset.FromIDs([]permstore.ID{a, b}, false)

	c := schreier.Compute(store, gens)
	assert.Equal(t, "6", c.Order().String())
	assert.True(t, c.Contains(store.Identity()))
	assert.True(t, c.Contains(a))
	assert.True(t, c.Contains(b))
}

func TestChainOrderKleinFour(t *testing.T) {
	store := permstore.New(4)
	a := store.Register([]int32{1, 0, 3, 2})
	b := store.Register([]int32{2, 3, 0, 1})
	gens := permset.FromIDs([]permstore.ID{a, b}, false)

	c := schreier.Compute(store, gens)
	assert.Equal(t, "4", c.Order().String())
}

func TestChainOrderCyclicC4(t *testing.T) {
	store := permstore.New(4)
	c4 := store.Register([]int32{1, 2, 3, 0})
	gens := permset.FromIDs([]permstore.ID{c4}, false)

	c := schreier.Compute(store, gens)
	assert.Equal(t, "4", c.Order().String())
}

func TestChainRejectsOutsideElement(t *testing.T) {
	store := permstore.New(3)
	a := store.Register([]int32{1, 0, 2}) // (0 1), generates order-2 subgroup
	gens := permset.FromIDs([]permstore.ID{a}, false)

	c := schreier.Compute(store, gens)
	outsider := store.Register([]int32{1, 2, 0}) // 3-cycle, not in <(0 1)>
	assert.False(t, c.Contains(outsider))
}

func TestChainQuaternionQ8(t *testing.T) {
	// Q8 realized as a permutation group on its own Cayley table (8 points):
	// elements {1,-1,i,-i,j,-j,k,-k} at indices 0..7, generated by
	// left-multiplication by i and j.
	elems := []string{"1", "-1", "i", "-i", "j", "-j", "k", "-k"}
	idx := make(map[string]int32, 8)
	for i, e := range elems {
		idx[e] = int32(i)
	}
	neg := map[string]string{
		"1": "-1", "-1": "1", "i": "-i", "-i": "i",
		"j": "-j", "-j": "j", "k": "-k", "-k": "k",
	}
	mul := func(a, b string) string {
		sign := 1
		x, y := a, b
		if x[0] == '-' {
			sign *= -1
			x = x[1:]
		}
		if y[0] == '-' {
			sign *= -1
			y = y[1:]
		}
		var r string
		switch {
		case x == "1":
			r = y
		case y == "1":
			r = x
		case x == y:
			r = "-1"
		case x == "i" && y == "j":
			r = "k"
		case x == "j" && y == "i":
			r = "-k"
		case x == "j" && y == "k":
			r = "i"
		case x == "k" && y == "j":
			r = "-i"
		case x == "k" && y == "i":
			r = "j"
		case x == "i" && y == "k":
			r = "-j"
		default:
			r = "1"
		}
		if sign < 0 {
			r = neg[r]
		}
		return r
	}
	leftMultTable := func(g string) []int32 {
		img := make([]int32, 8)
		for i, e := range elems {
			img[i] = idx[mul(g, e)]
		}
		return img
	}

	store := permstore.New(8)
	gi := store.Register(leftMultTable("i"))
	gj := store.Register(leftMultTable("j"))
	gens := permset.FromIDs([]permstore.ID{gi, gj}, false)

	c := schreier.Compute(store, gens)
	assert.Equal(t, "8", c.Order().String())
}
