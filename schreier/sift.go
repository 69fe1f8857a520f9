package schreier

import "github.com/sifting/permcore/permstore"

// sift drives h down through levels[fromLevel:], replacing h with
// u^-1*h at each level whose transversal covers h's image of that
// level's base point. It returns the residue and the level index at
// which it stopped: len(c.levels) means every level was cleared.
func (c *Chain) sift(h int32, fromLevel int) (residue int32, level int) {
	for i := fromLevel; i < len(c.levels); i++ {
		lv := c.levels[i]
		delta := c.store.Get(permstore.ID(h))[lv.point]
		u, ok := lv.transversal[delta]
		if !ok {
			return h, i
		}
		h = int32(c.store.Multiply(c.store.Inverse(permstore.ID(u)), permstore.ID(h)))
	}
	return h, len(c.levels)
}

// Contains reports whether g lies in the group defined by the chain:
// its sift from level 0 must reach the identity.
func (c *Chain) Contains(g permstore.ID) bool {
	residue, level := c.sift(int32(g), 0)
	return level == len(c.levels) && residue == int32(c.store.Identity())
}

// SiftAndInsert extends the chain, if necessary, so that g lies in the
// group it defines. See doc.go for the queue-driven verification
// strategy.
func (c *Chain) SiftAndInsert(g permstore.ID) {
	c.insertFrom(int32(g), 0)
}

type pending struct {
	g    int32
	from int
}

func (c *Chain) insertFrom(g int32, fromLevel int) {
	queue := []pending{{g: g, from: fromLevel}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		residue, lvl := c.sift(item.g, item.from)
		if lvl == len(c.levels) {
			if residue == int32(c.store.Identity()) {
				continue
			}
			beta := firstMovedPoint(c.store, residue)
			c.levels = append(c.levels, &level{point: beta, strongGens: nil, transversal: nil})
			lvl = len(c.levels) - 1
		}

		// residue fixes β_0..β_{lvl-1}, so it belongs to every strong
		// generator set S_0..S_lvl, and every one of those levels'
		// transversals must be regrown against the enlarged set.
		for j := 0; j <= lvl; j++ {
			c.levels[j].strongGens = append(c.levels[j].strongGens, residue)
			c.growTransversal(j)
		}
		c.order = nil

		// The enlarged S_j at every level j in 0..lvl induces new
		// Schreier generators over T_j, each of which fixes β_0..β_j
		// and so must be sifted starting from level j+1.
		for j := 0; j <= lvl; j++ {
			lv := c.levels[j]
			for x, ux := range lv.transversal {
				for _, s := range lv.strongGens {
					xs := c.store.Get(permstore.ID(s))[x]
					uxs, ok := lv.transversal[xs]
					if !ok {
						continue
					}
					sg := int32(c.store.Multiply(c.store.Multiply(c.store.Inverse(permstore.ID(uxs)), permstore.ID(s)), permstore.ID(ux)))
					queue = append(queue, pending{g: sg, from: j + 1})
				}
			}
		}
	}
}

// growTransversal recomputes T_level from scratch by a BFS over the
// orbit of level.point under the current strong generators, per
// spec.md's "Transversal growth" description.
func (c *Chain) growTransversal(level int) {
	lv := c.levels[level]
	trans := map[int32]int32{lv.point: int32(c.store.Identity())}
	queue := []int32{lv.point}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		up := trans[p]
		for _, s := range lv.strongGens {
			q := c.store.Get(permstore.ID(s))[p]
			if _, seen := trans[q]; !seen {
				trans[q] = int32(c.store.Multiply(permstore.ID(s), permstore.ID(up)))
				queue = append(queue, q)
			}
		}
	}
	lv.transversal = trans
}

// firstMovedPoint returns the smallest point moved by id.
func firstMovedPoint(store *permstore.Store, id int32) int32 {
	img := store.Get(permstore.ID(id))
	for i, v := range img {
		if v != int32(i) {
			return int32(i)
		}
	}
	return 0
}
