package permstore

// allocNode appends one fresh, all-nullChild trie node and returns its
// index. Node 0, allocated first, is always the root.
func (s *Store) allocNode() int32 {
	idx := s.nodeCount
	base := len(s.nodes)
	s.nodes = append(s.nodes, make([]int32, s.stride)...)
	for i := base; i < base+int(s.stride); i++ {
		s.nodes[i] = nullChild
	}
	s.nodeCount++
	return idx
}

func (s *Store) leafSlot(node int32) int32 { return s.nodes[node*s.stride] }

func (s *Store) setLeafSlot(node, id int32) { s.nodes[node*s.stride] = id }

func (s *Store) child(node int32, branch int32) int32 {
	return s.nodes[node*s.stride+1+branch]
}

func (s *Store) setChild(node, branch, target int32) {
	s.nodes[node*s.stride+1+branch] = target
}

// walkOrCreate follows (creating as needed) the trie path spelled out
// by img, one edge per position, and returns the leaf node reached
// after degree edges. len(img) must equal s.degree.
func (s *Store) walkOrCreate(img []int32) int32 {
	node := int32(0)
	for i := int32(0); i < s.degree; i++ {
		branch := img[i]
		next := s.child(node, branch)
		if next == nullChild {
			next = s.allocNode()
			s.setChild(node, branch, next)
		}
		node = next
	}
	return node
}

// insertTrie interns img (already padded to length s.degree), assigning
// a fresh ID if this exact image has not been seen before.
func (s *Store) insertTrie(img []int32) int32 {
	leaf := s.walkOrCreate(img)
	id := s.leafSlot(leaf)
	if id != nullChild {
		return id
	}
	id = s.count
	off := int(id) * int(s.degree)
	if off+int(s.degree) > len(s.images) {
		grown := make([]int32, off+int(s.degree))
		copy(grown, s.images)
		s.images = grown
	}
	copy(s.images[off:off+int(s.degree)], img)
	s.count++
	s.setLeafSlot(leaf, id)
	return id
}

// reinsertExisting places an already-assigned ID's (now longer) image
// back into a freshly rebuilt trie, used by growDegree.
func (s *Store) reinsertExisting(img []int32, id int32) {
	leaf := s.walkOrCreate(img)
	s.setLeafSlot(leaf, id)
}

// growDegree raises the store's degree to newN, padding every existing
// permutation's image with fixed points and rebuilding the trie at the
// new depth. It is a no-op if newN <= the current degree.
func (s *Store) growDegree(newN int32) {
	if newN <= s.degree {
		return
	}
	oldN, oldImages, oldCount := s.degree, s.images, s.count

	s.degree = newN
	s.stride = newN + 1

	if oldCount > 0 {
		newImages := make([]int32, int(oldCount)*int(newN))
		for id := int32(0); id < oldCount; id++ {
			srcOff, dstOff := int(id)*int(oldN), int(id)*int(newN)
			copy(newImages[dstOff:dstOff+int(oldN)], oldImages[srcOff:srcOff+int(oldN)])
			for k := oldN; k < newN; k++ {
				newImages[dstOff+int(k)] = k
			}
		}
		s.images = newImages
	}

	s.nodes = nil
	s.nodeCount = 0
	s.allocNode() // fresh root

	for id := int32(0); id < oldCount; id++ {
		off := int(id) * int(newN)
		s.reinsertExisting(s.images[off:off+int(newN)], id)
	}
}
