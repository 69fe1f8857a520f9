package permstore

// ID identifies an interned permutation. ID 0 is always the identity.
type ID int32

// nullChild marks an absent trie edge or an unassigned leaf ID.
const nullChild int32 = -1

// Store is the permutation interner described in doc.go. It owns the
// image table and trie arena exclusively; Set and Chain values built on
// top of it hold only IDs, never image bytes.
type Store struct {
	degree int32 // N: common domain size of every interned permutation
	count  int32 // number of interned permutations, == next ID to assign

	images []int32 // dense table: images[id*degree : id*degree+degree]

	// trie arena: node i occupies nodes[i*stride : (i+1)*stride].
	// Slot 0 of a node is its leaf ID (nullChild until assigned, and
	// only meaningful at depth == degree). Slots 1..degree are child
	// node indices for branch value 0..degree-1 (nullChild if absent).
	nodes     []int32
	nodeCount int32
	stride    int32 // degree + 1
}

// New constructs a Store with the given initial degree (minimum 1) and
// interns the identity permutation as ID 0, per the store's invariant.
func New(degree int) *Store {
	if degree < 1 {
		degree = 1
	}
	s := &Store{}
	s.growDegree(int32(degree))
	id0 := s.identityImage()
	if got := s.insertTrie(id0); got != 0 {
		panic("permstore: identity must be ID 0")
	}
	return s
}

// Degree returns the store's current common domain size N.
func (s *Store) Degree() int32 { return s.degree }

// Count returns the number of distinct permutations interned so far.
func (s *Store) Count() int32 { return s.count }

func (s *Store) identityImage() []int32 {
	img := make([]int32, s.degree)
	for i := range img {
		img[i] = int32(i)
	}
	return img
}

// Reset discards every interned permutation and rebuilds the store at
// the given degree (minimum 1), as if freshly constructed with New.
// Every ID held by a caller before Reset is invalid afterward; the
// store does not track outstanding IDs, so this is on the caller.
func (s *Store) Reset(degree int) {
	if degree < 1 {
		degree = 1
	}
	s.degree = 0
	s.count = 0
	s.images = nil
	s.nodes = nil
	s.nodeCount = 0
	s.stride = 0
	s.growDegree(int32(degree))
	if got := s.insertTrie(s.identityImage()); got != 0 {
		panic("permstore: identity must be ID 0")
	}
}
