package permstore

import (
	"github.com/sifting/permcore/cycle"
)

// Register interns a permutation given as a sequence of point images.
// If len(image) exceeds the store's current degree, the degree is
// grown first (padding every existing permutation with fixed points).
// The image is itself implicitly padded with i -> i for positions at
// or beyond len(image). Registering the same effective permutation
// twice, however it was padded, returns the same ID.
func (s *Store) Register(image []int32) ID {
	l := int32(len(image))
	if l > s.degree {
		s.growDegree(l)
	}
	padded := make([]int32, s.degree)
	for i := int32(0); i < s.degree; i++ {
		if i < l {
			padded[i] = image[i]
		} else {
			padded[i] = i
		}
	}
	return ID(s.insertTrie(padded))
}

// Get returns a read-only view of the degree images for id. The slice
// aliases the store's internal table and is invalidated by the next
// degree upgrade (Register with a longer image).
func (s *Store) Get(id ID) []int32 {
	off := int(id) * int(s.degree)
	return s.images[off : off+int(s.degree)]
}

// Multiply returns the ID of a*b under (a*b)(x) = a(b(x)).
func (s *Store) Multiply(a, b ID) ID {
	ia, ib := s.Get(a), s.Get(b)
	out := make([]int32, s.degree)
	for k := range out {
		out[k] = ia[ib[k]]
	}
	return s.Register(out)
}

// Inverse returns the ID of a^-1.
func (s *Store) Inverse(a ID) ID {
	ia := s.Get(a)
	out := make([]int32, s.degree)
	for k, v := range ia {
		out[v] = int32(k)
	}
	return s.Register(out)
}

// Conjugate returns g*h*g^-1.
func (s *Store) Conjugate(g, h ID) ID {
	return s.Multiply(s.Multiply(g, h), s.Inverse(g))
}

// Commutator returns a^-1*b^-1*a*b.
func (s *Store) Commutator(a, b ID) ID {
	return s.Multiply(s.Multiply(s.Inverse(a), s.Inverse(b)), s.Multiply(a, b))
}

// Identity returns the reserved identity ID, always 0.
func (s *Store) Identity() ID { return 0 }

// Cycles renders id in 1-based disjoint-cycle notation.
func (s *Store) Cycles(id ID) string {
	return cycle.Format(s.Get(id))
}

// Order returns the multiplicative order of the single permutation id
// (the least k>0 with id^k == identity), computed as the LCM of its
// cycle lengths without repeated multiplication.
func (s *Store) Order(id ID) int64 {
	img := s.Get(id)
	seen := make([]bool, len(img))
	var order int64 = 1
	for start := range img {
		if seen[start] {
			continue
		}
		length := int64(0)
		x := start
		for !seen[x] {
			seen[x] = true
			x = int(img[x])
			length++
		}
		order = lcm(order, length)
	}
	return order
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
