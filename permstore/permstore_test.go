package permstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifting/permcore/permstore"
)

func TestNewReservesIdentity(t *testing.T) {
	s := permstore.New(3)
	assert.Equal(t, permstore.ID(0), s.Identity())
	assert.Equal(t, []int32{0, 1, 2}, s.Get(0))
}

func TestRegisterIdempotent(t *testing.T) {
	s := permstore.New(2)
	a := s.Register([]int32{1, 0})
	b := s.Register([]int32{1, 0})
	assert.Equal(t, a, b)
	assert.Equal(t, int32(2), s.Count())
}

func TestRegisterImplicitPaddingEquivalence(t *testing.T) {
	s := permstore.New(2)
	short := s.Register([]int32{0})
	full := s.Register([]int32{0, 1})
	assert.Equal(t, short, full)
	assert.Equal(t, s.Identity(), short)
}

func TestDegreeUpgradePreservesIDsAndImages(t *testing.T) {
	s := permstore.New(2)
	a := s.Register([]int32{1, 0})
	before := append([]int32(nil), s.Get(a)...)

	b := s.Register([]int32{0, 1, 2, 3, 4})
	require.Equal(t, int32(5), s.Degree())

	after := s.Get(a)
	assert.Equal(t, before, after[:2])
	assert.Equal(t, []int32{2, 3, 4}, after[2:])
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, s.Get(b))
}

func TestMultiplyAssociativeAndInverse(t *testing.T) {
	s := permstore.New(3)
	a := s.Register([]int32{1, 0, 2}) // (1 2)
	b := s.Register([]int32{1, 2, 0}) // (1 2 3)
	c := s.Register([]int32{0, 2, 1}) // (2 3)

	left := s.Multiply(a, s.Multiply(b, c))
	right := s.Multiply(s.Multiply(a, b), c)
	assert.Equal(t, left, right)

	assert.Equal(t, s.Identity(), s.Multiply(a, s.Inverse(a)))
	assert.Equal(t, s.Identity(), s.Multiply(s.Inverse(a), a))
}

func TestConjugateAndCommutator(t *testing.T) {
	s := permstore.New(3)
	a := s.Register([]int32{1, 0, 2})
	b := s.Register([]int32{1, 2, 0})

	conj := s.Conjugate(a, b)
	assert.Equal(t, s.Multiply(s.Multiply(a, b), s.Inverse(a)), conj)

	comm := s.Commutator(a, b)
	expect := s.Multiply(s.Multiply(s.Inverse(a), s.Inverse(b)), s.Multiply(a, b))
	assert.Equal(t, expect, comm)
}

func TestCyclesIdentity(t *testing.T) {
	s := permstore.New(3)
	assert.Equal(t, "()", s.Cycles(s.Identity()))
}

func TestCyclesDecomposition(t *testing.T) {
	s := permstore.New(5)
	id := s.Register([]int32{1, 0, 3, 4, 2})
	assert.Equal(t, "(1 2)(3 4 5)", s.Cycles(id))
}

func TestOrder(t *testing.T) {
	s := permstore.New(3)
	c3 := s.Register([]int32{1, 2, 0})
	assert.Equal(t, int64(3), s.Order(c3))
	assert.Equal(t, int64(1), s.Order(s.Identity()))
}

func TestResetInvalidatesIDs(t *testing.T) {
	s := permstore.New(2)
	s.Register([]int32{1, 0})
	require.Equal(t, int32(2), s.Count())

	s.Reset(4)
	assert.Equal(t, int32(1), s.Count())
	assert.Equal(t, int32(4), s.Degree())
	assert.Equal(t, permstore.ID(0), s.Identity())
}
