package intset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sifting/permcore/intset"
)

func TestContains(t *testing.T) {
	s := []int32{1, 3, 5, 7}
	assert.True(t, intset.Contains(s, 5))
	assert.False(t, intset.Contains(s, 4))
	assert.False(t, intset.Contains(nil, 0))
}

func TestUnion(t *testing.T) {
	assert.Equal(t, []int32{1, 2, 3, 4}, intset.Union([]int32{1, 2, 3}, []int32{2, 3, 4}))
	assert.Equal(t, []int32{1, 2}, intset.Union(nil, []int32{1, 2}))
	assert.Equal(t, []int32{1, 2}, intset.Union([]int32{1, 2}, nil))
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, []int32{2, 3}, intset.Intersect([]int32{1, 2, 3}, []int32{2, 3, 4}))
	assert.Nil(t, intset.Intersect([]int32{1, 2}, nil))
	assert.Nil(t, intset.Intersect([]int32{1}, []int32{2}))
}

func TestDifference(t *testing.T) {
	assert.Equal(t, []int32{1}, intset.Difference([]int32{1, 2, 3}, []int32{2, 3, 4}))
	assert.Nil(t, intset.Difference(nil, []int32{1}))
	assert.Equal(t, []int32{1, 2}, intset.Difference([]int32{1, 2}, nil))
}

func TestSortUnique(t *testing.T) {
	in := []int32{3, 1, 2, 1, 3, 2}
	assert.Equal(t, []int32{1, 2, 3}, intset.SortUnique(in))
	assert.Equal(t, []int32{5}, intset.SortUnique([]int32{5}))
	assert.Equal(t, []int32(nil), intset.SortUnique(nil))
}
