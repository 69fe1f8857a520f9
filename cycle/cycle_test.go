package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifting/permcore/cycle"
)

func TestParseSingleCycle(t *testing.T) {
	img, err := cycle.Parse("(1 2)")
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 0}, img)
}

func TestParseCommaSeparated(t *testing.T) {
	img, err := cycle.Parse("(1,2,3)")
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 0}, img)
}

func TestParseIdentity(t *testing.T) {
	img, err := cycle.Parse("()")
	require.NoError(t, err)
	assert.Nil(t, img)

	img, err = cycle.Parse("")
	require.NoError(t, err)
	assert.Nil(t, img)
}

func TestParseComposesLeftToRight(t *testing.T) {
	// (1 2) then (2 3): 1 first moves nowhere under (2 3) after (1 2)
	// sends 1->2, then (2 3) sends 2->3, so overall 1->3.
	img, err := cycle.Parse("(1 2)(2 3)")
	require.NoError(t, err)
	// 0-based: 0->2, 1->0? verify by construction: acc after (1 2): [1,0]
	// pad to len 3 conceptually: [1,0,2]; fold (2 3) (0-based indices 1,2):
	// cycleOf: 1->2, 2->1. out[x] = cycleOf[acc[x]] if present.
	// acc = [1,0,2]; out[0]=cycleOf[1]=2; out[1]=cycleOf[0] absent =0; out[2]=cycleOf[2]=1
	assert.Equal(t, []int32{2, 0, 1}, img)
}

func TestParseInvalid(t *testing.T) {
	_, err := cycle.Parse("(1 a)")
	assert.Error(t, err)
	_, err = cycle.Parse("(1 -2)")
	assert.Error(t, err)
	_, err = cycle.Parse("(1 (2))")
	assert.Error(t, err)
	_, err = cycle.Parse("1 2")
	assert.Error(t, err)
}

func TestFormatIdentity(t *testing.T) {
	assert.Equal(t, "()", cycle.Format(nil))
	assert.Equal(t, "()", cycle.Format([]int32{0, 1, 2}))
}

func TestFormatDisjointCycles(t *testing.T) {
	// (1 2)(3 4 5) 0-based: 0<->1, 2->3->4->2
	img := []int32{1, 0, 3, 4, 2}
	assert.Equal(t, "(1 2)(3 4 5)", cycle.Format(img))
}

func TestRoundTripParseFormat(t *testing.T) {
	img, err := cycle.Parse("(1 2 3)(4 5)")
	require.NoError(t, err)
	s := cycle.Format(img)
	img2, err := cycle.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, img, img2)
}
