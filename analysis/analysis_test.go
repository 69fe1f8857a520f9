package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifting/permcore"
	"github.com/sifting/permcore/analysis"
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

func s3(t *testing.T) (*permstore.Store, *permset.Set) {
	store := permstore.New(3)
	a := store.Register([]int32{1, 0, 2})
	b := store.Register([]int32{1, 2, 0})
	return store, permset.FromIDs([]permstore.ID{a, b}, false)
}

func kleinFour(t *testing.T) (*permstore.Store, *permset.Set) {
	store := permstore.New(4)
	a := store.Register([]int32{1, 0, 3, 2})
	b := store.Register([]int32{2, 3, 0, 1})
	return store, permset.FromIDs([]permstore.ID{a, b}, false)
}

func TestS3DerivedSeriesAndSolvability(t *testing.T) {
	store, gens := s3(t)
	series, err := analysis.DerivedSeries(store, gens, nil)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, "6", series[0].Order().String())
	assert.Equal(t, "3", series[1].Order().String())
	assert.Equal(t, "1", series[2].Order().String())

	solvable, err := analysis.IsSolvable(store, gens, nil)
	require.NoError(t, err)
	assert.True(t, solvable)

	nilpotent, err := analysis.IsNilpotent(store, gens, nil)
	require.NoError(t, err)
	assert.False(t, nilpotent)

	verdict, err := analysis.IsSimple(store, gens, nil)
	require.NoError(t, err)
	assert.Equal(t, permcore.TriNo, verdict)
}

func TestKleinFourNormalClosureAndQuotient(t *testing.T) {
	store, gens := kleinFour(t)
	g := schreier.Compute(store, gens)

	a := permstore.ID(gens.IDs()[0])
	nGens := permset.FromIDs([]permstore.ID{a}, false)
	nClosure := analysis.NormalClosure(store, gens, nGens)
	assert.Equal(t, "2", nClosure.Order().String())

	assert.True(t, analysis.IsNormal(store, gens, nClosure, nGens))

	qm, err := analysis.Quotient(store, gens, g, nClosure, nil)
	require.NoError(t, err)
	assert.Equal(t, "2", qm.Chain.Order().String())
	assert.Equal(t, store.Identity(), qm.Reps[0])
}

func TestSylowOnCyclicC4EqualsWholeGroup(t *testing.T) {
	store := permstore.New(4)
	c4 := store.Register([]int32{1, 2, 3, 0})
	gens := permset.FromIDs([]permstore.ID{c4}, false)
	g := schreier.Compute(store, gens)

	sylow2, err := analysis.SylowSubgroup(store, g, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, g.Order().String(), sylow2.Order().String())

	verdict, err := analysis.IsSimple(store, gens, nil)
	require.NoError(t, err)
	assert.Equal(t, permcore.TriNo, verdict)
}

func TestAnalyzeGeneratorsClassification(t *testing.T) {
	store, _ := s3(t)
	a := store.Register([]int32{1, 0, 2})
	b := store.Register([]int32{1, 2, 0})
	redundant := store.Multiply(a, b) // already in <a,b>

	classes := analysis.AnalyzeGenerators(store, []permstore.ID{a, b, redundant})
	require.Len(t, classes, 3)
	assert.True(t, classes[0].Fundamental)
	assert.True(t, classes[1].Fundamental)
	assert.False(t, classes[2].Fundamental)
}

func TestIsIsomorphicOrderMismatch(t *testing.T) {
	store, gens := s3(t)
	transposition := permset.FromIDs([]permstore.ID{permstore.ID(gens.IDs()[0])}, false)

	verdict, err := analysis.IsIsomorphic(store, gens, transposition, nil)
	require.NoError(t, err)
	assert.Equal(t, permcore.TriNo, verdict)
}

func alternatingA5(t *testing.T) (*permstore.Store, *permset.Set) {
	store := permstore.New(5)
	fiveCycle := store.Register([]int32{1, 2, 3, 4, 0})
	threeCycle := store.Register([]int32{1, 2, 0, 3, 4})
	return store, permset.FromIDs([]permstore.ID{fiveCycle, threeCycle}, false)
}

func TestA5AlternatingGroupScenario(t *testing.T) {
	store, gens := alternatingA5(t)
	g := schreier.Compute(store, gens)
	assert.Equal(t, "60", g.Order().String())

	derived := analysis.CommutatorSubgroup(store, gens)
	assert.Equal(t, g.Order().String(), derived.Order().String())

	solvable, err := analysis.IsSolvable(store, gens, nil)
	require.NoError(t, err)
	assert.False(t, solvable)

	verdict, err := analysis.IsSimple(store, gens, nil)
	require.NoError(t, err)
	assert.NotEqual(t, permcore.TriNo, verdict)

	for _, id := range gens.IDs() {
		nc := analysis.NormalClosure(store, gens, permset.FromIDs([]permstore.ID{permstore.ID(id)}, true))
		assert.Equal(t, g.Order().String(), nc.Order().String())
	}
}

func TestQuotientRejectsIndexOverflow(t *testing.T) {
	store, gens := s3(t)
	g := schreier.Compute(store, gens)
	a := permstore.ID(gens.IDs()[0])
	n := schreier.Compute(store, permset.FromIDs([]permstore.ID{a}, false))
	_, err := analysis.Quotient(store, gens, g, n, analysis.NewConfig(analysis.WithQuotientIndexBound(1)))
	assert.Error(t, err)
}
