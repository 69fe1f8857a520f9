package analysis

import (
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
	"github.com/sifting/permcore/schreier"
)

// GeneratorClassification records whether one candidate generator
// extended the accumulating group (Fundamental) or was already
// contained in it (redundant) at the point it was processed.
type GeneratorClassification struct {
	ID          permstore.ID
	Fundamental bool
}

// AnalyzeGenerators classifies ids in input order by greedily
// inserting each into an accumulating chain: an id that lies in the
// group generated by its predecessors is redundant, otherwise it is
// fundamental. Deterministic given the same input order.
func AnalyzeGenerators(store *permstore.Store, ids []permstore.ID) []GeneratorClassification {
	acc := schreier.Compute(store, permset.FromIDs(nil, true))
	out := make([]GeneratorClassification, len(ids))
	for i, id := range ids {
		if acc.Contains(id) {
			out[i] = GeneratorClassification{ID: id, Fundamental: false}
			continue
		}
		acc.SiftAndInsert(id)
		out[i] = GeneratorClassification{ID: id, Fundamental: true}
	}
	return out
}
