package commands

import (
	"fmt"

	"github.com/sifting/permcore/cycle"
	"github.com/sifting/permcore/permset"
	"github.com/sifting/permcore/permstore"
)

// registerGenerators parses each cycle-notation argument and interns
// it in a fresh store, returning the store and the resulting
// generating set in input order.
func registerGenerators(args []string) (*permstore.Store, *permset.Set, error) {
	store := permstore.New(1)
	ids := make([]permstore.ID, 0, len(args))
	for _, arg := range args {
		img, err := cycle.Parse(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("permctl: parse %q: %w", arg, err)
		}
		ids = append(ids, store.Register(img))
	}
	return store, permset.FromIDs(ids, false), nil
}
