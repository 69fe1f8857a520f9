// Package permset implements the sorted-unique permutation set: a
// value built from interned IDs (see permstore) with group algebra —
// product, inverse, union/intersection/difference, orbits, right-coset
// decomposition, and an abelian test.
//
// A Set carries an isGroup flag recording whether it has been verified
// (by construction or by closure.Close) to be a group; operations
// propagate or clear the flag per the rules documented on each method.
package permset
