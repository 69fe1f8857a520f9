// Package intset implements set algebra over strictly ascending,
// duplicate-free sequences of int32. Every exported function assumes
// (and, for SortUnique, establishes) this invariant on its inputs; none
// of them validate it beyond what a binary search naturally tolerates,
// since the invariant is cheap for callers to maintain and expensive to
// re-check on every call.
//
// Union, Intersect and Difference all use a linear two-pointer merge
// and pre-size their output buffer from the input lengths so the
// common case allocates exactly once.
package intset
