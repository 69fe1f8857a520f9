// Package schreier implements a Schreier–Sims stabiliser chain: a base
// of points together with, per level, a strong-generator list and a
// transversal of coset representatives, built by inserting Schreier
// generators until the chain verifies itself (every Schreier generator
// sifts to a residue already accounted for at deeper levels).
//
// Complexity here favors the same "obviously correct, not maximally
// incremental" style as the teacher's BFS-over-arrays traversals: every
// insertion recomputes, by a fresh orbit BFS, the transversal of each
// level whose strong generators it extends, rather than patching them
// incrementally. For the base lengths and
// degrees this engine targets (bounded by tens, not by |G|) that is
// cheap, and it sidesteps a whole class of incremental-update bugs.
package schreier
