// Package permcore is a computational engine for finite permutation
// groups: an interned permutation store with trie-based deduplication
// (permstore), a permutation-set algebra over interned IDs (permset),
// a Schreier–Sims stabiliser-chain builder (schreier), and structural
// analysis algorithms layered on top (analysis) — normal closure,
// derived and lower-central series, solvability, simplicity, Sylow
// subgroups, coset enumeration and quotient construction.
//
// This root package holds only the Tristate sum type shared by every
// decision procedure in package analysis; the algebraic core lives in
// the subpackages listed above.
package permcore
