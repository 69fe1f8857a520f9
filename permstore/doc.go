// Package permstore implements the process-wide (per-instance)
// permutation interner: a dense image table plus a radix trie over
// permutation images, assigning each distinct permutation a stable
// small-integer ID.
//
// A Store is not safe for concurrent use — see the package's non-goal
// in the module README. Callers needing isolation construct separate
// *Store values with New rather than relying on a shared singleton.
//
// Degree upgrades. The store's degree N is the common domain size of
// every interned permutation; registering an image longer than the
// current degree grows N for the whole store, padding every existing
// permutation with fixed points and rebuilding the trie at the new
// depth. IDs are preserved across an upgrade; raw views obtained via
// Get before an upgrade must not be used afterward.
//
// Composition convention: Multiply(a, b) computes c such that
// c(x) = a(b(x)) for all x — the same right-to-left function
// application used throughout algebra. Every higher-level package
// (permset, closure, schreier, analysis) assumes this ordering.
package permstore
