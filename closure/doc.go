// Package closure computes the group generated by a permset.Set of
// generators through iterative saturation: it is the practical
// counterpart to schreier.Compute for groups small enough to enumerate
// outright, for callers that need an explicit element list rather than
// a stabiliser chain. No other package of the module calls it; its own
// tests close S3, the Klein four-group and a cyclic group of order 4.
package closure
