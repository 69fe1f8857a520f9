// Package analysis implements structural queries over a group defined
// by a schreier.Chain: subgroup/normality tests, normal closure,
// derived and lower-central series with the solvability/nilpotency
// verdicts they imply, tri-state simplicity, quotient construction,
// and Sylow subgroup search.
//
// Every function that can loop unboundedly on a pathological or
// enormous input takes a *Config (nil selects DefaultConfig()) and
// returns apperr.ErrOverflow, wrapped with which bound was hit,
// instead of running forever or silently truncating.
package analysis
