// Package permcore is the module root: it holds the Tristate sum type
// shared by every decision procedure in the analysis package, kept
// here (rather than in analysis itself) so that packages beneath
// analysis in the dependency graph — schreier, permset — never need to
// import it back.
package permcore

// Tristate is the result of a decision procedure whose strict solution
// may be out of scope: TriYes/TriNo are certified, TriUnknown means the
// procedure declined to certify either way (a heuristic search found no
// counterexample, or the input exceeded a certifiable range).
type Tristate int8

const (
	// TriUnknown means the decision procedure could not certify Yes or No.
	TriUnknown Tristate = -1
	// TriNo means the decision procedure certified a negative answer.
	TriNo Tristate = 0
	// TriYes means the decision procedure certified a positive answer.
	TriYes Tristate = 1
)

// String renders the tri-state value for logging and CLI output.
func (t Tristate) String() string {
	switch t {
	case TriYes:
		return "yes"
	case TriNo:
		return "no"
	default:
		return "unknown"
	}
}
