package domain

// Verdict classifies the result of solving a board.
type Verdict int

const (
	// VerdictSolved means exactly one completion exists.
	VerdictSolved Verdict = iota
	// VerdictUnsolvable means the board is well-formed but has no completion.
	VerdictUnsolvable
	// VerdictMultiple means at least two completions exist (ill-posed puzzle).
	VerdictMultiple
	// VerdictInvalid means the givens themselves are malformed: a digit out
	// of range or a duplicate within a unit. Detected before any solving.
	VerdictInvalid
	// VerdictAborted means the search hit its node budget or was canceled
	// before the board could be classified. Never reported as unsolvable.
	VerdictAborted
)

func (v Verdict) String() string {
	switch v {
	case VerdictSolved:
		return "solved"
	case VerdictUnsolvable:
		return "unsolvable"
	case VerdictMultiple:
		return "multiple-solutions"
	case VerdictInvalid:
		return "invalid"
	case VerdictAborted:
		return "aborted"
	}
	return "unknown"
}

// Outcome is the full result of a solve call.
//
// Solution is set for VerdictSolved and, together with Second, for
// VerdictMultiple, where the two boards are the first two distinct
// completions in deterministic search order. Conflicts carries the
// offending cells for VerdictInvalid.
type Outcome struct {
	Verdict   Verdict     `json:"verdict"`
	Solution  *Board      `json:"solution,omitempty"`
	Second    *Board      `json:"second,omitempty"`
	Conflicts []CellCoord `json:"conflicts,omitempty"`
	Reason    string      `json:"reason,omitempty"`
}
