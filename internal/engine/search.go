package engine

import (
	"context"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// searcher accumulates solutions and the stop condition across one
// backtracking run. Two solutions are enough to classify the board, so
// the search never enumerates further.
type searcher struct {
	budget    int // max nodes, 0 = unbounded
	nodes     int
	aborted   bool
	reason    string
	solutions []*domain.Board
}

func (sr *searcher) abort(reason string) {
	sr.aborted = true
	if sr.reason == "" {
		sr.reason = reason
	}
}

func (sr *searcher) done() bool {
	return sr.aborted || len(sr.solutions) >= 2
}

func (sr *searcher) record(s *state) {
	sr.solutions = append(sr.solutions, s.board())
}

// search runs depth-first backtracking from a quiescent state. Branching
// follows minimum-remaining-candidates with row-major tie-break, and
// digits are tried in ascending order, so the first and second solutions
// found are reproducible.
func (e *Engine) search(ctx context.Context, s *state, sr *searcher, st *ports.Stats) {
	r, c, n := s.pickCell()
	if n < 0 {
		sr.record(s)
		return
	}
	if n == 0 {
		return
	}
	for d := uint8(1); d <= 9; d++ {
		if s.cand[r][c]&(uint16(1)<<d) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			sr.abort("canceled: " + err.Error())
			return
		}
		sr.nodes++
		st.Nodes++
		if sr.budget > 0 && sr.nodes > sr.budget {
			sr.abort("node budget exceeded")
			return
		}

		// Each branch works on its own copy; backtracking is a return.
		child := *s
		if child.assign(r, c, d) {
			st.Assignments++
			switch e.propagate(&child, st) {
			case propSolved:
				sr.record(&child)
			case propQuiescent:
				e.search(ctx, &child, sr, st)
			}
		}
		if sr.done() {
			return
		}
	}
}
