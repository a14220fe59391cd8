// Package engine implements the solving core: candidate bookkeeping,
// constraint propagation to a fixed point, and backtracking search with
// solution counting capped at two, enough to certify uniqueness.
package engine

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/validator"
)

// Options tune the engine. The zero value is a correct sequential
// solver with no node cap and singles-only propagation.
type Options struct {
	// NodeBudget caps search nodes explored; 0 means unbounded. When the
	// cap is hit the outcome is VerdictAborted, never VerdictUnsolvable.
	NodeBudget int
	// Pointing enables locked-candidates elimination during propagation.
	Pointing bool
	// Workers above 1 farms the root branching across that many
	// goroutines. Reported solutions stay deterministic.
	Workers int
}

// Engine solves classic 9×9 boards.
type Engine struct {
	opts  Options
	check ports.Validator
}

func New(opts Options) *Engine {
	return &Engine{opts: opts, check: validator.New()}
}

// Solve classifies the board and produces completions where they exist.
//
// The error return covers only caller misuse; malformed givens, dead
// boards, ambiguity, and exhausted budgets are all verdicts.
func (e *Engine) Solve(ctx context.Context, b *domain.Board) (*domain.Outcome, ports.Stats, error) {
	start := time.Now()
	var st ports.Stats
	finish := func(o *domain.Outcome) (*domain.Outcome, ports.Stats, error) {
		st.Duration = time.Since(start)
		return o, st, nil
	}

	if b == nil {
		return nil, st, errors.New("nil board")
	}

	// Malformed givens are rejected before any solving work and are
	// never conflated with unsolvability.
	if ok, conflicts, err := e.check.Validate(ctx, b); err != nil {
		return nil, st, err
	} else if !ok {
		return finish(&domain.Outcome{
			Verdict:   domain.VerdictInvalid,
			Conflicts: conflicts,
			Reason:    "a given is out of range or duplicated within a unit",
		})
	}

	s, ok := newState(b)
	if !ok {
		return finish(&domain.Outcome{Verdict: domain.VerdictUnsolvable})
	}

	switch e.propagate(s, &st) {
	case propContradiction:
		return finish(&domain.Outcome{Verdict: domain.VerdictUnsolvable})
	case propSolved:
		// Every step was forced, so the completion is the only one.
		return finish(&domain.Outcome{Verdict: domain.VerdictSolved, Solution: withGivens(s.board(), b)})
	}

	sr := &searcher{budget: e.opts.NodeBudget}
	if e.opts.Workers > 1 {
		e.searchParallel(ctx, s, sr, &st)
	} else {
		e.search(ctx, s, sr, &st)
	}

	switch {
	case len(sr.solutions) >= 2:
		return finish(&domain.Outcome{
			Verdict:  domain.VerdictMultiple,
			Solution: withGivens(sr.solutions[0], b),
			Second:   withGivens(sr.solutions[1], b),
		})
	case sr.aborted:
		o := &domain.Outcome{Verdict: domain.VerdictAborted, Reason: sr.reason}
		if len(sr.solutions) == 1 {
			// One completion is known, but a second may have been missed.
			o.Solution = withGivens(sr.solutions[0], b)
		}
		return finish(o)
	case len(sr.solutions) == 1:
		return finish(&domain.Outcome{Verdict: domain.VerdictSolved, Solution: withGivens(sr.solutions[0], b)})
	default:
		return finish(&domain.Outcome{Verdict: domain.VerdictUnsolvable})
	}
}

// withGivens marks the original clues as fixed on a completed board.
func withGivens(sol *domain.Board, in *domain.Board) *domain.Board {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sol.Fixed[r][c] = in.Values[r][c] != 0
		}
	}
	return sol
}
