package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	// Nodes is the number of search nodes expanded (candidate guesses tried).
	Nodes int
	// Assignments counts cell fixings, forced and guessed.
	Assignments int
	// Passes counts constraint-propagation fixpoint iterations.
	Passes   int
	Duration time.Duration
}

// Engine classifies a board as solved, unsolvable, ambiguous, invalid,
// or aborted, producing completions where they exist.
type Engine interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Outcome, Stats, error)
}

// Validator performs fast constraint checks (row/col/box) on the givens.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
