// Package validator performs fast structural checks on the givens of a
// board: digits in range 1..9 and no duplicate within any row, column,
// or box. It never attempts to solve anything.
package validator

import (
	"context"

	"svw.info/sudoku-engine/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans the 27 units with a bitmask per unit and reports every
// offending cell: out-of-range digits and the second and later
// occurrences of a duplicated digit.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	seen := make(map[domain.CellCoord]bool)
	flag := func(r, c int) {
		cell := domain.CellCoord{Row: r, Col: c}
		if !seen[cell] {
			seen[cell] = true
			conf = append(conf, cell)
		}
	}

	// out-of-range givens
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] > 9 {
				flag(r, c)
			}
		}
	}

	for _, unit := range domain.AllUnits() {
		m := uint16(0)
		for _, cell := range unit {
			val := b.Values[cell.Row][cell.Col]
			if val == 0 || val > 9 {
				continue
			}
			bit := uint16(1) << val
			if m&bit != 0 {
				flag(cell.Row, cell.Col)
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
