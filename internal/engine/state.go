package engine

import (
	"math/bits"

	"svw.info/sudoku-engine/internal/domain"
)

// fullMask has bits 1..9 set: every digit still possible.
const fullMask uint16 = 0x3FE

// peers[r][c] lists the 20 distinct cells sharing a unit with (r,c).
var peers [9][9][20]domain.CellCoord

// units holds the 27 units in fixed order: rows, columns, boxes.
var units = domain.AllUnits()

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			peers[r][c] = domain.Peers(r, c)
		}
	}
}

// state is one node of the search: the board values plus a candidate
// bitmask per blank cell. It is copied wholesale at each branch point,
// so sibling branches never share mutable state.
type state struct {
	values  [9][9]uint8
	cand    [9][9]uint16
	unknown int
}

// newState builds the root state from validated givens. It returns
// ok=false when some blank cell has no candidate left, which means the
// board cannot be completed.
func newState(b *domain.Board) (*state, bool) {
	s := &state{values: b.Values}

	var rowMask, colMask, boxMask [9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := s.values[r][c]; v != 0 {
				bit := uint16(1) << v
				rowMask[r] |= bit
				colMask[c] |= bit
				boxMask[domain.BoxIndex(r, c)] |= bit
			}
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.values[r][c] != 0 {
				continue
			}
			s.unknown++
			s.cand[r][c] = fullMask &^ (rowMask[r] | colMask[c] | boxMask[domain.BoxIndex(r, c)])
			if s.cand[r][c] == 0 {
				return nil, false
			}
		}
	}
	return s, true
}

// pickCell selects the blank cell with the fewest candidates, breaking
// ties by smallest row-major index so the search is deterministic.
// count is -1 when the board is complete, and 0 when some cell has no
// candidate left (a dead branch).
func (s *state) pickCell() (row, col, count int) {
	if s.unknown == 0 {
		return 0, 0, -1
	}
	count = 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.values[r][c] != 0 {
				continue
			}
			n := bits.OnesCount16(s.cand[r][c])
			if n == 0 {
				return r, c, 0
			}
			if n < count {
				row, col, count = r, c, n
			}
		}
	}
	return row, col, count
}

// board materializes the current values. Fixed flags are attached by
// the caller, which knows the original givens.
func (s *state) board() *domain.Board {
	return &domain.Board{Values: s.values}
}
