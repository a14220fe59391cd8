package engine

import (
	"math/bits"

	"svw.info/sudoku-engine/internal/ports"
)

type propResult int

const (
	// propQuiescent: no deterministic rule fires anymore; hand off to search.
	propQuiescent propResult = iota
	// propSolved: every cell is fixed.
	propSolved
	// propContradiction: the current partial assignment is dead.
	propContradiction
)

// propagate applies the deterministic rules until a fixed point or a
// contradiction. Each productive iteration either fixes a cell or
// removes a candidate, so the loop terminates.
func (e *Engine) propagate(s *state, st *ports.Stats) propResult {
	for {
		if s.unknown == 0 {
			return propSolved
		}
		st.Passes++
		progress := false

		// Naked singles: a blank cell with exactly one candidate takes it.
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if s.values[r][c] != 0 {
					continue
				}
				switch bits.OnesCount16(s.cand[r][c]) {
				case 0:
					return propContradiction
				case 1:
					if !s.assign(r, c, singleDigit(s.cand[r][c])) {
						return propContradiction
					}
					st.Assignments++
					progress = true
				}
			}
		}

		// Hidden singles: a digit with exactly one home left in a unit
		// goes there, even when that cell has other candidates.
		for u := range units {
			for d := uint8(1); d <= 9; d++ {
				bit := uint16(1) << d
				placed := false
				spot := -1
				for i, cell := range units[u] {
					if s.values[cell.Row][cell.Col] == d {
						placed = true
						break
					}
					if s.cand[cell.Row][cell.Col]&bit != 0 {
						if spot >= 0 {
							spot = -2
							break
						}
						spot = i
					}
				}
				if placed || spot == -2 {
					continue
				}
				if spot == -1 {
					// The digit has no home in this unit at all.
					return propContradiction
				}
				cell := units[u][spot]
				if bits.OnesCount16(s.cand[cell.Row][cell.Col]) > 1 {
					if !s.assign(cell.Row, cell.Col, d) {
						return propContradiction
					}
					st.Assignments++
					progress = true
				}
			}
		}

		if e.opts.Pointing {
			switch s.pointing() {
			case elimEmptied:
				return propContradiction
			case elimRemoved, elimForced:
				progress = true
			}
		}

		if !progress {
			return propQuiescent
		}
	}
}

// pointing applies locked-candidates elimination: when all candidate
// cells for a digit within a box fall on one row (or column), the digit
// cannot appear elsewhere on that row (or column). Not required for
// completeness, only to shrink the search tree.
func (s *state) pointing() elimination {
	result := elimNone
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		for d := uint8(1); d <= 9; d++ {
			bit := uint16(1) << d
			row, col, n := -1, -1, 0
			for r := br; r < br+3; r++ {
				for c := bc; c < bc+3; c++ {
					if s.values[r][c] == 0 && s.cand[r][c]&bit != 0 {
						if n == 0 {
							row, col = r, c
						} else {
							if r != row {
								row = -2
							}
							if c != col {
								col = -2
							}
						}
						n++
					}
				}
			}
			if n < 2 {
				continue
			}
			if row >= 0 {
				for c := 0; c < 9; c++ {
					if c/3 == bc/3 || s.values[row][c] != 0 {
						continue
					}
					switch s.eliminate(row, c, d) {
					case elimEmptied:
						return elimEmptied
					case elimRemoved, elimForced:
						result = elimRemoved
					}
				}
			}
			if col >= 0 {
				for r := 0; r < 9; r++ {
					if r/3 == br/3 || s.values[r][col] != 0 {
						continue
					}
					switch s.eliminate(r, col, d) {
					case elimEmptied:
						return elimEmptied
					case elimRemoved, elimForced:
						result = elimRemoved
					}
				}
			}
		}
	}
	return result
}
