package engine

import "math/bits"

// elimination reports what removing a candidate did to a cell.
type elimination int

const (
	// elimNone: the digit was already absent. Eliminating twice is a no-op.
	elimNone elimination = iota
	// elimRemoved: the digit was removed, more than one candidate remains.
	elimRemoved
	// elimForced: the removal left a single candidate (naked single).
	elimForced
	// elimEmptied: the removal left no candidates, a contradiction.
	elimEmptied
)

// eliminate removes digit d from the candidates of blank cell (r,c).
func (s *state) eliminate(r, c int, d uint8) elimination {
	bit := uint16(1) << d
	if s.cand[r][c]&bit == 0 {
		return elimNone
	}
	s.cand[r][c] &^= bit
	switch bits.OnesCount16(s.cand[r][c]) {
	case 0:
		return elimEmptied
	case 1:
		return elimForced
	}
	return elimRemoved
}

// assign fixes cell (r,c) to digit d and eliminates d from its 20 peers.
// It returns false on contradiction: d was not a candidate of the cell,
// the cell already holds a different digit, or a peer ran out of
// candidates.
func (s *state) assign(r, c int, d uint8) bool {
	if s.values[r][c] != 0 {
		return s.values[r][c] == d
	}
	if s.cand[r][c]&(uint16(1)<<d) == 0 {
		return false
	}
	s.values[r][c] = d
	s.cand[r][c] = 0
	s.unknown--
	ok := true
	for _, p := range peers[r][c] {
		if s.values[p.Row][p.Col] != 0 {
			continue
		}
		if s.eliminate(p.Row, p.Col, d) == elimEmptied {
			ok = false
		}
	}
	return ok
}

// singleDigit returns the digit of a one-bit candidate mask.
func singleDigit(mask uint16) uint8 {
	return uint8(bits.TrailingZeros16(mask))
}
