package engine

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/ports"
)

// nakedSinglePuzzle pins (0,0) to 9: its row holds 1-4, its column 5-7,
// and its box 8.
var nakedSinglePuzzle = strings.Join([]string{
	".1234....",
	"58.......",
	"6........",
	"7........",
	".........",
	".........",
	".........",
	".........",
	".........",
}, "")

// hiddenSinglePuzzle forces 1 into (0,0) by a hidden single in box 0:
// rows 1 and 2 and columns 1 and 2 already see a 1, so the box's only
// home for the digit is (0,0), even though the cell itself keeps other
// candidates.
var hiddenSinglePuzzle = strings.Join([]string{
	".........",
	"....1....",
	".......1.",
	".........",
	".........",
	".1.......",
	".........",
	"..1......",
	".........",
}, "")

// twoNinesPuzzle reduces both (0,0) and (0,8) to the single candidate 9,
// which cannot coexist in one row.
var twoNinesPuzzle = strings.Join([]string{
	".1234....",
	"58.......",
	"6......8.",
	"7........",
	"........5",
	"........6",
	"........7",
	".........",
	".........",
}, "")

func mustState(t *testing.T, line string) *state {
	t.Helper()
	s, ok := newState(mustBoard(t, line))
	require.True(t, ok)
	return s
}

func TestPropagateNakedSingle(t *testing.T) {
	s := mustState(t, nakedSinglePuzzle)
	require.Equal(t, uint16(1)<<9, s.cand[0][0], "only 9 should remain possible")

	var st ports.Stats
	res := New(Options{}).propagate(s, &st)
	require.NotEqual(t, propContradiction, res)
	assert.Equal(t, uint8(9), s.values[0][0])
}

func TestPropagateHiddenSingle(t *testing.T) {
	s := mustState(t, hiddenSinglePuzzle)
	// more than one candidate at (0,0), so this is not a naked single
	require.Greater(t, bits.OnesCount16(s.cand[0][0]), 1)

	var st ports.Stats
	res := New(Options{}).propagate(s, &st)
	require.Equal(t, propQuiescent, res)
	assert.Equal(t, uint8(1), s.values[0][0])
}

func TestPropagateDetectsContradiction(t *testing.T) {
	s := mustState(t, twoNinesPuzzle)
	var st ports.Stats
	assert.Equal(t, propContradiction, New(Options{}).propagate(s, &st))
}

func TestPropagateMonotonic(t *testing.T) {
	s := mustState(t, classicPuzzle)
	before := s.cand

	var st ports.Stats
	res := New(Options{}).propagate(s, &st)
	require.NotEqual(t, propContradiction, res)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			// a candidate never reappears once removed
			assert.Zero(t, s.cand[r][c]&^before[r][c],
				"cell (%d,%d) regained candidates", r, c)
		}
	}
}

func TestPropagateSolvesClassicPuzzle(t *testing.T) {
	s := mustState(t, classicPuzzle)
	var st ports.Stats
	assert.Equal(t, propSolved, New(Options{}).propagate(s, &st))
	assert.Zero(t, s.unknown)
	assert.Positive(t, st.Assignments)
}

func TestPointingEliminatesOutsideBox(t *testing.T) {
	// Rows 1 and 2 of box 0 are fully given, so the box's 1 must sit on
	// row 0 and the cells of row 0 outside the box lose the candidate.
	line := strings.Join([]string{
		".........",
		"234......",
		"567......",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
	}, "")

	with := mustState(t, line)
	var st ports.Stats
	require.NotEqual(t, propContradiction, New(Options{Pointing: true}).propagate(with, &st))
	for c := 3; c < 9; c++ {
		if with.values[0][c] == 0 {
			assert.Zero(t, with.cand[0][c]&(1<<1), "cell (0,%d) should have lost candidate 1", c)
		}
	}

	without := mustState(t, line)
	require.NotEqual(t, propContradiction, New(Options{}).propagate(without, &st))
	assert.NotZero(t, without.cand[0][3]&(1<<1))
}
