package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxIndex(t *testing.T) {
	assert.Equal(t, 0, BoxIndex(0, 0))
	assert.Equal(t, 2, BoxIndex(1, 8))
	assert.Equal(t, 4, BoxIndex(4, 4))
	assert.Equal(t, 8, BoxIndex(8, 8))
}

func TestUnits(t *testing.T) {
	rowUnit, colUnit, boxUnit := Units(5, 7)
	assert.Equal(t, 5, rowUnit)
	assert.Equal(t, 7, colUnit)
	assert.Equal(t, 5, boxUnit)
}

func TestAllUnitsCoverEveryCellThreeTimes(t *testing.T) {
	count := map[CellCoord]int{}
	for _, unit := range AllUnits() {
		seen := map[CellCoord]bool{}
		for _, cell := range unit {
			require.False(t, seen[cell], "unit repeats cell %v", cell)
			seen[cell] = true
			count[cell]++
		}
	}
	require.Len(t, count, 81)
	for cell, n := range count {
		assert.Equal(t, 3, n, "cell %v must sit in one row, one column, one box", cell)
	}
}

func TestPeers(t *testing.T) {
	ps := Peers(4, 4)
	seen := map[CellCoord]bool{}
	for _, p := range ps {
		require.False(t, seen[p], "duplicate peer %v", p)
		seen[p] = true
		assert.NotEqual(t, CellCoord{Row: 4, Col: 4}, p, "a cell is not its own peer")
		sameRow := p.Row == 4
		sameCol := p.Col == 4
		sameBox := BoxIndex(p.Row, p.Col) == 4
		assert.True(t, sameRow || sameCol || sameBox)
	}
	assert.Len(t, seen, 20)
}

func TestBoardQueries(t *testing.T) {
	var b Board
	assert.False(t, b.IsComplete())
	assert.Zero(t, b.Givens())

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = uint8(1 + (r*3+r/3+c)%9)
		}
	}
	assert.True(t, b.IsComplete())
	assert.Equal(t, 81, b.Givens())

	other := b
	assert.True(t, b.Equal(&other))
	other.Values[0][0] = 9
	assert.False(t, b.Equal(&other))
}
