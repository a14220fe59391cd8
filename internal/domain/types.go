package domain

// Board holds current values and which cells are fixed givens.
// A zero value means the cell is blank.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// IsComplete reports whether every cell holds a value.
func (b *Board) IsComplete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Givens counts the filled cells.
func (b *Board) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two boards hold the same values. Fixed flags are
// ignored; they record provenance, not state.
func (b *Board) Equal(o *Board) bool {
	return b.Values == o.Values
}
