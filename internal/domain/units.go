package domain

// A unit is a set of 9 cells that must contain each digit exactly once.
// The classic board has 27: 9 rows, 9 columns, 9 boxes. Every cell
// belongs to one unit of each kind. Variant rule sets would plug in
// here by supplying a different unit table.

// UnitKind distinguishes the three classic unit families.
type UnitKind int

const (
	UnitRow UnitKind = iota
	UnitColumn
	UnitBox
)

func (k UnitKind) String() string {
	switch k {
	case UnitRow:
		return "row"
	case UnitColumn:
		return "column"
	case UnitBox:
		return "box"
	}
	return "unknown"
}

// BoxIndex returns the 3×3 box containing (row, col): boxes are numbered
// 0..8 left-to-right, top-to-bottom.
func BoxIndex(row, col int) int {
	return (row/3)*3 + col/3
}

// Units returns the row, column, and box unit indexes for a cell.
func Units(row, col int) (rowUnit, colUnit, boxUnit int) {
	return row, col, BoxIndex(row, col)
}

// UnitCells returns the 9 cell coordinates of unit index of the given kind.
func UnitCells(kind UnitKind, index int) [9]CellCoord {
	var cells [9]CellCoord
	switch kind {
	case UnitRow:
		for c := 0; c < 9; c++ {
			cells[c] = CellCoord{Row: index, Col: c}
		}
	case UnitColumn:
		for r := 0; r < 9; r++ {
			cells[r] = CellCoord{Row: r, Col: index}
		}
	case UnitBox:
		br, bc := (index/3)*3, (index%3)*3
		for i := 0; i < 9; i++ {
			cells[i] = CellCoord{Row: br + i/3, Col: bc + i%3}
		}
	}
	return cells
}

// AllUnits enumerates the 27 units in a fixed order: rows 0..8,
// columns 0..8, boxes 0..8.
func AllUnits() [27][9]CellCoord {
	var units [27][9]CellCoord
	for i := 0; i < 9; i++ {
		units[i] = UnitCells(UnitRow, i)
		units[9+i] = UnitCells(UnitColumn, i)
		units[18+i] = UnitCells(UnitBox, i)
	}
	return units
}

// Peers returns the distinct cells sharing a unit with (row, col):
// 8 row peers, 8 column peers, and the 4 box peers outside its row
// and column, 20 in total.
func Peers(row, col int) [20]CellCoord {
	var peers [20]CellCoord
	n := 0
	for c := 0; c < 9; c++ {
		if c != col {
			peers[n] = CellCoord{Row: row, Col: c}
			n++
		}
	}
	for r := 0; r < 9; r++ {
		if r != row {
			peers[n] = CellCoord{Row: r, Col: col}
			n++
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if r != row && c != col {
				peers[n] = CellCoord{Row: r, Col: c}
				n++
			}
		}
	}
	return peers
}
