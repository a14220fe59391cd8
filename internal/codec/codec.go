// Package codec converts between text puzzle formats and boards. The
// solving core never touches text; this is the glue for the CLI and the
// HTTP adapter.
//
// Two formats are supported:
//   - line: 81 characters, left-to-right then top-to-bottom, with '0'
//     or '.' for a blank cell
//   - grid: 9 lines of 9 characters each, same cell alphabet
package codec

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/sudoku-engine/internal/domain"
)

var (
	// ErrLength is returned when the input does not contain exactly 81 cells.
	ErrLength = errors.New("puzzle must contain exactly 81 cells")
	// ErrCharacter is returned for anything but digits, '.', and blanks.
	ErrCharacter = errors.New("puzzle may contain only digits 0-9 and '.'")
)

// ParseLine decodes the 81-character format. Surrounding whitespace is
// ignored. Cells parsed as givens are marked fixed.
func ParseLine(s string) (*domain.Board, error) {
	s = strings.TrimSpace(s)
	if len(s) != 81 {
		return nil, fmt.Errorf("%w: got %d characters", ErrLength, len(s))
	}
	b := &domain.Board{}
	for i, ch := range s {
		r, c := i/9, i%9
		switch {
		case ch == '0' || ch == '.':
			// blank
		case ch >= '1' && ch <= '9':
			b.Values[r][c] = uint8(ch - '0')
			b.Fixed[r][c] = true
		default:
			return nil, fmt.Errorf("%w: %q at cell %d", ErrCharacter, ch, i)
		}
	}
	return b, nil
}

// ParseGrid decodes the 9-line format. Blank lines around the grid are
// ignored; each remaining line must hold exactly 9 cells.
func ParseGrid(s string) (*domain.Board, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != 9 {
		return nil, fmt.Errorf("%w: got %d rows", ErrLength, len(rows))
	}
	for _, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("%w: row %q has %d cells", ErrLength, row, len(row))
		}
	}
	return ParseLine(strings.Join(rows, ""))
}

// Parse accepts either supported format.
func Parse(s string) (*domain.Board, error) {
	if strings.ContainsRune(strings.TrimSpace(s), '\n') {
		return ParseGrid(s)
	}
	return ParseLine(s)
}

// FormatLine encodes a board as 81 characters with '.' for blanks.
func FormatLine(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// FormatGrid renders a board for terminals, with box separators.
func FormatGrid(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
