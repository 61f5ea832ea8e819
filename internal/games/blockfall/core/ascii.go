package core

import (
	"fmt"
	"strings"
)

// Characters used by the ASCII form of a board.
const (
	asciiEmpty  = '.'
	asciiPiece  = '@'
	asciiLocked = '#'
)

// RenderASCII returns the grid one line per row. Empty cells are '.',
// locked cells their color letter, and cells of p (which may be nil) '@'.
// This is used for debugging, snapshots and test fixtures.
func RenderASCII(g *Grid, p *Piece) string {
	var sb strings.Builder
	sb.Grow((g.Cols() + 1) * g.Rows())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := C(row, col)
			cell := g.Cell(row, col)
			switch {
			case p != nil && p.Contains(c):
				sb.WriteRune(asciiPiece)
			case cell.Occupied:
				sb.WriteRune(cell.Color.Char())
			default:
				sb.WriteRune(asciiEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from rows of text in the RenderASCII format.
// '#' and any color letter are occupied ('#' uses ColorBlue); '.' and ' '
// are empty. All rows must have the same width.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}
	cols := len([]rune(rows[0]))
	g := NewGrid(len(rows), cols)
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("blockfall: row %d has width %d, want %d", r, len(runes), cols)
		}
		for c, ch := range runes {
			switch ch {
			case asciiEmpty, ' ':
				continue
			case asciiLocked:
				g.lock(C(r, c), ColorBlue)
			default:
				color, ok := colorFromChar(ch)
				if !ok {
					return nil, fmt.Errorf("blockfall: row %d col %d: unknown cell %q", r, c, ch)
				}
				g.lock(C(r, c), color)
			}
		}
	}
	return g, nil
}

// MustParseGrid is like ParseGrid but panics on malformed input.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}
