package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate falls outside the grid.
// Correct callers never trigger it.
var ErrOutOfBounds = errors.New("blockfall: coordinate out of bounds")

// Grid is the fixed-size playfield occupancy table.
// Cells are stored in row-major order: index = row*cols + col.
// A cell is occupied iff a locked piece cell sits there; the active piece
// is never written into the grid until it locks.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

func (g *Grid) boundsErr(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
}

// IsOccupied reports whether a locked cell sits at (row, col).
func (g *Grid) IsOccupied(row, col int) (bool, error) {
	if !g.InBounds(C(row, col)) {
		return false, g.boundsErr(row, col)
	}
	return g.cells[g.index(row, col)].Occupied, nil
}

// SetOccupied sets the occupancy of (row, col). Clearing a cell also drops its color.
func (g *Grid) SetOccupied(row, col int, value bool) error {
	if !g.InBounds(C(row, col)) {
		return g.boundsErr(row, col)
	}
	cell := &g.cells[g.index(row, col)]
	cell.Occupied = value
	if !value {
		cell.Color = 0
	}
	return nil
}

// Cell returns the cell at (row, col), or an empty cell if out of bounds.
func (g *Grid) Cell(row, col int) Cell {
	if !g.InBounds(C(row, col)) {
		return Empty()
	}
	return g.cells[g.index(row, col)]
}

// lock writes an occupied cell. Callers have already checked bounds.
func (g *Grid) lock(c Coord, color Color) {
	g.cells[g.index(c.Row, c.Col)] = LockedCell(color)
}

// blocked reports whether c is out of bounds or locked-occupied.
func (g *Grid) blocked(c Coord) bool {
	return !g.InBounds(c) || g.cells[g.index(c.Row, c.Col)].Occupied
}

// Fits returns true if every coordinate is in bounds and unoccupied.
func (g *Grid) Fits(cells [4]Coord) bool {
	for _, c := range cells {
		if g.blocked(c) {
			return false
		}
	}
	return true
}

// RowIsFull returns true iff every column in the row is occupied.
// Rows outside the grid are never full.
func (g *Grid) RowIsFull(row int) bool {
	if row < 0 || row >= g.rows || g.cols == 0 {
		return false
	}
	start := g.index(row, 0)
	for _, cell := range g.cells[start : start+g.cols] {
		if !cell.Occupied {
			return false
		}
	}
	return true
}

// ClearRow sets every cell in the row unoccupied.
func (g *Grid) ClearRow(row int) {
	if row < 0 || row >= g.rows {
		return
	}
	start := g.index(row, 0)
	for i := start; i < start+g.cols; i++ {
		g.cells[i] = Empty()
	}
}

// copyRow overwrites row dst with the contents of row src.
func (g *Grid) copyRow(src, dst int) {
	copy(g.cells[g.index(dst, 0):g.index(dst, g.cols)], g.cells[g.index(src, 0):g.index(src, g.cols)])
}

// OccupiedCount returns the number of locked cells in the grid.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Occupied {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
