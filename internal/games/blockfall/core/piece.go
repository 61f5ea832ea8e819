package core

// pivotIndex is the position of the rotation pivot in a piece's cell list.
const pivotIndex = 1

// Piece is the active, player-controlled piece. Cells holds grid
// coordinates, never occupancy; Cells[1] is the rotation pivot.
type Piece struct {
	Shape Shape
	Color Color
	Cells [4]Coord
}

// NewPiece places a template so that its pivot sits on anchor.
func NewPiece(t Template, anchor Coord) *Piece {
	p := &Piece{Shape: t.Shape, Color: t.Color}
	for i, off := range t.Offsets {
		p.Cells[i] = anchor.AddCoord(off)
	}
	return p
}

// Pivot returns the pivot coordinate.
func (p *Piece) Pivot() Coord {
	return p.Cells[pivotIndex]
}

// CellSlice returns a copy of the piece cells as a slice.
func (p *Piece) CellSlice() []Coord {
	out := make([]Coord, len(p.Cells))
	copy(out, p.Cells[:])
	return out
}

// Rows returns the distinct rows the piece occupies, in cell order.
func (p *Piece) Rows() []int {
	rows := make([]int, 0, len(p.Cells))
	for _, c := range p.Cells {
		seen := false
		for _, r := range rows {
			if r == c.Row {
				seen = true
				break
			}
		}
		if !seen {
			rows = append(rows, c.Row)
		}
	}
	return rows
}

// Contains returns true if the piece covers c.
func (p *Piece) Contains(c Coord) bool {
	for _, pc := range p.Cells {
		if pc == c {
			return true
		}
	}
	return false
}

// Translate returns the cells shifted one step in dir.
func Translate(cells [4]Coord, dir Direction) [4]Coord {
	dr, dc := dir.Delta()
	var out [4]Coord
	for i, c := range cells {
		out[i] = c.Add(dr, dc)
	}
	return out
}

// Rotate returns the cells turned 90 degrees clockwise about cells[1].
// An offset (dr, dc) from the pivot becomes (dc, -dr); the pivot stays put.
func Rotate(cells [4]Coord) [4]Coord {
	pivot := cells[pivotIndex]
	var out [4]Coord
	for i, c := range cells {
		d := c.Sub(pivot)
		out[i] = pivot.Add(d.Col, -d.Row)
	}
	return out
}
