package core

// Lock describes a piece that was committed to the grid.
type Lock struct {
	Cells   [4]Coord
	Color   Color
	Cleared []int // Rows removed by the lock, bottom-most first
}

// TryMove translates the piece one step in dir if every destination is in
// bounds and not locked-occupied. The piece's own cells are never occupied,
// so they don't block it.
//
// A blocked downward move locks the piece and runs the line clear over the
// rows it covered; the returned Lock is only meaningful for BlockedLocked.
// Blocked sideways moves change nothing.
func TryMove(g *Grid, p *Piece, dir Direction) (MoveResult, Lock) {
	dest := Translate(p.Cells, dir)
	if g.Fits(dest) {
		p.Cells = dest
		return Moved, Lock{}
	}
	if dir != DirDown {
		return BlockedNoop, Lock{}
	}
	return BlockedLocked, LockPiece(g, p)
}

// TryRotate turns the piece clockwise about its pivot. There are no wall or
// floor kicks: a rotation that doesn't fit as-is is a no-op.
func TryRotate(g *Grid, p *Piece) MoveResult {
	dest := Rotate(p.Cells)
	if !g.Fits(dest) {
		return BlockedNoop
	}
	p.Cells = dest
	return Moved
}

// LockPiece marks the piece cells occupied and clears any rows it filled.
// Cells outside the grid are skipped.
func LockPiece(g *Grid, p *Piece) Lock {
	for _, c := range p.Cells {
		if g.InBounds(c) {
			g.lock(c, p.Color)
		}
	}
	return Lock{
		Cells:   p.Cells,
		Color:   p.Color,
		Cleared: ClearLines(g, p.Rows()),
	}
}
