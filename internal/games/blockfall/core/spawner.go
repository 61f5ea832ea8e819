package core

import "math/rand"

// Spawner places new pieces at the top-center of the grid.
type Spawner struct {
	catalog Catalog
	rng     *rand.Rand
}

// NewSpawner creates a spawner drawing uniformly from catalog.
func NewSpawner(catalog Catalog, rng *rand.Rand) *Spawner {
	return &Spawner{catalog: catalog, rng: rng}
}

// Anchor returns where the pivot of a new piece is placed.
func Anchor(g *Grid) Coord {
	return C(0, g.Cols()/2-1)
}

// Spawn picks a template uniformly at random and places it at the anchor.
// It returns false if any target cell is occupied or off the grid, which
// means the board is full.
func (s *Spawner) Spawn(g *Grid) (*Piece, bool) {
	t := s.catalog[s.rng.Intn(len(s.catalog))]
	return Place(g, t)
}

// Place puts a specific template at the anchor, subject to the same rules
// as Spawn.
func Place(g *Grid, t Template) (*Piece, bool) {
	p := NewPiece(t, Anchor(g))
	if !g.Fits(p.Cells) {
		return nil, false
	}
	return p, true
}
