package core

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// ChangeSet accumulates cells whose occupancy or piece membership changed,
// so a renderer can repaint only those.
type ChangeSet struct {
	cols  int
	seen  *intmap.Map[int, struct{}]
	order []Coord
}

// NewChangeSet creates an empty change set for a grid with cols columns.
func NewChangeSet(cols int) *ChangeSet {
	return &ChangeSet{
		cols: cols,
		seen: intmap.New[int, struct{}](64),
	}
}

// Mark records c as changed. Repeated marks are ignored.
func (cs *ChangeSet) Mark(c Coord) {
	key := c.Row*cs.cols + c.Col
	if _, ok := cs.seen.Get(key); ok {
		return
	}
	cs.seen.Put(key, struct{}{})
	cs.order = append(cs.order, c)
}

// MarkAll records every coordinate in cells.
func (cs *ChangeSet) MarkAll(cells []Coord) {
	for _, c := range cells {
		cs.Mark(c)
	}
}

// MarkRows records every cell in rows [from, to].
func (cs *ChangeSet) MarkRows(from, to int) {
	for row := from; row <= to; row++ {
		for col := 0; col < cs.cols; col++ {
			cs.Mark(C(row, col))
		}
	}
}

// Len returns the number of pending changes.
func (cs *ChangeSet) Len() int {
	return len(cs.order)
}

// Drain returns the pending changes in row-major order and resets the set.
func (cs *ChangeSet) Drain() []Coord {
	out := cs.order
	cs.order = nil
	cs.seen.Clear()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}
