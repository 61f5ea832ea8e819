package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-blockfall/internal/games/blockfall/core"
)

func TestClearLinesTwoRows(t *testing.T) {
	g := core.MustParseGrid(
		"G...",
		".R..",
		"..Y.",
		"BBBB",
		"T..B",
		"BBBB",
		"O..B",
		".PPP",
	)
	before := g.OccupiedCount()

	cleared := core.ClearLines(g, []int{3, 4, 5, 6})

	if diff := cmp.Diff([]int{5, 3}, cleared); diff != "" {
		t.Errorf("cleared rows mismatch (-want +got):\n%s", diff)
	}

	want := board(
		"....",
		"....",
		"G...",
		".R..",
		"..Y.",
		"T..B",
		"O..B",
		".PPP",
	)
	if got := core.RenderASCII(g, nil); got != want {
		t.Errorf("board after clear:\n%s\nwant:\n%s", got, want)
	}

	if got := before - g.OccupiedCount(); got != 2*g.Cols() {
		t.Errorf("occupied count dropped by %d, want %d", got, 2*g.Cols())
	}
}

func TestClearLinesNoFullRows(t *testing.T) {
	g := core.MustParseGrid(
		"....",
		"BB.B",
		"B.BB",
	)
	before := g.Clone()

	if cleared := core.ClearLines(g, []int{1, 2}); cleared != nil {
		t.Errorf("ClearLines = %v, want nil", cleared)
	}
	if !g.Equal(before) {
		t.Error("ClearLines with no full rows must not change the grid")
	}
}

func TestClearLinesIgnoresRowsNotInBatch(t *testing.T) {
	g := core.MustParseGrid(
		"....",
		"BBBB",
		"BB.B",
	)

	if cleared := core.ClearLines(g, []int{2}); cleared != nil {
		t.Errorf("ClearLines = %v, want nil (row 1 was not a candidate)", cleared)
	}
}

func TestClearLinesDuplicateCandidates(t *testing.T) {
	g := core.MustParseGrid(
		"R...",
		"BBBB",
	)

	cleared := core.ClearLines(g, []int{1, 1, 1})

	if diff := cmp.Diff([]int{1}, cleared); diff != "" {
		t.Errorf("cleared rows mismatch (-want +got):\n%s", diff)
	}
	want := board(
		"....",
		"R...",
	)
	if got := core.RenderASCII(g, nil); got != want {
		t.Errorf("board after clear:\n%s\nwant:\n%s", got, want)
	}
}

func TestClearLinesContiguousBlock(t *testing.T) {
	g := core.MustParseGrid(
		".G..",
		"Y...",
		"BBBB",
		"BBBB",
		"BBBB",
		"BBBB",
		"..R.",
	)

	cleared := core.ClearLines(g, []int{2, 3, 4, 5})

	if diff := cmp.Diff([]int{5, 4, 3, 2}, cleared); diff != "" {
		t.Errorf("cleared rows mismatch (-want +got):\n%s", diff)
	}
	want := board(
		"....",
		"....",
		"....",
		"....",
		".G..",
		"Y...",
		"..R.",
	)
	if got := core.RenderASCII(g, nil); got != want {
		t.Errorf("board after clear:\n%s\nwant:\n%s", got, want)
	}
}

func TestClearLinesPreservesOrder(t *testing.T) {
	// Each surviving row carries a distinct color so order is observable.
	g := core.MustParseGrid(
		"B...",
		"TTTT",
		".P..",
		"OOOO",
		"..Y.",
		"GGGG",
		"...R",
	)

	core.ClearLines(g, []int{1, 3, 5})

	var colors []core.Color
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if cell := g.Cell(row, col); cell.Occupied {
				colors = append(colors, cell.Color)
			}
		}
		if g.RowIsFull(row) {
			t.Errorf("row %d is still full", row)
		}
	}

	want := []core.Color{core.ColorBlue, core.ColorPurple, core.ColorYellow, core.ColorRed}
	if diff := cmp.Diff(want, colors); diff != "" {
		t.Errorf("surviving cell order mismatch (-want +got):\n%s", diff)
	}
}
