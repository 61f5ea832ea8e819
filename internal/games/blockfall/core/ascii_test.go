package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-blockfall/internal/games/blockfall/core"
)

func TestParseGridRoundTrip(t *testing.T) {
	rows := []string{
		"......",
		"..T...",
		"BTTOO.",
		"RRGGYY",
	}

	g, err := core.ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if got, want := core.RenderASCII(g, nil), board(rows...); got != want {
		t.Errorf("RenderASCII:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseGridHashIsBlue(t *testing.T) {
	g := core.MustParseGrid("#.")
	if cell := g.Cell(0, 0); !cell.Occupied || cell.Color != core.ColorBlue {
		t.Errorf("cell (0,0) = %+v, want occupied blue", cell)
	}
}

func TestParseGridErrors(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
	}{
		{"ragged", []string{"....", "..."}},
		{"unknown char", []string{"..x."}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.ParseGrid(tc.rows); err == nil {
				t.Errorf("ParseGrid(%q) should fail", tc.rows)
			}
		})
	}
}

func TestRenderASCIIWithPiece(t *testing.T) {
	g := core.MustParseGrid(
		"....",
		"....",
		"G...",
	)
	tmpl := core.ClassicCatalog()[core.ShapeO]
	p, ok := core.Place(g, tmpl)
	if !ok {
		t.Fatal("Place failed")
	}

	want := board(
		".@@.",
		".@@.",
		"G...",
	)
	if got := core.RenderASCII(g, p); got != want {
		t.Errorf("RenderASCII:\n%s\nwant:\n%s", got, want)
	}
}

func TestChangeSetDrain(t *testing.T) {
	cs := core.NewChangeSet(4)
	cs.Mark(core.C(2, 1))
	cs.Mark(core.C(0, 3))
	cs.Mark(core.C(2, 1))
	cs.MarkRows(1, 1)

	if cs.Len() != 6 {
		t.Errorf("Len() = %d, want 6", cs.Len())
	}

	got := cs.Drain()
	for i := 1; i < len(got); i++ {
		if !got[i-1].Less(got[i]) {
			t.Fatalf("Drain() not in row-major order: %v", got)
		}
	}
	if len(cs.Drain()) != 0 {
		t.Error("second Drain() should be empty")
	}
}
