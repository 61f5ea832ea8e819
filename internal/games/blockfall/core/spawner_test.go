package core_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-blockfall/internal/games/blockfall/core"
)

func TestClassicCatalog(t *testing.T) {
	cat := core.ClassicCatalog()

	if len(cat) != 7 {
		t.Fatalf("catalog has %d templates, want 7", len(cat))
	}
	seen := make(map[core.Shape]bool)
	for i, tmpl := range cat {
		if tmpl.Shape != core.Shape(i) {
			t.Errorf("catalog[%d] holds %v, want %v", i, tmpl.Shape, core.Shape(i))
		}
		if tmpl.Offsets[1] != core.C(0, 0) {
			t.Errorf("%v pivot offset = %v, want (0,0)", tmpl.Shape, tmpl.Offsets[1])
		}
		seen[tmpl.Shape] = true
	}
	if len(seen) != 7 {
		t.Errorf("catalog has %d distinct shapes, want 7", len(seen))
	}
}

func TestNewCatalogRecolors(t *testing.T) {
	cat := core.NewCatalog(map[core.Shape]core.Color{core.ShapeO: core.ColorRed})

	o := cat[core.ShapeO]
	if o.Color != core.ColorRed {
		t.Errorf("O color = %v, want red", o.Color)
	}
	i := cat[core.ShapeI]
	if i.Color != core.ColorBlue {
		t.Errorf("I color = %v, want default blue", i.Color)
	}

	// The classic catalog is untouched.
	classicO := core.ClassicCatalog()[core.ShapeO]
	if classicO.Color != core.ColorYellow {
		t.Errorf("classic O color = %v, want yellow", classicO.Color)
	}
}

func TestPlaceAtAnchor(t *testing.T) {
	g := core.NewGrid(20, 10)
	tmpl := core.ClassicCatalog()[core.ShapeI]

	p, ok := core.Place(g, tmpl)
	if !ok {
		t.Fatal("Place on an empty grid failed")
	}

	want := [4]core.Coord{{0, 3}, {0, 4}, {0, 5}, {0, 6}}
	if diff := cmp.Diff(want, p.Cells); diff != "" {
		t.Errorf("I spawn cells mismatch (-want +got):\n%s", diff)
	}
	if p.Color != core.ColorBlue {
		t.Errorf("I color = %v, want blue", p.Color)
	}
}

func TestSpawnBoardFull(t *testing.T) {
	// Every template covers the anchor (0,1) on a 4-wide grid.
	g := core.MustParseGrid(
		".B..",
		"....",
		"....",
		"....",
	)
	s := core.NewSpawner(core.ClassicCatalog(), rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		if p, ok := s.Spawn(g); ok || p != nil {
			t.Fatalf("Spawn into blocked anchor = %v, %v; want nil, false", p, ok)
		}
	}
}

func TestSpawnUsesWholeCatalog(t *testing.T) {
	g := core.NewGrid(20, 10)
	s := core.NewSpawner(core.ClassicCatalog(), rand.New(rand.NewSource(42)))

	counts := make(map[core.Shape]int)
	for i := 0; i < 700; i++ {
		p, ok := s.Spawn(g)
		if !ok {
			t.Fatal("Spawn on an empty grid failed")
		}
		counts[p.Shape]++
	}

	for sh := core.Shape(0); sh < core.ShapeCount; sh++ {
		if counts[sh] == 0 {
			t.Errorf("shape %v never spawned in 700 draws", sh)
		}
	}
}

func TestSpawnDeterministic(t *testing.T) {
	g := core.NewGrid(20, 10)
	a := core.NewSpawner(core.ClassicCatalog(), rand.New(rand.NewSource(99)))
	b := core.NewSpawner(core.ClassicCatalog(), rand.New(rand.NewSource(99)))

	for i := 0; i < 50; i++ {
		pa, _ := a.Spawn(g)
		pb, _ := b.Spawn(g)
		if pa.Shape != pb.Shape {
			t.Fatalf("draw %d: %v vs %v with the same seed", i, pa.Shape, pb.Shape)
		}
	}
}
