package main

import (
	"testing"

	"github.com/hollowlantern/mazewalk/internal/maze"
)

func TestCollectStats_BucketsCoverEveryPathCell(t *testing.T) {
	g, err := maze.GenerateSeeded(21, 21, 7)
	if err != nil {
		t.Fatal(err)
	}
	s := collectStats(g, 7)
	if s.pathCells != g.PathCells() {
		t.Fatalf("stats counted %d path cells, grid has %d", s.pathCells, g.PathCells())
	}
	if got := s.deadEnds + s.corridors + s.junctions; got != s.pathCells {
		t.Fatalf("buckets sum to %d, want %d", got, s.pathCells)
	}
}

func TestCollectStats_DegreesSumMatchesTree(t *testing.T) {
	// In a perfect maze the path cells form a tree, so neighbor degrees sum
	// to twice the edge count: 2*(cells-1).
	g, err := maze.GenerateSeeded(31, 15, 3)
	if err != nil {
		t.Fatal(err)
	}
	sum := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) == maze.Path {
				sum += degree(g, x, y)
			}
		}
	}
	if want := 2 * (g.PathCells() - 1); sum != want {
		t.Fatalf("degree sum %d, want %d", sum, want)
	}
}

func TestCollectStats_HasDeadEndsAndJunctions(t *testing.T) {
	// Any non-trivial perfect maze has at least one dead end; junctions
	// appear in practice on anything beyond a single corridor.
	g, err := maze.GenerateSeeded(21, 21, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := collectStats(g, 1)
	if s.deadEnds == 0 {
		t.Fatal("expected at least one dead end")
	}
	if s.corridors == 0 {
		t.Fatal("expected corridor cells")
	}
}

func TestDegree_CountsOnlyCarvedNeighbors(t *testing.T) {
	g, err := maze.GenerateSeeded(5, 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	// The start cell of any generated maze has at least one carved
	// neighbor and at most four.
	d := degree(g, 1, 1)
	if d < 1 || d > 4 {
		t.Fatalf("start cell degree %d out of range", d)
	}
}
