package maze

import "strings"

// Cell is the state of a single grid square.
type Cell uint8

const (
	Wall Cell = iota
	Path
)

// Coord is a grid position, x across, y down.
type Coord struct {
	X int
	Y int
}

// Direction is a single-step movement intent.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	directionCount // sentinel
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// delta returns the unit offset for a direction.
func (d Direction) delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Step returns the neighboring coordinate one cell in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Grid is a carved maze. It is written only during generation and read-only
// afterwards; there are no exported mutators.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major, index y*width+x
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Start is the fixed entry cell.
func (g *Grid) Start() Coord { return Coord{X: 1, Y: 1} }

// Goal is the fixed exit cell in the opposite corner.
func (g *Grid) Goal() Coord { return Coord{X: g.width - 2, Y: g.height - 2} }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell at (x, y). Out-of-bounds lookups return Wall, so the
// world outside the grid behaves like a solid border.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// CanMoveTo reports whether a player may occupy the given coordinate:
// in bounds and on a Path cell. Out-of-bounds targets are a normal input
// (the player can try to walk off any edge) and answer false.
func (g *Grid) CanMoveTo(c Coord) bool {
	return g.At(c.X, c.Y) == Path
}

// PathCells counts the carved cells.
func (g *Grid) PathCells() int {
	n := 0
	for _, c := range g.cells {
		if c == Path {
			n++
		}
	}
	return n
}

// set is generation-internal. The grid is immutable once Generate returns.
func (g *Grid) set(x, y int, c Cell) {
	g.cells[y*g.width+x] = c
}

// String renders the maze as ASCII, two characters per cell so corridors
// keep a roughly square aspect in a terminal.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width*2 + 1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.At(x, y) == Wall {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
