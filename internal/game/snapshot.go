package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	log "github.com/sirupsen/logrus"

	"github.com/hollowlantern/mazewalk/internal/maze"
)

// sessionSnapshot renders the current walk as shareable text: a header with
// the layout seed and step count, then the maze with the player ('@') and
// goal ('X') overlaid.
func sessionSnapshot(s *maze.Session, seed int64) string {
	grid := s.Grid()

	var b strings.Builder
	fmt.Fprintf(&b, "mazewalk %dx%d seed=%d steps=%d\n", grid.Width(), grid.Height(), seed, s.Steps())
	b.WriteString(asciiOverlay(s))
	return b.String()
}

// asciiOverlay draws the grid two characters per cell, with the player and
// goal markers on top of the floor.
func asciiOverlay(s *maze.Session) string {
	grid := s.Grid()
	goal := grid.Goal()

	var b strings.Builder
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			switch {
			case s.Pos() == (maze.Coord{X: x, Y: y}):
				b.WriteString("@ ")
			case goal == (maze.Coord{X: x, Y: y}):
				b.WriteString("X ")
			case grid.At(x, y) == maze.Wall:
				b.WriteString("##")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// copySnapshot puts the session snapshot on the system clipboard. Clipboard
// failure is logged and otherwise ignored; the game keeps running.
func (g *Game) copySnapshot() {
	snap := sessionSnapshot(g.session, g.seed)
	if err := clipboard.WriteAll(snap); err != nil {
		log.Warnf("clipboard copy failed: %v", err)
		return
	}
	log.Info("session snapshot copied to clipboard")
}
