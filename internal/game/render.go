package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hollowlantern/mazewalk/internal/maze"
)

var (
	colBackdrop = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	colWall     = color.RGBA{R: 52, G: 60, B: 82, A: 255}
	colFloor    = color.RGBA{R: 228, G: 226, B: 218, A: 255}
	colGoal     = color.RGBA{R: 88, G: 180, B: 100, A: 255}
	colPlayer   = color.RGBA{R: 208, G: 84, B: 60, A: 255}
	colHudText  = color.RGBA{R: 200, G: 200, B: 205, A: 255}
	colWinText  = color.RGBA{R: 120, G: 220, B: 130, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackdrop)
	g.drawMaze(screen)
	g.drawGoal(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
}

func (g *Game) drawMaze(screen *ebiten.Image) {
	grid := g.session.Grid()
	cp := float32(g.cfg.CellPixels)

	// Floor slab first, then wall cells on top.
	vector.FillRect(screen, borderWidth, borderWidth,
		float32(grid.Width())*cp, float32(grid.Height())*cp, colFloor, false)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.At(x, y) != maze.Wall {
				continue
			}
			vector.FillRect(screen,
				float32(borderWidth)+float32(x)*cp,
				float32(borderWidth)+float32(y)*cp,
				cp, cp, colWall, false)
		}
	}
}

func (g *Game) drawGoal(screen *ebiten.Image) {
	cp := float32(g.cfg.CellPixels)
	gx, gy := g.cellCenter(g.session.Grid().Goal())
	inset := cp * 0.2
	vector.FillRect(screen, gx-cp/2+inset, gy-cp/2+inset, cp-2*inset, cp-2*inset, colGoal, false)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	r := float32(g.cfg.CellPixels) * 0.32
	vector.FillCircle(screen, g.anim.x, g.anim.y, r, colPlayer, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	baseY := float64(g.height - hudHeight)

	var line string
	var col color.RGBA
	if g.won {
		line = fmt.Sprintf("goal reached in %d steps - press R for a new maze", g.session.Steps())
		col = colWinText
	} else {
		line = fmt.Sprintf("steps: %d    arrows/WASD move    R new maze    C copy snapshot", g.session.Steps())
		col = colHudText
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(borderWidth, baseY+8)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, line, g.face, op)
}
