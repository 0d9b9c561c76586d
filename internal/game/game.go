package game

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hollowlantern/mazewalk/internal/maze"
)

// borderWidth is the pixel gap between the window edge and the maze.
const borderWidth = 16

// hudHeight is the text strip below the maze.
const hudHeight = 34

// dirKeys maps movement keys to directions. Arrows and WASD are equivalent.
var dirKeys = map[ebiten.Key]maze.Direction{
	ebiten.KeyArrowUp:    maze.DirUp,
	ebiten.KeyW:          maze.DirUp,
	ebiten.KeyArrowDown:  maze.DirDown,
	ebiten.KeyS:          maze.DirDown,
	ebiten.KeyArrowLeft:  maze.DirLeft,
	ebiten.KeyA:          maze.DirLeft,
	ebiten.KeyArrowRight: maze.DirRight,
	ebiten.KeyD:          maze.DirRight,
}

// actionKeys are the non-movement keys, also edge-triggered.
var actionKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyC}

type Game struct {
	cfg     Config
	session *maze.Session
	seed    int64 // seed of the current layout, shown in snapshots

	width  int // window pixels
	height int

	prevKeys map[ebiten.Key]bool
	anim     playerAnim
	won      bool

	face *text.GoTextFace
}

// New builds the shell around a freshly generated maze.
func New(cfg Config) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load HUD font: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		width:    borderWidth*2 + cfg.MazeWidth*cfg.CellPixels,
		height:   borderWidth*2 + cfg.MazeHeight*cfg.CellPixels + hudHeight,
		prevKeys: make(map[ebiten.Key]bool),
		face:     &text.GoTextFace{Source: src, Size: 13},
	}
	if err := g.regenerate(initialSeed(cfg)); err != nil {
		return nil, err
	}
	return g, nil
}

func initialSeed(cfg Config) int64 {
	if cfg.HasSeed {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// WindowSize returns the fixed window dimensions in pixels.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

// regenerate replaces the maze and resets the walk.
func (g *Game) regenerate(seed int64) error {
	grid, err := maze.GenerateSeeded(g.cfg.MazeWidth, g.cfg.MazeHeight, seed)
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}
	g.seed = seed
	g.session = maze.NewSession(grid)
	g.won = false
	px, py := g.cellCenter(g.session.Pos())
	g.anim.jumpTo(px, py)
	log.WithFields(log.Fields{
		"width":  grid.Width(),
		"height": grid.Height(),
		"seed":   seed,
	}).Info("maze generated")
	return nil
}

// cellCenter converts a grid coordinate to the pixel center of its cell.
func (g *Game) cellCenter(c maze.Coord) (float32, float32) {
	cp := float32(g.cfg.CellPixels)
	return float32(borderWidth) + (float32(c.X)+0.5)*cp,
		float32(borderWidth) + (float32(c.Y)+0.5)*cp
}

func (g *Game) Update() error {
	g.handleInput()
	g.anim.update(1)
	return nil
}

// handleInput processes all keys edge-triggered, so a held key produces
// exactly one move per press.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	for k, d := range dirKeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		if currentKeys[k] && !g.prevKeys[k] {
			g.tryMove(d)
		}
	}

	for _, k := range actionKeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
	}
	if currentKeys[ebiten.KeyR] && !g.prevKeys[ebiten.KeyR] {
		if err := g.regenerate(time.Now().UnixNano()); err != nil {
			log.Errorf("regenerate: %v", err)
		}
	}
	if currentKeys[ebiten.KeyC] && !g.prevKeys[ebiten.KeyC] {
		g.copySnapshot()
	}

	g.prevKeys = currentKeys
}

// tryMove feeds one directional intent to the session. Rejected intents are
// dropped, matching the feel of bumping into a wall.
func (g *Game) tryMove(d maze.Direction) {
	if g.won {
		return
	}
	if !g.session.Move(d) {
		return
	}
	px, py := g.cellCenter(g.session.Pos())
	g.anim.slideTo(px, py)
	if g.session.AtGoal() {
		g.won = true
		log.WithFields(log.Fields{
			"steps": g.session.Steps(),
			"seed":  g.seed,
		}).Info("goal reached")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
