package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
)

const (
	panelWidth = 170

	// Held arrow keys repeat after repeatDelay ticks, every repeatInterval.
	repeatDelay    = 12
	repeatInterval = 3
)

// spawnKeys map digit keys to the shape they spawn. Zero spawns a random
// shape.
var spawnKeys = []ebiten.Key{
	ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
}

// Game implements ebiten.Game on top of an engine session.
type Game struct {
	session *engine.Session
	config  tetris.Config
	cell    int

	// dropping is set while a hard drop is animating, one row per tick.
	dropping bool

	imgui *debugui_ebiten.ImguiBackend
}

func NewGame(session *engine.Session, cellSize int) *Game {
	return &Game{
		session: session,
		config:  session.Config(),
		cell:    max(cellSize, 4),
	}
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.RenderFrame()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.dropping {
		g.stepDrop()
		return nil
	}

	if g.imgui == nil || !g.imgui.Overlay.Input().WantCaptureKeyboard {
		g.handleInput()
	}

	g.session.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) handleInput() {
	if g.session.State().GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.session.Submit(tetris.Reset{})
		}
		return
	}

	switch {
	case repeating(ebiten.KeyArrowLeft):
		g.session.Submit(tetris.MoveLeft{})
	case repeating(ebiten.KeyArrowRight):
		g.session.Submit(tetris.MoveRight{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.session.Submit(tetris.Rotate{})
	}
	if repeating(ebiten.KeyArrowDown) {
		g.session.Submit(tetris.SoftDrop{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Submit(tetris.Reset{})
	}
	for i, key := range spawnKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Submit(tetris.Spawn{Shape: tetris.Shape(i)})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.dropping = true
	}
}

// stepDrop moves the block one row towards its drop target and locks it
// once it arrives.
func (g *Game) stepDrop() {
	state := g.session.State()
	if state.GameOver {
		g.dropping = false
		return
	}
	if state.Block.Position() == state.DropTarget {
		g.session.Play(tetris.HardDrop{})
		g.dropping = false
		return
	}
	g.session.Play(tetris.SoftDrop{})
}

func (g *Game) drawCell(screen *ebiten.Image, row, col int, v uint8, ghost bool) {
	x := float32(col * g.cell)
	y := float32(row * g.cell)
	size := float32(g.cell)

	vector.DrawFilledRect(screen, x, y, size, size, palette.GridLine, false)
	clr := palette.Cell(v)
	if v == 0 && ghost {
		clr = palette.Ghost
	}
	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, clr, false)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Background)

	state := g.session.State()
	ghost := ghostCells(state)

	for r, row := range state.Grid {
		for c, v := range row {
			g.drawCell(screen, r, c, v, ghost[tetris.Position{Row: r, Col: c}])
		}
	}

	x := g.config.Width*g.cell + 12
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", state.Score), x, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", state.Level), x, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", state.Lines), x, 50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Spawns: %d", state.Spawns), x, 70)
	ebitenutil.DebugPrintAt(screen, "arrows  move/rotate\nspace   drop\n0-5     spawn\nenter   reset\nesc     quit", x, 110)

	if state.GameOver {
		w := float32(g.config.Width * g.cell)
		h := float32(g.config.Height * g.cell)
		vector.DrawFilledRect(screen, 0, h/2-30, w, 60, palette.Background, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(w/2)-27, int(h/2)-20)
		ebitenutil.DebugPrintAt(screen, "press Enter to restart", int(w/2)-66, int(h/2))
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.config.Width*g.cell + panelWidth, g.config.Height * g.cell
}

// ghostCells returns the cells the active block would occupy at its drop
// target.
func ghostCells(state tetris.State) map[tetris.Position]bool {
	cells := make(map[tetris.Position]bool)
	if state.GameOver {
		return cells
	}
	for _, pos := range state.Block.CellsAt(state.DropTarget) {
		cells[pos] = true
	}
	return cells
}
