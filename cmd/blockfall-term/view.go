package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
)

// Every cell is two terminal columns wide so blocks look square.
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(rgb(palette.GridLine))
	textStyle   = tcell.StyleDefault.Foreground(rgb(palette.Text))
	ghostStyle  = tcell.StyleDefault.Foreground(rgb(palette.Ghost))
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// draw renders the board with a border at the top-left of the screen and
// the score panel to its right.
func draw(screen tcell.Screen, state tetris.State) {
	screen.Clear()

	height := state.Grid.Height()
	width := state.Grid.Width() * cellWidth

	for y := 0; y <= height; y++ {
		screen.SetContent(0, y, '│', nil, borderStyle)
		screen.SetContent(width+1, y, '│', nil, borderStyle)
	}
	for x := 1; x <= width; x++ {
		screen.SetContent(x, height, '─', nil, borderStyle)
	}
	screen.SetContent(0, height, '└', nil, borderStyle)
	screen.SetContent(width+1, height, '┘', nil, borderStyle)

	ghost := ghostCells(state)
	for r, row := range state.Grid {
		for c, v := range row {
			x := 1 + c*cellWidth
			switch {
			case v != 0:
				style := tcell.StyleDefault.Background(rgb(palette.Cell(v)))
				screen.SetContent(x, r, ' ', nil, style)
				screen.SetContent(x+1, r, ' ', nil, style)
			case ghost[tetris.Position{Row: r, Col: c}]:
				screen.SetContent(x, r, '[', nil, ghostStyle)
				screen.SetContent(x+1, r, ']', nil, ghostStyle)
			}
		}
	}

	px := width + 4
	drawText(screen, px, 0, textStyle, fmt.Sprintf("Score  %d", state.Score))
	drawText(screen, px, 1, textStyle, fmt.Sprintf("Level  %d", state.Level))
	drawText(screen, px, 2, textStyle, fmt.Sprintf("Lines  %d", state.Lines))
	drawText(screen, px, 3, textStyle, fmt.Sprintf("Spawns %d", state.Spawns))

	help := []string{"←/→  move", "↑    rotate", "↓    soft drop", "spc  hard drop", "0-5  spawn", "ret  reset", "q    quit"}
	for i, line := range help {
		drawText(screen, px, 5+i, borderStyle, line)
	}

	if state.GameOver {
		drawText(screen, px, 13, alertStyle, "GAME OVER")
		drawText(screen, px, 14, textStyle, "press Enter to restart")
	}

	screen.Show()
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
