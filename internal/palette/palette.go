// Package palette maps grid color ids to display colors.
package palette

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

var (
	Background = color.RGBA{0x14, 0x14, 0x1e, 0xff}
	GridLine   = color.RGBA{0x2a, 0x2a, 0x3a, 0xff}
	Ghost      = color.RGBA{0x50, 0x50, 0x64, 0xff}
	Text       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
)

var cells = [...]color.RGBA{
	tetris.ShapeNone: Background,
	tetris.ShapeI:    {0x00, 0xf0, 0xf0, 0xff},
	tetris.ShapeJ:    {0x00, 0x00, 0xf0, 0xff},
	tetris.ShapeL:    {0xf0, 0xa0, 0x00, 0xff},
	tetris.ShapeO:    {0xf0, 0xf0, 0x00, 0xff},
	tetris.ShapeT:    {0xa0, 0x00, 0xf0, 0xff},
}

// Cell returns the color of a grid cell value. Unknown values draw as
// background.
func Cell(v uint8) color.RGBA {
	if int(v) >= len(cells) {
		return Background
	}
	return cells[v]
}
