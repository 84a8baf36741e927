package tetris

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrGridSize     = errors.New("grid dimensions do not match board")
	ErrInvalidCell  = errors.New("grid cell is not a valid color")
	ErrBlockOverlap = errors.New("grid overlaps the active block")
)

// Mask is a piece's cell matrix: zero is empty, nonzero is a color id.
type Mask [][]uint8

func (m Mask) Height() int {
	return len(m)
}

func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Rotate returns a new mask turned 90° clockwise. The receiver is left untouched.
func (m Mask) Rotate() Mask {
	h, w := m.Height(), m.Width()
	rotated := make(Mask, w)
	for r := range rotated {
		rotated[r] = make([]uint8, h)
		for c := range h {
			rotated[r][c] = m[h-1-c][r]
		}
	}
	return rotated
}

// Grid is the board's row-major matrix of color ids.
type Grid [][]uint8

// NewGrid allocates an empty grid.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for r := range g {
		g[r] = make([]uint8, width)
	}
	return g
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for r, row := range g {
		c[r] = append([]uint8(nil), row...)
	}
	return c
}

// RowFull reports whether every cell of row r is filled.
func (g Grid) RowFull(r int) bool {
	for _, v := range g[r] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Empty reports whether no cell of the grid is filled.
func (g Grid) Empty() bool {
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// stamp writes the nonzero cells of mask at pos, overwriting what was there.
// Cells that fall outside the grid are dropped.
func (g Grid) stamp(pos Position, mask Mask) {
	for r, row := range mask {
		y := pos.Row + r
		if y < 0 || y >= len(g) {
			continue
		}
		for c, v := range row {
			x := pos.Col + c
			if v == 0 || x < 0 || x >= len(g[y]) {
				continue
			}
			g[y][x] = v
		}
	}
}

// String renders the grid one row per line, '.' for empty cells and the
// shape letter for filled ones.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(Shape(v).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid reads the format produced by Grid.String. Blank lines are
// skipped; every remaining line must have the same length. Cells are '.'
// for empty, a shape letter, or a digit 1-5.
func ParseGrid(text string) (Grid, error) {
	var g Grid
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(g) > 0 && len(line) != g.Width() {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", n+1, len(line), g.Width(), ErrGridSize)
		}
		row := make([]uint8, len(line))
		for i := 0; i < len(line); i++ {
			v, err := parseCell(line[i])
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", n+1, i+1, err)
			}
			row[i] = v
		}
		g = append(g, row)
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrGridSize)
	}
	return g, nil
}

func parseCell(ch byte) (uint8, error) {
	switch {
	case ch == '.' || ch == '0':
		return 0, nil
	case ch >= '1' && ch <= '5':
		return ch - '0', nil
	}
	if s, ok := ParseShape(string(ch)); ok {
		return s.Color(), nil
	}
	return 0, fmt.Errorf("%q: %w", ch, ErrInvalidCell)
}
