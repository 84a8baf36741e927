package tetris

//go:generate go tool stringer -type=Shape -trimprefix=Shape

// Shape identifies a piece. Its numeric value doubles as the color id
// written into grid cells when the piece is frozen.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeT
)

// Shapes lists every playable shape in catalog order.
var Shapes = []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeT}

var baseMasks = map[Shape][][]uint8{
	ShapeI: {{1, 1, 1, 1}},
	ShapeJ: {{1, 1, 1}, {0, 0, 1}},
	ShapeL: {{1, 1, 1}, {1, 0, 0}},
	ShapeO: {{1, 1}, {1, 1}},
	ShapeT: {{1, 1, 1}, {0, 1, 0}},
}

// rotationOffsets are applied to the top-left corner after each clockwise
// turn, cycling through the table.
var rotationOffsets = map[Shape][]Position{
	ShapeI: {{-1, 1}, {1, -2}, {-2, 2}, {2, -1}},
	ShapeJ: {{-1, 0}, {0, 0}, {0, 1}, {1, -1}},
	ShapeL: {{-1, 0}, {0, 0}, {0, 1}, {1, -1}},
	ShapeO: {{0, 0}},
	ShapeT: {{-1, 0}, {0, 0}, {0, 1}, {1, -1}},
}

// Valid reports whether s is one of the playable shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeT
}

// Color returns the grid value used for cells of this shape.
func (s Shape) Color() uint8 {
	return uint8(s)
}

// Mask returns a fresh copy of the shape's unrotated mask, with every
// occupied cell set to the shape's color. Invalid shapes yield nil.
func (s Shape) Mask() Mask {
	base, ok := baseMasks[s]
	if !ok {
		return nil
	}
	mask := make(Mask, len(base))
	for r, row := range base {
		mask[r] = make([]uint8, len(row))
		for c, v := range row {
			mask[r][c] = v * s.Color()
		}
	}
	return mask
}

// RotationOffset returns the correction applied on the n-th rotation
// (zero-based) of a block of this shape.
func (s Shape) RotationOffset(n int) Position {
	table := rotationOffsets[s]
	if len(table) == 0 {
		return Position{}
	}
	return table[n%len(table)]
}

// ParseShape maps a single-letter shape name ("I", "J", "L", "O", "T") to
// its Shape. Matching is case sensitive.
func ParseShape(name string) (Shape, bool) {
	for _, s := range Shapes {
		if s.String() == name {
			return s, true
		}
	}
	return ShapeNone, false
}
