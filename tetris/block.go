package tetris

// Block is the falling piece. It is an immutable value: every transform
// returns a new Block, and masks are never written after construction, so
// copies may share them.
type Block struct {
	shape     Shape
	mask      Mask
	pos       Position
	rotations int
}

// NewBlock creates an unrotated block of the given shape with its top-left
// corner at pos.
func NewBlock(shape Shape, pos Position) Block {
	return Block{
		shape: shape,
		mask:  shape.Mask(),
		pos:   pos,
	}
}

func (b Block) Shape() Shape {
	return b.shape
}

// Mask returns the block's current orientation. Callers must not modify it.
func (b Block) Mask() Mask {
	return b.mask
}

// Position returns the block's top-left corner.
func (b Block) Position() Position {
	return b.pos
}

// Rotations returns how many times the block has been turned.
func (b Block) Rotations() int {
	return b.rotations
}

func (b Block) Width() int {
	return b.mask.Width()
}

func (b Block) Height() int {
	return b.mask.Height()
}

// Rotate returns the block turned 90° clockwise. The shape's next rotation
// offset is added to the top-left corner, then the row is clamped to be
// non-negative and the column to keep the rotated mask within boardWidth.
// Collisions with filled cells are not checked here.
func (b Block) Rotate(boardWidth int) Block {
	mask := b.mask.Rotate()
	pos := b.pos.Add(b.shape.RotationOffset(b.rotations))
	pos.Row = max(0, pos.Row)
	pos.Col = min(max(0, pos.Col), boardWidth-mask.Width())
	return Block{
		shape:     b.shape,
		mask:      mask,
		pos:       pos,
		rotations: b.rotations + 1,
	}
}

func (b Block) MoveLeft() Block {
	b.pos = b.pos.Left()
	return b
}

func (b Block) MoveRight() Block {
	b.pos = b.pos.Right()
	return b
}

func (b Block) MoveDown() Block {
	b.pos = b.pos.Down()
	return b
}

// CellsAt lists the board cells the block would fill with its top-left
// corner at pos, row by row.
func (b Block) CellsAt(pos Position) []Position {
	var cells []Position
	for y, row := range b.mask {
		for x, v := range row {
			if v != 0 {
				cells = append(cells, pos.Add(Position{Row: y, Col: x}))
			}
		}
	}
	return cells
}
