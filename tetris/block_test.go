package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestMaskRotateClockwise(t *testing.T) {
	mask := tetris.ShapeJ.Mask()

	rotated := mask.Rotate()
	assert.Equal(t, tetris.Mask{{0, 2}, {0, 2}, {2, 2}}, rotated)
	assert.Equal(t, 3, rotated.Height())
	assert.Equal(t, 2, rotated.Width())

	// four quarter turns are the identity
	assert.Equal(t, mask, mask.Rotate().Rotate().Rotate().Rotate())
}

func TestBlockRotateAppliesOffset(t *testing.T) {
	block := tetris.NewBlock(tetris.ShapeI, tetris.Position{Row: 0, Col: 4})

	once := block.Rotate(10)
	assert.Equal(t, 4, once.Height())
	assert.Equal(t, 1, once.Width())
	// offset (-1, 1) with the row clamped at zero
	assert.Equal(t, tetris.Position{Row: 0, Col: 5}, once.Position())
	assert.Equal(t, 1, once.Rotations())

	twice := once.Rotate(10)
	assert.Equal(t, 1, twice.Height())
	assert.Equal(t, tetris.Position{Row: 1, Col: 3}, twice.Position())
	assert.Equal(t, 2, twice.Rotations())
}

func TestBlockRotateIsPure(t *testing.T) {
	block := tetris.NewBlock(tetris.ShapeL, tetris.Position{Row: 4, Col: 4})
	mask := block.Mask()

	_ = block.Rotate(10)

	assert.Equal(t, tetris.Position{Row: 4, Col: 4}, block.Position())
	assert.Equal(t, 0, block.Rotations())
	assert.Equal(t, tetris.ShapeL.Mask(), mask)
	assert.Equal(t, mask, block.Mask())
}

func TestBlockRotateClampsColumn(t *testing.T) {
	vertical := tetris.NewBlock(tetris.ShapeI, tetris.Position{Row: 5, Col: 4}).Rotate(10)
	for vertical.Position().Col < 9 {
		vertical = vertical.MoveRight()
	}

	// offset (1, -2) lands on column 7, where the horizontal mask overflows
	horizontal := vertical.Rotate(10)
	assert.Equal(t, 4, horizontal.Width())
	assert.Equal(t, tetris.Position{Row: 5, Col: 6}, horizontal.Position())

	edge := tetris.NewBlock(tetris.ShapeI, tetris.Position{Row: 5, Col: 9})
	turned := edge.Rotate(10)
	assert.Equal(t, tetris.Position{Row: 4, Col: 9}, turned.Position())

	left := tetris.NewBlock(tetris.ShapeT, tetris.Position{Row: 5, Col: -3}).Rotate(10)
	assert.Equal(t, 0, left.Position().Col)
}

func TestBlockRotateO(t *testing.T) {
	start := tetris.Position{Row: 3, Col: 4}
	block := tetris.NewBlock(tetris.ShapeO, start)

	for range 9 {
		block = block.Rotate(10)
		assert.Equal(t, tetris.ShapeO.Mask(), block.Mask())
		assert.Equal(t, start, block.Position())
	}
	assert.Equal(t, 9, block.Rotations())
}

func TestBlockMoves(t *testing.T) {
	block := tetris.NewBlock(tetris.ShapeT, tetris.Position{Row: 2, Col: 2})

	assert.Equal(t, tetris.Position{Row: 2, Col: 1}, block.MoveLeft().Position())
	assert.Equal(t, tetris.Position{Row: 2, Col: 3}, block.MoveRight().Position())
	assert.Equal(t, tetris.Position{Row: 3, Col: 2}, block.MoveDown().Position())

	// no bounds checking at the block level
	assert.Equal(t, -1, block.MoveLeft().MoveLeft().MoveLeft().Position().Col)
	assert.Equal(t, tetris.Position{Row: 2, Col: 2}, block.Position())
}

func TestBlockCellsAt(t *testing.T) {
	block := tetris.NewBlock(tetris.ShapeT, tetris.Position{Row: 0, Col: 4})

	assert.Equal(t, []tetris.Position{
		{Row: 5, Col: 1}, {Row: 5, Col: 2}, {Row: 5, Col: 3},
		{Row: 6, Col: 2},
	}, block.CellsAt(tetris.Position{Row: 5, Col: 1}))
	assert.Len(t, tetris.NewBlock(tetris.ShapeNone, tetris.Position{}).CellsAt(tetris.Position{}), 0)
}
