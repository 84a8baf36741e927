package tetris

import "fmt"

// Board holds the frozen grid, the active block and the scoring state.
// It is not safe for concurrent use.
type Board struct {
	config Config
	source ShapeSource

	grid     Grid
	block    Block
	score    int
	spawns   int
	lines    int
	gameOver bool

	// dropTarget caches the resting position of the active block. nil means
	// it has to be recomputed.
	dropTarget *Position
}

// NewBoard creates a board and resets it, spawning the first block from
// source.
func NewBoard(config Config, source ShapeSource) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		panic("tetris: nil ShapeSource")
	}
	b := &Board{
		config: config,
		source: source,
	}
	b.Reset()
	return b, nil
}

// Reset clears the grid and all counters and spawns a new block.
func (b *Board) Reset() {
	b.grid = NewGrid(b.config.Width, b.config.Height)
	b.score = 0
	b.spawns = 0
	b.lines = 0
	b.gameOver = false
	b.NewBlock(ShapeNone)
}

// NewBlock replaces the active block with a new one at the spawn position.
// Invalid shapes are replaced by the next shape from the board's source.
// The game is over when the new block cannot descend a single row.
func (b *Board) NewBlock(shape Shape) {
	if b.gameOver {
		return
	}
	if !shape.Valid() {
		shape = b.source.NextShape()
	}
	b.block = NewBlock(shape, b.config.SpawnPosition())
	b.spawns++
	b.invalidateDropTarget()
	b.gameOver = b.block.pos == b.DropTarget()
}

// Conflicts reports whether mask placed at pos would leave the board on the
// left, right or bottom, or overlap a filled cell. Rows above the board are
// not checked.
func (b *Board) Conflicts(pos Position, mask Mask) bool {
	h, w := mask.Height(), mask.Width()
	if pos.Col < 0 || pos.Col+w > b.config.Width || pos.Row+h > b.config.Height {
		return true
	}
	for r, row := range mask {
		y := pos.Row + r
		if y < 0 {
			continue
		}
		for c, v := range row {
			if v != 0 && b.grid[y][pos.Col+c] != 0 {
				return true
			}
		}
	}
	return false
}

func (b *Board) fits(block Block) bool {
	return !b.Conflicts(block.pos, block.mask)
}

// DropTarget returns the lowest position the active block can reach by
// falling straight down.
func (b *Board) DropTarget() Position {
	if b.dropTarget == nil {
		block := b.block
		for b.fits(block.MoveDown()) {
			block = block.MoveDown()
		}
		target := block.pos
		b.dropTarget = &target
	}
	return *b.dropTarget
}

func (b *Board) invalidateDropTarget() {
	b.dropTarget = nil
}

// Perform applies a single action and returns the reward of any freeze it
// caused. Moves that would conflict are ignored. Once the game is over
// only Reset has an effect.
func (b *Board) Perform(action Action) int {
	if b.gameOver {
		if _, ok := action.(Reset); !ok {
			return 0
		}
	}

	switch a := action.(type) {
	case MoveLeft:
		b.tryMove(b.block.MoveLeft())
	case MoveRight:
		b.tryMove(b.block.MoveRight())
	case Rotate:
		b.tryMove(b.block.Rotate(b.config.Width))
	case SoftDrop:
		// The drop target does not depend on the row, so the cache stays valid.
		if next := b.block.MoveDown(); b.fits(next) {
			b.block = next
		}
	case HardDrop:
		return b.HardDrop()
	case Reset:
		b.Reset()
	case Spawn:
		b.NewBlock(a.Shape)
	case nil:
		// Action is sealed, so nil is the only value left.
	}
	return 0
}

func (b *Board) tryMove(next Block) {
	if !b.fits(next) {
		return
	}
	b.block = next
	b.invalidateDropTarget()
}

// HardDrop moves the active block to its drop target, freezes it and
// spawns a random block. It returns the freeze reward.
func (b *Board) HardDrop() int {
	if b.gameOver {
		return 0
	}
	for steps := b.DropTarget().Row - b.block.pos.Row; steps > 0; steps-- {
		b.Perform(SoftDrop{})
	}
	reward := b.Freeze()
	b.NewBlock(ShapeNone)
	return reward
}

// Freeze merges the active block into the grid, clears full rows and
// returns the reward. Clearing k rows at once is worth k*(10+k-1); leaving
// the grid empty adds ClearBonus. Once the game is over Freeze returns
// GameOverPenalty and the score is left alone.
func (b *Board) Freeze() int {
	b.grid.stamp(b.block.pos, b.block.mask)
	b.invalidateDropTarget()
	if b.gameOver {
		return GameOverPenalty
	}

	var full []int
	top := max(0, b.block.pos.Row)
	bottom := min(b.config.Height, b.block.pos.Row+b.block.Height())
	for r := top; r < bottom; r++ {
		if b.grid.RowFull(r) {
			full = append(full, r)
		}
	}
	if len(full) == 0 {
		return 0
	}

	k := len(full)
	reward := k * (10 + k - 1)
	b.removeRows(full)
	if b.grid.Empty() {
		reward += ClearBonus
	}
	b.score += reward
	b.lines += k
	return reward
}

// removeRows deletes the given ascending row indexes and pads the top of
// the grid with empty rows.
func (b *Board) removeRows(rows []int) {
	kept := make(Grid, 0, b.config.Height)
	for i := 0; i < len(rows); i++ {
		kept = append(kept, make([]uint8, b.config.Width))
	}
	next := 0
	for r, row := range b.grid {
		if next < len(rows) && rows[next] == r {
			next++
			continue
		}
		kept = append(kept, row)
	}
	b.grid = kept
}

// LoadGrid replaces the frozen grid with a copy of g, which must match the
// board dimensions and hold only valid colors. While the game is running g
// must leave the active block's cells empty. Score and counters are kept.
func (b *Board) LoadGrid(g Grid) error {
	if g.Height() != b.config.Height || g.Width() != b.config.Width {
		return fmt.Errorf("got %dx%d, want %dx%d: %w",
			g.Width(), g.Height(), b.config.Width, b.config.Height, ErrGridSize)
	}
	for r, row := range g {
		if len(row) != b.config.Width {
			return fmt.Errorf("row %d has %d cells: %w", r, len(row), ErrGridSize)
		}
		for c, v := range row {
			if v != 0 && !Shape(v).Valid() {
				return fmt.Errorf("cell (%d,%d) = %d: %w", r, c, v, ErrInvalidCell)
			}
		}
	}
	prev := b.grid
	b.grid = g.Clone()
	if !b.gameOver && !b.fits(b.block) {
		b.grid = prev
		return fmt.Errorf("%s block at %v: %w", b.block.shape, b.block.pos, ErrBlockOverlap)
	}
	b.invalidateDropTarget()
	return nil
}

func (b *Board) Config() Config {
	return b.config
}

// Block returns the active block.
func (b *Board) Block() Block {
	return b.block
}

func (b *Board) Score() int {
	return b.score
}

// Spawns returns how many blocks have been spawned since the last reset.
func (b *Board) Spawns() int {
	return b.spawns
}

// Lines returns how many rows have been cleared since the last reset.
func (b *Board) Lines() int {
	return b.lines
}

func (b *Board) Level() int {
	return b.spawns/SpawnsPerLevel + 1
}

func (b *Board) GameOver() bool {
	return b.gameOver
}

// Grid returns a copy of the frozen grid without the active block.
func (b *Board) Grid() Grid {
	return b.grid.Clone()
}

// Snapshot returns a copy of the grid with the active block drawn in.
func (b *Board) Snapshot() Grid {
	g := b.grid.Clone()
	g.stamp(b.block.pos, b.block.mask)
	return g
}

func (b *Board) String() string {
	return b.Snapshot().String()
}
