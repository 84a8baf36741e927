package tetris

// State is a read-only copy of everything a renderer needs for one frame.
type State struct {
	Grid       Grid
	Block      Block
	DropTarget Position
	Score      int
	Level      int
	Lines      int
	Spawns     int
	GameOver   bool
}

// State captures the board's current state. Apart from filling the drop
// target cache it does not modify the board.
func (b *Board) State() State {
	return State{
		Grid:       b.Snapshot(),
		Block:      b.block,
		DropTarget: b.DropTarget(),
		Score:      b.score,
		Level:      b.Level(),
		Lines:      b.lines,
		Spawns:     b.spawns,
		GameOver:   b.gameOver,
	}
}
