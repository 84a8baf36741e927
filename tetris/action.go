package tetris

// Action is a single command consumed by Board.Perform. The set of
// implementations is closed: MoveLeft, MoveRight, Rotate, SoftDrop,
// HardDrop, Reset and Spawn.
type Action interface {
	action()
}

type (
	MoveLeft  struct{}
	MoveRight struct{}
	Rotate    struct{}
	// SoftDrop moves the block down one row without freezing it.
	SoftDrop struct{}
	// HardDrop moves the block to its drop target, freezes it and spawns
	// the next block.
	HardDrop struct{}
	Reset    struct{}
	// Spawn replaces the active block with a new one of the given shape.
	// An invalid shape, including ShapeNone, spawns a random shape.
	Spawn struct {
		Shape Shape
	}
)

func (MoveLeft) action()  {}
func (MoveRight) action() {}
func (Rotate) action()    {}
func (SoftDrop) action()  {}
func (HardDrop) action()  {}
func (Reset) action()     {}
func (Spawn) action()     {}

// ParseAction decodes a one-character action code:
//
//	<  move left      >  move right     @  rotate
//	v  soft drop      V  hard drop      .  reset
//	I J L O T  spawn that shape
//
// Any other code spawns a random shape.
func ParseAction(code string) Action {
	switch code {
	case "<":
		return MoveLeft{}
	case ">":
		return MoveRight{}
	case "@":
		return Rotate{}
	case "v":
		return SoftDrop{}
	case "V":
		return HardDrop{}
	case ".":
		return Reset{}
	}
	shape, _ := ParseShape(code)
	return Spawn{Shape: shape}
}

// ParseScript decodes a string of action codes, one per rune. Whitespace
// is ignored.
func ParseScript(script string) []Action {
	actions := make([]Action, 0, len(script))
	for _, r := range script {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		actions = append(actions, ParseAction(string(r)))
	}
	return actions
}
