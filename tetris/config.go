package tetris

import (
	"errors"
	"fmt"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20

	// GameOverPenalty is the reward returned by Freeze once the game is over.
	GameOverPenalty = -1000
	// ClearBonus is added when a line clear leaves the grid empty.
	ClearBonus = 100
	// SpawnsPerLevel is how many spawned blocks advance the level by one.
	SpawnsPerLevel = 50
)

var ErrInvalidConfig = errors.New("invalid board config")

// Config holds the board dimensions.
type Config struct {
	Width  int
	Height int
}

func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate checks that every shape fits on the board in both orientations
// when spawned at SpawnPosition.
func (c Config) Validate() error {
	if c.Width < 6 || c.Height < 4 {
		return fmt.Errorf("%w: %dx%d, need at least 6x4", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// SpawnPosition is the top-left corner of every new block.
func (c Config) SpawnPosition() Position {
	return Position{Row: 0, Col: c.Width/2 - 1}
}
