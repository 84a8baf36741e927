// Package setup holds the command line flags shared by the blockfall
// commands and turns them into a board and session.
package setup

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// Flags are the board and session settings common to every driver.
type Flags struct {
	Width   int
	Height  int
	Seed    uint64
	Bag     bool
	Gravity time.Duration
	Speedup float64
	Preset  string
}

// Register defines the shared flags on fs.
func Register(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.IntVar(&f.Width, "width", tetris.DefaultWidth, "Board width in cells.")
	fs.IntVar(&f.Height, "height", tetris.DefaultHeight, "Board height in cells.")
	fs.Uint64Var(&f.Seed, "seed", uint64(time.Now().UnixNano()), "Seed for the shape generator.")
	fs.BoolVar(&f.Bag, "bag", false, "Deal shapes from a shuffled bag instead of uniformly at random.")
	fs.DurationVar(&f.Gravity, "gravity", engine.DefaultGravity, "Automatic descent interval at level 1.")
	fs.Float64Var(&f.Speedup, "speedup", engine.DefaultSpeedup, "Gravity speed increase per level.")
	fs.StringVar(&f.Preset, "preset", "", "Path to a grid file loaded into the board at start.")
	return f
}

func (f *Flags) Config() tetris.Config {
	return tetris.Config{Width: f.Width, Height: f.Height}
}

func (f *Flags) Source() tetris.ShapeSource {
	if f.Bag {
		return tetris.NewBagSource(f.Seed)
	}
	return tetris.NewRandomSource(f.Seed)
}

func (f *Flags) Options() engine.Options {
	return engine.Options{
		Gravity: f.Gravity,
		Speedup: f.Speedup,
	}
}

// NewBoard builds a board from the flags and loads the preset grid, if any.
func (f *Flags) NewBoard() (*tetris.Board, error) {
	board, err := tetris.NewBoard(f.Config(), f.Source())
	if err != nil {
		return nil, err
	}
	if f.Preset == "" {
		return board, nil
	}

	data, err := os.ReadFile(f.Preset)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	grid, err := tetris.ParseGrid(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", f.Preset, err)
	}
	if err := board.LoadGrid(grid); err != nil {
		return nil, fmt.Errorf("load preset %s: %w", f.Preset, err)
	}
	return board, nil
}

// NewSession builds a board and wraps it in a session.
func (f *Flags) NewSession() (*engine.Session, error) {
	board, err := f.NewBoard()
	if err != nil {
		return nil, err
	}
	return engine.NewSession(board, f.Options()), nil
}
