package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

// Agent produces the actions for one block placement at a time.
type Agent interface {
	// Next returns the actions for the next placement, or nil when the
	// agent has nothing more to play.
	Next(state tetris.State, width int) []tetris.Action
}

// RandomAgent rotates the block a random number of times, slides it to a
// random column and hard drops it.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

func (a *RandomAgent) Next(state tetris.State, width int) []tetris.Action {
	var actions []tetris.Action
	for range a.rng.IntN(4) {
		actions = append(actions, tetris.Rotate{})
	}

	shift := a.rng.IntN(width) - state.Block.Position().Col
	for ; shift < 0; shift++ {
		actions = append(actions, tetris.MoveLeft{})
	}
	for ; shift > 0; shift-- {
		actions = append(actions, tetris.MoveRight{})
	}
	return append(actions, tetris.HardDrop{})
}

// ScriptAgent replays a fixed action script once, one hard drop at a time.
type ScriptAgent struct {
	actions []tetris.Action
}

func NewScriptAgent(script string) *ScriptAgent {
	return &ScriptAgent{actions: tetris.ParseScript(script)}
}

func (a *ScriptAgent) Next(tetris.State, int) []tetris.Action {
	if len(a.actions) == 0 {
		return nil
	}
	for i, action := range a.actions {
		if _, ok := action.(tetris.HardDrop); ok {
			next := a.actions[:i+1]
			a.actions = a.actions[i+1:]
			return next
		}
	}
	next := a.actions
	a.actions = nil
	return next
}
