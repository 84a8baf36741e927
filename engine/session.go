package engine

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Outcome describes what a single action did to the board.
type Outcome struct {
	// Locked is set when the action froze the active block.
	Locked bool
	// Reward is the freeze reward, including GameOverPenalty when the
	// following spawn ended the game.
	Reward int
	// Rows is the number of rows cleared by the freeze.
	Rows int
	// GameOver is set when the action ended the game.
	GameOver bool
}

// Listener is notified every time a block is frozen into the grid: after
// each lock, and when a spawned block ends the game.
type Listener interface {
	Locked(o Outcome)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(o Outcome)

func (f ListenerFunc) Locked(o Outcome) {
	f(o)
}

// Options configures a Session.
type Options struct {
	Gravity time.Duration
	Speedup float64
	// Paused disables automatic descent.
	Paused bool
}

func DefaultOptions() Options {
	return Options{
		Gravity: DefaultGravity,
		Speedup: DefaultSpeedup,
	}
}

// Session drives a board the way an interactive game does: input is queued
// and applied once per frame, gravity pulls the block down, and a soft drop
// onto the drop target locks the block.
type Session struct {
	board     *tetris.Board
	queue     *Queue
	gravity   Gravity
	paused    bool
	stats     *Stats
	listeners []Listener
}

func NewSession(board *tetris.Board, opts Options) *Session {
	s := &Session{
		board: board,
		queue: NewQueue(),
		gravity: Gravity{
			Interval: opts.Gravity,
			Speedup:  opts.Speedup,
		},
		paused: opts.Paused,
		stats:  NewStats(),
	}
	s.stats.Games = 1
	s.stats.recordSpawn(board.Block().Shape())
	return s
}

// Listen registers a listener for lock events.
func (s *Session) Listen(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Submit queues an action for the next Update. Safe for concurrent use.
func (s *Session) Submit(action tetris.Action) {
	s.queue.Push(action)
}

// Update applies queued actions, then dt seconds of gravity.
func (s *Session) Update(dt float64) {
	s.queue.Flush(func(action tetris.Action) {
		s.Play(action)
	})
	if s.paused || s.board.GameOver() {
		return
	}
	for range s.gravity.Advance(dt, s.board.Level()) {
		s.Play(tetris.SoftDrop{})
		if s.board.GameOver() {
			break
		}
	}
}

// Play applies one action immediately.
func (s *Session) Play(action tetris.Action) Outcome {
	switch action.(type) {
	case tetris.Reset:
		s.board.Reset()
		s.gravity.Reset()
		s.stats.Games++
		s.stats.recordSpawn(s.board.Block().Shape())
		return Outcome{}
	case tetris.HardDrop:
		if s.board.GameOver() {
			return Outcome{GameOver: true}
		}
		for steps := s.board.DropTarget().Row - s.board.Block().Position().Row; steps > 0; steps-- {
			s.board.Perform(tetris.SoftDrop{})
		}
		return s.lock()
	case tetris.SoftDrop:
		if !s.board.GameOver() && s.board.Block().Position() == s.board.DropTarget() {
			return s.lock()
		}
	}

	spawns := s.board.Spawns()
	over := s.board.GameOver()
	s.board.Perform(action)
	if s.board.Spawns() != spawns {
		s.stats.recordSpawn(s.board.Block().Shape())
	}

	o := Outcome{GameOver: s.board.GameOver()}
	if o.GameOver && !over {
		// A spawn ended the game. Freeze it as lock does so the penalty
		// is reported.
		o.Reward = s.board.Freeze()
		s.notify(o)
	}
	return o
}

// lock freezes the active block and spawns the next one. When the spawn
// ends the game the new block is frozen as well and the penalty is added
// to the reward.
func (s *Session) lock() Outcome {
	lines := s.board.Lines()
	o := Outcome{Locked: true}
	o.Reward = s.board.Freeze()
	o.Rows = s.board.Lines() - lines

	s.board.NewBlock(tetris.ShapeNone)
	s.stats.recordSpawn(s.board.Block().Shape())
	if s.board.GameOver() {
		o.GameOver = true
		o.Reward += s.board.Freeze()
	}
	s.stats.recordLock(o, s.board.Score())
	s.notify(o)
	return o
}

func (s *Session) notify(o Outcome) {
	for _, l := range s.listeners {
		l.Locked(o)
	}
}

// Pause stops or resumes automatic descent.
func (s *Session) Pause(paused bool) {
	s.paused = paused
	s.gravity.Reset()
}

func (s *Session) Paused() bool {
	return s.paused
}

func (s *Session) Config() tetris.Config {
	return s.board.Config()
}

// State returns the board's read-only state.
func (s *Session) State() tetris.State {
	return s.board.State()
}

func (s *Session) Stats() *Stats {
	return s.stats
}

// Pending returns the number of queued actions.
func (s *Session) Pending() int {
	return s.queue.Len()
}
