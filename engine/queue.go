package engine

import (
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// Queue buffers actions captured by an input handler until the game loop
// is ready to apply them. Push may be called from any goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []tetris.Action
	flushed []tetris.Action
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an action to the buffer.
func (q *Queue) Push(action tetris.Action) {
	q.mu.Lock()
	q.pending = append(q.pending, action)
	q.mu.Unlock()
}

// Len returns the number of buffered actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush hands every buffered action to apply in arrival order and empties
// the buffer. Actions pushed while apply runs are kept for the next Flush.
func (q *Queue) Flush(apply func(tetris.Action)) int {
	q.mu.Lock()
	q.pending, q.flushed = q.flushed[:0], q.pending
	q.mu.Unlock()

	for _, action := range q.flushed {
		apply(action)
	}
	n := len(q.flushed)
	clear(q.flushed)
	q.flushed = q.flushed[:0]
	return n
}
