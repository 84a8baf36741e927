package engine

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// Stats accumulates counters across every game played in a session.
type Stats struct {
	Games     int
	Locks     int
	Lines     int
	BestScore int

	// spawns counts spawned blocks per shape.
	spawns *intmap.Map[tetris.Shape, int]
	// clears counts locks by the number of rows they cleared.
	clears *intmap.Map[int, int]
}

func NewStats() *Stats {
	return &Stats{
		spawns: intmap.New[tetris.Shape, int](len(tetris.Shapes)),
		clears: intmap.New[int, int](4),
	}
}

func (s *Stats) recordSpawn(shape tetris.Shape) {
	n, _ := s.spawns.Get(shape)
	s.spawns.Put(shape, n+1)
}

func (s *Stats) recordLock(o Outcome, score int) {
	s.Locks++
	s.Lines += o.Rows
	if o.Rows > 0 {
		n, _ := s.clears.Get(o.Rows)
		s.clears.Put(o.Rows, n+1)
	}
	s.BestScore = max(s.BestScore, score)
}

// Spawns returns how many blocks of the given shape have been spawned.
func (s *Stats) Spawns(shape tetris.Shape) int {
	n, _ := s.spawns.Get(shape)
	return n
}

// Clears returns how many locks cleared exactly rows rows.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}

// ClearCounts returns the non-zero clear counts keyed by rows cleared.
func (s *Stats) ClearCounts() map[int]int {
	counts := make(map[int]int, s.clears.Len())
	for rows, n := range s.clears.All() {
		counts[rows] = n
	}
	return counts
}
