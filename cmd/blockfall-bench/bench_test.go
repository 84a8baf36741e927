package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, config tetris.Config, source tetris.ShapeSource) *engine.Session {
	t.Helper()
	board, err := tetris.NewBoard(config, source)
	require.NoError(t, err)
	return engine.NewSession(board, engine.Options{Paused: true})
}

func TestScriptAgent(t *testing.T) {
	agent := NewScriptAgent("<<V >>@ v")

	assert.Equal(t, []tetris.Action{tetris.MoveLeft{}, tetris.MoveLeft{}, tetris.HardDrop{}}, agent.Next(tetris.State{}, 10))
	assert.Equal(t, []tetris.Action{tetris.MoveRight{}, tetris.MoveRight{}, tetris.Rotate{}, tetris.SoftDrop{}}, agent.Next(tetris.State{}, 10))
	assert.Nil(t, agent.Next(tetris.State{}, 10))
}

func TestRandomAgentEndsWithHardDrop(t *testing.T) {
	session := newTestSession(t, tetris.DefaultConfig(), tetris.NewRandomSource(1))
	agent := NewRandomAgent(1)

	for range 20 {
		actions := agent.Next(session.State(), 10)
		require.NotEmpty(t, actions)
		assert.Equal(t, tetris.HardDrop{}, actions[len(actions)-1])
	}
}

func TestBenchStopsAfterGames(t *testing.T) {
	session := newTestSession(t, tetris.DefaultConfig(), tetris.NewRandomSource(3))
	report := &Report{}

	NewBench(session, NewRandomAgent(3), 3, report).Run(context.Background())
	report.Collect(session.Stats())

	assert.Len(t, report.FinalScores, 3)
	assert.Equal(t, 3, report.Games)
	assert.Equal(t, len(report.PlacementTime.Samples), report.Locks)
	assert.Positive(t, report.Actions)

	spawned := 0
	for _, row := range report.Spawns {
		spawned += row.Count
	}
	// Every lock spawns a block, plus the first block of each game.
	assert.Equal(t, report.Locks+report.Games, spawned)
}

func TestBenchScriptReplay(t *testing.T) {
	session := newTestSession(t, tetris.Config{Width: 6, Height: 4}, tetris.NewSequenceSource(tetris.ShapeI, tetris.ShapeO))
	report := &Report{}

	NewBench(session, NewScriptAgent("<<V >>V"), 0, report).Run(context.Background())
	report.Collect(session.Stats())

	assert.Equal(t, 10, session.State().Score)
	assert.Equal(t, 1, report.Clears[0])
	assert.Equal(t, 2, report.Locks)
	assert.Empty(t, report.FinalScores)
}

func TestBenchStopsOnCancel(t *testing.T) {
	session := newTestSession(t, tetris.DefaultConfig(), tetris.NewRandomSource(5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := &Report{}
	NewBench(session, NewRandomAgent(5), 0, report).Run(ctx)
	assert.Zero(t, report.Actions)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Width:       10,
		Height:      20,
		Seed:        42,
		Source:      "bag",
		FinalScores: []int{10, 30},
		Clears:      [4]int{5, 2, 0, 1},
		PlacementTime: Stats{
			Samples: []time.Duration{3, 1, 2},
		},
		GCPauseMetrics: true,
	}
	report.PlacementTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "**Board:** 10x20")
	assert.Contains(t, out, "**Seed:** 42 (bag)")
	assert.Contains(t, out, "**Agent:** random")
	assert.Contains(t, out, "**Average Final Score:** 20.0")
	assert.Contains(t, out, "- 1 row(s): 5\n")
	assert.Contains(t, out, "- 4 row(s): 1\n")
	assert.Contains(t, out, "**Avg:** 2ns")
	assert.Contains(t, out, "## GC Pause Durations")
}
