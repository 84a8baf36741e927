package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceStatsAverage(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)
	assert.Zero(t, ps.Average())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15.0, ps.Average(), 1e-4)

	// The ring keeps only the last four frames.
	for range 4 {
		ps.Record(0.005)
	}
	assert.InDelta(t, 5.0, ps.Average(), 1e-4)
}

func TestFrameTimer(t *testing.T) {
	ft := debugui.NewFrameTimer()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, ft.Tick(), float32(0.005))
	assert.Less(t, ft.Tick(), float32(0.005))
}

func TestShapeCounts(t *testing.T) {
	board, err := tetris.NewBoard(tetris.DefaultConfig(), tetris.NewSequenceSource(tetris.ShapeO, tetris.ShapeO, tetris.ShapeI, tetris.ShapeT))
	require.NoError(t, err)
	session := engine.NewSession(board, engine.Options{Paused: true})

	for range 3 {
		session.Play(tetris.HardDrop{})
	}

	rows := debugui.ShapeCounts(session.Stats())
	require.Len(t, rows, len(tetris.Shapes))

	counts := map[tetris.Shape]int{}
	var share float32
	for _, row := range rows {
		counts[row.Shape] = row.Count
		share += row.Share
	}
	assert.Equal(t, map[tetris.Shape]int{
		tetris.ShapeI: 1,
		tetris.ShapeJ: 0,
		tetris.ShapeL: 0,
		tetris.ShapeO: 2,
		tetris.ShapeT: 1,
	}, counts)
	assert.InDelta(t, 1.0, share, 1e-5)
}

func TestShapeCountsEmpty(t *testing.T) {
	for _, row := range debugui.ShapeCounts(engine.NewStats()) {
		assert.Zero(t, row.Count)
		assert.Zero(t, row.Share)
	}
	assert.Empty(t, debugui.ClearRows(engine.NewStats()))
}
