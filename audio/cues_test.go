package audio_test

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

// drain streams s to completion and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			assert.LessOrEqual(t, sample[0], 1.0)
			assert.GreaterOrEqual(t, sample[0], -1.0)
		}
		total += n
		if !ok {
			break
		}
	}
	assert.NoError(t, s.Err())
	return total
}

func TestClearCue(t *testing.T) {
	note := audio.SampleRate.N(audio.NoteDuration)

	t.Run("no rows is silent", func(t *testing.T) {
		assert.Nil(t, audio.ClearCue(audio.SampleRate, 0))
		assert.Nil(t, audio.ClearCue(audio.SampleRate, -1))
	})

	for rows := 1; rows <= 4; rows++ {
		cue := audio.ClearCue(audio.SampleRate, rows)
		assert.Equal(t, rows*note, drain(t, cue), "rows=%d", rows)
	}

	t.Run("capped at four notes", func(t *testing.T) {
		assert.Equal(t, 4*note, drain(t, audio.ClearCue(audio.SampleRate, 7)))
	})
}

func TestGameOverCue(t *testing.T) {
	want := 3 * audio.SampleRate.N(audio.GameOverDuration)
	assert.Equal(t, want, drain(t, audio.GameOverCue(audio.SampleRate)))
}

func TestCue(t *testing.T) {
	rate := audio.SampleRate

	assert.Nil(t, audio.Cue(rate, engine.Outcome{Locked: true}))

	cleared := audio.Cue(rate, engine.Outcome{Locked: true, Rows: 2, Reward: 22})
	assert.Equal(t, 2*rate.N(audio.NoteDuration), drain(t, cleared))

	over := audio.Cue(rate, engine.Outcome{Locked: true, Rows: 1, GameOver: true})
	assert.Equal(t, 3*rate.N(audio.GameOverDuration), drain(t, over))
}
