// Package audio plays short tones when the engine locks a block.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/plus3/blockfall/engine"
)

const (
	SampleRate = beep.SampleRate(44100)

	NoteDuration     = 60 * time.Millisecond
	GameOverDuration = 150 * time.Millisecond
)

// clearNotes climbs by a major third per cleared row, starting at C5.
var clearNotes = []float64{523.25, 659.25, 783.99, 1046.50}

var gameOverNotes = []float64{392.00, 329.63, 261.63}

// tone is a sine wave of the given frequency cut to d and scaled by vol.
func tone(rate beep.SampleRate, freq float64, d time.Duration, vol float64) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist, play silence for the same length.
		return beep.Silence(rate.N(d))
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   math.Log2(vol),
	}
}

// ClearCue returns a rising arpeggio with one note per cleared row, or nil
// when rows is not positive.
func ClearCue(rate beep.SampleRate, rows int) beep.Streamer {
	if rows <= 0 {
		return nil
	}
	rows = min(rows, len(clearNotes))
	notes := make([]beep.Streamer, rows)
	for i := range notes {
		notes[i] = tone(rate, clearNotes[i], NoteDuration, 0.3)
	}
	return beep.Seq(notes...)
}

// GameOverCue returns a slow falling three note phrase.
func GameOverCue(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(gameOverNotes))
	for i, freq := range gameOverNotes {
		notes[i] = tone(rate, freq, GameOverDuration, 0.4)
	}
	return beep.Seq(notes...)
}

// Cue picks the sound for an outcome. Locks that neither clear rows nor end
// the game are silent.
func Cue(rate beep.SampleRate, o engine.Outcome) beep.Streamer {
	if o.GameOver {
		return GameOverCue(rate)
	}
	return ClearCue(rate, o.Rows)
}
