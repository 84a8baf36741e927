package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/engine"
)

// Player mixes cues onto the system speaker. It implements engine.Listener.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	closed bool
}

// NewPlayer opens the speaker. Only one Player may exist per process.
func NewPlayer() (*Player, error) {
	p := &Player{
		rate:  SampleRate,
		mixer: &beep.Mixer{},
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Locked queues the cue for o, if there is one.
func (p *Player) Locked(o engine.Outcome) {
	cue := Cue(p.rate, o)
	if cue == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
}

// Close silences the speaker and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}

var _ engine.Listener = (*Player)(nil)
