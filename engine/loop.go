package engine

import (
	"context"
	"time"
)

// FrameStats summarises how long frames took to update and draw.
type FrameStats struct {
	Frames int64
	Min    time.Duration
	Max    time.Duration
	Avg    time.Duration
	Last   time.Duration
	Total  time.Duration
}

type frameStatsInternal struct {
	frames int64
	min    time.Duration
	max    time.Duration
	total  time.Duration
	last   time.Duration
}

func (f *frameStatsInternal) record(d time.Duration) {
	if f.frames == 0 || d < f.min {
		f.min = d
	}
	if d > f.max {
		f.max = d
	}
	f.frames++
	f.total += d
	f.last = d
}

// Loop runs a session at a fixed frame rate.
type Loop struct {
	session *Session
	stats   frameStatsInternal
}

func NewLoop(session *Session) *Loop {
	return &Loop{session: session}
}

// Once updates the session by dt seconds and calls draw, if non-nil.
func (l *Loop) Once(dt float64, draw func()) {
	start := time.Now()
	l.session.Update(dt)
	if draw != nil {
		draw()
	}
	l.stats.record(time.Since(start))
}

// Run calls Once at the given interval until the context is cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration, draw func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			l.Once(dt, draw)
		}
	}
}

// Stats returns frame timing statistics.
func (l *Loop) Stats() FrameStats {
	stats := FrameStats{
		Frames: l.stats.frames,
		Min:    l.stats.min,
		Max:    l.stats.max,
		Last:   l.stats.last,
		Total:  l.stats.total,
	}
	if l.stats.frames > 0 {
		stats.Avg = l.stats.total / time.Duration(l.stats.frames)
	}
	return stats
}
