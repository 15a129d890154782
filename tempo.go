package sway

import (
	"context"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TempoTarget consumes elapsed-time ticks. Every [Mover] is a TempoTarget;
// tempo sources exist so callers do not have to fan ticks out by hand.
// A tempo places no constraint on dt's regularity beyond it being
// non-negative.
type TempoTarget interface {
	Advance(dt float64)
}

// FrameTempo forwards one fixed tick per game frame, sized from the current
// [ebiten.TPS]. Call Tick from your game's Update; attached targets advance
// in attachment order. FrameTempo is not synchronized; use it only from
// the game loop goroutine.
type FrameTempo struct {
	targets []TempoTarget
}

// NewFrameTempo creates a frame tempo driving the given targets.
func NewFrameTempo(targets ...TempoTarget) *FrameTempo {
	return &FrameTempo{targets: targets}
}

// Attach adds targets to the end of the tick order.
func (t *FrameTempo) Attach(targets ...TempoTarget) {
	t.targets = append(t.targets, targets...)
}

// Detach removes a previously attached target. Order of the remaining
// targets is preserved.
func (t *FrameTempo) Detach(target TempoTarget) {
	for i, tg := range t.targets {
		if tg == target {
			t.targets = append(t.targets[:i], t.targets[i+1:]...)
			return
		}
	}
}

// Tick advances every attached target by one frame's worth of seconds.
func (t *FrameTempo) Tick() {
	dt := 1.0 / float64(ebiten.TPS())
	for _, tg := range t.targets {
		tg.Advance(dt)
	}
}

// TickerTempo drives targets from a [time.Ticker] at a fixed interval,
// advancing by measured wall-clock time rather than the nominal interval so
// scheduling jitter does not accumulate as drift. For callers animating
// outside a game loop.
//
// Run's goroutine becomes the driving goroutine for every attached target;
// interact with the movers from callbacks or before Run, not concurrently
// with it.
type TickerTempo struct {
	interval time.Duration

	mu      sync.Mutex
	targets []TempoTarget
}

// NewTickerTempo creates a ticker tempo. Intervals of zero or less fall
// back to roughly 60 ticks per second.
func NewTickerTempo(interval time.Duration) *TickerTempo {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerTempo{interval: interval}
}

// Attach adds targets to the end of the tick order. Safe to call while Run
// is active.
func (t *TickerTempo) Attach(targets ...TempoTarget) {
	t.mu.Lock()
	t.targets = append(t.targets, targets...)
	t.mu.Unlock()
}

// Detach removes a previously attached target. Safe to call while Run is
// active.
func (t *TickerTempo) Detach(target TempoTarget) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, tg := range t.targets {
		if tg == target {
			t.targets = append(t.targets[:i], t.targets[i+1:]...)
			return
		}
	}
}

// Run blocks, ticking attached targets until ctx is canceled.
func (t *TickerTempo) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt < 0 {
				continue
			}
			t.mu.Lock()
			targets := append([]TempoTarget(nil), t.targets...)
			t.mu.Unlock()
			for _, tg := range targets {
				tg.Advance(dt)
			}
		}
	}
}
