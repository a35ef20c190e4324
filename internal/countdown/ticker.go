// Package countdown drives the periodic ticks the clock and readout redraw on.
package countdown

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/Kryxzael/AnalogTimer/internal/models"
)

// DefaultInterval is roughly one tick per frame at 60Hz.
const DefaultInterval = time.Second / 60

// Tick is delivered to subscribers on every interval.
type Tick struct {
	State    models.Countdown
	Span     time.Duration // time left, or time past the target in overtime
	Overtime bool
}

// Ticker emits ticks for a countdown towards a target instant.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
type Ticker struct {
	clock    clockwork.Clock
	interval time.Duration

	mu        sync.Mutex
	target    time.Time
	overtime  bool
	reached   bool
	onTick    []func(Tick)
	onReached []func(models.Countdown)
}

// New creates a ticker. A non-positive interval falls back to DefaultInterval.
func New(clock clockwork.Clock, target time.Time, overtime bool, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Ticker{
		clock:    clock,
		interval: interval,
	}
	t.SetTarget(target, overtime)
	return t
}

// OnTick registers fn to be called on every tick.
func (t *Ticker) OnTick(fn func(Tick)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = append(t.onTick, fn)
}

// OnReached registers fn to be called once when the target is crossed.
func (t *Ticker) OnReached(fn func(models.Countdown)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onReached = append(t.onReached, fn)
}

// SetTarget points the countdown at a new target. A target that has already
// passed is treated as reached and does not fire OnReached.
func (t *Ticker) SetTarget(target time.Time, overtime bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.target = target
	t.overtime = overtime
	t.reached = !t.clock.Now().Before(target)
}

// Snapshot returns the countdown state at the current instant.
func (t *Ticker) Snapshot() models.Countdown {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Ticker) snapshotLocked() models.Countdown {
	return models.Countdown{
		Target:   t.target,
		Now:      t.clock.Now(),
		Overtime: t.overtime,
	}
}

// Run ticks until ctx is cancelled. The first tick is delivered immediately.
func (t *Ticker) Run(ctx context.Context) error {
	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	log.Debug().Dur("interval", t.interval).Msg("countdown ticker started")
	t.emit()
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("countdown ticker stopped")
			return ctx.Err()
		case <-ticker.Chan():
			t.emit()
		}
	}
}

func (t *Ticker) emit() {
	t.mu.Lock()
	state := t.snapshotLocked()
	justReached := !t.reached && state.Reached()
	if justReached {
		t.reached = true
	}
	onTick := append([]func(Tick){}, t.onTick...)
	var onReached []func(models.Countdown)
	if justReached {
		onReached = append(onReached, t.onReached...)
	}
	t.mu.Unlock()

	if justReached {
		log.Info().Time("target", state.Target).Msg("countdown target reached")
		for _, fn := range onReached {
			fn(state)
		}
	}

	tick := Tick{
		State:    state,
		Span:     state.TimeLeft(),
		Overtime: state.IsOvertime(),
	}
	for _, fn := range onTick {
		fn(tick)
	}
}
