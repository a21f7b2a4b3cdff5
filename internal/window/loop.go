package window

import (
	"fmt"
	"time"
)

func (w *Window) running() bool {
	return !w.closed && w.err == nil
}

func (w *Window) pump(block bool) error {
	if err := w.host.Pump(block); err != nil {
		w.fail(fmt.Errorf("pump messages: %w", err))
	}
	return w.err
}

// RunBlocking waits for and dispatches messages until the window is asked
// to close. It returns the host failure that stopped it, if any.
func (w *Window) RunBlocking() error {
	for w.running() {
		if err := w.pump(true); err != nil {
			return err
		}
	}
	return w.err
}

// RunGameLoop drains pending messages and requests a paint on every
// iteration until the window closes or keepRunning returns false. A nil
// keepRunning never stops the loop.
func (w *Window) RunGameLoop(keepRunning func() bool) error {
	return w.runPolling(0, keepRunning)
}

// RunGameLoopCapped is RunGameLoop with paints requested at most rate
// times per second. A rate of zero or less is uncapped.
func (w *Window) RunGameLoopCapped(rate float64, keepRunning func() bool) error {
	return w.runPolling(rate, keepRunning)
}

func (w *Window) runPolling(rate float64, keepRunning func() bool) error {
	gate := newFrameGate(rate, w.now)
	for w.running() && (keepRunning == nil || keepRunning()) {
		if err := w.pump(false); err != nil {
			return err
		}
		if !w.running() {
			break
		}
		if !gate.ready() {
			continue
		}
		if err := w.Invalidate(); err != nil {
			w.fail(err)
			return err
		}
	}
	return w.err
}

// frameGate admits a frame once at least 1000/rate whole milliseconds have
// passed since the last admitted one. It never sleeps.
type frameGate struct {
	interval float64
	now      func() time.Time
	last     time.Time
	started  bool
}

func newFrameGate(rate float64, now func() time.Time) *frameGate {
	g := &frameGate{now: now}
	if rate > 0 {
		g.interval = 1000.0 / rate
	}
	return g
}

func (g *frameGate) ready() bool {
	if g.interval == 0 {
		return true
	}
	t := g.now()
	if g.started && float64(t.Sub(g.last).Milliseconds()) < g.interval {
		return false
	}
	g.last, g.started = t, true
	return true
}
