package anim

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Handle is an owned, cancellable scheduled callback.
type Handle struct {
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
	release func()
}

func newHandle(release func()) *Handle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Handle{ctx: ctx, cancel: cancel, release: release}
}

// Cancel releases the underlying timer. Safe to call more than once and on nil.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.cancel()
		if h.release != nil {
			h.release()
		}
	})
}

// Active reports whether the handle can still deliver.
func (h *Handle) Active() bool {
	return h != nil && h.ctx.Err() == nil
}

// Once schedules msg to be delivered after d.
// A non-positive delay delivers on the next command run.
func Once(clock Clock, d time.Duration, msg tea.Msg) (*Handle, tea.Cmd) {
	if d <= 0 {
		h := newHandle(nil)
		return h, func() tea.Msg {
			if !h.Active() {
				return nil
			}
			return msg
		}
	}
	t := orSystem(clock).NewTimer(d)
	h := newHandle(func() { t.Stop() })
	return h, func() tea.Msg {
		select {
		case <-h.ctx.Done():
			return nil
		case <-t.C():
			if h.ctx.Err() != nil {
				return nil
			}
			return msg
		}
	}
}

// Interval is a repeating timer. Each Next waits for exactly one tick, so a
// caller that only asks for the next tick after handling the previous one
// never sees ticks overlap.
type Interval struct {
	h      *Handle
	ticker Ticker
	fn     func(time.Time) tea.Msg
}

// Every starts an interval. It returns nil for a non-positive interval or a
// nil fn; there is nothing to schedule.
func Every(clock Clock, d time.Duration, fn func(time.Time) tea.Msg) *Interval {
	if d <= 0 || fn == nil {
		return nil
	}
	t := orSystem(clock).NewTicker(d)
	return &Interval{
		h:      newHandle(t.Stop),
		ticker: t,
		fn:     fn,
	}
}

// Next returns a command that waits for the next tick.
// fn returning nil skips delivery.
func (i *Interval) Next() tea.Cmd {
	if !i.Active() {
		return nil
	}
	h := i.h
	return func() tea.Msg {
		select {
		case <-h.ctx.Done():
			return nil
		case now := <-i.ticker.C():
			if h.ctx.Err() != nil {
				return nil
			}
			return i.fn(now)
		}
	}
}

// Cancel stops the ticker. Safe on nil.
func (i *Interval) Cancel() {
	if i == nil {
		return
	}
	i.h.Cancel()
}

// Active reports whether the interval still ticks.
func (i *Interval) Active() bool {
	return i != nil && i.h.Active()
}
