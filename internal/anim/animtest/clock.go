// Package animtest provides a manual clock for animation tests.
package animtest

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/anim"
)

// Epoch is the start time of every manual clock.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Clock only moves when Advance is called.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	timers map[*timer]struct{}
}

// New returns a clock set to Epoch.
func New() *Clock {
	return &Clock{now: Epoch, timers: map[*timer]struct{}{}}
}

type timer struct {
	c      *Clock
	ch     chan time.Time
	at     time.Time
	period time.Duration
}

func (t *timer) C() <-chan time.Time { return t.ch }

func (t *timer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	_, ok := t.c.timers[t]
	delete(t.c.timers, t)
	return ok
}

type ticker struct{ *timer }

func (t ticker) Stop() { t.timer.Stop() }

// Now returns the manual time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// NewTimer implements anim.Clock.
func (c *Clock) NewTimer(d time.Duration) anim.Timer {
	return c.add(d, 0)
}

// NewTicker implements anim.Clock.
func (c *Clock) NewTicker(d time.Duration) anim.Ticker {
	return ticker{c.add(d, d)}
}

func (c *Clock) add(d, period time.Duration) *timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &timer{c: c, ch: make(chan time.Time, 1), at: c.now.Add(d), period: period}
	c.timers[t] = struct{}{}
	return t
}

// Advance moves time forward, firing due timers in deadline order.
// Like time.Ticker, a tick is dropped when the previous one was not received.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	target := c.now.Add(d)
	for {
		next := c.earliestLocked(target)
		if next == nil {
			break
		}
		c.now = next.at
		select {
		case next.ch <- next.at:
		default:
		}
		if next.period > 0 {
			next.at = next.at.Add(next.period)
		} else {
			delete(c.timers, next)
		}
	}
	c.now = target
}

func (c *Clock) earliestLocked(limit time.Time) *timer {
	var best *timer
	for t := range c.timers {
		if t.at.After(limit) {
			continue
		}
		if best == nil || t.at.Before(best.at) {
			best = t
		}
	}
	return best
}

// Pending counts timers and tickers that are still armed.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Go runs cmd on its own goroutine the way the Bubble Tea runtime does and
// returns the delivered message. A nil cmd delivers nil.
func Go(cmd tea.Cmd) <-chan tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		if cmd == nil {
			ch <- nil
			return
		}
		ch <- cmd()
	}()
	return ch
}

// Wait receives from ch or gives up after timeout.
func Wait(ch <-chan tea.Msg, timeout time.Duration) (tea.Msg, bool) {
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(timeout):
		return nil, false
	}
}
