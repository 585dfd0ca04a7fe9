// Package anim owns the timers behind the page animations.
//
// Every scheduled callback is a Handle: it is acquired when an animation
// activates and released on completion, replacement or unmount. The tea.Cmd
// a handle returns blocks in the Bubble Tea command goroutine until the timer
// fires or the handle is cancelled; a cancelled handle delivers nothing.
package anim

import "time"

// Clock is the host timer primitive.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
	NewTicker(d time.Duration) Ticker
}

// Timer fires once.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Ticker fires on a fixed interval until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// System returns the wall clock.
func System() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) NewTimer(d time.Duration) Timer {
	return sysTimer{time.NewTimer(d)}
}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return sysTicker{time.NewTicker(d)}
}

type sysTimer struct{ t *time.Timer }

func (s sysTimer) C() <-chan time.Time { return s.t.C }
func (s sysTimer) Stop() bool          { return s.t.Stop() }

type sysTicker struct{ t *time.Ticker }

func (s sysTicker) C() <-chan time.Time { return s.t.C }
func (s sysTicker) Stop()               { s.t.Stop() }

// orSystem returns c, or the wall clock when c is nil.
func orSystem(c Clock) Clock {
	if c == nil {
		return System()
	}
	return c
}
