// Package reveal defers a block until it scrolls into view, then plays a
// one-shot directional entrance.
package reveal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/anim"
)

const (
	// DefaultThreshold is the visible fraction of a block that triggers its reveal.
	DefaultThreshold = 0.1
	// TransitionDuration is the length of every entrance.
	TransitionDuration = 600 * time.Millisecond
	// Rows and Cols are how far a block travels during its entrance.
	Rows = 2
	Cols = 8
)

// ErrDirection is returned for an unknown direction name.
var ErrDirection = errors.New("unknown reveal direction")

// Direction is where a block moves towards while entering.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection maps a direction name onto a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "", "none":
		return None, nil
	}
	return None, fmt.Errorf("%w: %q", ErrDirection, s)
}

// Config is supplied by the parent and never changed by the controller.
type Config struct {
	Direction Direction
	Delay     time.Duration
	Threshold float64
}

// IntersectionMsg reports how much of an observed block is inside the viewport.
type IntersectionMsg struct {
	ID    string
	Ratio float64
}

type revealMsg struct {
	id  string
	tag int
}

type frameMsg struct {
	id  string
	tag int
	now time.Time
}

// Observer is the host viewport-intersection primitive.
type Observer interface {
	Observe(id string) (unobserve func(), err error)
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces the wall clock.
func WithClock(c anim.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithLogger sets a debug logger.
func WithLogger(logf func(string, ...any)) Option {
	return func(m *Model) { m.logf = logf }
}

// Model is one reveal controller.
type Model struct {
	id    string
	cfg   Config
	clock anim.Clock
	logf  func(string, ...any)

	mounted   bool
	triggered bool
	entered   bool
	unobserve func()
	pending   *anim.Handle
	frames    *anim.Interval
	tag       int
	enteredAt time.Time
	progress  float64
}

// New creates a controller. Thresholds outside [0,1] are clamped.
func New(cfg Config, opts ...Option) *Model {
	switch {
	case cfg.Threshold < 0:
		cfg.Threshold = 0
	case cfg.Threshold > 1:
		cfg.Threshold = 1
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	m := &Model{id: anim.NewID(), cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = anim.System()
	}
	return m
}

// ID identifies the observed block.
func (m *Model) ID() string { return m.id }

// Config returns the controller configuration.
func (m *Model) Config() Config { return m.cfg }

// Entered reports whether the block has been revealed. It never reverts.
func (m *Model) Entered() bool { return m.entered }

// Progress is the eased entrance progress in [0,1].
func (m *Model) Progress() float64 { return m.progress }

// Settled reports whether the entrance has finished.
func (m *Model) Settled() bool { return m.entered && m.progress >= 1 }

// Observing reports whether the controller still holds its subscription.
func (m *Model) Observing() bool { return m.unobserve != nil }

// Mount starts observing. Without an observer the block is shown at once.
func (m *Model) Mount(obs Observer) tea.Cmd {
	if m.mounted {
		return nil
	}
	m.mounted = true
	if m.entered {
		return nil
	}
	if obs == nil {
		m.debugf("reveal %s: no observer, showing immediately", m.id)
		return m.enter(false)
	}
	unobserve, err := obs.Observe(m.id)
	if err != nil {
		m.debugf("reveal %s: observe: %v", m.id, err)
		return m.enter(false)
	}
	m.unobserve = unobserve
	return nil
}

// Update handles intersections, the delayed reveal and transition frames.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case IntersectionMsg:
		if msg.ID != m.id || !m.mounted || m.triggered || m.entered {
			return nil
		}
		if msg.Ratio <= 0 || msg.Ratio < m.cfg.Threshold {
			return nil
		}
		m.triggered = true
		m.stopObserving()
		if m.cfg.Delay <= 0 {
			return m.enter(true)
		}
		m.tag++
		h, cmd := anim.Once(m.clock, m.cfg.Delay, revealMsg{id: m.id, tag: m.tag})
		m.pending = h
		return cmd

	case revealMsg:
		if msg.id != m.id || msg.tag != m.tag || !m.pending.Active() {
			return nil
		}
		m.pending.Cancel()
		m.pending = nil
		return m.enter(true)

	case frameMsg:
		if msg.id != m.id || msg.tag != m.tag || !m.frames.Active() {
			return nil
		}
		m.progress = anim.EaseOutCubic(anim.Progress(msg.now.Sub(m.enteredAt), TransitionDuration))
		if m.progress >= 1 {
			m.frames.Cancel()
			m.frames = nil
			return nil
		}
		return m.frames.Next()
	}
	return nil
}

func (m *Model) enter(animate bool) tea.Cmd {
	m.entered = true
	m.triggered = true
	m.stopObserving()
	if !animate || TransitionDuration <= 0 {
		m.progress = 1
		return nil
	}
	m.enteredAt = m.clock.Now()
	m.progress = 0
	m.tag++
	id, tag := m.id, m.tag
	m.frames = anim.Every(m.clock, anim.FrameInterval, func(now time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag, now: now}
	})
	return m.frames.Next()
}

// Skip reveals the block in its resting state and releases every resource.
func (m *Model) Skip() {
	m.release()
	m.entered = true
	m.triggered = true
	m.progress = 1
}

// Unmount releases the subscription and any pending timer, fired or not.
// A block that never entered starts over on the next Mount.
func (m *Model) Unmount() {
	m.release()
	m.mounted = false
	if m.entered {
		m.progress = 1
		return
	}
	m.triggered = false
}

func (m *Model) release() {
	m.stopObserving()
	m.pending.Cancel()
	m.pending = nil
	m.frames.Cancel()
	m.frames = nil
	m.tag++
}

func (m *Model) stopObserving() {
	if m.unobserve != nil {
		m.unobserve()
		m.unobserve = nil
	}
}

func (m *Model) debugf(format string, args ...any) {
	if m.logf != nil {
		m.logf(format, args...)
	}
}
