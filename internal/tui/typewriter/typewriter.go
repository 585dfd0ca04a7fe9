// Package typewriter reveals a string one character at a time.
//
// A Model moves Idle -> Typing -> Done. Done is terminal until the text
// changes, which sends the model back to Idle for the new value and, when
// the model is active, starts typing it again. The model owns at most one
// interval timer at any time.
package typewriter

import (
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"

	"folio/internal/anim"
)

// State is the typing phase.
type State int

const (
	Idle State = iota
	Typing
	Done
)

func (s State) String() string {
	switch s {
	case Typing:
		return "typing"
	case Done:
		return "done"
	default:
		return "idle"
	}
}

// TickMsg reveals the next character of the typewriter with the same ID.
type TickMsg struct {
	ID   string
	Time time.Time
	tag  int
}

// Option configures a Model.
type Option func(*Model)

// WithClass attaches an opaque style hook to the rendered output.
func WithClass(class string) Option {
	return func(m *Model) { m.class = class }
}

// WithClock replaces the wall clock.
func WithClock(c anim.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithOnChar is called with every character as it appears.
func WithOnChar(fn func(string)) Option {
	return func(m *Model) { m.onChar = fn }
}

// Model is one typewriter instance.
type Model struct {
	id     string
	text   string
	bounds []int // bounds[i] is the byte offset after i characters
	count  int
	delay  time.Duration
	class  string
	clock  anim.Clock
	onChar func(string)

	tick   *anim.Interval
	tag    int
	state  State
	active bool
}

// New creates an idle typewriter. Nothing is scheduled until Start.
func New(text string, delay time.Duration, opts ...Option) *Model {
	m := &Model{id: anim.NewID(), delay: delay}
	for _, opt := range opts {
		opt(m)
	}
	m.setSource(text)
	return m
}

// ID identifies the instance in tick messages.
func (m *Model) ID() string { return m.id }

// Class returns the style hook.
func (m *Model) Class() string { return m.class }

// Text returns the complete source text.
func (m *Model) Text() string { return m.text }

// Len is the number of characters in the source text.
func (m *Model) Len() int { return len(m.bounds) - 1 }

// Count is the number of visible characters.
func (m *Model) Count() int { return m.count }

// State returns the typing phase.
func (m *Model) State() State { return m.state }

// Value is the visible prefix of the text.
func (m *Model) Value() string { return m.text[:m.bounds[m.count]] }

// View renders the visible prefix.
func (m *Model) View() string { return m.Value() }

// Start activates the typewriter. Starting a typewriter that is already
// typing or done is a no-op.
func (m *Model) Start() tea.Cmd {
	if m.active && m.state != Idle {
		return nil
	}
	m.active = true
	return m.run()
}

func (m *Model) run() tea.Cmd {
	m.release()
	if m.count >= m.Len() || m.delay <= 0 {
		m.count = m.Len()
		m.state = Done
		return nil
	}
	m.tag++
	id, tag := m.id, m.tag
	m.tick = anim.Every(m.clock, m.delay, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now, tag: tag}
	})
	m.state = Typing
	return m.tick.Next()
}

// Update handles this instance's ticks and ignores everything else,
// including ticks from a timer that was already replaced or cancelled.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || tick.tag != m.tag || !m.tick.Active() {
		return nil
	}
	if m.count < m.Len() {
		m.count++
		if m.onChar != nil {
			m.onChar(m.text[m.bounds[m.count-1]:m.bounds[m.count]])
		}
	}
	if m.count >= m.Len() {
		m.release()
		m.state = Done
		return nil
	}
	return m.tick.Next()
}

// SetText swaps the source text. The same text is a no-op; new text cancels
// the running timer and starts over from the empty prefix.
func (m *Model) SetText(text string) tea.Cmd {
	if sanitize(text) == m.text {
		return nil
	}
	m.release()
	m.tag++
	m.setSource(text)
	if !m.active {
		return nil
	}
	return m.run()
}

// Skip shows the full text without animating.
func (m *Model) Skip() {
	m.release()
	m.tag++
	m.active = true
	m.count = m.Len()
	m.state = Done
}

// Unmount cancels the timer. Ticks already in flight are dropped.
func (m *Model) Unmount() {
	m.release()
	m.tag++
	m.active = false
	if m.state == Typing {
		m.state = Idle
		m.count = 0
	}
}

func (m *Model) setSource(text string) {
	m.text = sanitize(text)
	m.bounds = boundaries(m.text)
	m.count = 0
	m.state = Idle
}

func (m *Model) release() {
	m.tick.Cancel()
	m.tick = nil
}

// sanitize treats malformed input as empty.
func sanitize(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	return s
}

func boundaries(s string) []int {
	b := []int{0}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		b = append(b, to)
	}
	return b
}
