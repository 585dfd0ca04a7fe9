package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/anim/animtest"
	"folio/internal/content"
	"folio/internal/tui/state"
	"folio/internal/tui/theme"
	"folio/internal/tui/typewriter"
)

type countingClicker struct{ clicks int }

func (c *countingClicker) Click() { c.clicks++ }
func (c *countingClicker) Close() {}

// pump plays the Bubble Tea runtime: every command runs on its own
// goroutine and the messages are fed back into the model on the test
// goroutine.
type pump struct {
	ch chan tea.Msg
}

func newPump() *pump { return &pump{ch: make(chan tea.Msg, 256)} }

func (p *pump) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() { p.ch <- cmd() }()
}

func (p *pump) drain(m *Model, idle time.Duration) {
	for {
		select {
		case msg := <-p.ch:
			switch msg := msg.(type) {
			case nil:
			case tea.BatchMsg:
				for _, c := range msg {
					p.run(c)
				}
			default:
				_, cmd := m.Update(msg)
				p.run(cmd)
			}
		case <-time.After(idle):
			return
		}
	}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newPage(t *testing.T, clock *animtest.Clock, opts Options) *Model {
	t.Helper()
	opts.Clock = clock
	opts.NoColor = true
	if opts.Asset == "" {
		opts.Asset = filepath.Join(t.TempDir(), "missing.json")
	}
	m := New(opts)
	m.Init()
	return m
}

func entryBlock(m *Model, i int) *block {
	for _, b := range m.blocks {
		if b.item == i {
			return b
		}
	}
	return nil
}

func TestBlocksBelowTheFoldWait(t *testing.T) {
	clock := animtest.New()
	m := newPage(t, clock, Options{Threshold: 0.1})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	if !m.blocks[0].reveal.Entered() {
		t.Fatalf("expected the heading on screen to reveal at once")
	}
	if m.blocks[1].reveal.Entered() || m.blocks[1].reveal.Observing() {
		t.Fatalf("expected the animation block to be waiting on its delay")
	}
	last := entryBlock(m, 3)
	if last.reveal.Entered() || !last.reveal.Observing() {
		t.Fatalf("expected the last entry to stay hidden below the fold")
	}
	if last.typers[0].State() != typewriter.Idle {
		t.Fatalf("expected typewriters of hidden blocks to stay idle")
	}
	if m.ui.Revealed >= m.ui.Blocks {
		t.Fatalf("expected some blocks still hidden, got %d/%d", m.ui.Revealed, m.ui.Blocks)
	}

	m.Update(keyPress("G"))
	if last.reveal.Observing() {
		t.Fatalf("expected scrolling to the bottom to trigger the last entry")
	}
	if last.reveal.Entered() {
		t.Fatalf("expected the last entry to wait for its 300ms delay")
	}

	m.Unmount()
	if clock.Pending() != 0 {
		t.Fatalf("expected no timers after unmount, got %d", clock.Pending())
	}
}

func TestEntranceAndTyping(t *testing.T) {
	clock := animtest.New()
	clicker := &countingClicker{}
	m := newPage(t, clock, Options{Threshold: 0.1, Clicker: clicker})
	p := newPump()

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 500})
	p.run(cmd)
	p.drain(m, 20*time.Millisecond)

	first := entryBlock(m, 0)
	second := entryBlock(m, 1)
	if first.typers[0].State() != typewriter.Typing {
		t.Fatalf("expected the first entry to type immediately, got %v", first.typers[0].State())
	}
	if second.typers[0].State() != typewriter.Idle {
		t.Fatalf("expected the second entry to wait for its reveal")
	}

	for i := 0; i < 80; i++ {
		clock.Advance(50 * time.Millisecond)
		p.drain(m, 20*time.Millisecond)
	}

	for _, b := range m.blocks {
		if !b.reveal.Settled() {
			t.Fatalf("expected %s to settle", b.name)
		}
		for _, tw := range b.typers {
			if tw.State() != typewriter.Done || tw.Value() != tw.Text() {
				t.Fatalf("expected %s to finish typing, got %q", b.name, tw.Value())
			}
		}
	}
	if clicker.clicks == 0 {
		t.Fatalf("expected key clicks while typing")
	}
	if m.ui.Revealed != m.ui.Blocks {
		t.Fatalf("expected every block counted, got %d/%d", m.ui.Revealed, m.ui.Blocks)
	}
	if !strings.Contains(m.render(100), "Infurm Technologies LLC.") {
		t.Fatalf("expected the typed company on the page")
	}

	m.Unmount()
	p.drain(m, 20*time.Millisecond)
	if clock.Pending() != 0 {
		t.Fatalf("expected no timers after unmount, got %d", clock.Pending())
	}
}

func TestEntryFieldsCarryTypewriterClasses(t *testing.T) {
	m := newPage(t, animtest.New(), Options{NoAnim: true})
	b := entryBlock(m, 0)
	want := []string{theme.Company, theme.Dates, theme.Role}
	for i, class := range want {
		if f := b.field(i); f.Class != class || f.Text != b.typers[i].Value() {
			t.Fatalf("field %d: got %+v, want class %q", i, f, class)
		}
	}
}

func TestSkipShowsEverything(t *testing.T) {
	clock := animtest.New()
	m := newPage(t, clock, Options{Threshold: 0.1})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	m.Update(keyPress("s"))

	if !m.ui.Skipped || m.ui.Revealed != m.ui.Blocks {
		t.Fatalf("expected every block revealed after skip")
	}
	for _, b := range m.blocks {
		if !b.reveal.Settled() || b.reveal.Observing() {
			t.Fatalf("expected %s at rest", b.name)
		}
		for _, tw := range b.typers {
			if tw.Value() != tw.Text() {
				t.Fatalf("expected full text in %s", b.name)
			}
		}
	}
	if clock.Pending() != 0 {
		t.Fatalf("expected skip to release timers, got %d", clock.Pending())
	}
}

func TestNoAnimMountsAtRest(t *testing.T) {
	clock := animtest.New()
	m := newPage(t, clock, Options{NoAnim: true})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	if m.obs.len() != 0 || clock.Pending() != 0 {
		t.Fatalf("expected nothing observed or scheduled")
	}
	if !strings.Contains(m.View(), "ABOUT") {
		t.Fatalf("expected the page visible at once, got %q", m.View())
	}
}

func TestReloadRestartsChangedText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, content.DefaultJSON(), 0644); err != nil {
		t.Fatal(err)
	}
	clock := animtest.New()
	m := newPage(t, clock, Options{Threshold: 0.1, ContentPath: path})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 500})
	m.Update(keyPress("s"))

	next := content.Default()
	next.Experience.Items[0].Company = "TATEEDA"
	if err := content.Save(path, next); err != nil {
		t.Fatal(err)
	}
	cmd := m.handleKey(keyPress("r"))
	if cmd == nil {
		t.Fatalf("expected a reload command")
	}
	m.Update(cmd())

	first := entryBlock(m, 0)
	if first.typers[0].Text() != "TATEEDA" || first.typers[0].State() != typewriter.Typing || first.typers[0].Count() != 0 {
		t.Fatalf("expected the changed company to retype from empty, got %v %q", first.typers[0].State(), first.typers[0].Value())
	}
	if first.typers[2].State() != typewriter.Done {
		t.Fatalf("expected unchanged fields to stay done")
	}
	if m.ui.Changes != 1 {
		t.Fatalf("expected one changed field, got %d", m.ui.Changes)
	}

	m.Update(keyPress("d"))
	if m.ui.Overlay != state.DiffOverlay {
		t.Fatalf("expected the diff overlay")
	}
	if !strings.Contains(m.View(), "experience.items[0].company") {
		t.Fatalf("expected the changed field in the diff overlay")
	}
	m.Unmount()
	if clock.Pending() != 0 {
		t.Fatalf("expected no timers after unmount, got %d", clock.Pending())
	}
}

func TestReloadWithoutFile(t *testing.T) {
	m := newPage(t, animtest.New(), Options{NoAnim: true})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m.Update(keyPress("r"))
	if !strings.Contains(m.ui.Notice, "nothing to reload") {
		t.Fatalf("unexpected notice %q", m.ui.Notice)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newPage(t, animtest.New(), Options{NoAnim: true})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m.Update(keyPress("?"))
	if !strings.Contains(m.View(), "skip animations") {
		t.Fatalf("expected key help, got %q", m.View())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.ui.Overlay != state.NoOverlay {
		t.Fatalf("expected esc to close the overlay")
	}
}

func TestPrint(t *testing.T) {
	out := Print(context.Background(), Options{NoColor: true, Asset: filepath.Join(t.TempDir(), "none.json")}, 100)
	for _, want := range []string{"Crafting Solutions", "Animation will appear here", "TATEEDA | GLOBAL", "University of Melbourne", "[Education]", "September 2022 - Present"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in printed page", want)
		}
	}
}
