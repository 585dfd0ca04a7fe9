package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
)

func TestClassLookup(t *testing.T) {
	th := New(false)
	if !th.Class(Heading).GetBold() {
		t.Fatalf("expected headings to be bold")
	}
	if th.Class("no-such-hook").GetBold() {
		t.Fatalf("expected unknown hooks to be unstyled")
	}
	stacked := th.Class(Body + " " + Strong)
	if !stacked.GetBold() || stacked.GetForeground() != th.Palette.Primary {
		t.Fatalf("expected the later hook to win, got %v", stacked.GetForeground())
	}
	var nilTheme *Theme
	if nilTheme.Class(Heading).GetBold() {
		t.Fatalf("expected a nil theme to render plain")
	}
}

func TestNoColorKeepsWeight(t *testing.T) {
	th := New(true)
	s := th.Class(Strong)
	if !s.GetBold() {
		t.Fatalf("expected bold without color")
	}
	if _, ok := s.GetForeground().(lipgloss.NoColor); !ok {
		t.Fatalf("expected no foreground color, got %v", s.GetForeground())
	}
}

func TestSpansKeepText(t *testing.T) {
	th := New(true)
	out := th.Spans(content.Inline("plain **bold** *soft*"))
	if lipgloss.Width(out) != len("plain bold soft") {
		t.Fatalf("expected rendered width to match the text, got %q", out)
	}
	if th.Render(Body, "") != "" {
		t.Fatalf("expected empty text to render empty")
	}
}
