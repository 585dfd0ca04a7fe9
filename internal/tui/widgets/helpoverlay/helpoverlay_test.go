package helpoverlay

import (
    "strings"
    "testing"

    "github.com/charmbracelet/bubbles/key"

    "folio/internal/tui/state"
)

func TestViewGroups(t *testing.T) {
    off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
    off.SetEnabled(false)
    groups := []Group{
        {"Navigation", []key.Binding{key.NewBinding(key.WithKeys("j"), key.WithHelp("j/↓", "scroll down"))}},
        {"Empty", []key.Binding{off}},
    }
    out := NewHelpOverlay().View(state.UIState{View: state.SideBySide}, groups)
    if !strings.HasPrefix(out, "Help (diff view: side-by-side)") {
        t.Fatalf("missing header in %q", out)
    }
    if !strings.Contains(out, "Navigation:\n  j/↓: scroll down") {
        t.Fatalf("missing binding in %q", out)
    }
    if strings.Contains(out, "Empty") || strings.Contains(out, "hidden") {
        t.Fatalf("expected disabled bindings to be dropped")
    }
}
