package statusbar

import (
    "strings"
    "testing"

    "folio/internal/tui/state"
)

func TestView(t *testing.T) {
    s := state.UIState{ScrollPct: 0.5, Blocks: 9, Revealed: 4, Notice: "Copied"}
    out := NewStatusBar().View(s)
    for _, want := range []string{" 50%", "Revealed 4/9", "Copied"} {
        if !strings.Contains(out, want) {
            t.Fatalf("expected %q in %q", want, out)
        }
    }
    if strings.Contains(out, "Changes") {
        t.Fatalf("did not expect a change count before reload")
    }
    out = NewStatusBar().View(state.Skip(state.UIState{Blocks: 3}))
    if !strings.Contains(out, "Static") {
        t.Fatalf("expected static marker after skip, got %q", out)
    }
}
