package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/key"

    "folio/internal/tui/state"
)

// Group is a titled set of bindings.
type Group struct {
    Title string
    Keys  []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current diff view indicated.
// Disabled bindings are left out.
func (HelpOverlay) View(s state.UIState, groups []Group) string {
    view := "unified"
    if s.View == state.SideBySide {
        view = "side-by-side"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (diff view: %s)\n", view)
    for _, g := range groups {
        var lines []string
        for _, k := range g.Keys {
            if !k.Enabled() {
                continue
            }
            h := k.Help()
            lines = append(lines, fmt.Sprintf("  %s: %s", h.Key, h.Desc))
        }
        if len(lines) == 0 {
            continue
        }
        fmt.Fprintf(&b, "\n%s:\n", g.Title)
        for _, l := range lines {
            b.WriteString(l + "\n")
        }
    }
    return b.String()
}
