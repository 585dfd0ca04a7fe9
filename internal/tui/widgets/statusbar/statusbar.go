package statusbar

import (
    "fmt"
    "strings"

    "folio/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState) string {
    pos := fmt.Sprintf("%3.0f%%", s.ScrollPct*100)
    revealed := fmt.Sprintf("Revealed %d/%d", s.Revealed, s.Blocks)
    if s.Skipped {
        revealed = "Static"
    }
    parts := []string{pos, revealed}
    if s.Changes > 0 {
        parts = append(parts, fmt.Sprintf("Changes: %d", s.Changes))
    }
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
