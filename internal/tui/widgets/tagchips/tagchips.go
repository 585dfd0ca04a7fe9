package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "folio/internal/tui/state"
    "folio/internal/tui/util"
)

// View renders timeline tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    style := chipStyle(t)
    return style.Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.WORK:
        return "Work"
    case state.EDUCATION:
        return "Education"
    case state.CURRENT:
        return "Current"
    case state.DURATION, state.LOCATION:
        return t.Text
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    white := lipgloss.Color("#FFFFFF")
    switch t.Kind {
    case state.WORK:
        return base.Background(p.Primary).Foreground(white)
    case state.EDUCATION:
        return base.Background(p.Accent).Foreground(white)
    case state.CURRENT:
        return base.Background(p.Success).Foreground(white)
    case state.DURATION:
        return base.Background(p.Muted).Foreground(white)
    case state.LOCATION:
        return base.Background(p.MutedDark).Foreground(white)
    default:
        return base
    }
}
