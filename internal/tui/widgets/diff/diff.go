package diff

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "folio/internal/content"
    "folio/internal/tui/state"
)

var (
    delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    field   = lipgloss.NewStyle().Bold(true)
    faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the fields changed by a content reload with character-level
// highlights. SideBySide puts before and after in two wrapped columns.
func (DiffView) View(s state.UIState, changes []content.Change) string {
    if len(changes) == 0 {
        return "No changes\n"
    }
    var b strings.Builder
    if s.View == state.SideBySide {
        b.WriteString("BEFORE │ AFTER\n")
    } else {
        b.WriteString("BEFORE vs AFTER (Unified)\n")
    }
    for _, c := range changes {
        fmt.Fprintf(&b, "\n%s %s\n", field.Render(c.Field), faint.Render(fmt.Sprintf("(%d edits)", c.Distance)))
        if s.View == state.SideBySide {
            b.WriteString(sideBySide(c, s.Width))
        } else {
            b.WriteString(unified(c))
        }
    }
    return b.String()
}

func unified(c content.Change) string {
    var b strings.Builder
    if c.Before != "" {
        b.WriteString(delLine.Render("- ") + before(c.Diffs) + "\n")
    }
    if c.After != "" {
        b.WriteString(addLine.Render("+ ") + after(c.Diffs) + "\n")
    }
    return b.String()
}

func sideBySide(c content.Change, width int) string {
    const sep = " │ "
    // Compute column width from total width if provided
    colWidth := 40
    if width > 0 {
        colWidth = (width - len(sep)) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    col := lipgloss.NewStyle().Width(colWidth)
    left := col.Render(delLine.Render("- ") + before(c.Diffs))
    right := col.Render(addLine.Render("+ ") + after(c.Diffs))
    lh, rh := lipgloss.Height(left), lipgloss.Height(right)
    rule := strings.TrimSuffix(strings.Repeat(sep+"\n", max(lh, rh)), "\n")
    return lipgloss.JoinHorizontal(lipgloss.Top, left, rule, right) + "\n"
}

// before renders the old text: equal runs plus deletions.
func before(diffs []dmp.Diff) string {
    var b strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            b.WriteString(delChar.Render(df.Text))
        case dmp.DiffEqual:
            b.WriteString(delLine.Render(df.Text))
        }
    }
    return b.String()
}

// after renders the new text: equal runs plus insertions.
func after(diffs []dmp.Diff) string {
    var b strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffInsert:
            b.WriteString(addChar.Render(df.Text))
        case dmp.DiffEqual:
            b.WriteString(addLine.Render(df.Text))
        }
    }
    return b.String()
}
