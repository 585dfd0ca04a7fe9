// Package timeline lays out one Experience entry: company and dates on the
// left, a dot on a vertical rule, role and bullets on the right. Narrow
// terminals get a single stacked column.
package timeline

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/tui/theme"
)

const (
	leftWidth   = 26
	minTwoCol   = 64
	bulletGlyph = "▸ "
)

// Field is a typed value and the class hook of the typewriter producing it.
// An empty Class falls back to the field's default hook.
type Field struct {
	Text  string
	Class string
}

func (f Field) render(th *theme.Theme, def string, width int) string {
	class := f.Class
	if class == "" {
		class = def
	}
	return th.Render(class, fit(f.Text, width))
}

// Entry is what one row shows. Company, Dates and Role are the current
// typewriter values and may be partial.
type Entry struct {
	Company  Field
	Dates    Field
	Duration string
	Role     Field
	Bullets  []string
	Chips    string
}

// View renders e in width columns. The height depends only on the bullets
// and width, never on how much of the typed fields is visible.
func View(th *theme.Theme, e Entry, width int, last bool) string {
	if width <= 0 {
		width = 80
	}
	if width < minTwoCol {
		return stacked(th, e, width)
	}

	rightWidth := width - leftWidth - 5
	right := rightColumn(th, e, rightWidth)
	rows := lipgloss.Height(right)
	if !last {
		rows++
	}

	leftLines := []string{
		e.Company.render(th, theme.Company, leftWidth),
		e.Dates.render(th, theme.Dates, leftWidth),
		th.Render(theme.Muted, fit(e.Duration, leftWidth)),
	}
	rows = max(rows, len(leftLines))
	left := lipgloss.NewStyle().Width(leftWidth).Align(lipgloss.Right).
		Render(strings.Join(pad(leftLines, rows), "\n"))

	rule := make([]string, rows)
	rule[0] = th.Render(theme.Dot, "●")
	for i := 1; i < rows; i++ {
		if last && i >= lipgloss.Height(right) {
			rule[i] = " "
			continue
		}
		rule[i] = th.Render(theme.Rule, "│")
	}
	mid := lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(rule, "\n"))

	right = strings.Join(pad(strings.Split(right, "\n"), rows), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, mid, right)
}

func rightColumn(th *theme.Theme, e Entry, width int) string {
	lines := []string{e.Role.render(th, theme.Role, width)}
	if e.Chips != "" {
		lines = append(lines, e.Chips)
	}
	body := lipgloss.NewStyle().Width(width - len(bulletGlyph))
	for _, b := range e.Bullets {
		wrapped := strings.Split(body.Render(th.Render(theme.Body, b)), "\n")
		for i, w := range wrapped {
			prefix := strings.Repeat(" ", len(bulletGlyph))
			if i == 0 {
				prefix = th.Render(theme.Bullet, bulletGlyph)
			}
			lines = append(lines, prefix+w)
		}
	}
	return strings.Join(lines, "\n")
}

func stacked(th *theme.Theme, e Entry, width int) string {
	lines := []string{
		th.Render(theme.Dot, "● ") + e.Company.render(th, theme.Company, width-2),
		"  " + e.Dates.render(th, theme.Dates, width-2),
		"  " + e.Role.render(th, theme.Role, width-2),
	}
	if e.Chips != "" {
		lines = append(lines, "  "+e.Chips)
	}
	body := lipgloss.NewStyle().Width(max(width-2-len(bulletGlyph), 10))
	for _, b := range e.Bullets {
		for i, w := range strings.Split(body.Render(th.Render(theme.Body, b)), "\n") {
			prefix := "  " + strings.Repeat(" ", len(bulletGlyph))
			if i == 0 {
				prefix = "  " + th.Render(theme.Bullet, bulletGlyph)
			}
			lines = append(lines, prefix+w)
		}
	}
	return strings.Join(lines, "\n")
}

// fit keeps typed fields on one line so the row height never changes.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func pad(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
