// Package theme is the page stylesheet. Components name their look with
// class hooks ("swipe-right", "heading", ...) and the theme resolves them;
// unknown classes render unstyled.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/tui/util"
)

// Class hooks understood by the theme.
const (
	Label     = "label"
	Heading   = "heading"
	Highlight = "highlight"
	Body      = "body"
	Strong    = "strong"
	Emphasis  = "emphasis"
	Link      = "link"
	Company   = "swipe-right"
	Role      = "swipe-left"
	Dates     = "dates"
	Bullet    = "bullet"
	Rule      = "rule"
	Dot       = "dot"
	Muted     = "muted"
	Caret     = "caret"
	Status    = "status"
	Panel     = "panel"
)

// Theme maps class hooks to styles.
type Theme struct {
	NoColor bool
	Palette util.Palette
	classes map[string]lipgloss.Style
}

// New builds the stylesheet. With noColor set, colors are dropped but
// weight and slant survive.
func New(noColor bool) *Theme {
	p := util.DefaultPalette()
	t := &Theme{NoColor: noColor, Palette: p, classes: map[string]lipgloss.Style{}}

	base := lipgloss.NewStyle()
	fg := func(s lipgloss.Style, c lipgloss.Color) lipgloss.Style {
		if noColor {
			return s
		}
		return s.Foreground(c)
	}

	t.classes[Label] = fg(base.Bold(true), p.Primary)
	t.classes[Heading] = base.Bold(true)
	t.classes[Highlight] = fg(base.Bold(true), p.Accent)
	t.classes[Body] = fg(base, p.Text)
	t.classes[Strong] = fg(base.Bold(true), p.Primary)
	t.classes[Emphasis] = fg(base.Italic(true), p.Muted)
	t.classes[Link] = fg(base.Underline(true), p.Primary)
	t.classes[Company] = fg(base.Bold(true), p.Text)
	t.classes[Role] = fg(base.Bold(true), p.Accent)
	t.classes[Dates] = fg(base, p.Muted)
	t.classes[Bullet] = fg(base, p.Primary)
	t.classes[Rule] = fg(base, p.MutedDark)
	t.classes[Dot] = fg(base.Bold(true), p.Primary)
	t.classes[Muted] = fg(base.Faint(true), p.Muted)
	t.classes[Caret] = fg(base.Blink(true), p.Primary)
	t.classes[Status] = fg(base, p.Muted)
	panel := base.Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if !noColor {
		panel = panel.BorderForeground(p.Primary)
	}
	t.classes[Panel] = panel
	return t
}

// Class returns the style for a hook. Space-separated hooks stack, the
// later ones winning.
func (t *Theme) Class(hooks string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t == nil {
		return s
	}
	fields := strings.Fields(hooks)
	if len(fields) == 1 {
		if c, ok := t.classes[fields[0]]; ok {
			return c
		}
		return s
	}
	// Inherit skips padding and margins, so stacked hooks carry text
	// attributes only.
	for i := len(fields) - 1; i >= 0; i-- {
		if c, ok := t.classes[fields[i]]; ok {
			s = s.Inherit(c)
		}
	}
	return s
}

// Render styles text with the given hooks.
func (t *Theme) Render(hooks, text string) string {
	if text == "" {
		return ""
	}
	return t.Class(hooks).Render(text)
}

// Spans renders an inline-markdown paragraph.
func (t *Theme) Spans(spans []content.Span) string {
	var b strings.Builder
	for _, s := range spans {
		hooks := Body
		if s.Strong {
			hooks += " " + Strong
		}
		if s.Emphasis {
			hooks += " " + Emphasis
		}
		if s.Link != "" {
			hooks += " " + Link
		}
		b.WriteString(t.Render(hooks, s.Text))
	}
	return b.String()
}
