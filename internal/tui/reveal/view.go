package reveal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

var faintStyle = lipgloss.NewStyle().Faint(true)

// Span is a vertical extent in page rows.
type Span struct {
	Top    int
	Height int
}

// Ratio is the fraction of elem that lies inside view.
func Ratio(elem, view Span) float64 {
	if elem.Height <= 0 || view.Height <= 0 {
		return 0
	}
	top := max(elem.Top, view.Top)
	bottom := min(elem.Top+elem.Height, view.Top+view.Height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(elem.Height)
}

// View renders content in its current entrance state. The block keeps the
// dimensions of content throughout so the page layout never jumps.
func (m *Model) View(content string, width int) string {
	if m.Settled() {
		return content
	}
	lines := strings.Split(content, "\n")
	if !m.entered {
		return strings.Join(blank(lines), "\n")
	}

	p := m.progress
	switch {
	case p < 0.25:
		lines = blank(lines)
	case p < 0.7:
		for i, l := range lines {
			lines[i] = faintStyle.Render(ansi.Strip(l))
		}
	}

	rows := int(math.Round((1 - p) * Rows))
	cols := int(math.Round((1 - p) * Cols))
	switch m.cfg.Direction {
	case Up:
		lines = shiftDown(lines, rows)
	case Down:
		lines = shiftUp(lines, rows)
	case Left:
		for i, l := range lines {
			lines[i] = cutLeft(l, cols)
		}
	case Right:
		for i, l := range lines {
			lines[i] = padLeft(l, cols, width)
		}
	}
	return strings.Join(lines, "\n")
}

func blank(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.Repeat(" ", ansi.StringWidth(l))
	}
	return out
}

// shiftDown moves lines down by n rows inside the same height: the block
// starts below its resting place and moves up.
func shiftDown(lines []string, n int) []string {
	if n <= 0 {
		return lines
	}
	n = min(n, len(lines))
	out := make([]string, 0, len(lines))
	for i := 0; i < n; i++ {
		out = append(out, "")
	}
	return append(out, lines[:len(lines)-n]...)
}

func shiftUp(lines []string, n int) []string {
	if n <= 0 {
		return lines
	}
	n = min(n, len(lines))
	out := append([]string{}, lines[n:]...)
	for i := 0; i < n; i++ {
		out = append(out, "")
	}
	return out
}

// cutLeft hides the first n columns: the block slides in from the left.
func cutLeft(line string, n int) string {
	if n <= 0 {
		return line
	}
	return runewidth.TruncateLeft(ansi.Strip(line), n, "")
}

// padLeft pushes the line n columns right, clipped to width when known.
func padLeft(line string, n, width int) string {
	if n <= 0 {
		return line
	}
	line = strings.Repeat(" ", n) + line
	if width > 0 {
		line = ansi.Truncate(line, width, "")
	}
	return line
}
