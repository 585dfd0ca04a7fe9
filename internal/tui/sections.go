package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/asset"
	"folio/internal/content"
	"folio/internal/tui/reveal"
	"folio/internal/tui/theme"
	"folio/internal/tui/typewriter"
	"folio/internal/tui/util"
	"folio/internal/tui/widgets/tagchips"
	"folio/internal/tui/widgets/timeline"
)

// Typing speeds of the timeline fields.
const (
	companyDelay = 80 * time.Millisecond
	datesDelay   = 60 * time.Millisecond
	roleDelay    = 70 * time.Millisecond
)

const (
	paragraphStart  = 200 * time.Millisecond
	animationDelay  = 100 * time.Millisecond
	staggerStep     = 100 * time.Millisecond
	placeholderRows = 7
	maxTextWidth    = 88
)

// block is one revealed unit of the page. Its typewriters start when the
// reveal enters.
type block struct {
	name    string
	item    int // experience item index, -1 for other blocks
	gap     int // blank lines above
	reveal  *reveal.Model
	typers  []*typewriter.Model
	render  func(m *Model, width int) string
	link    func(m *Model) string
	started bool

	top, height int
}

// field is the current value of typewriter i with its class hook.
func (b *block) field(i int) timeline.Field {
	if i >= len(b.typers) {
		return timeline.Field{}
	}
	return timeline.Field{Text: b.typers[i].Value(), Class: b.typers[i].Class()}
}

// buildBlocks lays out the About and Experience sections with the stagger
// schedule: headings first, then the animation, then paragraphs or entries
// 100ms apart.
func (m *Model) buildBlocks(p *content.Portfolio) []*block {
	var blocks []*block
	add := func(name string, gap int, dir reveal.Direction, delay time.Duration, render func(*Model, int) string) *block {
		b := &block{
			name:   name,
			item:   -1,
			gap:    gap,
			reveal: reveal.New(reveal.Config{Direction: dir, Delay: delay, Threshold: m.opts.Threshold}, m.revealOpts()...),
			render: render,
		}
		blocks = append(blocks, b)
		return b
	}

	add("about.heading", 1, reveal.Up, 0, func(m *Model, width int) string {
		a := m.portfolio.About
		lines := []string{
			m.th.Render(theme.Label, strings.ToUpper(a.Label)),
			m.th.Render(theme.Heading, a.Heading),
		}
		if a.Highlight != "" {
			lines = append(lines, m.th.Render(theme.Highlight, a.Highlight))
		}
		return center(strings.Join(lines, "\n"), width)
	})
	add("about.animation", 1, reveal.Left, animationDelay, (*Model).renderAnimation)
	for i := range p.About.Paragraphs {
		i := i
		add(fmt.Sprintf("about.paragraphs[%d]", i), 1, reveal.Up, paragraphStart+time.Duration(i)*staggerStep, func(m *Model, width int) string {
			if i >= len(m.portfolio.About.Paragraphs) {
				return ""
			}
			text := m.th.Spans(content.Inline(m.portfolio.About.Paragraphs[i]))
			return center(lipgloss.NewStyle().Width(textWidth(width)).Render(text), width)
		})
	}

	add("experience.heading", 3, reveal.Up, 0, func(m *Model, width int) string {
		e := m.portfolio.Experience
		return center(m.th.Render(theme.Label, strings.ToUpper(e.Label))+"\n"+m.th.Render(theme.Heading, e.Heading), width)
	})
	for i, it := range p.Experience.Items {
		i := i
		period := content.ParsePeriod(it.Period)
		b := add(fmt.Sprintf("experience.items[%d]", i), 1, reveal.Up, time.Duration(i)*staggerStep, nil)
		b.item = i
		b.typers = []*typewriter.Model{
			typewriter.New(it.Company, companyDelay, m.typerOpts(theme.Company)...),
			typewriter.New(period.Range(), datesDelay, m.typerOpts(theme.Dates)...),
			typewriter.New(it.Role, roleDelay, m.typerOpts(theme.Role)...),
		}
		b.render = func(m *Model, width int) string {
			items := m.portfolio.Experience.Items
			if i >= len(items) {
				return ""
			}
			it := items[i]
			e := timeline.Entry{
				Company:  b.field(0),
				Dates:    b.field(1),
				Duration: content.ParsePeriod(it.Period).Duration,
				Role:     b.field(2),
				Bullets:  it.Description,
				Chips:    tagchips.View(util.ComputeTags(it), m.th.NoColor),
			}
			return center(timeline.View(m.th, e, textWidth(width), i == len(items)-1), width)
		}
		b.link = func(m *Model) string {
			if i >= len(m.portfolio.Experience.Items) {
				return ""
			}
			return m.portfolio.Experience.Items[i].URL
		}
	}
	return blocks
}

// typedTexts is the source text of every typewriter of the entry blocks in
// block order, used to push reloaded copy through SetText.
func typedTexts(it content.Item) []string {
	return []string{it.Company, content.ParsePeriod(it.Period).Range(), it.Role}
}

func (m *Model) renderAnimation(width int) string {
	boxWidth := min(textWidth(width), 56)
	playing := m.spin.View()
	if m.opts.NoAnim {
		playing = "▶ "
	}
	var body string
	switch {
	case m.assetErr != nil || m.animationSrc() == "":
		body = m.th.Render(theme.Muted, asset.Fallback)
	case m.assetSummary == nil:
		body = playing + m.th.Render(theme.Muted, "Loading animation…")
	default:
		body = playing + m.th.Render(theme.Body, m.assetSummary.String())
	}
	inner := lipgloss.Place(boxWidth-4, placeholderRows-2, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().MaxWidth(boxWidth-4).Render(body))
	return center(m.th.Class(theme.Panel).Render(inner), width)
}

func textWidth(width int) int {
	if width <= 0 {
		return maxTextWidth
	}
	return max(min(width-4, maxTextWidth), 20)
}

func center(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
