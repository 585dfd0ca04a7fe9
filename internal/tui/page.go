package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/anim"
	"folio/internal/asset"
	"folio/internal/content"
	"folio/internal/sound"
	"folio/internal/tui/reveal"
	"folio/internal/tui/state"
	"folio/internal/tui/theme"
	"folio/internal/tui/typewriter"
	"folio/internal/tui/widgets/diff"
	"folio/internal/tui/widgets/helpoverlay"
	"folio/internal/tui/widgets/statusbar"
)

// Options configures the page.
type Options struct {
	Portfolio   *content.Portfolio
	ContentPath string // reloaded with r; empty means built-in content
	Asset       string // overrides the portfolio's animation path
	Threshold   float64
	NoAnim      bool
	NoColor     bool
	Clicker     sound.Clicker
	Clock       anim.Clock
	Logf        func(string, ...any)
	Debugf      func(string, ...any)
}

// Run shows the portfolio until the user quits.
func Run(opts Options) error {
	m := New(opts)
	defer m.Unmount()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

type reloadedMsg struct {
	portfolio *content.Portfolio
	err       error
}

// Model is the scrolling portfolio page.
type Model struct {
	opts      Options
	portfolio *content.Portfolio
	th        *theme.Theme
	keys      keyMap
	help      help.Model
	vp        viewport.Model
	overlay   viewport.Model
	spin      spinner.Model
	ui        state.UIState
	obs       *viewportObserver
	blocks    []*block
	changes   []content.Change
	ready     bool

	ctx          context.Context
	cancel       context.CancelFunc
	assetSummary *asset.Summary
	assetErr     error
}

// New builds the page. Nothing is scheduled until Init.
func New(opts Options) *Model {
	if opts.Portfolio == nil {
		opts.Portfolio = content.Default()
	}
	if opts.Clicker == nil {
		opts.Clicker = sound.Nop{}
	}
	if opts.Clock == nil {
		opts.Clock = anim.System()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		opts:      opts,
		portfolio: opts.Portfolio,
		th:        theme.New(opts.NoColor),
		keys:      defaultKeys(),
		help:      help.New(),
		spin:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		obs:       newViewportObserver(),
		ctx:       ctx,
		cancel:    cancel,
	}
	m.ui.MinCol = 30
	m.blocks = m.buildBlocks(m.portfolio)
	m.ui.Blocks = len(m.blocks)
	return m
}

func (m *Model) revealOpts() []reveal.Option {
	return []reveal.Option{reveal.WithClock(m.opts.Clock), reveal.WithLogger(m.debugf)}
}

func (m *Model) typerOpts(class string) []typewriter.Option {
	return []typewriter.Option{
		typewriter.WithClass(class),
		typewriter.WithClock(m.opts.Clock),
		typewriter.WithOnChar(m.click),
	}
}

func (m *Model) click(ch string) {
	if strings.TrimFunc(ch, unicode.IsSpace) == "" {
		return
	}
	m.opts.Clicker.Click()
}

func (m *Model) animationSrc() string {
	if m.opts.Asset != "" {
		return m.opts.Asset
	}
	return m.portfolio.About.Animation
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.mount()}
	if src := m.animationSrc(); src != "" {
		cmds = append(cmds, asset.Cmd(m.ctx, src))
		if !m.opts.NoAnim {
			cmds = append(cmds, m.spin.Tick)
		}
	}
	return tea.Batch(cmds...)
}

// mount registers every block with the observer, or shows everything at
// once when animations are off.
func (m *Model) mount() tea.Cmd {
	if m.opts.NoAnim {
		m.skip()
		return nil
	}
	var cmds []tea.Cmd
	for _, b := range m.blocks {
		cmds = append(cmds, m.afterReveal(b, b.reveal.Mount(m.obs)))
	}
	return tea.Batch(cmds...)
}

// Unmount releases every observation and timer. The page can be dropped
// afterwards with nothing left scheduled.
func (m *Model) Unmount() {
	for _, b := range m.blocks {
		b.reveal.Unmount()
		for _, t := range b.typers {
			t.Unmount()
		}
	}
	m.obs.close()
	m.cancel()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		h := max(msg.Height-1, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, h)
			m.overlay = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.vp.Width, m.vp.Height = msg.Width, h
			m.overlay.Width, m.overlay.Height = msg.Width, h
		}
		m.help.Width = msg.Width
		cmds = append(cmds, m.refresh())

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		if m.ui.Overlay != state.NoOverlay {
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}
		m.vp, cmd = m.vp.Update(msg)
		cmds = append(cmds, cmd, m.refresh())

	case spinner.TickMsg:
		if m.opts.NoAnim {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd, m.refresh())

	case asset.LoadedMsg:
		if msg.Err != nil {
			m.assetErr = msg.Err
			m.logf("animation: %v", msg.Err)
		} else {
			s := msg.Summary
			m.assetSummary = &s
			m.debugf("animation: %s", s)
		}
		cmds = append(cmds, m.refresh())

	case reloadedMsg:
		cmds = append(cmds, m.applyReload(msg))

	default:
		for _, b := range m.blocks {
			cmds = append(cmds, m.updateBlock(b, msg))
		}
		cmds = append(cmds, m.refresh())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Unmount()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
		return m.refresh()
	case key.Matches(msg, m.keys.Close):
		m.ui = state.CloseOverlay(m.ui)
		return m.refresh()
	case key.Matches(msg, m.keys.Diff):
		m.ui = state.ToggleDiff(m.ui)
		m.overlay.GotoTop()
		return m.refresh()
	case key.Matches(msg, m.keys.DiffView):
		if m.ui.Overlay == state.DiffOverlay {
			m.ui = state.ToggleView(m.ui)
		}
		return m.refresh()
	}

	if m.ui.Overlay != state.NoOverlay {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Skip):
		m.skip()
	case key.Matches(msg, m.keys.Copy):
		m.copyLink()
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	case key.Matches(msg, m.keys.Top):
		m.vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.vp.GotoBottom()
	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return tea.Batch(cmd, m.refresh())
	}
	return m.refresh()
}

// updateBlock feeds msg to one block and starts its typewriters the first
// time its reveal has entered.
func (m *Model) updateBlock(b *block, msg tea.Msg) tea.Cmd {
	cmds := []tea.Cmd{m.afterReveal(b, b.reveal.Update(msg))}
	for _, t := range b.typers {
		cmds = append(cmds, t.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) afterReveal(b *block, cmd tea.Cmd) tea.Cmd {
	if b.started || !b.reveal.Entered() {
		return cmd
	}
	b.started = true
	m.ui = state.Revealed(m.ui)
	m.debugf("reveal %s entered", b.name)
	cmds := []tea.Cmd{cmd}
	for _, t := range b.typers {
		cmds = append(cmds, t.Start())
	}
	return tea.Batch(cmds...)
}

// skip is the static fallback: every block at rest, every text complete.
func (m *Model) skip() {
	for _, b := range m.blocks {
		b.reveal.Skip()
		b.started = true
		for _, t := range b.typers {
			t.Skip()
		}
	}
	m.ui = state.Skip(m.ui)
}

// refresh re-renders the page and reports intersections for the blocks
// still being observed.
func (m *Model) refresh() tea.Cmd {
	if !m.ready {
		return nil
	}
	m.vp.SetContent(m.render(m.vp.Width))
	m.ui = state.Scrolled(m.ui, m.vp.ScrollPercent())

	if m.obs.len() == 0 {
		return nil
	}
	view := reveal.Span{Top: m.vp.YOffset, Height: m.vp.Height}
	var cmds []tea.Cmd
	for _, b := range m.blocks {
		if !m.obs.watching(b.reveal.ID()) {
			continue
		}
		ratio := reveal.Ratio(reveal.Span{Top: b.top, Height: b.height}, view)
		cmds = append(cmds, m.updateBlock(b, reveal.IntersectionMsg{ID: b.reveal.ID(), Ratio: ratio}))
	}
	// Blocks that entered with no delay show their first frame now.
	m.vp.SetContent(m.render(m.vp.Width))
	return tea.Batch(cmds...)
}

// render lays out every block and records where each one landed.
func (m *Model) render(width int) string {
	var lines []string
	for _, b := range m.blocks {
		for i := 0; i < b.gap; i++ {
			lines = append(lines, "")
		}
		rest := b.render(m, width)
		b.top = len(lines)
		b.height = lipgloss.Height(rest)
		lines = append(lines, strings.Split(b.reveal.View(rest, width), "\n")...)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  Loading…"
	}
	body := m.vp.View()
	switch m.ui.Overlay {
	case state.HelpOverlay:
		m.overlay.SetContent(m.th.Class(theme.Panel).Render(helpoverlay.NewHelpOverlay().View(m.ui, m.keys.groups())))
		body = m.overlay.View()
	case state.DiffOverlay:
		m.overlay.SetContent(diff.NewDiffView().View(m.ui, m.changes))
		body = m.overlay.View()
	}
	status := statusbar.NewStatusBar().View(m.ui) + "  " + m.help.ShortHelpView(m.keys.ShortHelp())
	return body + "\n" + m.th.Render(theme.Status, lipgloss.NewStyle().MaxWidth(m.ui.Width).Render(status))
}

// copyLink copies the URL of the first linked entry on screen.
func (m *Model) copyLink() {
	view := reveal.Span{Top: m.vp.YOffset, Height: m.vp.Height}
	for _, b := range m.blocks {
		if b.link == nil || reveal.Ratio(reveal.Span{Top: b.top, Height: b.height}, view) == 0 {
			continue
		}
		url := b.link(m)
		if url == "" {
			continue
		}
		if err := clipboard.WriteAll(url); err != nil {
			m.logf("copy link: %v", err)
			m.ui = state.Notify(m.ui, "Copy failed: "+err.Error())
			return
		}
		m.ui = state.Notify(m.ui, "Copied "+url)
		return
	}
	m.ui = state.Notify(m.ui, "No link on screen")
}

func (m *Model) reload() tea.Cmd {
	path := m.opts.ContentPath
	if path == "" {
		m.ui = state.Notify(m.ui, "Built-in content: nothing to reload")
		return m.refresh()
	}
	return func() tea.Msg {
		p, err := content.Load(path)
		return reloadedMsg{portfolio: p, err: err}
	}
}

// applyReload swaps in new copy. When the shape is unchanged the blocks stay
// and changed typewriter texts restart from empty; otherwise the page is
// rebuilt and every block reveals again.
func (m *Model) applyReload(msg reloadedMsg) tea.Cmd {
	if msg.err != nil {
		m.logf("reload: %v", msg.err)
		m.ui = state.Notify(m.ui, fmt.Sprintf("Reload failed: %v", msg.err))
		return m.refresh()
	}
	old := m.portfolio
	m.changes = content.Changes(old, msg.portfolio)
	m.ui = state.Reloaded(m.ui, len(m.changes))
	m.logf("reload: %d fields changed", len(m.changes))
	m.portfolio = msg.portfolio

	var cmds []tea.Cmd
	if sameShape(old, msg.portfolio) {
		for _, b := range m.blocks {
			if b.item < 0 {
				continue
			}
			for j, text := range typedTexts(msg.portfolio.Experience.Items[b.item]) {
				cmds = append(cmds, b.typers[j].SetText(text))
			}
		}
	} else {
		for _, b := range m.blocks {
			b.reveal.Unmount()
			for _, t := range b.typers {
				t.Unmount()
			}
		}
		m.blocks = m.buildBlocks(m.portfolio)
		m.ui.Blocks = len(m.blocks)
		m.ui.Revealed = 0
		m.ui.Skipped = false
		cmds = append(cmds, m.mount())
	}
	if src := m.animationSrc(); m.opts.Asset == "" && src != old.About.Animation {
		m.assetSummary, m.assetErr = nil, nil
		if src != "" {
			cmds = append(cmds, asset.Cmd(m.ctx, src))
		}
	}
	cmds = append(cmds, m.refresh())
	return tea.Batch(cmds...)
}

func sameShape(a, b *content.Portfolio) bool {
	return len(a.About.Paragraphs) == len(b.About.Paragraphs) &&
		len(a.Experience.Items) == len(b.Experience.Items)
}

func (m *Model) logf(format string, args ...any) {
	if m.opts.Logf != nil {
		m.opts.Logf(format, args...)
	}
}

func (m *Model) debugf(format string, args ...any) {
	if m.opts.Debugf != nil {
		m.opts.Debugf(format, args...)
	}
}
