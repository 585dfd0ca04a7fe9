package state

// Overlay is the panel drawn over the page, if any.
type Overlay int

const (
    NoOverlay Overlay = iota
    HelpOverlay
    DiffOverlay
)

// DiffMode controls how the reload diff is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds cross-widget UI state used by the status bar, the help
// overlay and the diff overlay.
type UIState struct {
    Overlay Overlay
    View    DiffMode

    // Layout & scrolling
    Width     int
    Height    int
    MinCol    int // narrowest usable side-by-side column
    ScrollPct float64

    // Reveal bookkeeping
    Blocks   int
    Revealed int
    Skipped  bool // animations forced to their static fallback

    // Reload
    Changes int

    // Notices and ephemeral messages
    Notice string
}
