package state

import "strconv"

// ToggleHelp shows or hides the key help.
func ToggleHelp(s UIState) UIState {
    if s.Overlay == HelpOverlay {
        s.Overlay = NoOverlay
    } else {
        s.Overlay = HelpOverlay
    }
    return s
}

// ToggleDiff shows or hides the reload diff. With nothing to show it only
// sets a notice.
func ToggleDiff(s UIState) UIState {
    if s.Overlay == DiffOverlay {
        s.Overlay = NoOverlay
        return s
    }
    if s.Changes == 0 {
        s.Notice = "No changes since load"
        return s
    }
    s.Overlay = DiffOverlay
    return s
}

// CloseOverlay returns to the page.
func CloseOverlay(s UIState) UIState {
    s.Overlay = NoOverlay
    return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        s.View = SideBySide
    } else {
        s.View = Unified
    }
    return Resize(s, s.Width, s.Height)
}

// Resize updates the size and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    threshold := 2*s.MinCol + 3
    if s.View == SideBySide && s.Width > 0 && s.Width < threshold {
        s.View = Unified
        s.Notice = "Narrow width: using unified view"
    }
    return s
}

// Scrolled records the viewport position, 0..1.
func Scrolled(s UIState, pct float64) UIState {
    switch {
    case pct < 0:
        pct = 0
    case pct > 1:
        pct = 1
    }
    s.ScrollPct = pct
    return s
}

// Revealed counts one more block as entered.
func Revealed(s UIState) UIState {
    if s.Revealed < s.Blocks {
        s.Revealed++
    }
    return s
}

// Skip marks every block revealed.
func Skip(s UIState) UIState {
    s.Skipped = true
    s.Revealed = s.Blocks
    s.Notice = "Animations skipped"
    return s
}

// Reloaded records a content reload with n changed fields.
func Reloaded(s UIState, n int) UIState {
    s.Changes = n
    switch n {
    case 0:
        s.Notice = "Reloaded: no changes"
    case 1:
        s.Notice = "Reloaded: 1 field changed (d: diff)"
    default:
        s.Notice = "Reloaded: " + strconv.Itoa(n) + " fields changed (d: diff)"
    }
    return s
}

// Notify sets the status notice.
func Notify(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}
