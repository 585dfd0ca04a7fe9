package tui

import (
	"context"

	"folio/internal/asset"
)

// Print renders the whole page at rest, for pipes and dumb terminals. The
// animation is loaded synchronously so the placeholder shows its summary.
func Print(ctx context.Context, opts Options, width int) string {
	opts.NoAnim = true
	m := New(opts)
	defer m.Unmount()
	m.skip()
	if src := m.animationSrc(); src != "" {
		s, err := asset.Load(ctx, src)
		if err != nil {
			m.assetErr = err
			m.logf("animation: %v", err)
		} else {
			m.assetSummary = &s
		}
	}
	return m.render(width)
}
