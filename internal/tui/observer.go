package tui

import (
	"errors"

	"folio/internal/tui/reveal"
)

var errObserverClosed = errors.New("viewport observer closed")

// viewportObserver stands in for the host's intersection observer: blocks
// register by id and the page reports their visible ratio after every
// scroll, resize or re-layout.
type viewportObserver struct {
	watched map[string]bool
	closed  bool
}

func newViewportObserver() *viewportObserver {
	return &viewportObserver{watched: map[string]bool{}}
}

// Observe implements reveal.Observer.
func (o *viewportObserver) Observe(id string) (func(), error) {
	if o.closed {
		return nil, errObserverClosed
	}
	o.watched[id] = true
	return func() { delete(o.watched, id) }, nil
}

func (o *viewportObserver) watching(id string) bool { return o.watched[id] }

func (o *viewportObserver) len() int { return len(o.watched) }

func (o *viewportObserver) close() {
	o.closed = true
	clear(o.watched)
}

var _ reveal.Observer = (*viewportObserver)(nil)
