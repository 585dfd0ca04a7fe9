package anim

import "github.com/oklog/ulid/v2"

// NewID returns a unique, time-ordered id for an animated element.
// Messages addressed to an element carry it so siblings never share timers.
func NewID() string {
	return ulid.Make().String()
}
