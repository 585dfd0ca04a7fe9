package anim

import "time"

// FrameInterval is the redraw rate of running transitions.
const FrameInterval = time.Second / 30

// Progress maps elapsed time onto [0,1].
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

// EaseOutCubic decelerates towards the end.
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
