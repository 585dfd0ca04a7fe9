// Package device plays key clicks on the default audio output.
package device

import (
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"

	"folio/internal/sound"
)

type clicker struct {
	mu     sync.Mutex
	volume float64
	closed bool
}

// New opens the default audio device. On failure it returns sound.Nop and
// the error, so callers can log and keep going.
func New(volume float64) (sound.Clicker, error) {
	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(50*time.Millisecond)); err != nil {
		return sound.Nop{}, err
	}
	return &clicker{volume: volume}, nil
}

func (c *clicker) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	s, err := sound.Tone(sound.ClickFreq, sound.ClickLen, c.volume)
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (c *clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	speaker.Clear()
	speaker.Close()
}
