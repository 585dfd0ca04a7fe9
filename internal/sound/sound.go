// Package sound shapes the optional typewriter key click. Opening the
// audio device lives in sound/device so the page builds without cgo.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	SampleRate = beep.SampleRate(44100)
	ClickFreq  = 1800.0
	ClickLen   = 12 * time.Millisecond
)

// Clicker makes a short sound per typed character.
type Clicker interface {
	Click()
	Close()
}

// Nop is the silent clicker.
type Nop struct{}

func (Nop) Click() {}
func (Nop) Close() {}

// Tone is a finite sine burst at the given volume (0..1).
func Tone(freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, err
	}
	v := &effects.Volume{
		Streamer: beep.Take(SampleRate.N(d), sine),
		Base:     2,
		Volume:   volume - 1,
		Silent:   volume <= 0,
	}
	return v, nil
}
